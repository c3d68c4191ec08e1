package csprng_test

import (
	"testing"

	"github.com/sp301415/numtheory/csprng"
	"github.com/stretchr/testify/assert"
)

func TestSampler(t *testing.T) {
	t.Run("Seeded", func(t *testing.T) {
		s0 := csprng.NewSamplerWithSeed([]byte("seed"))
		s1 := csprng.NewSamplerWithSeed([]byte("seed"))
		for i := 0; i < 2048; i++ {
			assert.Equal(t, s0.Sample(), s1.Sample())
		}
	})

	t.Run("LongSeed", func(t *testing.T) {
		seed := make([]byte, 1000)
		s0 := csprng.NewSamplerWithSeed(seed)
		seed[999] = 1
		s1 := csprng.NewSamplerWithSeed(seed)
		assert.NotEqual(t, s0.Sample(), s1.Sample())
	})

	t.Run("SampleN", func(t *testing.T) {
		s := csprng.NewSampler()
		seen := make([]bool, 7)
		for i := 0; i < 1000; i++ {
			x := s.SampleN(7)
			assert.Less(t, x, uint64(7))
			seen[x] = true
		}
		assert.NotContains(t, seen, false)
	})

	t.Run("SampleRange", func(t *testing.T) {
		s := csprng.NewSampler()
		for i := 0; i < 1000; i++ {
			x := csprng.SampleRange(s, int8(-100), int8(100))
			assert.GreaterOrEqual(t, x, int8(-100))
			assert.Less(t, x, int8(100))

			y := csprng.SampleRange(s, int64(-5), int64(-2))
			assert.GreaterOrEqual(t, y, int64(-5))
			assert.Less(t, y, int64(-2))
		}

		assert.Panics(t, func() { csprng.SampleRange(s, 3, 3) })
	})

	t.Run("Read", func(t *testing.T) {
		s := csprng.NewSampler()
		buf := make([]byte, 64)
		n, err := s.Read(buf)
		assert.NoError(t, err)
		assert.Equal(t, 64, n)
		assert.NotEqual(t, make([]byte, 64), buf)
	})
}

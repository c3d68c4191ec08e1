// Package csprng implements a seedable uniform sampler,
// used to draw cipher keys and random operands.
package csprng

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"

	"github.com/sp301415/numtheory/num"
	"golang.org/x/crypto/blake2b"
)

// seedSize is the size of the seed drawn by NewSampler.
const seedSize = 32

// poolSize is the number of bytes read from the XOF at once.
const poolSize = 4096

// Sampler draws uniform integers from a blake2b XOF.
//
// Sampler is not safe for concurrent use.
type Sampler struct {
	xof blake2b.XOF

	pool [poolSize]byte
	off  int
}

// NewSampler creates a Sampler seeded from crypto/rand.
//
// Panics when crypto/rand fails.
func NewSampler() *Sampler {
	var seed [seedSize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic(err)
	}
	return NewSamplerWithSeed(seed[:])
}

// NewSamplerWithSeed creates a Sampler from seed.
// Two Samplers built from the same seed return the same values.
//
// Panics when blake2b initialization fails.
func NewSamplerWithSeed(seed []byte) *Sampler {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	if _, err := xof.Write(seed); err != nil {
		panic(err)
	}

	return &Sampler{xof: xof, off: poolSize}
}

// Read implements the [io.Reader] interface.
// It bypasses the internal pool.
func (s *Sampler) Read(p []byte) (int, error) {
	return s.xof.Read(p)
}

func (s *Sampler) refill() {
	if _, err := s.xof.Read(s.pool[:]); err != nil {
		panic(err)
	}
	s.off = 0
}

// Sample returns a uniform uint64.
func (s *Sampler) Sample() uint64 {
	if s.off+8 > poolSize {
		s.refill()
	}
	x := binary.LittleEndian.Uint64(s.pool[s.off:])
	s.off += 8
	return x
}

// SampleByte returns a uniform byte.
func (s *Sampler) SampleByte() byte {
	if s.off == poolSize {
		s.refill()
	}
	b := s.pool[s.off]
	s.off++
	return b
}

// SampleN returns a uniform integer in [0, n).
// Panics if n is zero.
func (s *Sampler) SampleN(n uint64) uint64 {
	if n == 0 {
		panic("SampleN: zero bound")
	}

	// Lemire's multiply-shift with rejection of the biased low range.
	hi, lo := bits.Mul64(s.Sample(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul64(s.Sample(), n)
		}
	}
	return hi
}

// SampleRange returns a uniform integer in [lo, hi).
// Panics if hi <= lo.
func SampleRange[T num.Integer](s *Sampler, lo, hi T) T {
	if hi <= lo {
		panic("SampleRange: empty range")
	}

	// Width is exact in two's complement, even for signed T.
	width := uint64(hi) - uint64(lo)
	return T(uint64(lo) + s.SampleN(width))
}

package prime

import (
	"github.com/bits-and-blooms/bitset"
)

// Sieve returns all primes less than or equal to limit,
// using the Sieve of Eratosthenes.
func Sieve(limit uint) []uint {
	if limit < 2 {
		return nil
	}

	composite := bitset.New(limit + 1)
	for p := uint(2); p <= limit/p; p++ {
		if composite.Test(p) {
			continue
		}
		for m := p * p; m <= limit; m += p {
			composite.Set(m)
			if m > limit-p {
				break
			}
		}
	}

	primes := make([]uint, 0)
	for p := uint(2); p <= limit; p++ {
		if !composite.Test(p) {
			primes = append(primes, p)
		}
		if p == limit {
			break
		}
	}
	return primes
}

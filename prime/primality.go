// Package prime implements primality tests, prime factorization
// and Euler's totient function by trial division.
package prime

import (
	"github.com/cockroachdb/errors"
	"github.com/sp301415/numtheory/euclid"
	"github.com/sp301415/numtheory/num"
)

// IsPrime reports whether n is prime, by trial division with 6k ± 1 candidates.
func IsPrime[T num.Integer](n T) bool {
	if n <= 3 {
		return n > 1
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for k := T(5); k <= n/k; k += 6 {
		if n%k == 0 || n%(k+2) == 0 {
			return false
		}
	}
	return true
}

// Wilson reports whether n is prime using Wilson's theorem:
// n > 1 is prime if and only if (n-1)! == -1 mod n.
//
// This is only practical for tiny n.
// Returns ErrOverflow if (n-1)! does not fit in T,
// which happens for n > 13 with int32 and n > 21 with int64.
func Wilson[T num.Integer](n T) (bool, error) {
	if n < 2 {
		return false, nil
	}

	f, err := num.Factorial(n - 1)
	if err != nil {
		return false, errors.Wrapf(err, "wilson(%v)", n)
	}

	// Both sides are shifted by n, so this holds exactly when f == n-1 mod n.
	return num.Modulus(f, n)+2 == num.Modulus(1, n)+n, nil
}

// RelativelyPrime reports whether a and b are coprime.
func RelativelyPrime[T num.Integer](a, b T) bool {
	return euclid.GCD(a, b) == 1
}

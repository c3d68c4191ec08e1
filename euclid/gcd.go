// Package euclid implements the Euclidean family of algorithms:
// greatest common divisors, Bézout coefficients, modular inverses
// and simple continued fractions.
package euclid

import (
	"github.com/cockroachdb/errors"
	"github.com/sp301415/numtheory/num"
)

// GCD returns the greatest common divisor of a and b
// using the remainder form of the Euclidean algorithm.
// GCD(0, 0) is 0.
//
// The result is never negative, except when it would be |MinOf[T]|,
// which does not fit in T. This happens only for GCD(MinOf, 0),
// GCD(0, MinOf) and GCD(MinOf, MinOf), which return MinOf[T]().
func GCD[T num.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return num.Abs(a)
}

// GCDRecursive is the recursive form of [GCD], with the same result range.
func GCDRecursive[T num.Integer](a, b T) T {
	if b == 0 {
		return num.Abs(a)
	}
	return GCDRecursive(b, a%b)
}

// GCDSubtraction returns the greatest common divisor of a and b
// by repeatedly subtracting the smaller operand from the larger.
// This takes O(max(a, b)/min(a, b)) steps, so it is only useful as a cross-check.
// The result range is the same as [GCD].
func GCDSubtraction[T num.Integer](a, b T) T {
	// MinOf has no absolute value in T, so take one remainder step first.
	lo := num.MinOf[T]()
	if a == lo && b != 0 {
		a %= b
	}
	if b == lo && a != 0 {
		b %= a
	}

	a, b = num.Abs(a), num.Abs(b)
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	}

	for a != b {
		if a > b {
			a -= b
		} else {
			b -= a
		}
	}
	return a
}

// LCM returns the least common multiple of a and b.
// Returns ErrOverflow if the result does not fit in T.
func LCM[T num.Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	l, err := num.MulOrErr(num.Abs(a/GCD(a, b)), num.Abs(b))
	if err != nil {
		return 0, errors.Wrapf(err, "lcm(%v, %v)", a, b)
	}
	return l, nil
}

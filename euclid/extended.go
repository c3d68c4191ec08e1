package euclid

import (
	"github.com/cockroachdb/errors"
	"github.com/sp301415/numtheory/num"
)

// ExtendedEuclidean runs the extended Euclidean algorithm on a and b.
// It returns d, x, y such that
//
//	a*x + b*y == d == GCD(a, b)
//
// along with qx, qy, the coefficients of the final (zero) remainder,
// which satisfy a*qx + b*qy == 0.
//
// For unsigned T, the coefficients wrap around and the identities above
// hold modulo 2^BitSize[T].
func ExtendedEuclidean[T num.Integer](a, b T) (d, x, y, qx, qy T) {
	x, y, px, py := T(0), T(1), T(1), T(0)
	rem, prem := b, a

	for rem != 0 {
		q := prem / rem
		prem, rem = rem, prem-q*rem
		px, x = x, px-q*x
		py, y = y, py-q*y
	}

	return prem, px, py, x, y
}

// EGCD returns the GCD of a and b along with the Bézout coefficients.
// See [ExtendedEuclidean] for details.
func EGCD[T num.Integer](a, b T) (d, x, y T) {
	d, x, y, _, _ = ExtendedEuclidean(a, b)
	return
}

// Bezout returns the Bézout coefficients x, y such that a*x + b*y == GCD(a, b).
func Bezout[T num.Integer](a, b T) (x, y T) {
	_, x, y, _, _ = ExtendedEuclidean(a, b)
	return
}

// MultiplicativeInverse returns the inverse of a modulo b, in [0, b).
// Returns ErrInverseDoesNotExist if GCD(a, b) != 1 or b is not positive.
func MultiplicativeInverse[T num.Integer](a, b T) (T, error) {
	if b <= 0 {
		return 0, errors.Wrapf(num.ErrInverseDoesNotExist, "inverse of %v mod %v: modulus is not positive", a, b)
	}

	// The coefficients of a alternate in sign, so we only track their
	// magnitudes, which are bounded by b and never overflow T.
	r0, r1 := num.CanonicalModulus(a, b), b
	x0, x1 := T(1), T(0)
	neg := false
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		x0, x1 = x1, x0+q*x1
		neg = !neg
	}

	if r0 != 1 {
		return 0, errors.Wrapf(num.ErrInverseDoesNotExist, "inverse of %v mod %v: gcd is %v", a, b, r0)
	}

	inv := x0 % b
	if neg && inv != 0 {
		inv = b - inv
	}
	return inv, nil
}

package num

import (
	"math/bits"
)

// Modulus returns (a % b) + b.
//
// Unlike the canonical residue, the result for b > 0 lies in [1, 2b),
// and in [b, 2b) when a >= 0. This is the convention used by the Wilson
// primality test. Use [CanonicalModulus] for a residue in [0, b).
// Panics if b is zero.
func Modulus[T Integer](a, b T) T {
	return (a % b) + b
}

// CanonicalModulus returns a mod b with the sign of b.
// For b > 0, the result is in [0, b).
// Panics if b is zero.
func CanonicalModulus[T Integer](a, b T) T {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// MulMod returns x*y mod m without intermediate overflow.
// Panics if m is zero.
func MulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}

// ModExp returns x^y mod m.
// Panics if m is zero.
func ModExp(x, y, m uint64) uint64 {
	r := uint64(1) % m
	x %= m
	for y > 0 {
		if y&1 == 1 {
			r = MulMod(r, x, m)
		}
		x = MulMod(x, x, m)
		y >>= 1
	}
	return r
}

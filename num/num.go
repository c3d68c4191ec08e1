// Package num implements the numeric capability layer shared by every algorithm
// in this module: type constraints, type bounds, checked arithmetic,
// modular helpers and the error taxonomy.
package num

import (
	"golang.org/x/exp/constraints"
)

// Signed is a constraint for signed integer types.
type Signed interface {
	constraints.Signed
}

// Unsigned is a constraint for unsigned integer types.
type Unsigned interface {
	constraints.Unsigned
}

// Integer is a constraint for all fixed-width integer types.
// Every algorithm in this module is written once against this constraint.
type Integer interface {
	constraints.Integer
}

// Float is a constraint for floating point types.
// Floats are only partially ordered and unbounded in the sense used here,
// so no algorithm in this module accepts them.
type Float interface {
	constraints.Float
}

// Number is a constraint for any real numeric type.
type Number interface {
	Integer | Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}

// BitSize returns the width of T in bits.
func BitSize[T Integer]() int {
	n := 0
	for x := T(1); x != 0; x <<= 1 {
		n++
	}
	return n
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	return ^T(0) < 0
}

// MinOf returns the smallest value representable by T.
func MinOf[T Integer]() T {
	if IsSigned[T]() {
		return T(1) << (BitSize[T]() - 1)
	}
	return 0
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Integer]() T {
	if IsSigned[T]() {
		return ^MinOf[T]()
	}
	return ^T(0)
}

// Abs returns the absolute value of x.
// For unsigned T, it returns x unchanged.
// Abs(MinOf[T]()) is MinOf[T]() for signed T.
func Abs[T Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

package num

import (
	"github.com/cockroachdb/errors"
)

// MulChecked returns a*b and true, or zero and false if a*b overflows T.
func MulChecked[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	if IsSigned[T]() {
		// MinOf * -1 is the one product the division check below misses.
		lo, neg := MinOf[T](), ^T(0)
		if (a == neg && b == lo) || (b == neg && a == lo) {
			return 0, false
		}
	}

	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// AddChecked returns a+b and true, or zero and false if a+b overflows T.
func AddChecked[T Integer](a, b T) (T, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

// MulOrErr is like MulChecked, but returns ErrOverflow instead of a flag.
func MulOrErr[T Integer](a, b T) (T, error) {
	c, ok := MulChecked(a, b)
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%v * %v", a, b)
	}
	return c, nil
}

// AddOrErr is like AddChecked, but returns ErrOverflow instead of a flag.
func AddOrErr[T Integer](a, b T) (T, error) {
	c, ok := AddChecked(a, b)
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%v + %v", a, b)
	}
	return c, nil
}

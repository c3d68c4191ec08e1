package num

import (
	"github.com/cockroachdb/errors"
)

// Factorial returns n!.
//
// Returns ErrOverflow if n! does not fit in T. The error message carries
// the accumulator and the multiplier at the point of failure.
// Returns ErrNegativeInput if n is negative.
func Factorial[T Integer](n T) (T, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrNegativeInput, "factorial(%v)", n)
	}

	acc := T(1)
	for i := T(2); i <= n; i++ {
		next, ok := MulChecked(acc, i)
		if !ok {
			return 0, errors.Wrapf(ErrOverflow, "factorial(%v): accumulator %v times %v", n, acc, i)
		}
		acc = next
	}
	return acc, nil
}

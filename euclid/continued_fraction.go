package euclid

import (
	"github.com/cockroachdb/errors"
	"github.com/sp301415/numtheory/num"
)

// ErrEmptyContinuedFraction is returned when evaluating an empty quotient sequence.
var ErrEmptyContinuedFraction = errors.New("empty continued fraction")

// ContinuedFraction returns the partial quotients of the simple continued
// fraction of a/b. If a < b, the first quotient is 0.
//
// a must be non-negative and b must be positive.
func ContinuedFraction[T num.Integer](a, b T) []T {
	var quotients []T
	for {
		q := a / b
		quotients = append(quotients, q)

		a -= b * q
		if a == 0 {
			return quotients
		}
		a, b = b, a
	}
}

// EvaluateContinuedFraction evaluates the partial quotients q
// back into a fraction n/d in lowest terms.
// Returns ErrOverflow if an intermediate convergent does not fit in T.
func EvaluateContinuedFraction[T num.Integer](q []T) (n, d T, err error) {
	if len(q) == 0 {
		return 0, 0, ErrEmptyContinuedFraction
	}

	n, d = q[len(q)-1], 1
	for i := len(q) - 2; i >= 0; i-- {
		qn, ok := num.MulChecked(q[i], n)
		if !ok {
			return 0, 0, errors.Wrapf(num.ErrOverflow, "continued fraction term %d: %v * %v", i, q[i], n)
		}
		next, ok := num.AddChecked(qn, d)
		if !ok {
			return 0, 0, errors.Wrapf(num.ErrOverflow, "continued fraction term %d: %v + %v", i, qn, d)
		}
		n, d = next, n
	}
	return n, d, nil
}

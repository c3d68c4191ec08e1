package sequence

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/sp301415/numtheory/num"
)

// Multiples returns the positive multiples of any of factors that are
// strictly less than bound, sorted and without duplicates.
// Non-positive factors are ignored.
func Multiples[T num.Integer](factors []T, bound T) []T {
	multiples := make([]T, 0)
	for _, f := range factors {
		if f <= 0 {
			continue
		}

		for k := T(1); ; k++ {
			m, ok := num.MulChecked(f, k)
			if !ok || m >= bound {
				break
			}
			multiples = append(multiples, m)
		}
	}

	slices.Sort(multiples)
	return slices.Compact(multiples)
}

// SumOfMultiples returns the sum of [Multiples].
// Returns ErrOverflow if the sum does not fit in T.
func SumOfMultiples[T num.Integer](factors []T, bound T) (T, error) {
	return sum(Multiples(factors, bound))
}

// MultiplesOf returns an iterator over factor, 2*factor, 3*factor, ...
// that stops at the last multiple representable in T.
// The iterator is empty if factor is not positive.
func MultiplesOf[T num.Integer](factor T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if factor <= 0 {
			return
		}

		for m := factor; yield(m); {
			next, ok := num.AddChecked(m, factor)
			if !ok {
				return
			}
			m = next
		}
	}
}

// sum returns the checked sum of terms.
func sum[T num.Integer](terms []T) (T, error) {
	var s T
	for _, t := range terms {
		next, ok := num.AddChecked(s, t)
		if !ok {
			return 0, errors.Wrapf(num.ErrOverflow, "sum: %v + %v", s, t)
		}
		s = next
	}
	return s, nil
}

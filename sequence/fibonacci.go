// Package sequence implements Fibonacci sequences and multiples of factor sets.
//
// Every function is computed iteratively with checked arithmetic.
// Functions bounded by an index return ErrOverflow when a term does not fit in T,
// and functions bounded by a value stop before the first term that would overflow.
package sequence

import (
	"github.com/cockroachdb/errors"
	"github.com/sp301415/numtheory/num"
)

// fibonacciGenerator yields F(0), F(1), ... in order.
type fibonacciGenerator[T num.Integer] struct {
	// a = F(k), b = F(k+1).
	a, b T
	// aOk, bOk reports whether a, b are representable in T.
	aOk, bOk bool
}

func newFibonacciGenerator[T num.Integer]() *fibonacciGenerator[T] {
	return &fibonacciGenerator[T]{
		a: 0, b: 1,
		aOk: true, bOk: true,
	}
}

// next returns F(k) and advances to F(k+1).
// It returns false if F(k) does not fit in T.
func (g *fibonacciGenerator[T]) next() (T, bool) {
	if !g.aOk {
		return 0, false
	}

	f := g.a
	c, ok := num.AddChecked(g.a, g.b)
	g.a, g.aOk = g.b, g.bOk
	g.b, g.bOk = c, ok && g.bOk
	return f, true
}

// fibonacciUpTo returns the terms F(0), ..., F(n) accepted by keep.
func fibonacciUpTo[T num.Integer](n int, keep func(T) bool) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(num.ErrNegativeInput, "fibonacci index %d", n)
	}

	terms := make([]T, 0)
	g := newFibonacciGenerator[T]()
	for i := 0; i <= n; i++ {
		f, ok := g.next()
		if !ok {
			return nil, errors.Wrapf(num.ErrOverflow, "fibonacci term %d", i)
		}
		if keep(f) {
			terms = append(terms, f)
		}
	}
	return terms, nil
}

// fibonacciBelow returns the terms less than or equal to bound accepted by keep.
func fibonacciBelow[T num.Integer](bound T, keep func(T) bool) []T {
	terms := make([]T, 0)
	g := newFibonacciGenerator[T]()
	for {
		f, ok := g.next()
		if !ok || f > bound {
			return terms
		}
		if keep(f) {
			terms = append(terms, f)
		}
	}
}

func all[T num.Integer](T) bool {
	return true
}

// Fibonacci returns the n-th Fibonacci number, with F(0) = 0 and F(1) = 1.
func Fibonacci[T num.Integer](n int) (T, error) {
	if n < 0 {
		return 0, errors.Wrapf(num.ErrNegativeInput, "fibonacci(%d)", n)
	}

	g := newFibonacciGenerator[T]()
	for i := 0; ; i++ {
		f, ok := g.next()
		if !ok {
			return 0, errors.Wrapf(num.ErrOverflow, "fibonacci(%d): term %d", n, i)
		}
		if i == n {
			return f, nil
		}
	}
}

// FibonacciSequence returns F(0), ..., F(n).
func FibonacciSequence[T num.Integer](n int) ([]T, error) {
	return fibonacciUpTo(n, all[T])
}

// EvenFibonacciSequence returns the even terms among F(0), ..., F(n).
func EvenFibonacciSequence[T num.Integer](n int) ([]T, error) {
	return fibonacciUpTo(n, num.IsEven[T])
}

// OddFibonacciSequence returns the odd terms among F(0), ..., F(n).
func OddFibonacciSequence[T num.Integer](n int) ([]T, error) {
	return fibonacciUpTo(n, num.IsOdd[T])
}

// MaxFibonacci returns the largest Fibonacci number strictly less than bound,
// or 0 if there is none.
func MaxFibonacci[T num.Integer](bound T) T {
	var largest T
	g := newFibonacciGenerator[T]()
	for {
		f, ok := g.next()
		if !ok || f >= bound {
			return largest
		}
		largest = f
	}
}

// MaxFibonacciSequence returns the Fibonacci numbers less than or equal to bound.
// The term 1 appears twice, as F(1) and F(2).
func MaxFibonacciSequence[T num.Integer](bound T) []T {
	return fibonacciBelow(bound, all[T])
}

// MaxEvenFibonacciSequence returns the even Fibonacci numbers less than or equal to bound.
func MaxEvenFibonacciSequence[T num.Integer](bound T) []T {
	return fibonacciBelow(bound, num.IsEven[T])
}

// MaxOddFibonacciSequence returns the odd Fibonacci numbers less than or equal to bound.
func MaxOddFibonacciSequence[T num.Integer](bound T) []T {
	return fibonacciBelow(bound, num.IsOdd[T])
}

// SumFibonacci returns F(0) + ... + F(n).
func SumFibonacci[T num.Integer](n int) (T, error) {
	terms, err := FibonacciSequence[T](n)
	if err != nil {
		return 0, err
	}
	return sum(terms)
}

// SumEvenFibonacci returns the sum of the even terms among F(0), ..., F(n).
func SumEvenFibonacci[T num.Integer](n int) (T, error) {
	terms, err := EvenFibonacciSequence[T](n)
	if err != nil {
		return 0, err
	}
	return sum(terms)
}

// SumOddFibonacci returns the sum of the odd terms among F(0), ..., F(n).
func SumOddFibonacci[T num.Integer](n int) (T, error) {
	terms, err := OddFibonacciSequence[T](n)
	if err != nil {
		return 0, err
	}
	return sum(terms)
}

// SumMaxFibonacci returns the sum of the Fibonacci numbers less than or equal to bound.
func SumMaxFibonacci[T num.Integer](bound T) (T, error) {
	return sum(MaxFibonacciSequence(bound))
}

// SumMaxEvenFibonacci returns the sum of the even Fibonacci numbers less than or equal to bound.
func SumMaxEvenFibonacci[T num.Integer](bound T) (T, error) {
	return sum(MaxEvenFibonacciSequence(bound))
}

// SumMaxOddFibonacci returns the sum of the odd Fibonacci numbers less than or equal to bound.
func SumMaxOddFibonacci[T num.Integer](bound T) (T, error) {
	return sum(MaxOddFibonacciSequence(bound))
}

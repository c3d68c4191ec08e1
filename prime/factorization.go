package prime

import (
	"github.com/sp301415/numtheory/num"
)

// Factorize returns the prime factors of n with multiplicity,
// in non-decreasing order. Returns an empty slice if n < 2.
func Factorize[T num.Integer](n T) []T {
	factors := make([]T, 0)
	if n < 2 {
		return factors
	}

	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}

	for d := T(3); d <= n/d; d += 2 {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}

	if n > 2 {
		factors = append(factors, n)
	}
	return factors
}

// EulerTotient counts the integers in [1, n) that are coprime to n,
// by checking every candidate. EulerTotient(1) is 0.
func EulerTotient[T num.Integer](n T) T {
	var count T
	for i := T(1); i < n; i++ {
		if RelativelyPrime(n, i) {
			count++
		}
	}
	return count
}

// EulerTotientChecked is like [EulerTotient], but returns n-1 directly when n is prime.
func EulerTotientChecked[T num.Integer](n T) T {
	if IsPrime(n) {
		return n - 1
	}
	return EulerTotient(n)
}

// EulerTotientFactored computes [EulerTotient] from the prime factorization of n,
// using phi(n) = n * prod (1 - 1/p).
func EulerTotientFactored[T num.Integer](n T) T {
	if n < 2 {
		return 0
	}

	phi := n
	var last T
	for _, p := range Factorize(n) {
		if p == last {
			continue
		}
		phi -= phi / p
		last = p
	}
	return phi
}

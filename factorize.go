package tpep

import (
	"fmt"
	"sort"
	"strings"
)

// Factorization maps each prime factor of an integer to its multiplicity.
//
// By the Fundamental Theorem of Arithmetic the mapping is uniquely
// determined by n. It is derived per call and never persisted; one
// factorization serves every metric built on it.
//
// The factorization of 1 is the empty map (empty product).
type Factorization map[int64]int

// Factorize decomposes n into prime factors and their exponents.
//
// Algorithm: trial division by 2, 3, then 6k±1 candidates up to √n.
// Exact for any representable n; the remaining cofactor after the sweep
// is itself prime. Fails with *InvalidInputError when n < 1.
func Factorize(n int64) (Factorization, error) {
	if n < 1 {
		return nil, errNonPositive(n)
	}

	factors := make(Factorization)
	rest := n

	for _, p := range []int64{2, 3} {
		for rest%p == 0 {
			factors[p]++
			rest /= p
		}
	}

	// All primes > 3 are of the form 6k±1
	for d := int64(5); d*d <= rest; d += 6 {
		for _, p := range []int64{d, d + 2} {
			for rest%p == 0 {
				factors[p]++
				rest /= p
			}
		}
	}

	if rest > 1 {
		factors[rest]++
	}

	return factors, nil
}

// Primes returns the distinct prime factors in ascending order.
func (f Factorization) Primes() []int64 {
	primes := make([]int64, 0, len(f))
	for p := range f {
		primes = append(primes, p)
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
	return primes
}

// Omega returns the number of distinct prime factors (ω(n)).
func (f Factorization) Omega() int {
	return len(f)
}

// N reassembles the integer from its factorization.
func (f Factorization) N() int64 {
	n := int64(1)
	for p, e := range f {
		for i := 0; i < e; i++ {
			n *= p
		}
	}
	return n
}

// Totient evaluates Euler's totient over the factorization using the
// product formula:
//
//	φ(n) = n · ∏_{p|n} (1 − 1/p)
//
// Each factor divides exactly, so the computation stays in integers.
// φ(1) = 1 (empty product).
func (f Factorization) Totient() int64 {
	result := f.N()
	for p := range f {
		result = result / p * (p - 1)
	}
	return result
}

// Sigma evaluates the sum-of-divisors function over the factorization
// using the multiplicative formula:
//
//	σ(n) = ∏_{p|n} (p^(e+1) − 1) / (p − 1)
//
// Each prime-power term is the geometric series 1 + p + ... + p^e,
// accumulated by repeated multiplication to avoid the division entirely.
// σ(1) = 1 (empty product).
func (f Factorization) Sigma() int64 {
	total := int64(1)
	for p, e := range f {
		term := int64(1)
		power := int64(1)
		for i := 0; i < e; i++ {
			power *= p
			term += power
		}
		total *= term
	}
	return total
}

// String renders the factorization in p^e form, e.g. "2^6 · 127".
// Primes appear in ascending order; unit exponents are omitted.
// The factorization of 1 renders as "1".
func (f Factorization) String() string {
	if len(f) == 0 {
		return "1"
	}

	parts := make([]string, 0, len(f))
	for _, p := range f.Primes() {
		if e := f[p]; e > 1 {
			parts = append(parts, fmt.Sprintf("%d^%d", p, e))
		} else {
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}
	return strings.Join(parts, " · ")
}

package tpep

import (
	"math/big"
)

// Totient returns φ(n), the count of integers in [1, n] coprime to n.
// φ(1) = 1 by convention. Fails with *InvalidInputError when n < 1.
func Totient(n int64) (int64, error) {
	f, err := Factorize(n)
	if err != nil {
		return 0, err
	}
	return f.Totient(), nil
}

// Sigma returns σ(n), the sum of all positive divisors of n including
// 1 and n. σ(1) = 1. Fails with *InvalidInputError when n < 1.
func Sigma(n int64) (int64, error) {
	f, err := Factorize(n)
	if err != nil {
		return 0, err
	}
	return f.Sigma(), nil
}

// Class categorizes an integer by its abundancy index ρ = σ(n)/n.
type Class string

const (
	ClassDeficient Class = "DEFICIENT" // ρ < 2
	ClassPerfect   Class = "PERFECT"   // ρ = 2 exactly
	ClassAbundant  Class = "ABUNDANT"  // ρ > 2
)

// Parity is the even/odd split at the heart of the exclusion principle.
type Parity string

const (
	ParityEven Parity = "EVEN"
	ParityOdd  Parity = "ODD"
)

// MetricResult is the immutable outcome of evaluating one integer.
//
// It holds the raw arithmetic values; every derived ratio is recomputed
// from them on demand, so two results for the same n are interchangeable
// bit for bit. A result is owned solely by the caller that produced it.
type MetricResult struct {
	N       int64         // The evaluated integer
	Phi     int64         // φ(n), Euler's totient
	Sigma   int64         // σ(n), sum of divisors
	Factors Factorization // Prime factorization of n
}

// Evaluate factors n and derives the full TPEP metric set.
// Pure and deterministic; fails with *InvalidInputError when n < 1.
func Evaluate(n int64) (MetricResult, error) {
	f, err := Factorize(n)
	if err != nil {
		return MetricResult{}, err
	}

	return MetricResult{
		N:       n,
		Phi:     f.Totient(),
		Sigma:   f.Sigma(),
		Factors: f,
	}, nil
}

// TotientDensity returns τ_d = φ(n)/n as an exact rational.
// τ_d ∈ (0, 1], with τ_d = 1 only at n = 1.
func (r MetricResult) TotientDensity() *big.Rat {
	return big.NewRat(r.Phi, r.N)
}

// PerfectionRatio returns ρ = σ(n)/n (the abundancy index) as an exact
// rational. ρ ≥ 1, with ρ = 1 only at n = 1; ρ = 2 exactly for perfect
// numbers.
func (r MetricResult) PerfectionRatio() *big.Rat {
	return big.NewRat(r.Sigma, r.N)
}

// MirrorGap returns Δ_μ = ρ + τ_d, the tension between additive expansion
// and multiplicative resistance. Converges to 2.5 for even perfect numbers.
func (r MetricResult) MirrorGap() *big.Rat {
	return new(big.Rat).Add(r.PerfectionRatio(), r.TotientDensity())
}

// StabilityRatio returns σ(n)/φ(n), the TPEP identity ratio.
// Perfection requires this to approach the stability constant 4.
func (r MetricResult) StabilityRatio() *big.Rat {
	return big.NewRat(r.Sigma, r.Phi)
}

// Class returns the abundancy classification. The comparison σ(n) vs 2n
// is exact integer arithmetic, so ρ = 2 is never missed to rounding.
func (r MetricResult) Class() Class {
	switch {
	case r.Sigma < 2*r.N:
		return ClassDeficient
	case r.Sigma == 2*r.N:
		return ClassPerfect
	default:
		return ClassAbundant
	}
}

// Parity returns whether n is even or odd.
func (r MetricResult) Parity() Parity {
	if r.N%2 == 0 {
		return ParityEven
	}
	return ParityOdd
}

// Perfect reports σ(n) = 2n exactly.
func (r MetricResult) Perfect() bool {
	return r.Class() == ClassPerfect
}

// Stable reports whether the stability ratio sits within
// StabilityTolerance of the stability constant 4. The check is performed
// in exact rational arithmetic: |σ/φ − 4| ≤ 4·tolerance.
func (r MetricResult) Stable() bool {
	four := big.NewRat(4, 1)

	diff := new(big.Rat).Sub(r.StabilityRatio(), four)
	diff.Abs(diff)

	tol := new(big.Rat).SetFloat64(StabilityTolerance)
	tol.Mul(tol, four)

	return diff.Cmp(tol) <= 0
}

// InForbiddenZone reports whether n is an odd integer with ρ ≥ 2: the
// region where additive expansion has reached perfection but parity keeps
// the stability ratio away from 4.
func (r MetricResult) InForbiddenZone() bool {
	return r.Parity() == ParityOdd && r.Sigma >= 2*r.N
}

// Metrics is a float64 snapshot of the derived ratios, for display and
// serialization. Threshold decisions should use the exact accessors.
type Metrics struct {
	TotientDensity  float64 // τ_d = φ(n)/n
	PerfectionRatio float64 // ρ = σ(n)/n
	MirrorGap       float64 // Δ_μ = ρ + τ_d
	StabilityRatio  float64 // σ(n)/φ(n)
}

// Metrics returns the float64 view of the ratios.
func (r MetricResult) Metrics() Metrics {
	td, _ := r.TotientDensity().Float64()
	rho, _ := r.PerfectionRatio().Float64()
	gap, _ := r.MirrorGap().Float64()
	stab, _ := r.StabilityRatio().Float64()

	return Metrics{
		TotientDensity:  td,
		PerfectionRatio: rho,
		MirrorGap:       gap,
		StabilityRatio:  stab,
	}
}

// Package tpep computes number-theoretic metrics under the Totient-Parity
// Exclusion Principle (TPEP).
//
// # Overview
//
// Standard number theory defines perfection additively: σ(n) = 2n. TPEP
// reframes it as a balance between two multiplicative forces:
//
//   - Additive expansion: σ(n), the sum of divisors
//   - Multiplicative resistance: φ(n), Euler's totient
//
// The package evaluates both for a positive integer and derives the ratios
// that describe where the integer sits relative to perfection:
//
//	τ_d = φ(n)/n    Totient density ("porosity")
//	ρ   = σ(n)/n    Perfection ratio (abundancy index)
//	Δ_μ = ρ + τ_d   Mirror gap
//	σ/φ             Stability ratio (target: 4.0)
//
// # Quick Start
//
// Evaluate a single integer:
//
//	result, err := tpep.Evaluate(8128)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m := result.Metrics()
//	fmt.Printf("Totient density:  %.5f\n", m.TotientDensity)
//	fmt.Printf("Perfection ratio: %.5f\n", m.PerfectionRatio)
//	fmt.Printf("Stability ratio:  %.5f\n", m.StabilityRatio)
//
// Or print the full analysis:
//
//	fmt.Println(result.Report())
//
// # The Stability Constant
//
// The TPEP identity states that perfection requires the stability ratio to
// approach 4:
//
//	σ(n) = 2n  and  σ(n)/φ(n) = 4  together imply  φ(n)/n = 0.5
//
// Only integers with 2 as a prime factor can resolve the totient product
// ∏(1 − 1/p) to 0.5. Odd integers can push ρ past 2 (odd abundant numbers
// exist), but their totient density stays pinned above the 0.5 boundary.
// That region (odd n with ρ ≥ 2) is the Forbidden Zone.
//
// # Scanning
//
// Scan evaluates a whole interval in parallel and aggregates classification
// counts, perfect numbers, and Forbidden Zone members:
//
//	report, err := tpep.Scan(ctx, 1, 100000, tpep.DefaultScanConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Summary())
//
// Each evaluation is independent and stateless, so the scan runs on a
// bounded worker pool with no shared mutable state. Results are ordered by
// n regardless of worker interleaving.
//
// # Exactness
//
// φ and σ are computed exactly from the prime factorization (trial
// division). Ratio accessors on MetricResult return *big.Rat so threshold
// comparisons like ρ = 2 are exact; the Metrics snapshot provides float64
// views for display. Values stay exact for n up to about 2^59, beyond which
// σ(n) can overflow int64.
//
// # Testing
//
// Assertion helpers validate the classical identities in tests:
//
//	func TestMyRange(t *testing.T) {
//	    r, _ := tpep.Evaluate(360)
//	    tpep.AssertMetricBounds(t, r)
//	    tpep.AssertMultiplicative(t, 8, 45)
//	    tpep.AssertPrimeIdentities(t, 127)
//	}
package tpep

package tpep

import (
	"testing"
)

// AssertMetricBounds verifies the structural invariants of a result.
//
// Mathematical properties:
//
//	φ(n) ≤ n and σ(n) ≥ n for all n ≥ 1, equality only at n = 1
//	τ_d ∈ (0, 1] and ρ ≥ 1
func AssertMetricBounds(t *testing.T, r MetricResult) {
	t.Helper()

	if r.Phi > r.N {
		t.Errorf("Totient out of range: φ(%d) = %d > n\n"+
			"φ counts integers coprime to n in [1, n]; it can never exceed n.",
			r.N, r.Phi)
	}
	if r.Sigma < r.N {
		t.Errorf("Divisor sum out of range: σ(%d) = %d < n\n"+
			"σ includes n itself among the divisors; it can never fall below n.",
			r.N, r.Sigma)
	}
	if r.N > 1 && (r.Phi == r.N || r.Sigma == r.N) {
		t.Errorf("Equality at n = %d: φ = %d, σ = %d (only n = 1 may satisfy φ = n = σ)",
			r.N, r.Phi, r.Sigma)
	}
	if r.Phi < 1 {
		t.Errorf("Totient density collapsed: φ(%d) = %d (τ_d must stay above 0)", r.N, r.Phi)
	}

	t.Logf("✓ Bounds hold for n=%d: φ=%d ≤ n, σ=%d ≥ n", r.N, r.Phi, r.Sigma)
}

// AssertMultiplicative verifies φ(ab) = φ(a)·φ(b) and σ(ab) = σ(a)·σ(b)
// for coprime a, b. Fails fast if the pair shares a factor, since the
// identities only hold on coprime inputs.
func AssertMultiplicative(t *testing.T, a, b int64) {
	t.Helper()

	if g := gcd(a, b); g != 1 {
		t.Fatalf("Pair not coprime: gcd(%d, %d) = %d (multiplicativity requires coprime inputs)", a, b, g)
	}

	ra, err := Evaluate(a)
	if err != nil {
		t.Fatalf("Failed to evaluate %d: %v", a, err)
	}
	rb, err := Evaluate(b)
	if err != nil {
		t.Fatalf("Failed to evaluate %d: %v", b, err)
	}
	rab, err := Evaluate(a * b)
	if err != nil {
		t.Fatalf("Failed to evaluate %d: %v", a*b, err)
	}

	if rab.Phi != ra.Phi*rb.Phi {
		t.Errorf("Totient not multiplicative: φ(%d) = %d, expected φ(%d)·φ(%d) = %d",
			a*b, rab.Phi, a, b, ra.Phi*rb.Phi)
	}
	if rab.Sigma != ra.Sigma*rb.Sigma {
		t.Errorf("Divisor sum not multiplicative: σ(%d) = %d, expected σ(%d)·σ(%d) = %d",
			a*b, rab.Sigma, a, b, ra.Sigma*rb.Sigma)
	}

	t.Logf("✓ Multiplicative over (%d, %d): φ=%d·%d, σ=%d·%d",
		a, b, ra.Phi, rb.Phi, ra.Sigma, rb.Sigma)
}

// AssertPrimeIdentities verifies φ(p) = p − 1 and σ(p) = p + 1 for a
// prime p. Fails fast if p is not prime.
func AssertPrimeIdentities(t *testing.T, p int64) {
	t.Helper()

	f, err := Factorize(p)
	if err != nil {
		t.Fatalf("Failed to factorize %d: %v", p, err)
	}
	if f.Omega() != 1 || f[p] != 1 {
		t.Fatalf("Not prime: %d = %s", p, f)
	}

	r, err := Evaluate(p)
	if err != nil {
		t.Fatalf("Failed to evaluate %d: %v", p, err)
	}

	if r.Phi != p-1 {
		t.Errorf("Prime totient wrong: φ(%d) = %d (expected %d)", p, r.Phi, p-1)
	}
	if r.Sigma != p+1 {
		t.Errorf("Prime divisor sum wrong: σ(%d) = %d (expected %d)", p, r.Sigma, p+1)
	}

	t.Logf("✓ Prime identities: φ(%d) = %d, σ(%d) = %d", p, r.Phi, p, r.Sigma)
}

// AssertStable verifies the stability ratio sits within tolerance of the
// stability constant 4.
func AssertStable(t *testing.T, r MetricResult) {
	t.Helper()

	if !r.Stable() {
		t.Errorf("Stability ratio off target: σ/φ = %.5f for n=%d (target %.5f ± %g relative)\n"+
			"The TPEP identity requires σ(n)/φ(n) → 4 for perfection.",
			r.Metrics().StabilityRatio, r.N, StabilityConstant, StabilityTolerance)
		return
	}

	t.Logf("✓ Stable: σ/φ = %.5f for n=%d", r.Metrics().StabilityRatio, r.N)
}

// gcd computes the greatest common divisor.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

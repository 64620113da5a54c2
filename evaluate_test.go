package tpep

import (
	"math/big"
	"reflect"
	"testing"
)

// TestEvaluateOne verifies the n = 1 conventions: φ(1) = σ(1) = 1,
// τ_d = ρ = 1 exactly.
func TestEvaluateOne(t *testing.T) {
	r, err := Evaluate(1)
	if err != nil {
		t.Fatalf("Evaluate(1) failed: %v", err)
	}

	if r.Phi != 1 || r.Sigma != 1 {
		t.Errorf("Evaluate(1): φ=%d, σ=%d (both should be 1)", r.Phi, r.Sigma)
	}

	one := big.NewRat(1, 1)
	if r.TotientDensity().Cmp(one) != 0 {
		t.Errorf("τ_d(1) = %s (expected exactly 1)", r.TotientDensity())
	}
	if r.PerfectionRatio().Cmp(one) != 0 {
		t.Errorf("ρ(1) = %s (expected exactly 1)", r.PerfectionRatio())
	}

	t.Logf("✓ n=1 is the unique fixed point: φ = n = σ")
}

// TestEvaluatePerfectSix verifies the smallest perfect number.
func TestEvaluatePerfectSix(t *testing.T) {
	r, err := Evaluate(6)
	if err != nil {
		t.Fatalf("Evaluate(6) failed: %v", err)
	}

	if r.Sigma != 12 {
		t.Errorf("σ(6) = %d (expected 12)", r.Sigma)
	}
	if r.PerfectionRatio().Cmp(big.NewRat(2, 1)) != 0 {
		t.Errorf("ρ(6) = %s (expected exactly 2)", r.PerfectionRatio())
	}
	if r.Class() != ClassPerfect {
		t.Errorf("Class(6) = %s (expected %s)", r.Class(), ClassPerfect)
	}

	t.Logf("✓ 6 is perfect: σ = 12, ρ = 2 exactly")
}

// TestEvaluateTwentyEight pins the full metric set of 28.
func TestEvaluateTwentyEight(t *testing.T) {
	r, err := Evaluate(28)
	if err != nil {
		t.Fatalf("Evaluate(28) failed: %v", err)
	}

	if r.Phi != 12 {
		t.Errorf("φ(28) = %d (expected 12)", r.Phi)
	}
	if r.Sigma != 56 {
		t.Errorf("σ(28) = %d (expected 56)", r.Sigma)
	}
	if r.TotientDensity().Cmp(big.NewRat(12, 28)) != 0 {
		t.Errorf("τ_d(28) = %s (expected 12/28)", r.TotientDensity())
	}
	if r.PerfectionRatio().Cmp(big.NewRat(2, 1)) != 0 {
		t.Errorf("ρ(28) = %s (expected exactly 2)", r.PerfectionRatio())
	}
	if r.MirrorGap().Cmp(big.NewRat(17, 7)) != 0 {
		// 2 + 12/28 = 2 + 3/7 = 17/7
		t.Errorf("Δ_μ(28) = %s (expected 17/7)", r.MirrorGap())
	}

	m := r.Metrics()
	if m.MirrorGap < 2.4285 || m.MirrorGap > 2.4286 {
		t.Errorf("Δ_μ(28) float = %.5f (expected ≈ 2.42857)", m.MirrorGap)
	}

	AssertMetricBounds(t, r)
}

// TestPrimeIdentities checks φ(p) = p−1 and σ(p) = p+1 across primes.
func TestPrimeIdentities(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 7, 127, 8191, 104729} {
		AssertPrimeIdentities(t, p)
	}
}

// TestMultiplicativity checks φ and σ over coprime pairs.
func TestMultiplicativity(t *testing.T) {
	pairs := [][2]int64{
		{8, 45},
		{9, 16},
		{64, 127},
		{25, 77},
		{3, 1_000_003},
	}
	for _, pair := range pairs {
		AssertMultiplicative(t, pair[0], pair[1])
	}
}

// TestEvaluateRejectsNonPositive verifies evaluate(0) and evaluate(−3)
// fail with the input-domain error.
func TestEvaluateRejectsNonPositive(t *testing.T) {
	for _, n := range []int64{0, -3} {
		_, err := Evaluate(n)
		if err == nil {
			t.Fatalf("Evaluate(%d) should fail", n)
		}
		if !IsInvalidInput(err) {
			t.Errorf("Evaluate(%d) returned wrong error kind: %v", n, err)
		}
	}
}

// TestEvaluateIdempotent verifies two evaluations of the same n are
// interchangeable bit for bit.
func TestEvaluateIdempotent(t *testing.T) {
	first, err := Evaluate(8128)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	second, err := Evaluate(8128)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Results diverged:\n  first:  %+v\n  second: %+v", first, second)
	}
	if first.Metrics() != second.Metrics() {
		t.Errorf("Metric snapshots diverged: %+v vs %+v", first.Metrics(), second.Metrics())
	}

	t.Logf("✓ Evaluate is a pure function: repeated calls bit-identical")
}

// TestStabilityRatioExact verifies n = 14, the smallest integer whose
// stability ratio lands on the constant exactly: σ(14)/φ(14) = 24/6 = 4.
func TestStabilityRatioExact(t *testing.T) {
	r, err := Evaluate(14)
	if err != nil {
		t.Fatalf("Evaluate(14) failed: %v", err)
	}

	if r.StabilityRatio().Cmp(big.NewRat(4, 1)) != 0 {
		t.Errorf("σ/φ for 14 = %s (expected exactly 4)", r.StabilityRatio())
	}
	AssertStable(t, r)
}

// TestPerfectNumbersMissStability verifies the counterintuitive core of
// the identity: even perfect numbers only approach 4, never reach it.
func TestPerfectNumbersMissStability(t *testing.T) {
	for _, n := range []int64{6, 28, 496, 8128} {
		r, err := Evaluate(n)
		if err != nil {
			t.Fatalf("Evaluate(%d) failed: %v", n, err)
		}

		if !r.Perfect() {
			t.Errorf("%d should be perfect (σ = %d, 2n = %d)", n, r.Sigma, 2*n)
		}
		if r.Stable() {
			t.Errorf("%d should not be stable: σ/φ = %s", n, r.StabilityRatio())
		}
		t.Logf("  n=%d: σ/φ = %.5f (approaching 4 from above)", n, r.Metrics().StabilityRatio)
	}
}

// TestForbiddenZone verifies 945, the first odd abundant number, lands
// in the forbidden zone while even abundants and odd deficients do not.
func TestForbiddenZone(t *testing.T) {
	r945, err := Evaluate(945)
	if err != nil {
		t.Fatalf("Evaluate(945) failed: %v", err)
	}
	if !r945.InForbiddenZone() {
		t.Errorf("945 is odd abundant (σ = %d > 2n = %d); it must be in the forbidden zone", r945.Sigma, 2*945)
	}
	if r945.Class() != ClassAbundant {
		t.Errorf("Class(945) = %s (expected %s)", r945.Class(), ClassAbundant)
	}

	r12, _ := Evaluate(12)
	if r12.InForbiddenZone() {
		t.Errorf("12 is even; the forbidden zone is odd-only")
	}

	r15, _ := Evaluate(15)
	if r15.InForbiddenZone() {
		t.Errorf("15 is deficient (σ = %d); it cannot be in the forbidden zone", r15.Sigma)
	}

	t.Logf("✓ Forbidden zone: odd ∧ ρ ≥ 2")
}

// TestMetricBoundsSweep checks the structural invariants over a range.
func TestMetricBoundsSweep(t *testing.T) {
	for n := int64(1); n <= 2000; n++ {
		r, err := Evaluate(n)
		if err != nil {
			t.Fatalf("Evaluate(%d) failed: %v", n, err)
		}
		if r.Phi > r.N || r.Sigma < r.N {
			t.Fatalf("Invariant broken at n=%d: φ=%d, σ=%d", n, r.Phi, r.Sigma)
		}
		if n > 1 && (r.Phi == n || r.Sigma == n) {
			t.Fatalf("Equality outside n=1 at n=%d: φ=%d, σ=%d", n, r.Phi, r.Sigma)
		}
	}

	t.Logf("✓ φ(n) ≤ n and σ(n) ≥ n hold for n ≤ 2000, equality only at 1")
}

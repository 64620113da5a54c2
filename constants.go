package tpep

// StabilityConstant is the TPEP identity target: σ(n)/φ(n) → 4.
//
// Derivation: σ(n) = 2n together with σ(n)/φ(n) = 4 forces φ(n)/n = 0.5,
// and only the prime 2 can resolve the totient product ∏(1 − 1/p) to 0.5.
// The constant therefore ties perfection to parity.
const StabilityConstant = 4.0

// StabilityTolerance is the relative tolerance for stability checks.
// The ratio converges toward 4 but never lands exactly; anything within
// one part in 10⁹ counts as stable.
const StabilityTolerance = 1e-9

// PerfectAbundancy is the classical perfection threshold: ρ = σ(n)/n = 2.
const PerfectAbundancy = 2.0

// DensityBoundary is the totient-density threshold τ_d = 0.5.
// Even perfect numbers approach it from above; odd integers cannot cross
// it without infinitely many prime factors.
const DensityBoundary = 0.5

// MirrorGapLimit is the convergence point of Δ_μ = ρ + τ_d for even
// perfect numbers: 2.0 + 0.5 = 2.5.
const MirrorGapLimit = 2.5

// MaxExact is the largest input for which σ(n) is guaranteed not to
// overflow int64. The abundancy index stays below 10 for all n in range,
// so σ(n) < 10n < 2^63 holds comfortably up to 2^59.
const MaxExact = int64(1) << 59

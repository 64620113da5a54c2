package tpep

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ScanConfig controls batch evaluation of an interval.
type ScanConfig struct {
	Workers int // Concurrent evaluators (0 = runtime.NumCPU)
	Keep    int // Near-misses to retain (0 = 10)
}

// DefaultScanConfig returns sensible defaults.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Workers: runtime.NumCPU(),
		Keep:    10,
	}
}

// NearMiss is an odd integer ranked by how close its stability ratio
// comes to the stability constant 4.
type NearMiss struct {
	Result   MetricResult
	Distance float64 // |σ/φ − 4|
}

// ScanReport aggregates a full interval scan.
type ScanReport struct {
	Lo, Hi    int64
	Evaluated int64

	// Classification counts
	Deficient int64
	Perfect   int64
	Abundant  int64

	// Perfects lists the perfect numbers found, ascending.
	Perfects []int64

	// ForbiddenZone lists odd n with ρ ≥ 2, ascending.
	ForbiddenZone []int64

	// NearMisses holds the Keep odd integers whose stability ratio came
	// closest to 4, best first.
	NearMisses []NearMiss

	Duration time.Duration
}

// Scan evaluates every integer in [lo, hi] and aggregates the results.
//
// Evaluations are independent and stateless, so they run on a bounded
// worker pool: the interval is split into contiguous chunks and each
// worker writes only its own result slots. Aggregation is a sequential
// pass afterwards, so the report is ordered by n regardless of worker
// interleaving. Fails with *InvalidInputError when lo < 1 or hi < lo.
func Scan(ctx context.Context, lo, hi int64, cfg ScanConfig) (*ScanReport, error) {
	if lo < 1 {
		return nil, errNonPositive(lo)
	}
	if hi < lo {
		return nil, &InvalidInputError{Value: hi, Reason: fmt.Sprintf("interval upper bound below lower bound %d", lo)}
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Keep <= 0 {
		cfg.Keep = 10
	}

	start := time.Now()
	total := hi - lo + 1
	results := make([]MetricResult, total)

	g, ctx := errgroup.WithContext(ctx)

	chunk := total / int64(cfg.Workers)
	if chunk == 0 {
		chunk = 1
	}

	for begin := lo; begin <= hi; begin += chunk {
		end := begin + chunk - 1
		if end > hi {
			end = hi
		}

		begin, end := begin, end
		g.Go(func() error {
			for n := begin; n <= end; n++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := Evaluate(n)
				if err != nil {
					return err
				}
				results[n-lo] = r
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &ScanReport{Lo: lo, Hi: hi, Evaluated: total}

	misses := make([]NearMiss, 0, total/2+1)
	for _, r := range results {
		switch r.Class() {
		case ClassDeficient:
			report.Deficient++
		case ClassPerfect:
			report.Perfect++
			report.Perfects = append(report.Perfects, r.N)
		case ClassAbundant:
			report.Abundant++
		}

		if r.InForbiddenZone() {
			report.ForbiddenZone = append(report.ForbiddenZone, r.N)
		}

		if r.Parity() == ParityOdd {
			misses = append(misses, NearMiss{
				Result:   r,
				Distance: math.Abs(r.Metrics().StabilityRatio - StabilityConstant),
			})
		}
	}

	// Rank odd integers by distance to the stability constant; ties break
	// toward smaller n so the ordering is total.
	sort.Slice(misses, func(i, j int) bool {
		if misses[i].Distance != misses[j].Distance {
			return misses[i].Distance < misses[j].Distance
		}
		return misses[i].Result.N < misses[j].Result.N
	})
	if len(misses) > cfg.Keep {
		misses = misses[:cfg.Keep]
	}
	report.NearMisses = misses

	report.Duration = time.Since(start)
	return report, nil
}

// Summary renders the scan report as human-readable text.
// Deterministic for a given interval (duration is deliberately omitted).
func (s *ScanReport) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- TPEP SCAN: [%d, %d] ---\n", s.Lo, s.Hi)
	fmt.Fprintf(&b, "%-18s %d\n", "Evaluated:", s.Evaluated)
	fmt.Fprintf(&b, "%-18s %d\n", "Deficient:", s.Deficient)
	fmt.Fprintf(&b, "%-18s %d\n", "Perfect:", s.Perfect)
	fmt.Fprintf(&b, "%-18s %d\n", "Abundant:", s.Abundant)
	fmt.Fprintf(&b, "%-18s %s\n", "Perfect numbers:", formatList(s.Perfects))
	fmt.Fprintf(&b, "%-18s %s\n", "Forbidden zone:", formatList(s.ForbiddenZone))

	if len(s.NearMisses) > 0 {
		fmt.Fprintf(&b, "Nearest odd stability ratios:\n")
		for i, nm := range s.NearMisses {
			fmt.Fprintf(&b, "  [%d] n=%d (%s)  σ/φ = %.5f  (distance %.5f)\n",
				i+1, nm.Result.N, nm.Result.Factors, nm.Result.Metrics().StabilityRatio, nm.Distance)
		}
	}

	return b.String()
}

// formatList renders an ascending integer list, or "none".
func formatList(ns []int64) string {
	if len(ns) == 0 {
		return "none"
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

package tpep

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Report renders the full TPEP analysis as human-readable text.
//
// The layout is deterministic: fixed label column, five decimal places,
// no timestamps. Two results for the same n render identically, which
// keeps the output golden-testable.
func (r MetricResult) Report() string {
	m := r.Metrics()

	status := "UNSTABLE"
	if r.Stable() {
		status = "STABLE"
	}
	zone := "no"
	if r.InForbiddenZone() {
		zone = "yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- TPEP ANALYSIS: %d (%s) ---\n", r.N, r.Parity())
	fmt.Fprintf(&b, "%-18s %s\n", "Factors:", r.Factors)
	fmt.Fprintf(&b, "%-18s %.5f  (boundary %.5f)\n", "Totient density:", m.TotientDensity, DensityBoundary)
	fmt.Fprintf(&b, "%-18s %.5f  (target %.5f)\n", "Perfection ratio:", m.PerfectionRatio, PerfectAbundancy)
	fmt.Fprintf(&b, "%-18s %.5f  (limit %.5f)\n", "Mirror gap:", m.MirrorGap, MirrorGapLimit)
	fmt.Fprintf(&b, "%-18s %.5f  (target %.5f)\n", "Stability ratio:", m.StabilityRatio, StabilityConstant)
	fmt.Fprintf(&b, "%-18s %s\n", "Class:", r.Class())
	fmt.Fprintf(&b, "%-18s %s\n", "Status:", status)
	fmt.Fprintf(&b, "%-18s %s\n", "Forbidden zone:", zone)
	return b.String()
}

// metricResultJSON is the wire shape of a MetricResult.
type metricResultJSON struct {
	N               int64   `json:"n"`
	Parity          Parity  `json:"parity"`
	Factors         string  `json:"factors"`
	Phi             int64   `json:"phi"`
	Sigma           int64   `json:"sigma"`
	TotientDensity  float64 `json:"totient_density"`
	PerfectionRatio float64 `json:"perfection_ratio"`
	MirrorGap       float64 `json:"mirror_gap"`
	StabilityRatio  float64 `json:"stability_ratio"`
	Class           Class   `json:"class"`
	Stable          bool    `json:"stable"`
	ForbiddenZone   bool    `json:"forbidden_zone"`
}

// MarshalJSON implements json.Marshaler with a flat, stable field set.
func (r MetricResult) MarshalJSON() ([]byte, error) {
	m := r.Metrics()
	return json.Marshal(metricResultJSON{
		N:               r.N,
		Parity:          r.Parity(),
		Factors:         r.Factors.String(),
		Phi:             r.Phi,
		Sigma:           r.Sigma,
		TotientDensity:  m.TotientDensity,
		PerfectionRatio: m.PerfectionRatio,
		MirrorGap:       m.MirrorGap,
		StabilityRatio:  m.StabilityRatio,
		Class:           r.Class(),
		Stable:          r.Stable(),
		ForbiddenZone:   r.InForbiddenZone(),
	})
}

// Tracks per-policy fault statistics for final reporting.

package sim

import (
	"fmt"
	"io"

	"github.com/pagesim/pagesim/sim/trace"
)

// Metrics aggregates the outcome of one policy run for final reporting.
type Metrics struct {
	Policy    string
	Steps     int
	Faults    int
	Hits      int
	Evictions int
	FaultRate float64
	HitRate   float64
}

// NewMetrics builds Metrics from a completed trace.
func NewMetrics(policy string, tr *trace.Trace) *Metrics {
	s := trace.Summarize(tr)
	return &Metrics{
		Policy:    policy,
		Steps:     s.Steps,
		Faults:    s.Faults,
		Hits:      s.Hits,
		Evictions: s.Evictions,
		FaultRate: s.FaultRate,
		HitRate:   s.HitRate,
	}
}

// Comparison holds the metrics of every policy replayed against the same
// reference string at the same capacity.
type Comparison struct {
	Capacity int
	Steps    int
	Results  []*Metrics // one per policy, in ValidPolicies order
}

// ComparePolicies replays refs under every registered policy at the given
// capacity. Each policy gets an independent run with fresh state.
func ComparePolicies(refs ReferenceString, capacity int) (*Comparison, error) {
	cmp := &Comparison{Capacity: capacity, Steps: len(refs)}
	for _, name := range ValidPolicies() {
		tr, err := RunPolicy(name, refs, capacity)
		if err != nil {
			return nil, err
		}
		cmp.Results = append(cmp.Results, NewMetrics(name, tr))
	}
	return cmp, nil
}

// Faults returns the fault count for the named policy, or -1 if the
// policy was not part of the comparison.
func (c *Comparison) Faults(policy string) int {
	for _, m := range c.Results {
		if m.Policy == policy {
			return m.Faults
		}
	}
	return -1
}

// Print writes the comparison table at the end of a run.
func (c *Comparison) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Policy Comparison ===")
	fmt.Fprintf(w, "References : %d\n", c.Steps)
	fmt.Fprintf(w, "Frames     : %d\n", c.Capacity)
	fmt.Fprintln(w, "Policy | Page Faults | Fault Rate | Hit Rate")
	for _, m := range c.Results {
		fmt.Fprintf(w, "%-6s | %11d | %9.2f%% | %7.2f%%\n",
			m.Policy, m.Faults, m.FaultRate*100, m.HitRate*100)
	}
}

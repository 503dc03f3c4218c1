package trace

// Summary aggregates statistics from a Trace.
type Summary struct {
	Steps     int
	Faults    int
	Hits      int
	Evictions int
	FaultRate float64 // Faults / Steps, 0 for an empty trace
	HitRate   float64 // Hits / Steps, 0 for an empty trace
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *Summary {
	summary := &Summary{}
	if t == nil {
		return summary
	}

	summary.Steps = len(t.Records)
	for _, r := range t.Records {
		if r.Fault {
			summary.Faults++
		} else {
			summary.Hits++
		}
		if r.HasEviction {
			summary.Evictions++
		}
	}

	if summary.Steps > 0 {
		summary.FaultRate = float64(summary.Faults) / float64(summary.Steps)
		summary.HitRate = float64(summary.Hits) / float64(summary.Steps)
	}

	return summary
}

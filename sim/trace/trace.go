package trace

// Trace collects step records during one simulation run.
// Records are append-only: one per reference, in reference order.
type Trace struct {
	Records []StepRecord
	Faults  int // running count of fault-flagged records
}

// NewTrace creates a Trace ready for recording. The capacity hint is
// typically the reference string length.
func NewTrace(capacityHint int) *Trace {
	return &Trace{
		Records: make([]StepRecord, 0, capacityHint),
	}
}

// Record appends a step record and updates the fault count.
func (t *Trace) Record(r StepRecord) {
	t.Records = append(t.Records, r)
	if r.Fault {
		t.Faults++
	}
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int {
	return len(t.Records)
}

// Equal reports whether two traces recorded identical step sequences.
// Used to verify determinism of repeated runs.
func (t *Trace) Equal(other *Trace) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Faults != other.Faults || len(t.Records) != len(other.Records) {
		return false
	}
	for i := range t.Records {
		a, b := t.Records[i], other.Records[i]
		if a.Step != b.Step || a.Ref != b.Ref || a.Fault != b.Fault ||
			a.HasEviction != b.HasEviction || a.Evicted != b.Evicted {
			return false
		}
		if len(a.Frames) != len(b.Frames) {
			return false
		}
		for j := range a.Frames {
			if a.Frames[j] != b.Frames[j] {
				return false
			}
		}
	}
	return true
}

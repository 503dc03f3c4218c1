// Implements the capacity sweep and Belady-anomaly detection: replaying
// one reference string at increasing frame counts and flagging capacity
// increases that raised the fault count.

package sim

import "fmt"

// CapacityFaults is one point on a fault curve.
type CapacityFaults struct {
	Capacity int
	Faults   int
}

// AnomalyTransition records an adjacent pair of swept capacities where
// adding frames increased the fault count.
type AnomalyTransition struct {
	FromCapacity int
	ToCapacity   int
	FromFaults   int
	ToFaults     int
}

// AnomalyReport is the result of one anomaly sweep.
type AnomalyReport struct {
	Policy string
	// Curve holds one entry per swept capacity, in frame-range order.
	Curve []CapacityFaults
	// Transitions lists every anomalous adjacent pair, so callers can
	// explain which capacity increase triggered the anomaly.
	Transitions []AnomalyTransition
	Detected    bool
}

// validateFrameRange rejects an empty, non-positive, or non-ascending
// capacity range before any simulation starts.
func validateFrameRange(frameRange []int) error {
	if len(frameRange) == 0 {
		return fmt.Errorf("%w: range is empty", ErrInvalidFrameRange)
	}
	prev := 0
	for _, capacity := range frameRange {
		if capacity <= 0 {
			return fmt.Errorf("%w: capacity %d", ErrInvalidFrameRange, capacity)
		}
		if capacity <= prev {
			return fmt.Errorf("%w: %d follows %d", ErrInvalidFrameRange, capacity, prev)
		}
		prev = capacity
	}
	return nil
}

// FaultCurve replays refs under one policy at every capacity in
// frameRange and returns total faults per capacity. Each capacity gets
// its own Simulator, frame set, and policy state.
func FaultCurve(policyName string, refs ReferenceString, frameRange []int) ([]CapacityFaults, error) {
	if err := validateFrameRange(frameRange); err != nil {
		return nil, err
	}
	curve := make([]CapacityFaults, 0, len(frameRange))
	for _, capacity := range frameRange {
		tr, err := RunPolicy(policyName, refs, capacity)
		if err != nil {
			return nil, err
		}
		curve = append(curve, CapacityFaults{Capacity: capacity, Faults: tr.Faults})
	}
	return curve, nil
}

// DetectAnomaly sweeps refs across frameRange under the named policy and
// reports every adjacent capacity pair whose fault count increased.
// FIFO is the policy of interest; LRU and OPT hold the stack property and
// never trigger, but sweeping them is permitted for comparison.
func DetectAnomaly(policyName string, refs ReferenceString, frameRange []int) (*AnomalyReport, error) {
	curve, err := FaultCurve(policyName, refs, frameRange)
	if err != nil {
		return nil, err
	}
	report := &AnomalyReport{
		Policy: policyName,
		Curve:  curve,
	}
	for i := 1; i < len(curve); i++ {
		prev, cur := curve[i-1], curve[i]
		if cur.Faults > prev.Faults {
			report.Transitions = append(report.Transitions, AnomalyTransition{
				FromCapacity: prev.Capacity,
				ToCapacity:   cur.Capacity,
				FromFaults:   prev.Faults,
				ToFaults:     cur.Faults,
			})
		}
	}
	report.Detected = len(report.Transitions) > 0
	return report, nil
}

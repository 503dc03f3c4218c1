// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pagesim/pagesim/sim/trace"
)

// Simulator replays one reference string against one policy at a fixed
// frame capacity. Configuration is validated up front in NewSimulator;
// Run itself cannot fail.
type Simulator struct {
	PolicyName string
	Refs       ReferenceString
	Capacity   int
	// Frames is the frame set of the most recent Run, kept for inspection.
	Frames *FrameSet
	// StepCount is the number of references processed by the most recent Run.
	StepCount int
}

// NewSimulator validates the configuration and returns a Simulator.
// An empty (non-nil) reference string is valid and yields an empty trace.
func NewSimulator(policyName string, refs ReferenceString, capacity int) (*Simulator, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if refs == nil {
		return nil, ErrNilReferenceString
	}
	if !IsValidPolicy(policyName) {
		return nil, fmt.Errorf("%w: %q (valid policies: %v)", ErrUnknownPolicy, policyName, ValidPolicies())
	}
	return &Simulator{
		PolicyName: policyName,
		Refs:       refs,
		Capacity:   capacity,
	}, nil
}

// Run replays the reference string once, in order, and returns the
// completed trace. Each invocation starts from a fresh frame set and
// fresh policy state, so repeated runs of one Simulator are independent
// and produce identical traces.
func (sim *Simulator) Run() *trace.Trace {
	policy, err := NewPolicy(sim.PolicyName)
	if err != nil {
		// PolicyName was validated in NewSimulator
		panic(err)
	}
	sim.Frames = NewFrameSet(sim.Capacity)
	sim.StepCount = 0

	tr := trace.NewTrace(len(sim.Refs))
	for i, ref := range sim.Refs {
		rec := trace.StepRecord{Step: i, Ref: ref}
		if sim.Frames.Contains(ref) {
			policy.Touch(ref)
		} else {
			rec.Fault = true
			if sim.Frames.Full() {
				victim := policy.Victim(sim.Frames, sim.Refs[i+1:])
				sim.Frames.Evict(victim)
				rec.Evicted = victim
				rec.HasEviction = true
			}
			sim.Frames.Insert(ref)
			policy.Admit(ref)
		}
		rec.Frames = sim.Frames.Snapshot()
		tr.Record(rec)
		sim.StepCount++
		logrus.Debugf("[step %04d] %s ref=%d fault=%v frames=%v", i, policy.Name(), ref, rec.Fault, rec.Frames)
	}
	logrus.Infof("%s run ended: %d refs, %d faults, capacity %d", policy.Name(), sim.StepCount, tr.Faults, sim.Capacity)
	return tr
}

// RunPolicy is the one-shot form of NewSimulator + Run.
func RunPolicy(policyName string, refs ReferenceString, capacity int) (*trace.Trace, error) {
	s, err := NewSimulator(policyName, refs, capacity)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

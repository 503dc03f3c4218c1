package sim

import "math"

// neverReused marks a resident page with no future occurrence in the
// lookahead suffix.
const neverReused = math.MaxInt

// optPolicy is the clairvoyant optimal policy: on a full-set fault it
// evicts the resident page whose next use lies farthest in the future,
// preferring pages that are never referenced again. Not realizable
// online; used as the fault-count lower bound for the other policies.
//
// Tie-break: when several resident pages are never reused, the one
// earliest in the frame set's insertion order is evicted. The choice is
// arbitrary for optimality but fixed so that runs are deterministic.
type optPolicy struct{}

func (p *optPolicy) Name() string { return PolicyOPT }

func (p *optPolicy) Touch(Page) {}

func (p *optPolicy) Admit(Page) {
	// OPT keeps no per-run state; every decision reads the lookahead.
}

func (p *optPolicy) Victim(frames *FrameSet, lookahead []Page) Page {
	var victim Page
	farthest := -1
	for _, resident := range frames.Pages() {
		next := nextUse(resident, lookahead)
		// strict > keeps the first maximal page in insertion order
		if next > farthest {
			farthest = next
			victim = resident
		}
	}
	return victim
}

// nextUse returns the index of the first occurrence of p in the lookahead
// suffix, or neverReused if p does not recur.
func nextUse(p Page, lookahead []Page) int {
	for i, q := range lookahead {
		if q == p {
			return i
		}
	}
	return neverReused
}

package sim

import "fmt"

// Stable policy name tags, used for CLI selection and reporting.
const (
	PolicyFIFO = "fifo"
	PolicyLRU  = "lru"
	PolicyOPT  = "opt"
)

// validPolicies maps accepted policy name strings.
var validPolicies = map[string]bool{
	PolicyFIFO: true,
	PolicyLRU:  true,
	PolicyOPT:  true,
}

// IsValidPolicy returns true if the given name is a recognized policy tag.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// ValidPolicies returns every policy tag in a fixed order
// (FIFO, LRU, OPT). Comparison runs and the sweep command iterate this.
func ValidPolicies() []string {
	return []string{PolicyFIFO, PolicyLRU, PolicyOPT}
}

// ReplacementPolicy is the per-run eviction bookkeeping for one algorithm.
// The replay loop in Simulator.Run drives it:
//   - Touch on every hit
//   - Victim then Admit on a fault against a full frame set
//   - Admit alone on a fault with spare capacity
//
// A policy instance is owned by exactly one run; stale bookkeeping from a
// previous run would corrupt eviction order.
type ReplacementPolicy interface {
	// Name returns the stable policy tag.
	Name() string
	// Touch informs the policy that a resident page was referenced.
	Touch(ref Page)
	// Admit informs the policy that ref was loaded into the frame set.
	Admit(ref Page)
	// Victim selects and forgets the resident page to evict. lookahead is
	// the suffix of the reference string strictly after the current
	// position; only OPT reads it.
	Victim(frames *FrameSet, lookahead []Page) Page
}

// NewPolicy creates a fresh ReplacementPolicy by name.
// Valid names: "fifo", "lru", "opt".
func NewPolicy(name string) (ReplacementPolicy, error) {
	switch name {
	case PolicyFIFO:
		return &fifoPolicy{}, nil
	case PolicyLRU:
		return &lruPolicy{}, nil
	case PolicyOPT:
		return &optPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid policies: %v)", ErrUnknownPolicy, name, ValidPolicies())
	}
}

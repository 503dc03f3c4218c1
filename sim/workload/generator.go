package workload

import (
	"fmt"
	"math/rand"

	"github.com/pagesim/pagesim/sim"
)

const (
	defaultLocalityWindow = 4
	defaultLocalityShift  = 0.1
)

// Generate creates a reference string from a PatternSpec.
// Deterministic given the same spec: randomized patterns draw only from a
// partitioned RNG seeded by spec.Seed, never from the global source.
func Generate(spec *PatternSpec) (sim.ReferenceString, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pattern spec: %w", err)
	}

	if spec.Type == TypePreset {
		return Preset(spec.Preset)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed)).
		ForSubsystem(sim.SubsystemPattern)

	refs := make(sim.ReferenceString, 0, spec.Length)
	switch spec.Type {
	case TypeSequential:
		for i := 0; i < spec.Length; i++ {
			refs = append(refs, sim.Page(i%spec.Pages))
		}
	case TypeRandom:
		for i := 0; i < spec.Length; i++ {
			refs = append(refs, sim.Page(rng.Intn(spec.Pages)))
		}
	case TypeLoop:
		for i := 0; i < spec.Length; i++ {
			refs = append(refs, sim.Page(i%spec.LoopLength))
		}
	case TypeLocality:
		refs = generateLocality(spec, rng)
	default:
		// Validate accepted the type, so this is unreachable
		return nil, fmt.Errorf("unknown pattern type %q", spec.Type)
	}
	return refs, nil
}

// generateLocality draws references from a small sliding window of the
// page universe. With probability LocalityShift per step the window jumps
// to a new random base, modeling a working-set change.
func generateLocality(spec *PatternSpec, rng *rand.Rand) sim.ReferenceString {
	window := spec.LocalityWindow
	if window == 0 {
		window = defaultLocalityWindow
	}
	if window > spec.Pages {
		window = spec.Pages
	}
	shift := spec.LocalityShift
	if shift == 0 {
		shift = defaultLocalityShift
	}

	base := 0
	refs := make(sim.ReferenceString, 0, spec.Length)
	for i := 0; i < spec.Length; i++ {
		if rng.Float64() < shift && spec.Pages > window {
			base = rng.Intn(spec.Pages - window + 1)
		}
		refs = append(refs, sim.Page(base+rng.Intn(window)))
	}
	return refs
}

package workload

// Built-in reference-string presets for common experiments.
// Each returns a fresh copy so callers can't corrupt the preset.

import (
	"fmt"

	"github.com/pagesim/pagesim/sim"
)

// Preset name tags.
const (
	// PresetTextbook is the OS-textbook string: 15/12/9 faults for
	// FIFO/LRU/OPT at 3 frames.
	PresetTextbook = "textbook"
	// PresetBelady triggers Belady's anomaly under FIFO: 9 faults at 3
	// frames, 10 at 4.
	PresetBelady = "belady"
	// PresetLocality exercises shifting working sets.
	PresetLocality = "locality"
	// PresetLoop cycles a 5-page working set four times.
	PresetLoop = "loop"
)

var presets = map[string]sim.ReferenceString{
	PresetTextbook: {7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2, 1, 2, 0, 1, 7, 0, 1},
	PresetBelady:   {1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5},
	PresetLocality: {1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5, 3, 4, 5, 6, 7, 6, 7, 8},
	PresetLoop:     {1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
}

// IsValidPreset returns true if the given name is a recognized preset.
func IsValidPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// ValidPresets returns every preset name in a fixed order.
func ValidPresets() []string {
	return []string{PresetTextbook, PresetBelady, PresetLocality, PresetLoop}
}

// Preset returns a copy of the named built-in reference string.
func Preset(name string) (sim.ReferenceString, error) {
	refs, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (valid presets: %v)", name, ValidPresets())
	}
	return append(sim.ReferenceString(nil), refs...), nil
}

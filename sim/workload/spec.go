// Package workload generates reference-string patterns for the simulator.
// The core engine consumes the result as a plain ordered sequence of
// pages; nothing in sim/ depends on this package.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pattern type tags accepted in a PatternSpec.
const (
	TypeSequential = "sequential"
	TypeRandom     = "random"
	TypeLocality   = "locality"
	TypeLoop       = "loop"
	TypePreset     = "preset"
)

// validPatternTypes maps accepted pattern type strings.
var validPatternTypes = map[string]bool{
	TypeSequential: true,
	TypeRandom:     true,
	TypeLocality:   true,
	TypeLoop:       true,
	TypePreset:     true,
}

// IsValidPatternType returns true if the given type string is recognized.
func IsValidPatternType(t string) bool {
	return validPatternTypes[t]
}

// PatternSpec is the top-level pattern configuration.
// Loaded from YAML via LoadPatternSpec(path).
type PatternSpec struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Seed   int64  `yaml:"seed"`
	Length int    `yaml:"length"`
	// Pages is the size of the page universe; generated references fall
	// in [0, Pages). Required for sequential, random, and locality.
	Pages int `yaml:"pages"`
	// Preset names a built-in reference string (type "preset" only).
	Preset string `yaml:"preset,omitempty"`
	// LoopLength is the period of the loop pattern (type "loop" only).
	LoopLength int `yaml:"loop_length,omitempty"`
	// LocalityWindow is the working-set size of the locality pattern
	// (default 4). LocalityShift is the per-step probability of the
	// window moving to a new base (default 0.1).
	LocalityWindow int     `yaml:"locality_window,omitempty"`
	LocalityShift  float64 `yaml:"locality_shift,omitempty"`
}

// Validate checks the spec before any generation happens.
func (s *PatternSpec) Validate() error {
	if !IsValidPatternType(s.Type) {
		return fmt.Errorf("unknown pattern type %q", s.Type)
	}
	if s.Type == TypePreset {
		if !IsValidPreset(s.Preset) {
			return fmt.Errorf("unknown preset %q (valid presets: %v)", s.Preset, ValidPresets())
		}
		return nil
	}
	if s.Length <= 0 {
		return fmt.Errorf("pattern length must be positive, got %d", s.Length)
	}
	switch s.Type {
	case TypeSequential, TypeRandom:
		if s.Pages <= 0 {
			return fmt.Errorf("page universe must be positive, got %d", s.Pages)
		}
	case TypeLoop:
		if s.LoopLength <= 0 {
			return fmt.Errorf("loop_length must be positive, got %d", s.LoopLength)
		}
	case TypeLocality:
		if s.Pages <= 0 {
			return fmt.Errorf("page universe must be positive, got %d", s.Pages)
		}
		if s.LocalityWindow < 0 || s.LocalityWindow > s.Pages {
			return fmt.Errorf("locality_window %d out of range [0, %d]", s.LocalityWindow, s.Pages)
		}
		if s.LocalityShift < 0 || s.LocalityShift > 1 {
			return fmt.Errorf("locality_shift %f out of range [0, 1]", s.LocalityShift)
		}
	}
	return nil
}

// LoadPatternSpec reads and validates a PatternSpec from a YAML file.
func LoadPatternSpec(path string) (*PatternSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern spec: %w", err)
	}
	var spec PatternSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse pattern spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pattern spec %q: %w", path, err)
	}
	return &spec, nil
}

package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesim/pagesim/sim"
)

func TestGenerate_Sequential(t *testing.T) {
	spec := &PatternSpec{Type: TypeSequential, Length: 7, Pages: 3}
	refs, err := Generate(spec)
	require.NoError(t, err)
	assert.Equal(t, sim.ReferenceString{0, 1, 2, 0, 1, 2, 0}, refs)
}

func TestGenerate_Loop(t *testing.T) {
	spec := &PatternSpec{Type: TypeLoop, Length: 8, LoopLength: 3}
	refs, err := Generate(spec)
	require.NoError(t, err)
	assert.Equal(t, sim.ReferenceString{0, 1, 2, 0, 1, 2, 0, 1}, refs)
}

func TestGenerate_Random_DeterministicPerSeed(t *testing.T) {
	spec := &PatternSpec{Type: TypeRandom, Seed: 42, Length: 50, Pages: 10}

	first, err := Generate(spec)
	require.NoError(t, err)
	second, err := Generate(spec)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must reproduce the pattern")

	spec.Seed = 43
	third, err := Generate(spec)
	require.NoError(t, err)
	assert.NotEqual(t, first, third, "different seeds should diverge")
}

func TestGenerate_Random_StaysInPageUniverse(t *testing.T) {
	spec := &PatternSpec{Type: TypeRandom, Seed: 7, Length: 200, Pages: 10}
	refs, err := Generate(spec)
	require.NoError(t, err)
	require.Len(t, refs, 200)
	for _, p := range refs {
		assert.GreaterOrEqual(t, int(p), 0)
		assert.Less(t, int(p), 10)
	}
}

func TestGenerate_Locality_StaysInPageUniverse(t *testing.T) {
	spec := &PatternSpec{Type: TypeLocality, Seed: 7, Length: 500, Pages: 20, LocalityWindow: 4, LocalityShift: 0.2}
	refs, err := Generate(spec)
	require.NoError(t, err)
	require.Len(t, refs, 500)
	for _, p := range refs {
		assert.GreaterOrEqual(t, int(p), 0)
		assert.Less(t, int(p), 20)
	}
}

func TestGenerate_Locality_DefaultsApplied(t *testing.T) {
	// window and shift left zero: defaults kick in, generation succeeds
	spec := &PatternSpec{Type: TypeLocality, Seed: 1, Length: 50, Pages: 8}
	refs, err := Generate(spec)
	require.NoError(t, err)
	assert.Len(t, refs, 50)
	// a small window means far fewer distinct pages than references
	assert.LessOrEqual(t, refs.DistinctPages(), 8)
}

func TestGenerate_Preset(t *testing.T) {
	spec := &PatternSpec{Type: TypePreset, Preset: PresetBelady}
	refs, err := Generate(spec)
	require.NoError(t, err)
	assert.Equal(t, sim.ReferenceString{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}, refs)
}

func TestGenerate_InvalidSpecRejected(t *testing.T) {
	_, err := Generate(&PatternSpec{Type: "zipf", Length: 10, Pages: 5})
	assert.Error(t, err)
}

// Generated patterns feed straight into the engine; the sweep over a
// seeded random pattern must be reproducible end to end.
func TestGenerate_FeedsDeterministicSweep(t *testing.T) {
	spec := &PatternSpec{Type: TypeRandom, Seed: 42, Length: 100, Pages: 8}
	refs, err := Generate(spec)
	require.NoError(t, err)

	first, err := sim.DetectAnomaly(sim.PolicyFIFO, refs, []int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	second, err := sim.DetectAnomaly(sim.PolicyFIFO, refs, []int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

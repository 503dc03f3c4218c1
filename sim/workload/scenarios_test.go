package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesim/pagesim/sim"
)

func TestPreset_UnknownName(t *testing.T) {
	_, err := Preset("belody")
	assert.Error(t, err)
}

func TestPreset_ReturnsACopy(t *testing.T) {
	first, err := Preset(PresetBelady)
	require.NoError(t, err)
	first[0] = 99

	second, err := Preset(PresetBelady)
	require.NoError(t, err)
	assert.Equal(t, sim.Page(1), second[0], "mutating a returned preset must not corrupt the original")
}

func TestValidPresets_AllResolvable(t *testing.T) {
	for _, name := range ValidPresets() {
		assert.True(t, IsValidPreset(name))
		refs, err := Preset(name)
		require.NoError(t, err)
		assert.NotEmpty(t, refs)
	}
}

// The Belady preset exists to demonstrate the anomaly; keep it honest.
func TestPresetBelady_TriggersAnomalyUnderFIFO(t *testing.T) {
	refs, err := Preset(PresetBelady)
	require.NoError(t, err)

	report, err := sim.DetectAnomaly(sim.PolicyFIFO, refs, []int{3, 4})
	require.NoError(t, err)
	assert.True(t, report.Detected)
}

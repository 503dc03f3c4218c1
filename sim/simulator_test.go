package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesim/pagesim/sim/trace"
)

// The OS-textbook reference string; FIFO/LRU/OPT at 3 frames yield the
// classic 15/12/9 fault counts.
var textbookRefs = ReferenceString{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2, 1, 2, 0, 1, 7, 0, 1}

func TestNewSimulator_ConfigurationErrors(t *testing.T) {
	refs := ReferenceString{1, 2, 3}

	tests := []struct {
		name     string
		policy   string
		refs     ReferenceString
		capacity int
		wantErr  error
	}{
		{"zero capacity", PolicyFIFO, refs, 0, ErrInvalidCapacity},
		{"negative capacity", PolicyFIFO, refs, -2, ErrInvalidCapacity},
		{"nil reference string", PolicyFIFO, nil, 3, ErrNilReferenceString},
		{"unknown policy", "clock", refs, 3, ErrUnknownPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSimulator(tt.policy, tt.refs, tt.capacity)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSimulator_EmptyReferenceString_EmptyTrace(t *testing.T) {
	tr, err := RunPolicy(PolicyFIFO, ReferenceString{}, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Faults)
}

// Golden trace: FIFO over [1 2 3 4 1 2 5] at 3 frames. Every reference
// faults: 1,2,3 fill the set, then 4 evicts 1, 1 evicts 2, 2 evicts 3,
// and 5 evicts 4.
func TestSimulator_FIFO_GoldenTrace(t *testing.T) {
	refs := ReferenceString{1, 2, 3, 4, 1, 2, 5}
	tr, err := RunPolicy(PolicyFIFO, refs, 3)
	require.NoError(t, err)

	want := []trace.StepRecord{
		{Step: 0, Ref: 1, Fault: true, Frames: []Page{1}},
		{Step: 1, Ref: 2, Fault: true, Frames: []Page{1, 2}},
		{Step: 2, Ref: 3, Fault: true, Frames: []Page{1, 2, 3}},
		{Step: 3, Ref: 4, Fault: true, Evicted: 1, HasEviction: true, Frames: []Page{2, 3, 4}},
		{Step: 4, Ref: 1, Fault: true, Evicted: 2, HasEviction: true, Frames: []Page{3, 4, 1}},
		{Step: 5, Ref: 2, Fault: true, Evicted: 3, HasEviction: true, Frames: []Page{4, 1, 2}},
		{Step: 6, Ref: 5, Fault: true, Evicted: 4, HasEviction: true, Frames: []Page{1, 2, 5}},
	}
	require.Equal(t, len(want), tr.Len())
	assert.Equal(t, want, tr.Records)
	assert.Equal(t, 7, tr.Faults)
}

func TestSimulator_TextbookFaultCounts(t *testing.T) {
	tests := []struct {
		policy string
		faults int
	}{
		{PolicyFIFO, 15},
		{PolicyLRU, 12},
		{PolicyOPT, 9},
	}
	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			tr, err := RunPolicy(tt.policy, textbookRefs, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.faults, tr.Faults)
		})
	}
}

func TestSimulator_LRU_EveryAccessUpdatesRecency(t *testing.T) {
	// GIVEN a string where a hit on page 1 must save it from eviction
	refs := ReferenceString{1, 2, 3, 1, 4}
	tr, err := RunPolicy(PolicyLRU, refs, 3)
	require.NoError(t, err)

	// THEN the fault on 4 evicts 2 (least recently used), not 1
	last := tr.Records[4]
	require.True(t, last.Fault)
	require.True(t, last.HasEviction)
	assert.Equal(t, Page(2), last.Evicted)
	assert.Equal(t, []Page{1, 3, 4}, last.Frames)
}

func TestSimulator_FaultCountBounds(t *testing.T) {
	for _, policy := range ValidPolicies() {
		for capacity := 1; capacity <= 5; capacity++ {
			tr, err := RunPolicy(policy, textbookRefs, capacity)
			require.NoError(t, err)
			assert.LessOrEqual(t, tr.Faults, len(textbookRefs), "%s cap=%d", policy, capacity)
			assert.GreaterOrEqual(t, tr.Faults, 1, "first reference always faults")
		}
	}
}

func TestSimulator_CapacityAtLeastDistinctPages_FaultsOncePerPage(t *testing.T) {
	distinct := textbookRefs.DistinctPages()
	for _, policy := range ValidPolicies() {
		tr, err := RunPolicy(policy, textbookRefs, distinct)
		require.NoError(t, err)
		assert.Equal(t, distinct, tr.Faults, "%s: each distinct page faults exactly once", policy)

		tr, err = RunPolicy(policy, textbookRefs, distinct+3)
		require.NoError(t, err)
		assert.Equal(t, distinct, tr.Faults, "%s: spare capacity changes nothing", policy)
	}
}

func TestSimulator_OPTIsLowerBound(t *testing.T) {
	for capacity := 1; capacity <= 6; capacity++ {
		opt, err := RunPolicy(PolicyOPT, textbookRefs, capacity)
		require.NoError(t, err)
		fifo, err := RunPolicy(PolicyFIFO, textbookRefs, capacity)
		require.NoError(t, err)
		lru, err := RunPolicy(PolicyLRU, textbookRefs, capacity)
		require.NoError(t, err)

		assert.LessOrEqual(t, opt.Faults, fifo.Faults, "cap=%d", capacity)
		assert.LessOrEqual(t, opt.Faults, lru.Faults, "cap=%d", capacity)
	}
}

func TestSimulator_RepeatedRunsAreIdentical(t *testing.T) {
	for _, policy := range ValidPolicies() {
		s, err := NewSimulator(policy, textbookRefs, 3)
		require.NoError(t, err)

		first := s.Run()
		second := s.Run()
		assert.True(t, first.Equal(second), "%s: repeated runs must produce identical traces", policy)
	}
}

func TestSimulator_DoesNotMutateReferenceString(t *testing.T) {
	refs := ReferenceString{1, 2, 3, 4, 1, 2, 5}
	original := append(ReferenceString(nil), refs...)
	_, err := RunPolicy(PolicyLRU, refs, 2)
	require.NoError(t, err)
	assert.Equal(t, original, refs)
}

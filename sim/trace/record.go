// Package trace provides replay-trace recording for page replacement runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Page identifies a virtual page. Pages are opaque to the trace: policies
// only ever compare them for equality.
type Page int

// StepRecord captures the outcome of processing one page reference.
type StepRecord struct {
	Step    int    // zero-based position in the reference string
	Ref     Page   // the referenced page
	Fault   bool   // true if the page was not resident
	Evicted Page   // victim page, meaningful only when HasEviction is true
	// HasEviction is true only for a fault against a full frame set.
	// A fault that filled a spare frame loads without evicting.
	HasEviction bool
	Frames      []Page // frame contents after the step, insertion order
}

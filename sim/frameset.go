// Implements the FrameSet, the bounded working set of resident pages.
// One FrameSet is owned by exactly one simulation run.

package sim

import "fmt"

// FrameSet holds the pages currently resident in physical frames.
// Contents are kept in insertion order so snapshots are stable and the
// OPT tie-break has a defined iteration order.
// Invariants: no duplicates; size never exceeds capacity.
type FrameSet struct {
	capacity int
	pages    []Page // resident pages, insertion order
	resident map[Page]bool
}

// NewFrameSet creates an empty FrameSet with the given capacity.
// Capacity validation happens in NewSimulator; callers inside the sim
// package pass capacity >= 1.
func NewFrameSet(capacity int) *FrameSet {
	return &FrameSet{
		capacity: capacity,
		pages:    make([]Page, 0, capacity),
		resident: make(map[Page]bool, capacity),
	}
}

// Capacity returns the number of frame slots.
func (fs *FrameSet) Capacity() int {
	return fs.capacity
}

// Len returns the number of resident pages.
func (fs *FrameSet) Len() int {
	return len(fs.pages)
}

// Full reports whether every frame slot is occupied.
func (fs *FrameSet) Full() bool {
	return len(fs.pages) >= fs.capacity
}

// Contains reports whether the page is resident.
func (fs *FrameSet) Contains(p Page) bool {
	return fs.resident[p]
}

// Insert adds a non-resident page. The caller must evict first when the
// set is full; violating either invariant is a bug in the replay loop.
func (fs *FrameSet) Insert(p Page) {
	if fs.resident[p] {
		panic(fmt.Sprintf("Insert: page %d already resident", p))
	}
	if fs.Full() {
		panic(fmt.Sprintf("Insert: frame set full (capacity %d)", fs.capacity))
	}
	fs.pages = append(fs.pages, p)
	fs.resident[p] = true
}

// Evict removes a resident page.
func (fs *FrameSet) Evict(p Page) {
	if !fs.resident[p] {
		panic(fmt.Sprintf("Evict: page %d not resident", p))
	}
	for i, q := range fs.pages {
		if q == p {
			fs.pages = append(fs.pages[:i], fs.pages[i+1:]...)
			break
		}
	}
	delete(fs.resident, p)
}

// Pages returns the resident pages for iteration.
// The returned slice is the set's internal storage -- callers within the
// sim package may iterate over it but MUST NOT mutate it.
func (fs *FrameSet) Pages() []Page {
	return fs.pages
}

// Snapshot returns a copy of the resident pages in insertion order,
// suitable for recording into a StepRecord.
func (fs *FrameSet) Snapshot() []Page {
	snap := make([]Page, len(fs.pages))
	copy(snap, fs.pages)
	return snap
}

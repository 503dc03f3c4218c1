// Package sim provides the core page-replacement simulation engine for pagesim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - frameset.go: FrameSet, the bounded set of resident pages
//   - policy.go: the ReplacementPolicy interface and the policy registry
//   - simulator.go: the replay loop that drives one policy over one reference string
//
// # Architecture
//
// The sim package defines the engine; supporting code lives in sub-packages:
//   - sim/trace/: step-record and trace data types (no dependency back on sim/)
//   - sim/workload/: reference-string pattern generation and presets
//
// # Key Interfaces
//
// The single extension point is ReplacementPolicy, a closed set of three
// variants (FIFO, LRU, OPT) dispatched by a stable name tag. OPT receives a
// lookahead suffix of the reference string on every eviction decision; the
// other policies ignore it, keeping the interface uniform.
//
// AnomalySweep support lives in anomaly.go: FaultCurve runs one policy
// across a capacity range, DetectAnomaly flags capacity increases that
// raised the fault count (Belady's anomaly).
package sim

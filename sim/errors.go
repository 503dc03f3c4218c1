package sim

import "errors"

// Configuration errors. All are surfaced before any simulation starts;
// a run that begins never fails partway.
var (
	// ErrInvalidCapacity rejects a frame capacity below 1.
	ErrInvalidCapacity = errors.New("frame capacity must be at least 1")
	// ErrNilReferenceString rejects an absent reference string. An empty
	// (non-nil) reference string is valid and produces an empty trace.
	ErrNilReferenceString = errors.New("reference string must not be nil")
	// ErrUnknownPolicy rejects a policy name outside the registry.
	ErrUnknownPolicy = errors.New("unknown replacement policy")
	// ErrInvalidFrameRange rejects a sweep range that is not a strictly
	// ascending sequence of positive capacities.
	ErrInvalidFrameRange = errors.New("frame range must be strictly ascending and positive")
)

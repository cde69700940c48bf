package core

import "errors"

// Construction-time validation errors. Every error here is fatal to a
// run: the demonstration is single-pass, so the policy is fail-fast
// with a readable cause before any worker goroutine launches.
var (
	// ErrInvalidWorkerCount is returned when a partition or
	// orchestrator is requested for a non-positive worker count.
	ErrInvalidWorkerCount = errors.New("worker count must be positive")

	// ErrInvalidRingSize is returned when a hand-off ring is requested
	// with a non-positive slot count.
	ErrInvalidRingSize = errors.New("ring size must be positive")

	// ErrInvalidDelayBounds is returned when delay bounds do not
	// satisfy 0 <= min <= max.
	ErrInvalidDelayBounds = errors.New("delay bounds must satisfy 0 <= min <= max")
)

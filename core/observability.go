package core

import "time"

// Metrics defines the interface for collecting run metrics.
// Implementations can send them to monitoring systems (Prometheus,
// StatsD, etc.).
//
// Methods are called from worker goroutines mid-run; they must be
// safe for concurrent use and fast enough not to distort the
// demonstration's timing.
type Metrics interface {
	// RecordTokenPrinted counts one printed token.
	//
	// Parameters:
	// - workerID: The zero-based id of the printing worker
	// - mode: The run mode the print happened under
	RecordTokenPrinted(workerID int, mode RunMode)

	// RecordHandoffWait records how long a worker was suspended on
	// its ring slot before its turn arrived. Only synchronized runs
	// produce waits.
	//
	// Parameters:
	// - workerID: The zero-based id of the waiting worker
	// - waited: Time spent blocked on the slot
	RecordHandoffWait(workerID int, waited time.Duration)

	// RecordRunDuration records the wall-clock duration of a complete
	// run in the given mode.
	RecordRunDuration(mode RunMode, duration time.Duration)
}

// NilMetrics provides a no-op metrics implementation that does nothing.
// This is the default when no metrics interface is provided.
type NilMetrics struct{}

// RecordTokenPrinted is a no-op.
func (NilMetrics) RecordTokenPrinted(workerID int, mode RunMode) {}

// RecordHandoffWait is a no-op.
func (NilMetrics) RecordHandoffWait(workerID int, waited time.Duration) {}

// RecordRunDuration is a no-op.
func (NilMetrics) RecordRunDuration(mode RunMode, duration time.Duration) {}

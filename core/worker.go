package core

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

// WorkerState is a worker's position in its lifecycle. A worker moves
// Idle → {Waiting, Printing} once per assigned token, then Done
// permanently.
type WorkerState int32

const (
	// WorkerIdle means the worker has not started its next step.
	WorkerIdle WorkerState = iota

	// WorkerWaiting means the worker is suspended on its ring slot.
	WorkerWaiting

	// WorkerPrinting means the worker is delaying and emitting a token.
	WorkerPrinting

	// WorkerDone means the worker has finished all assigned tokens
	// and performs no further ring operations.
	WorkerDone
)

// String returns the state name used in logs.
func (s WorkerState) String() string {
	switch s {
	case WorkerIdle:
		return "idle"
	case WorkerWaiting:
		return "waiting"
	case WorkerPrinting:
		return "printing"
	case WorkerDone:
		return "done"
	default:
		return "unknown"
	}
}

// WorkerParams collects the collaborators a Worker needs.
//
// Sequence and Positions are borrowed read-only: Sequence is the full
// token sequence and Positions the ascending positions this worker
// owns within it. Ring is required in Synchronized mode and ignored
// otherwise. Delay, Emitter, Metrics and Logger default to ZeroDelay,
// a stdout console emitter, NilMetrics and NoOpLogger when nil.
type WorkerParams struct {
	ID        int
	Sequence  []string
	Positions []int
	Ring      *HandoffRing
	Mode      RunMode
	Delay     DelayGenerator
	Emitter   Emitter
	Metrics   Metrics
	Logger    Logger
}

// Worker prints the tokens it owns, in their original relative order.
//
// In Synchronized mode each print is bracketed by a Wait on the
// worker's own ring slot and a Signal of the next slot, which is the
// worker's only suspension point. In Unsynchronized mode the worker
// runs free of the ring and only its per-print delays pace it.
type Worker struct {
	id        int
	sequence  []string
	positions []int
	ring      *HandoffRing
	mode      RunMode
	delay     DelayGenerator
	emitter   Emitter
	metrics   Metrics
	logger    Logger
	state     atomic.Int32
}

// NewWorker creates a worker from params, filling in defaults for nil
// collaborators.
func NewWorker(params WorkerParams) *Worker {
	w := &Worker{
		id:        params.ID,
		sequence:  params.Sequence,
		positions: params.Positions,
		ring:      params.Ring,
		mode:      params.Mode,
		delay:     params.Delay,
		emitter:   params.Emitter,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
	if w.delay == nil {
		w.delay = ZeroDelay{}
	}
	if w.emitter == nil {
		w.emitter = NewConsoleEmitter(os.Stdout)
	}
	if w.metrics == nil {
		w.metrics = NilMetrics{}
	}
	if w.logger == nil {
		w.logger = NewNoOpLogger()
	}
	return w
}

// ID returns the worker's zero-based id.
func (w *Worker) ID() int {
	return w.id
}

// State reports the worker's current lifecycle state.
func (w *Worker) State() WorkerState {
	return WorkerState(w.state.Load())
}

// Run executes the worker's full print cycle and blocks until the
// worker reaches Done. It returns a non-nil error only when ctx ends
// before the worker's hand-offs complete.
func (w *Worker) Run(ctx context.Context) error {
	defer w.state.Store(int32(WorkerDone))

	if len(w.positions) == 0 {
		// A worker with no tokens still closes the ring cycle: it
		// consumes its slot once and forwards the readiness, so the
		// hand-off traverses the full ring no matter how many workers
		// drew empty assignments.
		if w.mode == Synchronized {
			if err := w.waitTurn(ctx); err != nil {
				return fmt.Errorf("worker %d: pass-through: %w", w.id, err)
			}
			w.ring.Signal(w.nextSlot())
		}
		w.logger.Debug("worker finished with empty assignment", F("worker", w.id))
		return nil
	}

	for step, pos := range w.positions {
		if w.mode == Synchronized {
			if err := w.waitTurn(ctx); err != nil {
				return fmt.Errorf("worker %d: step %d: %w", w.id, step, err)
			}
		}

		w.state.Store(int32(WorkerPrinting))
		if d := w.delay.Delay(); d > 0 {
			time.Sleep(d)
		}
		w.emitter.Emit(w.id, pos, w.sequence[pos])
		w.metrics.RecordTokenPrinted(w.id, w.mode)

		if w.mode == Synchronized {
			w.ring.Signal(w.nextSlot())
		}
	}

	w.logger.Debug("worker finished", F("worker", w.id), F("tokens", len(w.positions)))
	return nil
}

// waitTurn suspends on the worker's own slot and records the wait.
func (w *Worker) waitTurn(ctx context.Context) error {
	w.state.Store(int32(WorkerWaiting))
	start := time.Now()
	if err := w.ring.Wait(ctx, w.id); err != nil {
		return err
	}
	w.metrics.RecordHandoffWait(w.id, time.Since(start))
	return nil
}

func (w *Worker) nextSlot() int {
	return (w.id + 1) % w.ring.Size()
}

package printer

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zii-bee/os-multithreadedprinter/core"
)

// Config holds configuration options for an Orchestrator.
// All fields are optional; nil fields fall back to defaults.
type Config struct {
	// Delay generates the per-print pause. Defaults to a uniform
	// 10–100ms generator, the demonstration's race window.
	Delay core.DelayGenerator

	// Emitter receives every printed token. Defaults to a console
	// emitter on os.Stdout.
	Emitter core.Emitter

	// Logger receives run and worker lifecycle logs. Defaults to
	// core.NewDefaultLogger().
	Logger core.Logger

	// Metrics receives run metrics. Defaults to core.NilMetrics.
	Metrics core.Metrics

	// SeparationPause is the pause RunDemonstration inserts between
	// the synchronized and unsynchronized runs so their outputs are
	// visually separated. Defaults to one second.
	SeparationPause time.Duration
}

// DefaultConfig returns a config with the default collaborators.
func DefaultConfig() (*Config, error) {
	delay, err := core.NewRandomDelayGenerator(core.DefaultMinDelay, core.DefaultMaxDelay)
	if err != nil {
		return nil, err
	}
	return &Config{
		Delay:           delay,
		Emitter:         core.NewConsoleEmitter(os.Stdout),
		Logger:          core.NewDefaultLogger(),
		Metrics:         core.NilMetrics{},
		SeparationPause: time.Second,
	}, nil
}

// Orchestrator owns one demonstration's shared state. Per run it
// builds the round-robin partition, initializes a fresh hand-off ring
// with slot 0 armed, launches the workers and blocks until all of
// them are done — the orchestrator's only blocking point.
type Orchestrator struct {
	workers int
	delay   core.DelayGenerator
	emitter core.Emitter
	logger  core.Logger
	metrics core.Metrics
	pause   time.Duration
}

// NewOrchestrator creates an orchestrator for the given worker count.
// cfg may be nil, in which case defaults apply; nil fields of a
// non-nil cfg default individually.
func NewOrchestrator(workers int, cfg *Config) (*Orchestrator, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("new orchestrator: %w (got %d)", core.ErrInvalidWorkerCount, workers)
	}

	defaults, err := DefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("new orchestrator: %w", err)
	}
	if cfg == nil {
		cfg = defaults
	}

	o := &Orchestrator{
		workers: workers,
		delay:   cfg.Delay,
		emitter: cfg.Emitter,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		pause:   cfg.SeparationPause,
	}
	if o.delay == nil {
		o.delay = defaults.Delay
	}
	if o.emitter == nil {
		o.emitter = defaults.Emitter
	}
	if o.logger == nil {
		o.logger = defaults.Logger
	}
	if o.metrics == nil {
		o.metrics = defaults.Metrics
	}
	if o.pause == 0 {
		o.pause = defaults.SeparationPause
	}

	return o, nil
}

// WorkerCount returns the number of workers the orchestrator launches
// per run.
func (o *Orchestrator) WorkerCount() int {
	return o.workers
}

// Run prints tokens once in the given mode and blocks until every
// worker reaches Done. tokens is borrowed and never mutated; it may
// be shorter than the worker count, in which case the surplus workers
// pass the ring token through without printing.
//
// In Synchronized mode the global print order equals the token order.
// In Unsynchronized mode the order across workers is whatever the
// scheduler and the per-print delays produce.
func (o *Orchestrator) Run(ctx context.Context, tokens []string, mode core.RunMode) error {
	partition, err := core.BuildPartition(len(tokens), o.workers)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	// A fresh ring per run: readiness from an earlier run must never
	// let a worker skip its wait.
	var ring *core.HandoffRing
	if mode == core.Synchronized {
		ring, err = core.NewHandoffRing(o.workers)
		if err != nil {
			return fmt.Errorf("run: initialize ring: %w", err)
		}
		ring.Arm(0)
	}

	o.logger.Info("run starting",
		core.F("mode", mode),
		core.F("workers", o.workers),
		core.F("tokens", len(tokens)))
	start := time.Now()

	group, ctx := errgroup.WithContext(ctx)
	for i := 0; i < o.workers; i++ {
		worker := core.NewWorker(core.WorkerParams{
			ID:        i,
			Sequence:  tokens,
			Positions: partition.Positions(i),
			Ring:      ring,
			Mode:      mode,
			Delay:     o.delay,
			Emitter:   o.emitter,
			Metrics:   o.metrics,
			Logger:    o.logger,
		})
		group.Go(func() error {
			return worker.Run(ctx)
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("run (%s): %w", mode, err)
	}

	if ring != nil {
		ring.Reset()
	}

	elapsed := time.Since(start)
	o.metrics.RecordRunDuration(mode, elapsed)
	o.logger.Info("run complete", core.F("mode", mode), core.F("duration", elapsed))
	return nil
}

// RunDemonstration performs the full two-pass demonstration over the
// same tokens: a synchronized run, a pause for visual separation,
// then an unsynchronized run.
func (o *Orchestrator) RunDemonstration(ctx context.Context, tokens []string) error {
	if err := o.Run(ctx, tokens, core.Synchronized); err != nil {
		return err
	}

	if o.pause > 0 {
		select {
		case <-time.After(o.pause):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return o.Run(ctx, tokens, core.Unsynchronized)
}

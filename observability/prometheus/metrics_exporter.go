package prometheus

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/zii-bee/os-multithreadedprinter/core"
)

// ExporterOptions controls collector configuration.
type ExporterOptions struct {
	WaitBuckets     []float64
	DurationBuckets []float64
}

// MetricsExporter adapts core.Metrics to Prometheus collectors.
type MetricsExporter struct {
	tokensPrintedTotal *prom.CounterVec
	handoffWaitSeconds *prom.HistogramVec
	runDurationSeconds *prom.HistogramVec
}

var _ core.Metrics = (*MetricsExporter)(nil)

// NewMetricsExporter creates and registers Prometheus collectors for core.Metrics.
func NewMetricsExporter(namespace string, reg prom.Registerer, opts ExporterOptions) (*MetricsExporter, error) {
	if namespace == "" {
		namespace = "printer"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	waitBuckets := opts.WaitBuckets
	if len(waitBuckets) == 0 {
		waitBuckets = prom.DefBuckets
	}
	durationBuckets := opts.DurationBuckets
	if len(durationBuckets) == 0 {
		durationBuckets = prom.DefBuckets
	}

	printedVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_printed_total",
		Help:      "Total number of tokens printed.",
	}, []string{"worker", "mode"})
	waitVec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "handoff_wait_seconds",
		Help:      "Time workers spent suspended on their ring slot.",
		Buckets:   waitBuckets,
	}, []string{"worker"})
	runVec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of complete runs.",
		Buckets:   durationBuckets,
	}, []string{"mode"})

	var err error
	if printedVec, err = registerCollector(reg, printedVec); err != nil {
		return nil, err
	}
	if waitVec, err = registerCollector(reg, waitVec); err != nil {
		return nil, err
	}
	if runVec, err = registerCollector(reg, runVec); err != nil {
		return nil, err
	}

	return &MetricsExporter{
		tokensPrintedTotal: printedVec,
		handoffWaitSeconds: waitVec,
		runDurationSeconds: runVec,
	}, nil
}

// RecordTokenPrinted counts one printed token.
func (m *MetricsExporter) RecordTokenPrinted(workerID int, mode core.RunMode) {
	if m == nil {
		return
	}
	m.tokensPrintedTotal.WithLabelValues(workerLabel(workerID), mode.String()).Inc()
}

// RecordHandoffWait records a worker's wait for its turn.
func (m *MetricsExporter) RecordHandoffWait(workerID int, waited time.Duration) {
	if m == nil {
		return
	}
	m.handoffWaitSeconds.WithLabelValues(workerLabel(workerID)).Observe(waited.Seconds())
}

// RecordRunDuration records a complete run's duration.
func (m *MetricsExporter) RecordRunDuration(mode core.RunMode, duration time.Duration) {
	if m == nil {
		return
	}
	m.runDurationSeconds.WithLabelValues(mode.String()).Observe(duration.Seconds())
}

func workerLabel(workerID int) string {
	return strconv.Itoa(workerID)
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegisteredErr prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}

package printer

import "github.com/zii-bee/os-multithreadedprinter/core"

// Re-export commonly used types from core package for convenience.
// This allows users to import only the printer package for most use cases.

// RunMode selects whether workers consult the hand-off ring
type RunMode = core.RunMode

// Run mode constants
const (
	Synchronized   RunMode = core.Synchronized
	Unsynchronized RunMode = core.Unsynchronized
)

// DelayGenerator produces the per-print pause
type DelayGenerator = core.DelayGenerator

// Emitter receives every printed token
type Emitter = core.Emitter

// Logger is the interface for structured logging
type Logger = core.Logger

// Metrics is the interface for run metrics collection
type Metrics = core.Metrics

// Partition maps workers to the token positions they own
type Partition = core.Partition

// HandoffRing is the cycle of single-permit signalling slots
type HandoffRing = core.HandoffRing

// Worker prints the tokens it owns in original relative order
type Worker = core.Worker

// Tokenize splits source text into its ordered token sequence
var Tokenize = core.Tokenize

// BuildPartition distributes token positions round-robin across workers
var BuildPartition = core.BuildPartition

// DefaultWorkerCount is the worker count of the original demonstration.
const DefaultWorkerCount = 5

// DefaultParagraph is the source text of the original demonstration.
const DefaultParagraph = "Computer science is the study of computation, automation, and information. " +
	"Computer science spans theoretical disciplines to practical disciplines. " +
	"Computer science is generally considered an area of academic research and " +
	"distinct from computer programming."

// Package printer demonstrates deterministic ordered printing from a
// ring of concurrent workers.
//
// A paragraph is tokenized into words and the word positions are
// partitioned round-robin across N worker goroutines: worker i owns
// positions i, i+N, i+2N, and so on. A hand-off ring of N
// single-permit slots serializes the workers — worker i waits on slot
// i, prints its next word, then signals slot (i+1) mod N — so the
// global output reproduces the paragraph in its original order even
// though every worker runs concurrently. A second, unsynchronized
// "chaos" mode runs the same partition with no ring operations to
// make the resulting race visible.
//
// # Quick Start
//
// Run the full two-pass demonstration over the built-in paragraph:
//
//	orch, err := printer.NewOrchestrator(printer.DefaultWorkerCount, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tokens := printer.Tokenize(printer.DefaultParagraph)
//	if err := orch.RunDemonstration(context.Background(), tokens); err != nil {
//		log.Fatal(err)
//	}
//
// # Key Concepts
//
// Partition: the round-robin assignment of token positions to
// workers. Every worker's positions are strictly increasing and the
// union covers the whole sequence exactly once.
//
// HandoffRing: a cycle of capacity-1 signalling slots. A single
// readiness token circulates the ring; Wait consumes it and Signal
// forwards it, with no lost or spurious wakeups.
//
// Worker: prints its assigned tokens in order, bracketing each print
// with Wait/Signal in Synchronized mode and running free in
// Unsynchronized mode.
//
// Orchestrator: builds the partition, arms slot 0 of a fresh ring,
// launches all workers and joins them.
//
// # Ordering Guarantee
//
// In Synchronized mode the print order is deterministic and equal to
// the token order: the line printed for position p always carries
// worker label (p mod N) + 1. In Unsynchronized mode there is no
// cross-worker ordering; only each worker's own tokens keep their
// relative order.
//
// # Observability
//
// The orchestrator accepts a core.Metrics implementation; the
// observability/prometheus subpackage adapts it to Prometheus
// collectors (tokens printed, hand-off wait times, run durations).
package printer

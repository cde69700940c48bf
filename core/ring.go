package core

import (
	"context"
	"fmt"
)

// HandoffRing is a cycle of single-permit signalling slots. Worker i
// waits on slot i and signals slot (i+1) mod size, so a single
// readiness token circulates the ring and serializes the workers'
// print steps in cyclic order.
//
// Each slot is a capacity-1 channel. Signal parks the readiness in
// the buffer when no worker is currently waiting, so a signal is
// never lost; Wait consumes the readiness atomically and never wakes
// spuriously. The hand-off protocol keeps at most one slot ready at
// any instant — the ring enforces only the single-permit capacity per
// slot and treats a second signal on a ready slot as a protocol
// violation.
type HandoffRing struct {
	slots []chan struct{}
}

// NewHandoffRing creates a ring with size slots, all not-ready. The
// caller arms exactly one slot before the run starts; by convention
// that is slot 0, which makes worker 0 the first to proceed.
func NewHandoffRing(size int) (*HandoffRing, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new handoff ring: %w (got %d)", ErrInvalidRingSize, size)
	}

	slots := make([]chan struct{}, size)
	for i := range slots {
		slots[i] = make(chan struct{}, 1)
	}

	return &HandoffRing{slots: slots}, nil
}

// Size returns the number of slots in the ring.
func (r *HandoffRing) Size() int {
	return len(r.slots)
}

// Arm marks slot i ready without a signalling worker. It is called
// once per run, before any worker starts, to admit the first worker
// into the cycle.
func (r *HandoffRing) Arm(i int) {
	r.Signal(i)
}

// Wait suspends the caller until slot i is ready, then consumes the
// readiness so the slot is not-ready again. It returns early only if
// ctx ends first, with the context's error.
func (r *HandoffRing) Wait(ctx context.Context, i int) error {
	select {
	case <-r.slots[i]:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Signal marks slot i ready, waking the worker blocked on Wait(i) if
// there is one, or parking the readiness until the next Wait(i).
// Signalling a slot that is already ready means two readiness tokens
// would be in flight at once; that breaks the hand-off protocol, so
// Signal panics instead of dropping or accumulating the extra token.
func (r *HandoffRing) Signal(i int) {
	select {
	case r.slots[i] <- struct{}{}:
	default:
		panic(fmt.Sprintf("handoff ring: slot %d signalled while already ready", i))
	}
}

// Reset drains residual readiness from every slot, so readiness left
// over from a completed run can never let a worker in a later run
// skip its wait.
func (r *HandoffRing) Reset() {
	for _, slot := range r.slots {
		select {
		case <-slot:
		default:
		}
	}
}

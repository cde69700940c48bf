package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewHandoffRing_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		_, err := NewHandoffRing(size)
		if !errors.Is(err, ErrInvalidRingSize) {
			t.Errorf("NewHandoffRing(%d) error = %v, want ErrInvalidRingSize", size, err)
		}
	}
}

func TestHandoffRing_SignalBeforeWaitPersists(t *testing.T) {
	ring, err := NewHandoffRing(3)
	if err != nil {
		t.Fatalf("NewHandoffRing failed: %v", err)
	}

	// The classic semaphore contract: a signal with no waiter parks
	// until the next wait.
	ring.Signal(1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := ring.Wait(ctx, 1); err != nil {
		t.Fatalf("Wait(1) after Signal(1) failed: %v", err)
	}
}

func TestHandoffRing_WaitConsumesReadiness(t *testing.T) {
	ring, err := NewHandoffRing(2)
	if err != nil {
		t.Fatalf("NewHandoffRing failed: %v", err)
	}

	ring.Arm(0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := ring.Wait(ctx, 0); err != nil {
		t.Fatalf("first Wait(0) failed: %v", err)
	}

	// The readiness was consumed: a second wait must block until the
	// context expires.
	short, cancelShort := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelShort()
	if err := ring.Wait(short, 0); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("second Wait(0) error = %v, want DeadlineExceeded", err)
	}
}

func TestHandoffRing_WakesBlockedWaiter(t *testing.T) {
	ring, err := NewHandoffRing(2)
	if err != nil {
		t.Fatalf("NewHandoffRing failed: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		done <- ring.Wait(ctx, 1)
	}()

	// Give the waiter a moment to block, then signal.
	time.Sleep(20 * time.Millisecond)
	ring.Signal(1)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("blocked Wait(1) returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("blocked Wait(1) never woke up")
	}
}

func TestHandoffRing_DoubleSignalPanics(t *testing.T) {
	ring, err := NewHandoffRing(2)
	if err != nil {
		t.Fatalf("NewHandoffRing failed: %v", err)
	}

	ring.Signal(0)

	defer func() {
		if recover() == nil {
			t.Error("second Signal(0) did not panic")
		}
	}()
	ring.Signal(0)
}

func TestHandoffRing_ResetDrainsAllSlots(t *testing.T) {
	ring, err := NewHandoffRing(4)
	if err != nil {
		t.Fatalf("NewHandoffRing failed: %v", err)
	}

	ring.Signal(0)
	ring.Signal(2)
	ring.Reset()

	// No readiness may survive a reset: every wait must now block.
	for i := 0; i < ring.Size(); i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		err := ring.Wait(ctx, i)
		cancel()
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Wait(%d) after Reset error = %v, want DeadlineExceeded", i, err)
		}
	}

	// The ring stays usable after a reset.
	ring.Arm(0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := ring.Wait(ctx, 0); err != nil {
		t.Errorf("Wait(0) after re-arm failed: %v", err)
	}
}

func TestHandoffRing_WaitHonorsContext(t *testing.T) {
	ring, err := NewHandoffRing(1)
	if err != nil {
		t.Fatalf("NewHandoffRing failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ring.Wait(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait with canceled context error = %v, want Canceled", err)
	}
}

package core

import (
	"errors"
	"testing"
	"time"
)

// Ensure all generators satisfy the interface
var (
	_ DelayGenerator = (*RandomDelayGenerator)(nil)
	_ DelayGenerator = FixedDelay(0)
	_ DelayGenerator = ZeroDelay{}
)

func TestRandomDelayGenerator_Bounds(t *testing.T) {
	min := 10 * time.Millisecond
	max := 100 * time.Millisecond

	gen, err := NewRandomDelayGenerator(min, max)
	if err != nil {
		t.Fatalf("NewRandomDelayGenerator failed: %v", err)
	}

	for i := 0; i < 1000; i++ {
		d := gen.Delay()
		if d < min || d > max {
			t.Fatalf("Delay() = %v, want within [%v, %v]", d, min, max)
		}
	}
}

func TestRandomDelayGenerator_EqualBounds(t *testing.T) {
	gen, err := NewRandomDelayGenerator(5*time.Millisecond, 5*time.Millisecond)
	if err != nil {
		t.Fatalf("NewRandomDelayGenerator failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		if d := gen.Delay(); d != 5*time.Millisecond {
			t.Fatalf("Delay() = %v, want 5ms", d)
		}
	}
}

func TestRandomDelayGenerator_InvalidBounds(t *testing.T) {
	cases := []struct{ min, max time.Duration }{
		{-time.Millisecond, time.Millisecond},
		{10 * time.Millisecond, time.Millisecond},
	}

	for _, tc := range cases {
		_, err := NewRandomDelayGenerator(tc.min, tc.max)
		if !errors.Is(err, ErrInvalidDelayBounds) {
			t.Errorf("NewRandomDelayGenerator(%v, %v) error = %v, want ErrInvalidDelayBounds", tc.min, tc.max, err)
		}
	}
}

func TestFixedDelay(t *testing.T) {
	if d := FixedDelay(7 * time.Millisecond).Delay(); d != 7*time.Millisecond {
		t.Errorf("FixedDelay.Delay() = %v, want 7ms", d)
	}
	if d := (ZeroDelay{}).Delay(); d != 0 {
		t.Errorf("ZeroDelay.Delay() = %v, want 0", d)
	}
}

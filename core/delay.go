package core

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Default delay bounds for the demonstration, matching the original
// 10–100ms race window.
const (
	DefaultMinDelay = 10 * time.Millisecond
	DefaultMaxDelay = 100 * time.Millisecond
)

// DelayGenerator produces the artificial pause a worker takes before
// printing a token. The pause exists to widen the window in which
// races are observable in unsynchronized runs; it carries no ordering
// guarantee and is not part of the correctness protocol.
type DelayGenerator interface {
	// Delay returns the pause to take before the next print.
	// Implementations must be safe for concurrent use.
	Delay() time.Duration
}

// RandomDelayGenerator draws a uniformly distributed delay from
// [min, max]. Safe for concurrent use.
type RandomDelayGenerator struct {
	min time.Duration
	max time.Duration
}

// NewRandomDelayGenerator creates a generator for the inclusive range
// [min, max]. Bounds must satisfy 0 <= min <= max.
func NewRandomDelayGenerator(min, max time.Duration) (*RandomDelayGenerator, error) {
	if min < 0 || max < min {
		return nil, fmt.Errorf("random delay: %w (min=%v, max=%v)", ErrInvalidDelayBounds, min, max)
	}
	return &RandomDelayGenerator{min: min, max: max}, nil
}

// Delay returns a random duration in [min, max].
func (g *RandomDelayGenerator) Delay() time.Duration {
	if g.max == g.min {
		return g.min
	}
	return g.min + rand.N(g.max-g.min+1)
}

// FixedDelay returns the same pause for every print.
type FixedDelay time.Duration

// Delay returns the fixed duration.
func (d FixedDelay) Delay() time.Duration {
	return time.Duration(d)
}

// ZeroDelay disables the artificial pause entirely. Useful in tests,
// where the race window does not need widening.
type ZeroDelay struct{}

// Delay returns zero.
func (ZeroDelay) Delay() time.Duration {
	return 0
}

package core

// RunMode selects whether workers consult the hand-off ring.
type RunMode int

const (
	// Synchronized routes every print through the hand-off ring, so
	// the global output order equals the original token order.
	Synchronized RunMode = iota

	// Unsynchronized ("chaos") runs the same partition with no ring
	// operations; the interleaving is whatever the scheduler and the
	// per-print delays produce.
	Unsynchronized
)

// String returns the mode name used in logs and metric labels.
func (m RunMode) String() string {
	switch m {
	case Synchronized:
		return "synchronized"
	case Unsynchronized:
		return "unsynchronized"
	default:
		return "unknown"
	}
}

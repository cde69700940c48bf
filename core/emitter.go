package core

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Emitter receives every printed token together with the identity of
// the worker that printed it and the token's position in the original
// sequence.
type Emitter interface {
	// Emit records one print. workerID is zero-based; position is the
	// token's index in the original sequence. Implementations used in
	// unsynchronized runs may be called concurrently.
	Emit(workerID, position int, token string)
}

// ConsoleEmitter writes tokens to a stream in the demonstration's
// output format: "Worker <id+1>: <token> ", with a line break after
// any token containing a sentence-terminating period (a paragraph
// boundary).
//
// Writes are deliberately not serialized. Synchronized runs already
// serialize them transitively through the hand-off ring; in
// unsynchronized runs the interleaved writes are the demonstrated
// hazard, not a bug to fix.
type ConsoleEmitter struct {
	W io.Writer
}

// NewConsoleEmitter creates an emitter writing to w.
func NewConsoleEmitter(w io.Writer) *ConsoleEmitter {
	return &ConsoleEmitter{W: w}
}

// Emit writes one token fragment.
func (e *ConsoleEmitter) Emit(workerID, position int, token string) {
	fmt.Fprintf(e.W, "Worker %d: %s ", workerID+1, token)
	if strings.Contains(token, ".") {
		fmt.Fprintln(e.W)
	}
}

// Emission is one captured print.
type Emission struct {
	WorkerID int
	Position int
	Token    string
}

// RecordingEmitter captures emissions in arrival order. It is the
// test double for the console emitter and is safe for concurrent use.
type RecordingEmitter struct {
	mu      sync.Mutex
	records []Emission
}

// NewRecordingEmitter creates an empty recording emitter.
func NewRecordingEmitter() *RecordingEmitter {
	return &RecordingEmitter{}
}

// Emit appends the print to the record.
func (e *RecordingEmitter) Emit(workerID, position int, token string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.records = append(e.records, Emission{WorkerID: workerID, Position: position, Token: token})
}

// Emissions returns a copy of all captured prints in arrival order.
func (e *RecordingEmitter) Emissions() []Emission {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Emission, len(e.records))
	copy(out, e.records)
	return out
}

// Len returns the number of captured prints.
func (e *RecordingEmitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.records)
}

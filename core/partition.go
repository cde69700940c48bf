package core

import "fmt"

// Partition maps each worker to the token positions it owns.
//
// Positions are assigned round-robin: worker i owns i, i+N, i+2N, …
// for N workers. Each worker's positions are therefore strictly
// increasing, and the union over all workers covers [0, total)
// exactly once. The partition is built once per run and only ever
// read afterwards.
type Partition struct {
	positions [][]int
	total     int
}

// BuildPartition distributes total token positions across workers in
// round-robin order. It is a pure function of (total, workers).
//
// workers must be positive. total may be zero or smaller than
// workers; trailing workers then receive empty assignments, which is
// valid — such workers finish without printing.
func BuildPartition(total, workers int) (*Partition, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("build partition: %w (got %d)", ErrInvalidWorkerCount, workers)
	}
	if total < 0 {
		return nil, fmt.Errorf("build partition: token count must not be negative (got %d)", total)
	}

	positions := make([][]int, workers)
	for p := 0; p < total; p++ {
		i := p % workers
		positions[i] = append(positions[i], p)
	}

	return &Partition{positions: positions, total: total}, nil
}

// WorkerCount returns the number of workers the partition was built for.
func (p *Partition) WorkerCount() int {
	return len(p.positions)
}

// Total returns the number of token positions covered by the partition.
func (p *Partition) Total() int {
	return p.total
}

// Positions returns the ascending token positions owned by worker i.
// The returned slice is borrowed; callers must not modify it.
func (p *Partition) Positions(i int) []int {
	return p.positions[i]
}

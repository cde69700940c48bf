package core

import (
	"errors"
	"testing"
)

func TestBuildPartition_RoundRobin(t *testing.T) {
	part, err := BuildPartition(10, 5)
	if err != nil {
		t.Fatalf("BuildPartition failed: %v", err)
	}

	if part.WorkerCount() != 5 {
		t.Errorf("WorkerCount() = %d, want 5", part.WorkerCount())
	}
	if part.Total() != 10 {
		t.Errorf("Total() = %d, want 10", part.Total())
	}

	for i := 0; i < 5; i++ {
		positions := part.Positions(i)
		want := []int{i, i + 5}
		if len(positions) != len(want) {
			t.Fatalf("worker %d: got %d positions, want %d", i, len(positions), len(want))
		}
		for k := range want {
			if positions[k] != want[k] {
				t.Errorf("worker %d position %d = %d, want %d", i, k, positions[k], want[k])
			}
		}
	}
}

// The partition must be a disjoint cover of [0, total): every position
// appears in exactly one worker's sequence, in strictly increasing
// order within the worker.
func TestBuildPartition_DisjointCoverAndOrder(t *testing.T) {
	cases := []struct{ total, workers int }{
		{0, 1},
		{1, 1},
		{3, 5},
		{5, 5},
		{7, 5},
		{10, 5},
		{37, 4},
		{100, 7},
		{1, 16},
	}

	for _, tc := range cases {
		part, err := BuildPartition(tc.total, tc.workers)
		if err != nil {
			t.Fatalf("BuildPartition(%d, %d) failed: %v", tc.total, tc.workers, err)
		}

		seen := make(map[int]int)
		for i := 0; i < part.WorkerCount(); i++ {
			positions := part.Positions(i)
			for k, p := range positions {
				if p < 0 || p >= tc.total {
					t.Errorf("(%d,%d) worker %d: position %d out of range", tc.total, tc.workers, i, p)
				}
				if p%tc.workers != i {
					t.Errorf("(%d,%d) worker %d owns position %d, want positions with p %% workers == %d", tc.total, tc.workers, i, p, i)
				}
				if k > 0 && positions[k-1] >= p {
					t.Errorf("(%d,%d) worker %d: positions not strictly increasing at index %d", tc.total, tc.workers, i, k)
				}
				seen[p]++
			}
		}

		if len(seen) != tc.total {
			t.Errorf("(%d,%d): covered %d positions, want %d", tc.total, tc.workers, len(seen), tc.total)
		}
		for p, count := range seen {
			if count != 1 {
				t.Errorf("(%d,%d): position %d assigned %d times", tc.total, tc.workers, p, count)
			}
		}
	}
}

func TestBuildPartition_FewerTokensThanWorkers(t *testing.T) {
	part, err := BuildPartition(3, 5)
	if err != nil {
		t.Fatalf("BuildPartition failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if got := part.Positions(i); len(got) != 1 || got[0] != i {
			t.Errorf("worker %d positions = %v, want [%d]", i, got, i)
		}
	}
	for i := 3; i < 5; i++ {
		if got := part.Positions(i); len(got) != 0 {
			t.Errorf("worker %d positions = %v, want empty", i, got)
		}
	}
}

func TestBuildPartition_InvalidWorkerCount(t *testing.T) {
	for _, workers := range []int{0, -1} {
		_, err := BuildPartition(10, workers)
		if !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("BuildPartition(10, %d) error = %v, want ErrInvalidWorkerCount", workers, err)
		}
	}
}

func TestBuildPartition_NegativeTotal(t *testing.T) {
	if _, err := BuildPartition(-1, 3); err == nil {
		t.Error("BuildPartition(-1, 3) succeeded, want error")
	}
}

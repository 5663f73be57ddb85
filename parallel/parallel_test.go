package parallel_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/aklitzke/algebra-kernel/parallel"
)

func TestForEachVisitsEveryIndexSequentialPath(t *testing.T) {
	const n = 3 // below parallel.Threshold
	var seen []int
	var mu sync.Mutex
	parallel.ForEach(n, func() int { return 0 }, func(_ *int, i int) {
		mu.Lock()
		seen = append(seen, i)
		mu.Unlock()
	})
	sort.Ints(seen)
	for i := 0; i < n; i++ {
		if seen[i] != i {
			t.Fatalf("missing index %d in %v", i, seen)
		}
	}
}

func TestForEachVisitsEveryIndexParallelPath(t *testing.T) {
	const n = 500 // well above parallel.Threshold
	visited := make([]bool, n)
	var mu sync.Mutex
	parallel.ForEach(n, func() int { return 0 }, func(_ *int, i int) {
		mu.Lock()
		visited[i] = true
		mu.Unlock()
	})
	for i, ok := range visited {
		if !ok {
			t.Fatalf("index %d never visited", i)
		}
	}
}

func TestForEachPerWorkerStateAccumulates(t *testing.T) {
	const n = 200
	var mu sync.Mutex
	counted := 0
	workerStates := map[*int]bool{}
	parallel.ForEach(n, func() int { return 0 }, func(state *int, _ int) {
		*state++ // private per-worker accumulator
		mu.Lock()
		counted++
		workerStates[state] = true
		mu.Unlock()
	})
	if counted != n {
		t.Fatalf("expected %d calls, got %d", n, counted)
	}
	total := 0
	for s := range workerStates {
		total += *s
	}
	if total != n {
		t.Fatalf("per-worker states sum to %d, want %d", total, n)
	}
}

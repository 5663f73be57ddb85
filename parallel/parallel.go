// Package parallel is the one intentionally stdlib-only concurrency
// primitive in this module (see DESIGN.md): the teacher never spawns a
// goroutine anywhere in its own code, so there is no third-party concurrency
// library in the retrieved pack to delegate to, and the original's
// potential_parallel_for_each has no natural idiomatic-Go home besides
// goroutines plus sync.WaitGroup.
package parallel

import (
	"runtime"
	"sync"
)

// Threshold is the minimum item count before ForEach actually spawns
// goroutines; below it, work runs sequentially on the calling goroutine,
// matching the original's "potential" (not unconditional) parallelism --
// spawning workers for a handful of sparse-matrix rows costs more than it
// saves.
const Threshold = 8

// ForEach runs work(state, i) for every i in [0, n), across however many
// goroutines are worthwhile. Each goroutine gets its own state value from
// newState, threaded through every item it processes, mirroring the
// original's per-worker scratch-buffer accumulator (so callers can reuse a
// temporary buffer across a goroutine's whole share of the work instead of
// reallocating per item).
func ForEach[S any](n int, newState func() S, work func(state *S, i int)) {
	if n <= 0 {
		return
	}
	if n < Threshold {
		state := newState()
		for i := 0; i < n; i++ {
			work(&state, i)
		}
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			state := newState()
			for i := start; i < end; i++ {
				work(&state, i)
			}
		}(start, end)
	}
	wg.Wait()
}

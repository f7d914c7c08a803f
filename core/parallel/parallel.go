// Package parallel provides chunked goroutine fan-out for CPU-bound loops.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits the half-open range [0, items) into contiguous chunks,
// one per worker, and runs fn(start, end) for each chunk on its own
// goroutine. It blocks until every chunk is done.
//
// fn must only read shared data, or write to disjoint regions indexed by
// its chunk; Parallelize adds no synchronization beyond the final join.
func Parallelize(items int, fn func(start, end int)) {
	ParallelizeWithWorkers(items, runtime.NumCPU(), fn)
}

// ParallelizeWithWorkers is Parallelize with an explicit worker count.
// Worker counts below 1, or above the number of items, are clamped.
func ParallelizeWithWorkers(items, workers int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > items {
		workers = items
	}
	if workers == 1 {
		fn(0, items)
		return
	}

	// Ceiling division so the last chunk picks up the remainder.
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over the whole range when
// items does not exceed threshold, and fans out otherwise. Small inputs
// are not worth the goroutine overhead.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}
	Parallelize(items, fn)
}

// Package parallel provides chunked fan-out helpers for CPU-bound loops.
// The pipeline uses them to fill large design matrices and to fit the
// per-response models concurrently; workers only read shared input and
// write to disjoint index ranges, so no locking is needed.
package parallel

import (
	"runtime"
	"sync"
)

// Chunks splits [0, items) across the available CPU cores and runs fn on
// each [start, end) range in its own goroutine, blocking until all ranges
// are done.
func Chunks(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last chunk picks up the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ChunksWithThreshold runs fn sequentially over the full range when items
// is at or below threshold, and falls back to Chunks above it. Small
// inputs are not worth the goroutine overhead.
func ChunksWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Chunks(items, fn)
}

// Each runs fn once per index in [0, items), distributing indices across
// cores. Used for coarse-grained work such as one model fit per response.
func Each(items int, fn func(i int)) {
	Chunks(items, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

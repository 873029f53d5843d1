package life

import (
	"runtime"
	"sync"
)

// minRowsPerWorker keeps tiny boards on a single goroutine where fan-out
// overhead would dominate.
const minRowsPerWorker = 16

// parallelRows runs fn over disjoint row ranges covering [0, n). Workers
// only read the frozen current state and write disjoint rows of the next
// buffer, so no synchronization beyond the final wait is needed.
func parallelRows(n int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if n < minRowsPerWorker*2 || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minRowsPerWorker < workers {
		workers = n / minRowsPerWorker
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

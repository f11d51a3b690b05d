package nbody

import (
	"runtime"
	"sync"
)

// parallelFor splits [0, n) across workers and blocks until every
// chunk is done. Used for the force pass only: each body's net force
// depends solely on pre-tick state, so chunks are independent, and
// the WaitGroup is the barrier before the write pass.
func parallelFor(n int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
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

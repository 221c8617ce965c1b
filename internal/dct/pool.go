package dct

import (
	"runtime"
	"sync"
)

// grainSize mirrors the teacher's ParallelConfig.GrainSize gate
// (exr/parallel.go): below this many components per worker, the overhead of
// spinning up goroutines isn't worth it and the projection runs inline.
const grainSize = 2

// parallelFor runs fn(i) for i in [0, n) across up to runtime.GOMAXPROCS(0)
// goroutines, falling back to a sequential loop when n is too small to be
// worth parallelising. Each call to fn must touch disjoint state: the
// encode-side projection satisfies this because every component is an
// independent accumulation (spec §5).
func parallelFor(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= grainSize*workers || workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(start, end)
	}

	wg.Wait()
}

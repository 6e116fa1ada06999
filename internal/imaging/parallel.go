package imaging

import (
	"runtime"
	"sync"
)

// partitionRows splits the index range [0, n) into contiguous chunks, one
// per worker, and runs fn for each chunk on its own goroutine, joining
// before returning. Chunks never overlap, so fn may write to disjoint
// per-row output without coordination.
func partitionRows(n int, fn func(from, to int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}

	chunk := n / workers
	extra := n % workers

	var wg sync.WaitGroup
	from := 0
	for i := 0; i < workers; i++ {
		to := from + chunk
		if i < extra {
			to++
		}
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			fn(from, to)
		}(from, to)
		from = to
	}
	wg.Wait()
}

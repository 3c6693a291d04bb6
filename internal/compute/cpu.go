package compute

import (
	"runtime"
	"sync"
)

// minChunk is the smallest index range worth a goroutine; below it the
// dispatch runs inline.
const minChunk = 2048

// CPUBackend fans the kernel out over chunked goroutines. Each body index
// is visited by exactly one worker, so per-index writes need no locking.
type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{workers: runtime.NumCPU()}
}

// NewCPUBackendWith limits the worker count; values below 1 fall back to
// one worker.
func NewCPUBackendWith(workers int) *CPUBackend {
	if workers < 1 {
		workers = 1
	}
	return &CPUBackend{workers: workers}
}

func (c *CPUBackend) Name() string { return "cpu" }
func (c *CPUBackend) Workers() int { return c.workers }

func (c *CPUBackend) Dispatch(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if n <= minChunk || c.workers <= 1 {
		fn(0, n)
		return
	}

	workers := c.workers
	if n/minChunk < workers {
		workers = n / minChunk
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

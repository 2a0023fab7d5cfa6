package sim

import (
	"runtime"
	"sync"
)

type poolTask struct {
	fn   func()
	done *sync.WaitGroup
}

// Pool is a fixed-size worker pool for fanning CPU-bound simulation work
// across available hardware parallelism. Workers are persistent goroutines;
// submitting work allocates nothing beyond the closure.
type Pool struct {
	tasks   chan poolTask
	workers int
}

// NewPool starts a pool with the given worker count. A count <= 0 uses
// GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		tasks:   make(chan poolTask),
		workers: workers,
	}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// Workers returns the pool size.
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes the given functions on the pool and blocks until all have
// finished. A single function runs inline on the caller.
func (p *Pool) Run(fns ...func()) {
	if len(fns) == 0 {
		return
	}
	if len(fns) == 1 {
		fns[0]()
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		p.tasks <- poolTask{fn: fn, done: &wg}
	}
	wg.Wait()
}

// ForChunks splits [0, n) into at most Workers contiguous chunks and runs
// fn for each on the pool, blocking until every chunk is done. Chunks
// never overlap, so fn may write freely within its range.
func (p *Pool) ForChunks(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	chunks := p.workers
	if chunks > n {
		chunks = n
	}
	if chunks == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + chunks - 1) / chunks

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		p.tasks <- poolTask{
			fn:   func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// Close stops the workers. The pool must not be used after Close.
func (p *Pool) Close() {
	close(p.tasks)
}

// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs bfloat16 slice kernels on a fixed set of
// goroutines. A Pool is created once and reused, so large conversions or
// transforms do not pay goroutine start-up on every call.
//
// Ranges handed to workers start on multiples of an alignment, normally
// the vector width, so only the final range of a job can end in a partial
// vector.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(xs), vec128.BFloat16x8Lanes, func(start, end int) {
//	    algo.SqrtBF16(xs[start:end], out[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers that execute ranges of a job.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	start, end int
	fn         func(start, end int)
	done       *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. If numWorkers <= 0 the pool
// uses GOMAXPROCS workers.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn(t.start, t.end)
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued ranges finish. It is safe to call
// more than once. A closed pool still accepts ParallelFor calls and runs
// them on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ChunkSize returns the range length ParallelFor uses for n elements: n
// split evenly over the workers, rounded up to a multiple of align.
func (p *Pool) ChunkSize(n, align int) int {
	if align <= 0 {
		align = 1
	}
	chunk := (n + p.numWorkers - 1) / p.numWorkers
	return (chunk + align - 1) / align * align
}

// ParallelFor calls fn on disjoint ranges covering [0, n) and blocks until
// every call returns. Every range starts at a multiple of align. fn must be
// safe to call concurrently on disjoint ranges. A nil pool runs fn(0, n)
// on the calling goroutine.
func (p *Pool) ParallelFor(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil {
		fn(0, n)
		return
	}
	chunk := p.ChunkSize(n, align)
	if chunk >= n || p.closed.Load() {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		wg.Add(1)
		p.workC <- task{start: start, end: min(start+chunk, n), fn: fn, done: &wg}
	}
	wg.Wait()
}

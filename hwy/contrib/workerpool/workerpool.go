// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// row-parallel image traversal. A Pool is created once and shared by many
// bulk conversions; each call hands out disjoint row ranges, so workers
// never write to the same destination row.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, frame := range frames {
//	    pool.ParallelRows(frame.Height, 16, func(y0, y1 int) {
//	        convertRows(frame, y0, y1)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu is held for reading by every ParallelRows call that feeds workC
	// and for writing by Close.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.workC {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
// A nil pool reports a single worker.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the pool. It waits for running ParallelRows calls to
// return; later calls run on the calling goroutine. Calling Close multiple
// times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// ParallelRows hands out row ranges of at least minRows rows using atomic
// work stealing, so uneven rows (for example rows that hit a slow
// transcendental branch) balance across workers. fn receives [y0, y1).
//
// Images shorter than 2*minRows, and nil, closed or single-worker pools,
// run on the calling goroutine.
func (p *Pool) ParallelRows(height, minRows int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if minRows <= 0 {
		minRows = 1
	}
	if p == nil || p.numWorkers == 1 || height < 2*minRows {
		fn(0, height)
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		fn(0, height)
		return
	}

	batches := (height + minRows - 1) / minRows
	workers := min(p.numWorkers, batches)

	var next atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			run: func() {
				for {
					b := int(next.Add(1)) - 1
					y0 := b * minRows
					if y0 >= height {
						return
					}
					fn(y0, min(y0+minRows, height))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}

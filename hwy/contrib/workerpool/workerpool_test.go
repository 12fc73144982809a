// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// visits runs ParallelRows over height rows and counts how often each row
// was handed out.
func visits(p *Pool, height, minRows int) []int32 {
	counts := make([]int32, height)
	p.ParallelRows(height, minRows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			atomic.AddInt32(&counts[y], 1)
		}
	})
	return counts
}

func checkOnce(t *testing.T, counts []int32) {
	t.Helper()
	for y, c := range counts {
		if c != 1 {
			t.Errorf("row %d visited %d times", y, c)
		}
	}
}

func TestNumWorkers(t *testing.T) {
	var nilPool *Pool
	tests := []struct {
		name string
		pool *Pool
		want int
	}{
		{"nil", nilPool, 1},
		{"explicit", New(3), 3},
		{"default", New(0), runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		if got := tt.pool.NumWorkers(); got != tt.want {
			t.Errorf("%s: NumWorkers() = %d, want %d", tt.name, got, tt.want)
		}
		if tt.pool != nil {
			tt.pool.Close()
		}
	}
}

func TestParallelRowsCoverage(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, tc := range []struct{ height, minRows int }{
		{1, 1}, {7, 4}, {8, 4}, {9, 4}, {100, 1}, {1080, 16}, {33, 0},
	} {
		checkOnce(t, visits(pool, tc.height, tc.minRows))
	}
	if got := visits(pool, 0, 4); len(got) != 0 {
		t.Errorf("zero height visited %d rows", len(got))
	}
}

func TestParallelRowsBatchSize(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var mu sync.Mutex
	var short int
	pool.ParallelRows(103, 10, func(y0, y1 int) {
		if y1-y0 != 10 {
			mu.Lock()
			short++
			mu.Unlock()
			if y1 != 103 {
				t.Errorf("range [%d, %d) is short but not the last", y0, y1)
			}
		}
	})
	if short != 1 {
		t.Errorf("%d short ranges, want 1", short)
	}
}

func TestParallelRowsSequentialFallback(t *testing.T) {
	closed := New(4)
	closed.Close()
	closed.Close()

	tests := []struct {
		name string
		pool *Pool
	}{
		{"nil", nil},
		{"closed", closed},
		{"single", New(1)},
	}
	for _, tt := range tests {
		var calls int
		tt.pool.ParallelRows(50, 2, func(y0, y1 int) {
			calls++
			if y0 != 0 || y1 != 50 {
				t.Errorf("%s: got [%d, %d), want [0, 50)", tt.name, y0, y1)
			}
		})
		if calls != 1 {
			t.Errorf("%s: %d calls, want 1", tt.name, calls)
		}
	}
}

func TestCloseDuringParallelRows(t *testing.T) {
	pool := New(4)
	started := make(chan struct{})
	var once sync.Once
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	var counts []int32
	go func() {
		defer wg.Done()
		counts = make([]int32, 64)
		pool.ParallelRows(len(counts), 1, func(y0, y1 int) {
			once.Do(func() { close(started) })
			<-release
			for y := y0; y < y1; y++ {
				atomic.AddInt32(&counts[y], 1)
			}
		})
	}()

	<-started
	closeDone := make(chan struct{})
	go func() {
		pool.Close()
		close(closeDone)
	}()
	close(release)
	wg.Wait()
	<-closeDone

	checkOnce(t, counts)
	checkOnce(t, visits(pool, 64, 1))
}

func BenchmarkParallelRows(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	sink := make([]float32, 1080*64)

	b.ResetTimer()
	for range b.N {
		pool.ParallelRows(1080, 16, func(y0, y1 int) {
			for i := y0 * 64; i < y1*64; i++ {
				sink[i] = sink[i]*0.5 + 1
			}
		})
	}
}

package tlocal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_StartsAtZero(t *testing.T) {
	a := NewAllocator()
	assert.Equal(t, 0, a.Next())
	assert.Equal(t, 1, a.Next())
	assert.Equal(t, 2, a.Next())
	assert.Equal(t, 3, a.Issued())
}

func TestAllocator_IndicesNeverRepeat(t *testing.T) {
	a := NewAllocator()
	const iterations = 1000

	seen := make(map[int]bool)
	prev := -1
	for i := 0; i < iterations; i++ {
		idx := a.Next()
		assert.False(t, seen[idx], "index %d issued twice", idx)
		assert.Greater(t, idx, prev, "indices must be strictly increasing")
		seen[idx] = true
		prev = idx
	}
}

func TestAllocator_ConcurrentAllocation(t *testing.T) {
	a := NewAllocator()
	const goroutines = 100
	const perGoroutine = 50

	var wg sync.WaitGroup
	indices := make(chan int, goroutines*perGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				indices <- a.Next()
			}
		}()
	}

	wg.Wait()
	close(indices)

	seen := make(map[int]bool)
	for idx := range indices {
		assert.False(t, seen[idx], "index %d issued twice", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, goroutines*perGoroutine)
	assert.Equal(t, goroutines*perGoroutine, a.Issued())
}

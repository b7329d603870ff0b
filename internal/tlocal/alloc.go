package tlocal

import (
	"fmt"
	"sync"
)

// Allocator issues process-unique slot indices for thread-locals.
//
// Indices are strictly increasing from 0 and never reused, no matter
// which context allocates or how many allocate concurrently. Allocation
// happens once per declared thread-local, not per access.
type Allocator struct {
	mu   sync.Mutex
	next int
}

// NewAllocator creates an allocator whose first index is 0.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next unused slot index.
//
// Panics on counter overflow. Exhausting the index space would require
// billions of distinct thread-local declarations; reaching it means the
// runtime's internal invariants are already gone.
func (a *Allocator) Next() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	index := a.next
	if index < 0 {
		panic(fmt.Sprintf("tlocal: slot index space exhausted (next=%d)", a.next))
	}
	a.next++
	return index
}

// Issued returns how many indices have been handed out so far.
func (a *Allocator) Issued() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next
}

package value

import "sync"

// Thunk is the deferred computation wrapped by a Promise.
// An error returned by the thunk propagates unchanged to whoever
// triggered the force; it is not cached, so a failed force may be
// retried.
type Thunk func() (Value, error)

// Promise wraps a deferred computation that is forced at most once.
//
// Copy-on-spawn means the same *Promise can sit in the tables of
// several execution contexts, and two contexts may race to force it.
// The mutex makes the first force win and every later force observe
// the cached result.
type Promise struct {
	mu     sync.Mutex
	thunk  Thunk
	forced bool
	result Value
}

func (*Promise) val() {}

// NewPromise creates an unforced promise around thunk.
func NewPromise(thunk Thunk) *Promise {
	return &Promise{thunk: thunk}
}

// Force resolves the promise to its concrete result.
//
// The first successful call runs the thunk, caches its result, and
// drops the thunk reference so the computation's captures become
// collectable. Every subsequent call returns the cached result without
// re-running anything.
func (p *Promise) Force() (Value, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.forced {
		return p.result, nil
	}
	result, err := p.thunk()
	if err != nil {
		return nil, err
	}
	p.result = result
	p.forced = true
	p.thunk = nil
	return result, nil
}

// Forced reports whether the promise has already been resolved.
func (p *Promise) Forced() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.forced
}

// String renders the promise for diagnostics without forcing it.
func (p *Promise) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.forced {
		return "#promise[" + Format(p.result) + "]"
	}
	return "#promise"
}

// Force resolves v if it is a promise and returns it unchanged
// otherwise. Forcing is idempotent: forcing an already-forced promise
// returns the cached result.
func Force(v Value) (Value, error) {
	if p, ok := v.(*Promise); ok {
		return p.Force()
	}
	return v, nil
}

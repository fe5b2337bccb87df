package ppool

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrNotPooled reports that an object was not handed out by the pool.
var ErrNotPooled = errors.New("ppool: object not owned by pool")

// Hooks customize how a Pool creates and recycles instances. Only New is
// required.
type Hooks[T comparable] struct {
	// New creates a fresh instance from a prototype. It must return a value
	// distinct from every other live instance, so T is usually a pointer.
	New func(proto T) T
	// OnGet activates an instance as it leaves the pool.
	OnGet func(obj T)
	// OnPut deactivates an instance as it returns, and after prewarm.
	OnPut func(obj T)
	// Destroy tears down culled instances and foreign objects passed to Put.
	Destroy func(obj T)
	// Name identifies a prototype in Config.Keys.
	Name func(proto T) string
}

// Pool recycles instances cloned from prototypes. Each prototype is its own
// key with independent limit and staleness. A Pool is not safe for
// concurrent use.
type Pool[T comparable] struct {
	s *store[T, T]
}

// New creates a Pool. It panics if hooks.New is nil.
func New[T comparable](hooks Hooks[T], opts ...Option) *Pool[T] {
	if hooks.New == nil {
		panic("ppool: Hooks.New is required")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := newStore[T, T](o)
	s.create = hooks.New
	if hooks.OnGet != nil {
		s.activate = hooks.OnGet
	}
	if hooks.OnPut != nil {
		s.park = hooks.OnPut
	}
	if hooks.Destroy != nil {
		s.destroy = hooks.Destroy
	}
	if hooks.Name != nil {
		s.names = func(proto T) []string { return []string{hooks.Name(proto)} }
		s.keyField = func(proto T) zap.Field { return zap.String("key", hooks.Name(proto)) }
	}
	return &Pool[T]{s: s}
}

// Get returns an instance for proto, reusing the most recently returned one
// when available. ok is false when the key's limit is reached.
func (p *Pool[T]) Get(proto T) (obj T, ok bool) {
	return p.s.get(proto)
}

// Put returns obj to its pool. Objects the pool did not create are destroyed
// and Put returns false. Returning an instance that is already available
// also returns false but leaves it untouched.
func (p *Pool[T]) Put(obj T) bool {
	var zero T
	if obj == zero {
		return false
	}
	return p.s.put(obj)
}

// Release is Put with an error result.
func (p *Pool[T]) Release(obj T) error {
	if !p.Put(obj) {
		return ErrNotPooled
	}
	return nil
}

// Prewarm creates up to n available instances for proto without exceeding
// its limit. It returns the number created.
func (p *Pool[T]) Prewarm(proto T, n int) int {
	return p.s.prewarm(proto, p.s.bucketFor(proto), n)
}

// SetLimit sets the creation ceiling for proto. Shrinking below the live
// count destroys the oldest available instances. In-use instances are
// destroyed as they come back.
func (p *Pool[T]) SetLimit(proto T, n int) {
	p.s.setLimit(proto, n)
}

// SetStaleness sets how long available instances of proto may idle. Zero
// destroys every available instance immediately.
func (p *Pool[T]) SetStaleness(proto T, d time.Duration) {
	p.s.setStaleness(proto, d)
}

// Expire destroys stale available instances of every key and returns how
// many were destroyed.
func (p *Pool[T]) Expire() int {
	return p.s.expire()
}

// ExpireKey is Expire for a single prototype.
func (p *Pool[T]) ExpireKey(proto T) int {
	return p.s.expireKey(proto)
}

// Clear destroys the available instances of proto. Unless availableOnly is
// set, in-use instances are destroyed too and the key is forgotten. A later
// Put of such an instance returns false without destroying it again.
func (p *Pool[T]) Clear(proto T, availableOnly bool) {
	p.s.clearKey(proto, availableOnly)
}

// ClearAll is Clear for every key.
func (p *Pool[T]) ClearAll(availableOnly bool) {
	p.s.clearAll(availableOnly)
}

// Stats reports the bookkeeping for proto.
func (p *Pool[T]) Stats(proto T) Stats {
	return p.s.stats(proto)
}

// Keys returns the prototypes in first-use order.
func (p *Pool[T]) Keys() []T {
	return p.s.keys()
}

// Contains reports whether obj was created by the pool and is still alive.
func (p *Pool[T]) Contains(obj T) bool {
	return p.s.contains(obj)
}

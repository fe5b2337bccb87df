package ppool

import (
	"io"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// Resetter is implemented by plain objects that clear their state when
// returned to a PocoPool.
type Resetter interface {
	Reset()
}

// PocoPool pools plain Go objects keyed by their type. Instances are *T
// values built with new(T) or a constructor from RegisterPoco. Objects
// implementing Resetter are reset when returned and io.Closer objects are
// closed when destroyed. A PocoPool is not safe for concurrent use.
type PocoPool struct {
	s     *store[reflect.Type, any]
	ctors map[reflect.Type]func() any
}

// NewPoco creates an empty PocoPool.
func NewPoco(opts ...Option) *PocoPool {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &PocoPool{
		s:     newStore[reflect.Type, any](o),
		ctors: make(map[reflect.Type]func() any),
	}
	p.s.create = p.construct
	p.s.park = func(obj any) {
		if r, ok := obj.(Resetter); ok {
			r.Reset()
		}
	}
	p.s.destroy = func(obj any) {
		c, ok := obj.(io.Closer)
		if !ok {
			return
		}
		if err := c.Close(); err != nil {
			o.log.Warn("close pooled object", zap.Error(err))
		}
	}
	p.s.names = func(t reflect.Type) []string { return []string{t.String(), t.Name()} }
	p.s.keyField = func(t reflect.Type) zap.Field { return zap.Stringer("type", t) }
	return p
}

func (p *PocoPool) construct(t reflect.Type) any {
	if ctor, ok := p.ctors[t]; ok {
		return ctor()
	}
	return reflect.New(t).Interface()
}

func keyOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// pooled reports whether instances of t can be told apart. Pointers to
// zero-size values may all share one address, so such types are refused.
func (p *PocoPool) pooled(t reflect.Type) bool {
	if t.Size() == 0 {
		p.s.opts.log.Error("zero-size types cannot be pooled", zap.Stringer("type", t))
		return false
	}
	return true
}

// RegisterPoco sets the constructor used for new *T instances. A nil ctor
// restores new(T).
func RegisterPoco[T any](p *PocoPool, ctor func() *T) {
	t := keyOf[T]()
	if ctor == nil {
		delete(p.ctors, t)
		return
	}
	p.ctors[t] = func() any { return ctor() }
}

// GetPoco returns a pooled *T. ok is false when the type's limit is reached
// or T has zero size, such as struct{}.
func GetPoco[T any](p *PocoPool) (*T, bool) {
	k := keyOf[T]()
	if !p.pooled(k) {
		return nil, false
	}
	obj, ok := p.s.get(k)
	if !ok {
		return nil, false
	}
	return obj.(*T), true
}

// Return gives obj back to the pool. obj must be a pointer previously
// returned by GetPoco; anything else is destroyed and Return reports false.
func (p *PocoPool) Return(obj any) bool {
	if obj == nil {
		return false
	}
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		p.s.opts.log.Warn("destroying non-pointer object", zap.Stringer("type", v.Type()))
		p.s.destroy(obj)
		return false
	}
	return p.s.put(obj)
}

// PrewarmPoco creates up to n available *T instances. It returns the number
// created.
func PrewarmPoco[T any](p *PocoPool, n int) int {
	k := keyOf[T]()
	if !p.pooled(k) {
		return 0
	}
	return p.s.prewarm(k, p.s.bucketFor(k), n)
}

// SetLimitPoco sets the creation ceiling for *T.
func SetLimitPoco[T any](p *PocoPool, n int) {
	p.s.setLimit(keyOf[T](), n)
}

// SetStalenessPoco sets the idle duration for *T. Zero destroys every
// available instance immediately.
func SetStalenessPoco[T any](p *PocoPool, d time.Duration) {
	p.s.setStaleness(keyOf[T](), d)
}

// ClearPoco destroys pooled *T instances. See Pool.Clear.
func ClearPoco[T any](p *PocoPool, availableOnly bool) {
	p.s.clearKey(keyOf[T](), availableOnly)
}

// StatsPoco reports the bookkeeping for *T.
func StatsPoco[T any](p *PocoPool) Stats {
	return p.s.stats(keyOf[T]())
}

// ExpirePoco destroys stale available *T instances and returns how many were
// destroyed.
func ExpirePoco[T any](p *PocoPool) int {
	return p.s.expireKey(keyOf[T]())
}

// Expire destroys stale available instances of every type.
func (p *PocoPool) Expire() int {
	return p.s.expire()
}

// ClearAll destroys pooled instances of every type.
func (p *PocoPool) ClearAll(availableOnly bool) {
	p.s.clearAll(availableOnly)
}

// Keys returns the pooled types in first-use order.
func (p *PocoPool) Keys() []reflect.Type {
	return p.s.keys()
}

// Contains reports whether obj was created by the pool and is still alive.
func (p *PocoPool) Contains(obj any) bool {
	if obj == nil || reflect.TypeOf(obj).Kind() != reflect.Pointer {
		return false
	}
	return p.s.contains(obj)
}

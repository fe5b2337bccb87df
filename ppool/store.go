package ppool

import (
	"slices"
	"time"

	"go.uber.org/zap"
)

// Stats is a snapshot of one key's bookkeeping.
type Stats struct {
	Available int
	InUse     int
	Created   int
	Destroyed int
	Limit     int
}

// Live returns the number of instances the key currently owns.
func (s Stats) Live() int { return s.Available + s.InUse }

type entry[T comparable] struct {
	obj      T
	returned time.Time
}

// bucket holds one key's instances. available is ordered oldest first, so the
// most recently returned instance is at the end.
type bucket[T comparable] struct {
	available []entry[T]
	inUse     map[T]struct{}
	limit     int
	staleness time.Duration
	created   int
	destroyed int
}

func (b *bucket[T]) live() int { return b.created - b.destroyed }

func (b *bucket[T]) full() bool {
	return b.limit != Unlimited && b.live() >= b.limit
}

func (b *bucket[T]) over() bool {
	return b.limit != Unlimited && b.live() > b.limit
}

// store is the keyed bookkeeping shared by Pool and PocoPool.
type store[K comparable, T comparable] struct {
	buckets map[K]*bucket[T]
	order   []K
	owner   map[T]K
	// retired holds in-use instances destroyed by a full clear until their
	// holder returns them.
	retired map[T]struct{}

	opts     options
	create   func(K) T
	activate func(T)
	park     func(T)
	destroy  func(T)
	names    func(K) []string
	keyField func(K) zap.Field
}

func newStore[K comparable, T comparable](opts options) *store[K, T] {
	return &store[K, T]{
		buckets:  make(map[K]*bucket[T]),
		owner:    make(map[T]K),
		retired:  make(map[T]struct{}),
		opts:     opts,
		activate: func(T) {},
		park:     func(T) {},
		destroy:  func(T) {},
		names:    func(K) []string { return nil },
		keyField: func(k K) zap.Field { return zap.Any("key", k) },
	}
}

func (s *store[K, T]) settings(k K) Settings {
	return s.opts.settingsFor(s.names(k)...)
}

// bucketFor returns the bucket for k, creating and prewarming it on first use.
func (s *store[K, T]) bucketFor(k K) *bucket[T] {
	if b, ok := s.buckets[k]; ok {
		return b
	}
	cfg := s.settings(k)
	limit := cfg.Limit
	if limit < 0 {
		limit = Unlimited
	}
	b := &bucket[T]{
		inUse:     make(map[T]struct{}),
		limit:     limit,
		staleness: cfg.Staleness,
	}
	s.buckets[k] = b
	s.order = append(s.order, k)
	if cfg.Prewarm > 0 {
		s.prewarm(k, b, cfg.Prewarm)
	}
	return b
}

// spawn creates a new instance for k. ok is false if the constructor returned
// an instance the pool already tracks.
func (s *store[K, T]) spawn(k K, b *bucket[T]) (T, bool) {
	obj := s.create(k)
	if _, dup := s.owner[obj]; dup {
		s.opts.log.Error("constructor returned a tracked instance", s.keyField(k))
		var zero T
		return zero, false
	}
	delete(s.retired, obj)
	s.owner[obj] = k
	b.created++
	return obj, true
}

// kill destroys a pool-owned instance that is in neither state.
func (s *store[K, T]) kill(b *bucket[T], obj T) {
	delete(s.owner, obj)
	b.destroyed++
	s.destroy(obj)
}

func (s *store[K, T]) get(k K) (T, bool) {
	b := s.bucketFor(k)
	var obj T
	if n := len(b.available); n > 0 {
		obj = b.available[n-1].obj
		b.available[n-1] = entry[T]{}
		b.available = b.available[:n-1]
	} else {
		if b.full() {
			s.opts.log.Debug("pool limit reached", s.keyField(k), zap.Int("limit", b.limit))
			return obj, false
		}
		var ok bool
		if obj, ok = s.spawn(k, b); !ok {
			return obj, false
		}
	}
	b.inUse[obj] = struct{}{}
	s.activate(obj)
	return obj, true
}

func (s *store[K, T]) put(obj T) bool {
	k, ok := s.owner[obj]
	if !ok {
		if _, ok := s.retired[obj]; ok {
			delete(s.retired, obj)
			s.opts.log.Debug("instance returned after clear", zap.Any("object", obj))
			return false
		}
		s.opts.log.Warn("destroying object not owned by pool", zap.Any("object", obj))
		s.destroy(obj)
		return false
	}
	b := s.buckets[k]
	if _, ok := b.inUse[obj]; !ok {
		s.opts.log.Debug("instance returned twice", s.keyField(k))
		return false
	}
	delete(b.inUse, obj)
	s.park(obj)
	if b.over() {
		s.kill(b, obj)
		return true
	}
	b.available = append(b.available, entry[T]{obj: obj, returned: s.opts.now()})
	return true
}

func (s *store[K, T]) prewarm(k K, b *bucket[T], n int) int {
	made := 0
	now := s.opts.now()
	for ; made < n && !b.full(); made++ {
		obj, ok := s.spawn(k, b)
		if !ok {
			break
		}
		s.park(obj)
		b.available = append(b.available, entry[T]{obj: obj, returned: now})
	}
	return made
}

// expireBucket destroys available instances at least as old as the key's
// staleness.
func (s *store[K, T]) expireBucket(k K, b *bucket[T]) int {
	if b.staleness == NoExpiry || len(b.available) == 0 {
		return 0
	}
	now := s.opts.now()
	kept := b.available[:0]
	culled := 0
	for _, e := range b.available {
		if now.Sub(e.returned) >= b.staleness {
			s.kill(b, e.obj)
			culled++
			continue
		}
		kept = append(kept, e)
	}
	clear(b.available[len(kept):])
	b.available = kept
	if culled > 0 {
		s.opts.log.Debug("expired stale instances", s.keyField(k), zap.Int("count", culled))
	}
	return culled
}

func (s *store[K, T]) expireKey(k K) int {
	b, ok := s.buckets[k]
	if !ok {
		return 0
	}
	return s.expireBucket(k, b)
}

func (s *store[K, T]) expire() int {
	total := 0
	for _, k := range s.order {
		total += s.expireBucket(k, s.buckets[k])
	}
	return total
}

func (s *store[K, T]) setStaleness(k K, d time.Duration) {
	if d < 0 {
		d = NoExpiry
	}
	b := s.bucketFor(k)
	b.staleness = d
	if d == 0 {
		s.expireBucket(k, b)
	}
}

func (s *store[K, T]) setLimit(k K, n int) {
	if n < 0 {
		n = Unlimited
	}
	b := s.bucketFor(k)
	b.limit = n
	culled := 0
	for b.over() && len(b.available) > 0 {
		e := b.available[0]
		b.available[0] = entry[T]{}
		b.available = b.available[1:]
		s.kill(b, e.obj)
		culled++
	}
	if culled > 0 {
		s.opts.log.Debug("pool limit shrunk", s.keyField(k),
			zap.Int("limit", n), zap.Int("destroyed", culled))
	}
}

func (s *store[K, T]) clearKey(k K, availableOnly bool) {
	b, ok := s.buckets[k]
	if !ok {
		return
	}
	for i, e := range b.available {
		s.kill(b, e.obj)
		b.available[i] = entry[T]{}
	}
	b.available = b.available[:0]
	if availableOnly {
		return
	}
	for obj := range b.inUse {
		s.kill(b, obj)
		s.retired[obj] = struct{}{}
	}
	delete(s.buckets, k)
	if i := slices.Index(s.order, k); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

func (s *store[K, T]) clearAll(availableOnly bool) {
	for _, k := range slices.Clone(s.order) {
		s.clearKey(k, availableOnly)
	}
}

func (s *store[K, T]) stats(k K) Stats {
	b, ok := s.buckets[k]
	if !ok {
		limit := s.settings(k).Limit
		if limit < 0 {
			limit = Unlimited
		}
		return Stats{Limit: limit}
	}
	return Stats{
		Available: len(b.available),
		InUse:     len(b.inUse),
		Created:   b.created,
		Destroyed: b.destroyed,
		Limit:     b.limit,
	}
}

func (s *store[K, T]) keys() []K {
	return slices.Clone(s.order)
}

func (s *store[K, T]) contains(obj T) bool {
	_, ok := s.owner[obj]
	return ok
}

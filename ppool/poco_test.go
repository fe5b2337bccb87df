package ppool

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type particle struct {
	x, y   float64
	ttl    int
	resets int
}

func (p *particle) Reset() {
	p.x, p.y, p.ttl = 0, 0, 0
	p.resets++
}

type handle struct {
	closed bool
	err    error
}

func (h *handle) Close() error {
	h.closed = true
	return h.err
}

type plain struct{ n int }

func TestPocoGetAndReturn(t *testing.T) {
	p := NewPoco()
	a, ok := GetPoco[particle](p)
	if !ok || a == nil {
		t.Fatal("GetPoco returned nothing")
	}
	a.x, a.ttl = 5, 3

	if !p.Return(a) {
		t.Fatal("Return = false")
	}
	if a.x != 0 || a.ttl != 0 || a.resets != 1 {
		t.Errorf("Reset not applied: %+v", *a)
	}
	b, _ := GetPoco[particle](p)
	if b != a {
		t.Error("GetPoco did not reuse the returned instance")
	}
	if s := StatsPoco[particle](p); s.Created != 1 || s.InUse != 1 {
		t.Errorf("Stats = %+v", s)
	}
}

func TestPocoTypesAreSeparate(t *testing.T) {
	p := NewPoco()
	SetLimitPoco[particle](p, 1)
	GetPoco[particle](p)
	if _, ok := GetPoco[particle](p); ok {
		t.Error("particle limit not enforced")
	}
	if _, ok := GetPoco[plain](p); !ok {
		t.Error("plain shares particle's limit")
	}
	keys := p.Keys()
	if len(keys) != 2 || keys[0] != reflect.TypeFor[particle]() || keys[1] != reflect.TypeFor[plain]() {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestPocoReturnForeign(t *testing.T) {
	p := NewPoco()
	tests := []struct {
		name string
		obj  any
	}{
		{"nil", nil},
		{"nil pointer", (*plain)(nil)},
		{"value", plain{}},
		{"unpooled pointer", &plain{}},
		{"slice", []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p.Return(tt.obj) {
				t.Errorf("Return(%v) = true", tt.obj)
			}
			if p.Contains(tt.obj) {
				t.Errorf("Contains(%v) = true", tt.obj)
			}
		})
	}

	h := &handle{}
	if p.Return(h) {
		t.Fatal("Return(foreign handle) = true")
	}
	if !h.closed {
		t.Error("foreign io.Closer was not closed")
	}
}

func TestPocoDoubleReturn(t *testing.T) {
	p := NewPoco()
	a, _ := GetPoco[handle](p)
	if !p.Return(a) {
		t.Fatal("Return = false")
	}
	if p.Return(a) {
		t.Error("second Return = true")
	}
	if a.closed {
		t.Error("double Return closed the instance")
	}
}

func TestPocoRegisterConstructor(t *testing.T) {
	p := NewPoco()
	RegisterPoco(p, func() *particle { return &particle{ttl: 60} })
	a, _ := GetPoco[particle](p)
	if a.ttl != 60 {
		t.Errorf("ttl = %d, want 60 from constructor", a.ttl)
	}
	RegisterPoco[particle](p, nil)
	b, _ := GetPoco[particle](p)
	if b.ttl != 0 {
		t.Errorf("ttl = %d, want 0 after unregistering", b.ttl)
	}
}

func TestPocoStalenessAndClear(t *testing.T) {
	clock := newFakeClock()
	p := NewPoco(WithClock(clock.Now))
	SetStalenessPoco[handle](p, time.Minute)

	a, _ := GetPoco[handle](p)
	b, _ := GetPoco[handle](p)
	b.err = errors.New("already closed")
	p.Return(a)
	clock.Advance(time.Minute)
	if n := p.Expire(); n != 1 || !a.closed {
		t.Fatalf("Expire = %d, closed = %v", n, a.closed)
	}

	ClearPoco[handle](p, false)
	if !b.closed {
		t.Error("Clear did not close in-use handle")
	}
	if p.Contains(b) {
		t.Error("cleared handle still tracked")
	}

	c, _ := GetPoco[handle](p)
	SetStalenessPoco[handle](p, 0)
	p.Return(c)
	if c.closed {
		t.Error("zero staleness should not destroy on Return")
	}
	if n := p.Expire(); n != 1 {
		t.Errorf("Expire with zero staleness = %d, want 1", n)
	}
}

func TestPocoPrewarmAndConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keys = map[string]Settings{
		"ppool.plain": {Limit: 3, Staleness: NoExpiry},
	}
	p := NewPoco(WithConfig(cfg))
	if n := PrewarmPoco[plain](p, 10); n != 3 {
		t.Errorf("PrewarmPoco = %d, want 3 with configured limit", n)
	}
	if s := StatsPoco[particle](p); s.Limit != Unlimited {
		t.Errorf("particle Limit = %d, want Unlimited", s.Limit)
	}
	p.ClearAll(true)
	if s := StatsPoco[plain](p); s.Available != 0 || s.Destroyed != 3 {
		t.Errorf("Stats after ClearAll = %+v", s)
	}
}

func TestPocoReturnAfterClearClosesOnce(t *testing.T) {
	p := NewPoco()
	var closes int
	RegisterPoco(p, func() *handle { return &handle{} })
	a, _ := GetPoco[handle](p)
	b, _ := GetPoco[handle](p)

	p.ClearAll(false)
	if !a.closed || !b.closed {
		t.Fatal("ClearAll did not close in-use handles")
	}
	a.closed, b.closed = false, false
	for _, h := range []*handle{a, b} {
		if p.Return(h) {
			t.Error("Return after ClearAll = true")
		}
		if h.closed {
			closes++
		}
	}
	if closes != 0 {
		t.Errorf("Return after ClearAll closed %d handles again", closes)
	}
	if s := StatsPoco[handle](p); s != (Stats{Limit: Unlimited}) {
		t.Errorf("Stats = %+v, want reset", s)
	}
}

func TestExpirePoco(t *testing.T) {
	clock := newFakeClock()
	p := NewPoco(WithClock(clock.Now))
	SetStalenessPoco[handle](p, time.Second)
	SetStalenessPoco[particle](p, time.Second)

	h, _ := GetPoco[handle](p)
	q, _ := GetPoco[particle](p)
	p.Return(h)
	p.Return(q)

	clock.Advance(500 * time.Millisecond)
	if n := ExpirePoco[handle](p); n != 0 {
		t.Errorf("ExpirePoco before staleness = %d, want 0", n)
	}
	clock.Advance(500 * time.Millisecond)
	if n := ExpirePoco[handle](p); n != 1 || !h.closed {
		t.Fatalf("ExpirePoco = %d, closed = %v", n, h.closed)
	}
	if s := StatsPoco[particle](p); s.Available != 1 {
		t.Errorf("particle Stats = %+v, want one available", s)
	}
	if n := ExpirePoco[plain](p); n != 0 {
		t.Errorf("ExpirePoco on unused type = %d, want 0", n)
	}
}

type marker struct{}

func TestPocoZeroSizeTypeRefused(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	p := NewPoco(WithLogger(zap.New(core)))

	for range 2 {
		if m, ok := GetPoco[marker](p); ok || m != nil {
			t.Fatalf("GetPoco[marker] = %p, %v, want nil, false", m, ok)
		}
	}
	if n := PrewarmPoco[marker](p, 3); n != 0 {
		t.Errorf("PrewarmPoco[marker] = %d, want 0", n)
	}
	if got := logs.FilterMessage("zero-size types cannot be pooled").Len(); got != 3 {
		t.Errorf("logged %d refusals, want 3", got)
	}
	if len(p.Keys()) != 0 {
		t.Errorf("Keys() = %v, want empty", p.Keys())
	}
}

package prandom

import (
	"math"
	"math/rand/v2"
	"time"
)

// Rand is a thin convenience wrapper around math/rand/v2. A Rand built with New
// is deterministic for a given seed and is not safe for concurrent use.
type Rand struct {
	src rand.Source
	r   *rand.Rand
}

// New creates a deterministic Rand over a PCG source seeded with seed.
func New(seed uint64) *Rand {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Rand{src: src, r: rand.New(src)}
}

// NewTime creates a Rand seeded from the wall clock.
func NewTime() *Rand {
	return New(uint64(time.Now().UnixNano()))
}

// globalSource draws from the math/rand/v2 top-level generator, which is safe
// for concurrent use.
type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

var defaultRand = &Rand{src: globalSource{}, r: rand.New(globalSource{})}

// Default returns the shared generator backing the package-level functions. It
// is safe for concurrent use but cannot be seeded.
func Default() *Rand {
	return defaultRand
}

func or(r *Rand) *Rand {
	if r == nil {
		return defaultRand
	}
	return r
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *Rand) Source() *rand.Rand { return r.r }

// Uint64 returns a uniformly distributed 64-bit value.
func (r *Rand) Uint64() uint64 { return r.r.Uint64() }

// Int64 returns a non-negative pseudo-random int64.
func (r *Rand) Int64() int64 { return r.r.Int64() }

// Float returns a float64 in [min, max). Bounds may be given in either order.
func (r *Rand) Float(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return min + r.r.Float64()*(max-min)
}

// Float01 returns a float64 in [0, 1).
func (r *Rand) Float01() float64 {
	return r.r.Float64()
}

// Int returns an int in [min, max], both inclusive. Any range is allowed,
// including [math.MinInt, math.MaxInt].
func (r *Rand) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	span := uint64(uint(max) - uint(min))
	switch {
	case span < math.MaxInt:
		return min + r.r.IntN(int(span)+1)
	case span == math.MaxUint64:
		return int(r.r.Uint64())
	default:
		return min + int(r.r.Uint64N(span+1))
	}
}

// IntN returns an int in [0, n). n <= 0 yields 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Chance reports true with probability p. p <= 0 never succeeds and p >= 1
// always does.
func (r *Rand) Chance(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}

// Bool returns a random boolean value.
func (r *Rand) Bool() bool {
	return r.r.IntN(2) == 1
}

// Sign returns -1 or 1 with equal probability.
func (r *Rand) Sign() int {
	if r.Bool() {
		return 1
	}
	return -1
}

// Deviate returns v scaled by a random factor in [1-fraction, 1+fraction).
func (r *Rand) Deviate(v, fraction float64) float64 {
	fraction = math.Abs(fraction)
	return v * r.Float(1-fraction, 1+fraction)
}

// Roll sums n rolls of a die with the given number of sides. Each die shows
// 1..sides. Non-positive n or sides yields 0.
func (r *Rand) Roll(n, sides int) int {
	if n <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for range n {
		total += 1 + r.r.IntN(sides)
	}
	return total
}

// WeightedIndex picks an index with probability proportional to its weight.
// Negative weights count as zero. Returns -1 when every weight is zero.
func (r *Rand) WeightedIndex(weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	x := r.r.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if x < w {
			return i
		}
		x -= w
	}
	// Floating point residue lands on the last positive weight.
	return last
}

// --- Package-level convenience (backed by Default) ---

// Float returns a float64 in [min, max).
func Float(min, max float64) float64 { return defaultRand.Float(min, max) }

// Int returns an int in [min, max], both inclusive.
func Int(min, max int) int { return defaultRand.Int(min, max) }

// Chance reports true with probability p.
func Chance(p float64) bool { return defaultRand.Chance(p) }

// Bool returns a random boolean value.
func Bool() bool { return defaultRand.Bool() }

// Sign returns -1 or 1.
func Sign() int { return defaultRand.Sign() }

// Roll sums n dice with the given number of sides.
func Roll(n, sides int) int { return defaultRand.Roll(n, sides) }

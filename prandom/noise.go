package prandom

import (
	"github.com/aquilax/go-perlin"

	"github.com/pheney/plib/pmath"
)

// Default Perlin parameters. Alpha is the weight of each successive octave,
// Beta the frequency multiplier.
const (
	DefaultNoiseAlpha   = 2.0
	DefaultNoiseBeta    = 2.0
	DefaultNoiseOctaves = 3
)

// Noise is seeded Perlin noise. Output is roughly in [-1, 1].
type Noise struct {
	p    *perlin.Perlin
	seed int64
}

// NewNoise creates Perlin noise with the default parameters.
func NewNoise(seed int64) *Noise {
	return NewNoiseWith(DefaultNoiseAlpha, DefaultNoiseBeta, DefaultNoiseOctaves, seed)
}

// NewNoiseWith creates Perlin noise with explicit parameters. octaves below 1
// are raised to 1.
func NewNoiseWith(alpha, beta float64, octaves int, seed int64) *Noise {
	if octaves < 1 {
		octaves = 1
	}
	return &Noise{p: perlin.NewPerlin(alpha, beta, int32(octaves), seed), seed: seed}
}

// Noise creates Perlin noise seeded from r.
func (r *Rand) Noise() *Noise {
	return NewNoise(r.Int64())
}

// Seed returns the seed the noise was built with.
func (n *Noise) Seed() int64 { return n.seed }

// At1 samples 1D noise.
func (n *Noise) At1(x float64) float64 { return n.p.Noise1D(x) }

// At2 samples 2D noise.
func (n *Noise) At2(x, y float64) float64 { return n.p.Noise2D(x, y) }

// At3 samples 3D noise.
func (n *Noise) At3(x, y, z float64) float64 { return n.p.Noise3D(x, y, z) }

// Norm2 samples 2D noise remapped to [0, 1].
func (n *Noise) Norm2(x, y float64) float64 {
	return pmath.Clamp01((n.At2(x, y) + 1) / 2)
}

// Flow returns a 2D vector field sample at (x, y, t), using offset lookups for
// the two components.
func (n *Noise) Flow(x, y, t float64) pmath.Vec2 {
	return pmath.Vec2{
		X: n.At3(x, y, t),
		Y: n.At3(x+100, y+100, t),
	}
}

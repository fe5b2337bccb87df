// Package plib is a set of small gameplay utility libraries for Go games,
// built to sit next to an engine such as [Ebitengine] rather than inside it.
//
// The root package holds no code. Import the subpackages you need:
//
//   - [github.com/pheney/plib/pmath]: scalar helpers, angles, vectors,
//     rectangles, affine transforms, statistics, ballistics and float32 fast
//     paths.
//   - [github.com/pheney/plib/pcolor]: float RGBA colors, hex parsing, HSV/HSL,
//     blend formulas, adjustments and palettes stored as YAML or CSV.
//   - [github.com/pheney/plib/pcolor/ebitenx]: conversions from pcolor to
//     ebiten.ColorScale and ebiten.Blend.
//   - [github.com/pheney/plib/prandom]: a seedable RNG with ranges, dice,
//     weighted choice, geometric sampling, distributions and Perlin noise.
//   - [github.com/pheney/plib/ptween]: eased animation of float64 fields.
//   - [github.com/pheney/plib/ppool]: object pools keyed by prototype or type,
//     with limits, staleness expiry and YAML configuration.
//
// # Quick start
//
//	rng := prandom.New(1)
//	pool := ppool.New(ppool.Hooks[*Bullet]{
//		New: func(p *Bullet) *Bullet { b := *p; return &b },
//	}, ppool.WithLogger(logger))
//
//	b, ok := pool.Get(bulletProto)
//	if ok {
//		b.Vel = rng.UnitVec2().Mul(300)
//		b.Tint = rng.Hue(0.8, 1)
//		fade := ptween.Color(&b.Tint, pcolor.Transparent, 0.4, ease.InQuad)
//		...
//	}
//
// None of the packages are safe for concurrent use except the package-level
// prandom functions.
//
// Runnable programs live under examples/: tweens (an Ebitengine window),
// palette (a palette generator CLI) and pool (a headless spawn simulation).
//
// [Ebitengine]: https://ebitengine.org
package plib

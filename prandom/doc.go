// Package prandom provides seeded random helpers for gameplay code.
//
// A [Rand] created with [New] is deterministic for a seed, which keeps
// replays and tests stable:
//
//	r := prandom.New(42)
//	dmg := r.Int(3, 8)
//	pos := r.InsideCircle(50)
//	loot, _ := prandom.PickWeighted(r, items, weights)
//
// Distributions are drawn through gonum's distuv on the same source, and
// [Noise] wraps Perlin noise. The package-level functions use [Default],
// which is safe for concurrent use.
package prandom

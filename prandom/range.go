package prandom

import "github.com/pheney/plib/pmath"

// Range is a general-purpose min/max range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a random float64 in [Min, Max). A nil r uses Default.
func (rg Range) Random(r *Rand) float64 {
	if rg.Min == rg.Max {
		return rg.Min
	}
	return or(r).Float(rg.Min, rg.Max)
}

// Span returns Max - Min.
func (rg Range) Span() float64 {
	return rg.Max - rg.Min
}

// Contains reports whether v lies in [Min, Max].
func (rg Range) Contains(v float64) bool {
	return v >= rg.Min && v <= rg.Max
}

// Clamp limits v to the range.
func (rg Range) Clamp(v float64) float64 {
	return pmath.Clamp(v, rg.Min, rg.Max)
}

// Lerp maps t in [0, 1] onto the range.
func (rg Range) Lerp(t float64) float64 {
	return pmath.Lerp(rg.Min, rg.Max, t)
}

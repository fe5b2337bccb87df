// Package ptween animates float64 fields with gween easing curves.
//
// A [Group] drives up to four fields at once and writes the eased values
// straight into them on every Update. There is no global manager; callers
// update their groups each frame:
//
//	g := ptween.Vec2(&pos, pmath.Vec2{X: 100, Y: 40}, 0.5, ease.OutBack)
//	for !g.Update(dt) {
//		...
//	}
package ptween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/pheney/plib/pcolor"
	"github.com/pheney/plib/pmath"
)

// MaxFields is the number of fields a single Group can drive.
const MaxFields = 4

type track struct {
	field    *float64
	from, to float64
	tween    *gween.Tween
}

// Group animates up to MaxFields float64 fields simultaneously.
type Group struct {
	tracks   [MaxFields]track
	count    int
	duration float32
	fn       ease.TweenFunc

	// Alive, when set, is checked before each Update. Returning false stops
	// the group without writing to its fields.
	Alive func() bool
	// OnDone runs once when the group finishes.
	OnDone func()

	Done bool
}

func newGroup(duration float32, fn ease.TweenFunc) *Group {
	if fn == nil {
		fn = ease.Linear
	}
	return &Group{duration: duration, fn: fn}
}

func (g *Group) add(field *float64, to float64) {
	if g.count == MaxFields || field == nil {
		return
	}
	from := *field
	g.tracks[g.count] = track{
		field: field,
		from:  from,
		to:    to,
		tween: gween.New(float32(from), float32(to), g.duration, g.fn),
	}
	g.count++
}

// Len returns the number of fields the group drives.
func (g *Group) Len() int { return g.count }

// Update advances every tween by dt seconds and writes the values to the
// target fields. It reports whether the group is done.
func (g *Group) Update(dt float32) bool {
	if g.Done {
		return true
	}
	if g.Alive != nil && !g.Alive() {
		g.Done = true
		return true
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		tr := &g.tracks[i]
		val, finished := tr.tween.Update(dt)
		if finished {
			// Snap to the exact target rather than the float32 result.
			*tr.field = tr.to
		} else {
			*tr.field = float64(val)
			allDone = false
		}
	}
	g.Done = allDone
	if g.Done && g.OnDone != nil {
		g.OnDone()
	}
	return g.Done
}

// Reset rewinds the group to its starting values and writes them back to the
// fields.
func (g *Group) Reset() {
	for i := 0; i < g.count; i++ {
		tr := &g.tracks[i]
		tr.tween = gween.New(float32(tr.from), float32(tr.to), g.duration, g.fn)
		*tr.field = tr.from
	}
	g.Done = false
}

// Value animates a single field to the given value.
func Value(field *float64, to float64, duration float32, fn ease.TweenFunc) *Group {
	g := newGroup(duration, fn)
	g.add(field, to)
	return g
}

// Values animates pairs of fields and targets. Extra pairs past MaxFields are
// ignored.
func Values(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *Group {
	g := newGroup(duration, fn)
	for i := 0; i < len(fields) && i < len(to); i++ {
		g.add(fields[i], to[i])
	}
	return g
}

// Vec2 animates both components of v.
func Vec2(v *pmath.Vec2, to pmath.Vec2, duration float32, fn ease.TweenFunc) *Group {
	g := newGroup(duration, fn)
	g.add(&v.X, to.X)
	g.add(&v.Y, to.Y)
	return g
}

// Color animates all four components of c.
func Color(c *pcolor.Color, to pcolor.Color, duration float32, fn ease.TweenFunc) *Group {
	g := newGroup(duration, fn)
	g.add(&c.R, to.R)
	g.add(&c.G, to.G)
	g.add(&c.B, to.B)
	g.add(&c.A, to.A)
	return g
}

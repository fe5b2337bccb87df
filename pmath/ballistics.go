package pmath

import (
	"math"
	"sort"
)

// SolveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in ascending
// order. A zero a degrades to the linear case. A repeated root is returned once.
func SolveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(disc)
	// Numerically stable form avoids cancellation when b ~ sq.
	q := -0.5 * (b + math.Copysign(sq, b))
	r0 := q / a
	r1 := c / q
	roots := []float64{r0, r1}
	sort.Float64s(roots)
	return roots
}

// LaunchAngles returns the low and high elevation angles (radians) that send a
// projectile with the given muzzle speed to a target dx away horizontally and
// dy above the muzzle, under downward gravity of magnitude gravity. ok is false
// when the target is out of reach.
func LaunchAngles(speed, gravity, dx, dy float64) (low, high float64, ok bool) {
	dx = math.Abs(dx)
	v2 := speed * speed
	if gravity == 0 {
		a := math.Atan2(dy, dx)
		return a, a, speed > 0
	}
	if dx == 0 {
		if dy > 0 && v2 < 2*gravity*dy {
			return 0, 0, false
		}
		a := math.Copysign(math.Pi/2, dy)
		if dy == 0 {
			a = math.Pi / 2
		}
		return a, a, true
	}
	disc := v2*v2 - gravity*(gravity*dx*dx+2*dy*v2)
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	low = math.Atan((v2 - sq) / (gravity * dx))
	high = math.Atan((v2 + sq) / (gravity * dx))
	return low, high, true
}

// FlightTime returns how long a projectile launched at angle with speed takes to
// come down to height dy relative to the muzzle. ok is false if it never does.
func FlightTime(speed, angle, gravity, dy float64) (float64, bool) {
	vy := speed * math.Sin(angle)
	// dy = vy*t - g*t^2/2  =>  (g/2)t^2 - vy*t + dy = 0
	roots := SolveQuadratic(gravity/2, -vy, dy)
	for i := len(roots) - 1; i >= 0; i-- {
		if roots[i] > 0 {
			return roots[i], true
		}
	}
	return 0, false
}

// MaxRange returns the greatest horizontal distance reachable on flat ground.
func MaxRange(speed, gravity float64) float64 {
	if gravity <= 0 {
		return math.Inf(1)
	}
	return speed * speed / gravity
}

// InterceptTime returns the earliest time at which a projectile fired from
// shooter at projSpeed can meet a target at target moving with constant
// targetVel.
func InterceptTime(shooter, target, targetVel Vec3, projSpeed float64) (float64, bool) {
	d := target.Sub(shooter)
	a := targetVel.Dot(targetVel) - projSpeed*projSpeed
	b := 2 * d.Dot(targetVel)
	c := d.Dot(d)
	if c == 0 {
		return 0, true
	}
	for _, t := range SolveQuadratic(a, b, c) {
		if t > 0 {
			return t, true
		}
	}
	return 0, false
}

// LeadTarget returns the point to aim at so that a projectile fired from
// shooter meets the moving target. When no intercept exists the target's current
// position is returned with ok false.
func LeadTarget(shooter, target, targetVel Vec3, projSpeed float64) (Vec3, bool) {
	t, ok := InterceptTime(shooter, target, targetVel, projSpeed)
	if !ok {
		return target, false
	}
	return target.Add(targetVel.Mul(t)), true
}

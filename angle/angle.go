// Package angle holds a rotation value that remembers whether it was
// specified in degrees or radians. Values are immutable: every
// operation returns a new Angle.
//
// Angles compare by the magnitude of their bounded radian measure,
// so an angle and its mirror reflection (90 and -90 degrees, say)
// compare as equal. Callers that need to distinguish the direction of
// a rotation should compare Bound().Radians() values directly.
package angle

import (
	"fmt"
	"math"

	"zappem.net/pub/math/geom"
)

// Angle is a rotation held in the unit it was constructed with. The
// zero value is a zero radian rotation.
type Angle struct {
	v   float64
	deg bool
}

// FromDegrees returns an angle of d degrees.
func FromDegrees(d float64) Angle {
	return Angle{v: d, deg: true}
}

// FromRadians returns an angle of r radians.
func FromRadians(r float64) Angle {
	return Angle{v: r}
}

// FromGeom converts a geom.Angle, which is always held in radians.
func FromGeom(g geom.Angle) Angle {
	return FromRadians(g.Rad())
}

// Geom returns the angle as a geom.Angle.
func (a Angle) Geom() geom.Angle {
	return geom.Angle(a.Radians())
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	if a.deg {
		return a.v
	}
	return a.v * 180 / math.Pi
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	if a.deg {
		return geom.Degrees(a.v).Rad()
	}
	return a.v
}

// InDegrees reports whether the angle was constructed from degrees.
func (a Angle) InDegrees() bool {
	return a.deg
}

// Bound returns an equivalent angle in the half-open range (-π, π].
// The result is always expressed in radians. The reduction is O(1)
// for inputs of any finite magnitude.
func (a Angle) Bound() Angle {
	r := a.Radians()
	switch {
	case r == -math.Pi:
		return FromRadians(math.Pi)
	case math.Abs(r) <= math.Pi:
		return FromRadians(r)
	}
	const turn = 2 * math.Pi
	// math.Mod is exact, so this stays finite for any finite r.
	b := math.Mod(r+math.Pi, turn)
	if b <= 0 {
		b += turn
	}
	b -= math.Pi
	return FromRadians(b)
}

// magnitude is the value on which comparisons are made.
func (a Angle) magnitude() float64 {
	return math.Abs(a.Bound().Radians())
}

// Compare returns -1, 0 or +1 as the magnitude of the bounded a is
// less than, equal to or greater than that of b.
func (a Angle) Compare(b Angle) int {
	ma, mb := a.magnitude(), b.magnitude()
	switch {
	case ma < mb:
		return -1
	case ma > mb:
		return 1
	}
	return 0
}

// Equal reports whether a and b have the same bounded magnitude. Note
// this treats a rotation and its reflection as equal.
func (a Angle) Equal(b Angle) bool {
	return a.Compare(b) == 0
}

// Less reports whether a has a smaller bounded magnitude than b.
func (a Angle) Less(b Angle) bool {
	return a.Compare(b) < 0
}

// Add returns a+b. Like all arithmetic on Angles, the operands are
// combined in degrees and the result is a degree valued Angle, so
// radian-only arithmetic pays a round trip through degrees.
func (a Angle) Add(b Angle) Angle {
	return FromDegrees(a.Degrees() + b.Degrees())
}

// Sub returns a-b, computed in degrees.
func (a Angle) Sub(b Angle) Angle {
	return FromDegrees(a.Degrees() - b.Degrees())
}

// Mul returns a scaled by k, computed in degrees.
func (a Angle) Mul(k float64) Angle {
	return FromDegrees(a.Degrees() * k)
}

// Div returns a divided by k, computed in degrees.
func (a Angle) Div(k float64) Angle {
	return FromDegrees(a.Degrees() / k)
}

// Neg returns the reversed rotation, keeping the original unit.
func (a Angle) Neg() Angle {
	return Angle{v: -a.v, deg: a.deg}
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return a.Geom().S()
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return a.Geom().C()
}

// String formats the angle in the unit it was constructed with.
func (a Angle) String() string {
	if a.deg {
		return fmt.Sprintf("%g°", a.v)
	}
	return fmt.Sprintf("%grad", a.v)
}

// Package vec holds three component vectors and points whose
// components all share one physical unit. The unit is a type
// parameter, so adding a Vector[Micrometre] to a Vector[Volt] does not
// compile.
//
// Spherical coordinates follow the physics convention: inclination is
// measured from +z, azimuth from +x towards +y.
package vec

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"zappem.net/pub/math/geom"

	"zappem.net/pub/kinematics/scan/angle"
)

// ErrZeroMagnitude is returned when an operation needs a direction
// and the vector has none.
var ErrZeroMagnitude = errors.New("vector has zero magnitude")

// Vector is a displacement with components measured in unit U.
type Vector[U Unit] struct {
	r r3.Vec
}

// New returns the vector (x, y, z).
func New[U Unit](x, y, z float64) Vector[U] {
	return Vector[U]{r: r3.Vec{X: x, Y: y, Z: z}}
}

// Spherical returns the vector of length radius pointing along the
// direction given by inclination (from +z) and azimuth (from +x).
func Spherical[U Unit](radius float64, inclination, azimuth angle.Angle) Vector[U] {
	si, ci := inclination.Sin(), inclination.Cos()
	sa, ca := azimuth.Sin(), azimuth.Cos()
	return New[U](radius*si*ca, radius*si*sa, radius*ci)
}

// X returns the x component.
func (v Vector[U]) X() float64 { return v.r.X }

// Y returns the y component.
func (v Vector[U]) Y() float64 { return v.r.Y }

// Z returns the z component.
func (v Vector[U]) Z() float64 { return v.r.Z }

// Components returns x, y and z in that order.
func (v Vector[U]) Components() [3]float64 {
	return [3]float64{v.r.X, v.r.Y, v.r.Z}
}

// Magnitude returns the length of v.
func (v Vector[U]) Magnitude() float64 {
	return r3.Norm(v.r)
}

// clamp limits a cosine to [-1, 1]; rounding can push a computed
// cosine just outside that range, where math.Acos returns NaN.
func clamp(c float64) float64 {
	return math.Max(-1, math.Min(1, c))
}

// Inclination returns the angle between v and +z.
func (v Vector[U]) Inclination() (angle.Angle, error) {
	m := v.Magnitude()
	if geom.Zeroish(m) {
		return angle.Angle{}, ErrZeroMagnitude
	}
	return angle.FromRadians(math.Acos(clamp(v.r.Z / m))), nil
}

// Azimuth returns the angle of the projection of v onto the xy plane,
// measured from +x towards +y.
func (v Vector[U]) Azimuth() angle.Angle {
	return angle.FromRadians(math.Atan2(v.r.Y, v.r.X))
}

// Angle returns the unsigned angle between v and u, in [0, π]. It is
// taken from atan2(|v×u|, v·u), accurate at 0 and π alike.
func (v Vector[U]) Angle(u Vector[U]) (angle.Angle, error) {
	if geom.Zeroish(v.Magnitude() * u.Magnitude()) {
		return angle.Angle{}, ErrZeroMagnitude
	}
	return angle.FromRadians(math.Atan2(r3.Norm(r3.Cross(v.r, u.r)), r3.Dot(v.r, u.r))), nil
}

// Dot returns the scalar product of v and u. The result carries the
// square of U, which the type does not track.
func (v Vector[U]) Dot(u Vector[U]) float64 {
	return r3.Dot(v.r, u.r)
}

// Cross returns the vector product v×u.
func (v Vector[U]) Cross(u Vector[U]) Vector[U] {
	return Vector[U]{r: r3.Cross(v.r, u.r)}
}

// Add returns v+u.
func (v Vector[U]) Add(u Vector[U]) Vector[U] {
	return Vector[U]{r: r3.Add(v.r, u.r)}
}

// Sub returns v-u.
func (v Vector[U]) Sub(u Vector[U]) Vector[U] {
	return Vector[U]{r: r3.Sub(v.r, u.r)}
}

// Scale returns v multiplied by k.
func (v Vector[U]) Scale(k float64) Vector[U] {
	return Vector[U]{r: r3.Scale(k, v.r)}
}

// Div returns v divided by k.
func (v Vector[U]) Div(k float64) Vector[U] {
	return Vector[U]{r: r3.Scale(1/k, v.r)}
}

// Neg returns -v.
func (v Vector[U]) Neg() Vector[U] {
	return Vector[U]{r: r3.Scale(-1, v.r)}
}

// Unit returns the vector of length one parallel to v. A zero vector
// has no direction and yields ErrZeroMagnitude.
func (v Vector[U]) Unit() (Vector[U], error) {
	if geom.Zeroish(v.Magnitude()) {
		return Vector[U]{}, ErrZeroMagnitude
	}
	return Vector[U]{r: r3.Unit(v.r)}, nil
}

// Equals reports whether v and u agree to within geom.Zeroish in each
// component.
func (v Vector[U]) Equals(u Vector[U]) bool {
	d := r3.Sub(v.r, u.r)
	return geom.Zeroish(d.X) && geom.Zeroish(d.Y) && geom.Zeroish(d.Z)
}

func (v Vector[U]) String() string {
	return fmt.Sprintf("(%g, %g, %g)%s", v.r.X, v.r.Y, v.r.Z, symbol[U]())
}

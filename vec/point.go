package vec

import (
	"fmt"

	"zappem.net/pub/kinematics/scan/angle"
)

// Point is a location measured in unit U. It is held as the
// displacement of the location from the origin.
type Point[U Unit] struct {
	v Vector[U]
}

// NewPoint returns the point at (x, y, z).
func NewPoint[U Unit](x, y, z float64) Point[U] {
	return Point[U]{v: New[U](x, y, z)}
}

// Origin returns the point (0, 0, 0).
func Origin[U Unit]() Point[U] {
	return Point[U]{}
}

// At returns the point displaced by v from the origin.
func At[U Unit](v Vector[U]) Point[U] {
	return Point[U]{v: v}
}

// X returns the x coordinate.
func (p Point[U]) X() float64 { return p.v.X() }

// Y returns the y coordinate.
func (p Point[U]) Y() float64 { return p.v.Y() }

// Z returns the z coordinate.
func (p Point[U]) Z() float64 { return p.v.Z() }

// Vector returns the displacement of p from the origin.
func (p Point[U]) Vector() Vector[U] {
	return p.v
}

// Sub returns the displacement that takes q to p.
func (p Point[U]) Sub(q Point[U]) Vector[U] {
	return p.v.Sub(q.v)
}

// Add returns p displaced by v.
func (p Point[U]) Add(v Vector[U]) Point[U] {
	return Point[U]{v: p.v.Add(v)}
}

// Distance returns the length of the line joining p and q.
func (p Point[U]) Distance(q Point[U]) float64 {
	return p.Sub(q).Magnitude()
}

// Radius returns the distance of p from the origin.
func (p Point[U]) Radius() float64 {
	return p.v.Magnitude()
}

// Inclination returns the angle between +z and the line from the
// origin to p.
func (p Point[U]) Inclination() (angle.Angle, error) {
	return p.v.Inclination()
}

// Azimuth returns the angle from +x of p projected onto the xy plane.
func (p Point[U]) Azimuth() angle.Angle {
	return p.v.Azimuth()
}

// spherical decomposes p. The origin has no inclination.
func (p Point[U]) spherical() (float64, angle.Angle, angle.Angle, error) {
	incl, err := p.Inclination()
	if err != nil {
		return 0, angle.Angle{}, angle.Angle{}, err
	}
	return p.Radius(), incl, p.Azimuth(), nil
}

// WithRadius returns the point at distance r from the origin in the
// direction of p. The direction is recomputed from the Cartesian
// coordinates, so repeated updates accumulate conversion error.
func (p Point[U]) WithRadius(r float64) (Point[U], error) {
	_, incl, az, err := p.spherical()
	if err != nil {
		return Point[U]{}, err
	}
	return At(Spherical[U](r, incl, az)), nil
}

// WithInclination returns p rotated to inclination a, keeping its
// radius and azimuth.
func (p Point[U]) WithInclination(a angle.Angle) (Point[U], error) {
	r, _, az, err := p.spherical()
	if err != nil {
		return Point[U]{}, err
	}
	return At(Spherical[U](r, a, az)), nil
}

// WithAzimuth returns p rotated to azimuth a, keeping its radius and
// inclination.
func (p Point[U]) WithAzimuth(a angle.Angle) (Point[U], error) {
	r, incl, _, err := p.spherical()
	if err != nil {
		return Point[U]{}, err
	}
	return At(Spherical[U](r, incl, a)), nil
}

// Equals reports whether p and q coincide to within geom.Zeroish.
func (p Point[U]) Equals(q Point[U]) bool {
	return p.v.Equals(q.v)
}

func (p Point[U]) String() string {
	return fmt.Sprintf("[%g, %g, %g]%s", p.v.X(), p.v.Y(), p.v.Z(), symbol[U]())
}

package scan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Path is an ordered scan over a lattice. The order of the points is
// the order in which they are visited. Paths are immutable; they are
// only obtained from the New* functions and the Repeat* methods.
type Path struct {
	points []Index
	origin Coordinate
	scale  Pair
	plane  Plane
}

// Len returns the number of points in the path.
func (p Path) Len() int {
	return len(p.points)
}

// Points returns a copy of the path's lattice points in visiting order.
func (p Path) Points() []Index {
	return append([]Index(nil), p.points...)
}

// Origin returns the position of lattice index (0,0).
func (p Path) Origin() Coordinate {
	return p.origin
}

// Scale returns the distance between neighbouring lattice points.
func (p Path) Scale() Pair {
	return p.scale
}

// Plane returns the plane the lattice is laid out in.
func (p Path) Plane() Plane {
	return p.plane
}

// PointAtIndex returns the i'th visited lattice point.
func (p Path) PointAtIndex(i int) (Index, error) {
	if i < 0 || i >= len(p.points) {
		return Index{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexRange, i, len(p.points))
	}
	return p.points[i], nil
}

// CoordinatesAtIndex returns the position of the i'th visited point.
func (p Path) CoordinatesAtIndex(i int) (Coordinate, error) {
	idx, err := p.PointAtIndex(i)
	if err != nil {
		return Coordinate{}, err
	}
	return p.CoordinateForPoint(idx), nil
}

// CoordinateForPoint maps a lattice index to its position. The axis
// not addressed by the path's plane keeps the origin's value.
func (p Path) CoordinateForPoint(idx Index) Coordinate {
	a := p.scale.X.Mul(decimal.NewFromInt(int64(idx.X)))
	b := p.scale.Y.Mul(decimal.NewFromInt(int64(idx.Y)))
	c := p.origin
	switch p.plane {
	case XZ:
		c.X = c.X.Add(a)
		c.Z = c.Z.Add(b)
	case YZ:
		c.Y = c.Y.Add(a)
		c.Z = c.Z.Add(b)
	default:
		c.X = c.X.Add(a)
		c.Y = c.Y.Add(b)
	}
	return c
}

// Coordinates returns the positions of all points in visiting order.
func (p Path) Coordinates() []Coordinate {
	cs := make([]Coordinate, len(p.points))
	for i, idx := range p.points {
		cs[i] = p.CoordinateForPoint(idx)
	}
	return cs
}

// RepeatFirstPoint returns a copy of the path that visits its first
// point twice. This gives an external trigger a point to settle on
// before the scan proper.
func (p Path) RepeatFirstPoint() Path {
	if len(p.points) == 0 {
		return p
	}
	pts := make([]Index, 0, len(p.points)+1)
	pts = append(pts, p.points[0])
	pts = append(pts, p.points...)
	p.points = pts
	return p
}

// RepeatLastPoint returns a copy of the path that visits its last
// point twice.
func (p Path) RepeatLastPoint() Path {
	if len(p.points) == 0 {
		return p
	}
	pts := make([]Index, 0, len(p.points)+1)
	pts = append(pts, p.points...)
	pts = append(pts, p.points[len(p.points)-1])
	p.points = pts
	return p
}

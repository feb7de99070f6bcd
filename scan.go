// Package scan generates the ordered sequence of lattice points that
// an instrument visits while scanning a rectangular region, and maps
// those points to positions in micrometres.
//
// A Path is laid out on a two dimensional integer lattice. Each
// lattice index (X, Y) is scaled by the path's step sizes and offset
// from its origin in one of three planes:
//
//	XY = index X moves along x, index Y along y, z held at origin
//	XZ = index X moves along x, index Y along z, y held at origin
//	YZ = index X moves along y, index Y along z, x held at origin
//
// Micrometre arithmetic is done in decimal so that long scans do not
// accumulate binary rounding drift.
package scan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"zappem.net/pub/kinematics/scan/vec"
)

// Err* are the errors exported by this package.
var (
	ErrBadStep    = errors.New("step size must be positive")
	ErrBadGrid    = errors.New("grid size must not be negative")
	ErrBadCount   = errors.New("number of points must be positive")
	ErrBadFlyback = errors.New("flyback skip must be positive")
	ErrEmptyPath  = errors.New("grid holds no points")
	ErrIndexRange = errors.New("index out of range")
	ErrBadPlane   = errors.New("unknown plane")

	ErrTooManyPoints = errors.New("too many points")
)

// MaxPoints is the largest number of points, flyback moves included,
// that a generated path may hold.
const MaxPoints = 1 << 24

// Plane selects the two spatial axes addressed by lattice indices.
type Plane int

// The scanning planes.
const (
	XY Plane = iota
	XZ
	YZ
)

func (p Plane) String() string {
	switch p {
	case XY:
		return "XY"
	case XZ:
		return "XZ"
	case YZ:
		return "YZ"
	}
	return fmt.Sprintf("Plane(%d)", int(p))
}

func (p Plane) valid() bool {
	return p == XY || p == XZ || p == YZ
}

// ParsePlane converts a plane name, in any case, to a Plane.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "XY":
		return XY, nil
	case "XZ":
		return XZ, nil
	case "YZ":
		return YZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadPlane, s)
}

// Index is a point on the scan lattice.
type Index struct {
	X, Y int
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.X, i.Y)
}

// Pair holds a per-axis length in micrometres, X for the first lattice
// axis and Y for the second.
type Pair struct {
	X, Y decimal.Decimal
}

// Square returns the Pair with d on both axes.
func Square(d decimal.Decimal) Pair {
	return Pair{X: d, Y: d}
}

// Counts holds per-axis numbers of points.
type Counts struct {
	X, Y int
}

// Coordinate is an exact position in micrometres.
type Coordinate struct {
	X, Y, Z decimal.Decimal
}

// Point converts c to a floating point vec.Point.
func (c Coordinate) Point() vec.Point[vec.Micrometre] {
	return vec.NewPoint[vec.Micrometre](c.X.InexactFloat64(), c.Y.InexactFloat64(), c.Z.InexactFloat64())
}

// Equal reports whether c and d are the same position.
func (c Coordinate) Equal(d Coordinate) bool {
	return c.X.Equal(d.X) && c.Y.Equal(d.Y) && c.Z.Equal(d.Z)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("[%s, %s, %s]um", c.X, c.Y, c.Z)
}

// FromPoint converts a floating point position to a Coordinate.
func FromPoint(p vec.Point[vec.Micrometre]) Coordinate {
	return Coordinate{
		X: decimal.NewFromFloat(p.X()),
		Y: decimal.NewFromFloat(p.Y()),
		Z: decimal.NewFromFloat(p.Z()),
	}
}

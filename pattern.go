package scan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultFlybackSkip is the distance, in micrometres, covered by each
// flyback move of a raster unless WithFlybackSkip says otherwise.
var DefaultFlybackSkip = decimal.NewFromInt(1)

var maxPoints = decimal.NewFromInt(MaxPoints)

// checkGrid validates the plane, grid and step sizes of a step
// parameterized path.
func checkGrid(gridSize, stepSize Pair, plane Plane) error {
	if !plane.valid() {
		return fmt.Errorf("%w: %v", ErrBadPlane, plane)
	}
	if gridSize.X.IsNegative() || gridSize.Y.IsNegative() {
		return fmt.Errorf("%w: %s x %s", ErrBadGrid, gridSize.X, gridSize.Y)
	}
	if !stepSize.X.IsPositive() || !stepSize.Y.IsPositive() {
		return fmt.Errorf("%w: %s x %s", ErrBadStep, stepSize.X, stepSize.Y)
	}
	return nil
}

// checkCounts validates the plane, grid size and point counts of a
// point count parameterized path.
func checkCounts(gridSize Pair, n Counts, plane Plane) error {
	if !plane.valid() {
		return fmt.Errorf("%w: %v", ErrBadPlane, plane)
	}
	if gridSize.X.IsNegative() || gridSize.Y.IsNegative() {
		return fmt.Errorf("%w: %s x %s", ErrBadGrid, gridSize.X, gridSize.Y)
	}
	if n.X <= 0 || n.Y <= 0 {
		return fmt.Errorf("%w: %d x %d", ErrBadCount, n.X, n.Y)
	}
	if n.X > MaxPoints || n.Y > MaxPoints {
		return fmt.Errorf("%w: %d x %d", ErrTooManyPoints, n.X, n.Y)
	}
	return nil
}

// checkTotal refuses paths longer than MaxPoints. Callers pass axis
// lengths no larger than MaxPoints+1, so the product cannot overflow.
func checkTotal(total int64) error {
	if total > MaxPoints {
		return fmt.Errorf("%w: %d > %d", ErrTooManyPoints, total, MaxPoints)
	}
	return nil
}

// stepCount converts an integral number of steps to an int.
func stepCount(q decimal.Decimal) (int, error) {
	if q.GreaterThan(maxPoints) {
		return 0, fmt.Errorf("%w: %s steps along one axis", ErrTooManyPoints, q)
	}
	return int(q.IntPart()), nil
}

// roundSteps returns the nearest whole number of steps that fit in
// the grid. Halves round to even.
func roundSteps(grid, step decimal.Decimal) (int, error) {
	return stepCount(grid.Div(step).RoundBank(0))
}

// floorSteps returns the number of whole steps that fit in the grid.
func floorSteps(grid, step decimal.Decimal) (int, error) {
	return stepCount(grid.Div(step).Floor())
}

// gridPoints returns the number of points, both edges included, per
// axis of a step parameterized grid.
func gridPoints(gridSize, stepSize Pair) (nx, ny int, err error) {
	if nx, err = roundSteps(gridSize.X, stepSize.X); err != nil {
		return 0, 0, err
	}
	if ny, err = roundSteps(gridSize.Y, stepSize.Y); err != nil {
		return 0, 0, err
	}
	nx, ny = nx+1, ny+1
	return nx, ny, checkTotal(int64(nx) * int64(ny))
}

// countScale returns the step size that divides the grid into n
// points per axis.
func countScale(gridSize Pair, n Counts) Pair {
	return Pair{
		X: gridSize.X.Div(decimal.NewFromInt(int64(n.X))),
		Y: gridSize.Y.Div(decimal.NewFromInt(int64(n.Y))),
	}
}

// grid visits x in [0,nx), y in [0,ny) with x the slow axis. If snake
// is set, odd rows are visited in descending y.
func grid(nx, ny int, snake bool) []Index {
	pts := make([]Index, 0, nx*ny)
	for x := 0; x < nx; x++ {
		if snake && x%2 == 1 {
			for y := ny - 1; y >= 0; y-- {
				pts = append(pts, Index{X: x, Y: y})
			}
			continue
		}
		for y := 0; y < ny; y++ {
			pts = append(pts, Index{X: x, Y: y})
		}
	}
	return pts
}

// rasterLen returns the number of points raster(cols, rows, fly)
// visits.
func rasterLen(cols, rows, fly int) int64 {
	n := int64(cols) * int64(rows)
	if back := cols/fly - 1; back > 0 {
		n += int64(back) * int64(rows-1)
	}
	return n
}

// raster visits cols imaging points along x on each of rows rows. Each
// row after the first is preceded by a coarse flyback from the far end
// of the row back towards its start in strides of fly.
func raster(cols, rows, fly int) []Index {
	pts := make([]Index, 0, rasterLen(cols, rows, fly))
	for y := 0; y < rows; y++ {
		if y > 0 {
			for x := cols - fly; x >= fly; x -= fly {
				pts = append(pts, Index{X: x, Y: y})
			}
		}
		for x := 0; x < cols; x++ {
			pts = append(pts, Index{X: x, Y: y})
		}
	}
	return pts
}

// New returns a grid path visiting round(gridSize/stepSize)+1 points
// per axis, both edges included, in ascending order with X the slow
// axis.
func New(origin Coordinate, gridSize, stepSize Pair, plane Plane) (Path, error) {
	if err := checkGrid(gridSize, stepSize, plane); err != nil {
		return Path{}, err
	}
	nx, ny, err := gridPoints(gridSize, stepSize)
	if err != nil {
		return Path{}, err
	}
	return Path{points: grid(nx, ny, false), origin: origin, scale: stepSize, plane: plane}, nil
}

// NewByNumberOfPoints returns a grid path of n.X by n.Y points. The
// far edge of the grid is not visited: the step size is gridSize/n.
func NewByNumberOfPoints(origin Coordinate, gridSize Pair, n Counts, plane Plane) (Path, error) {
	if err := checkCounts(gridSize, n, plane); err != nil {
		return Path{}, err
	}
	if err := checkTotal(int64(n.X) * int64(n.Y)); err != nil {
		return Path{}, err
	}
	return Path{points: grid(n.X, n.Y, false), origin: origin, scale: countScale(gridSize, n), plane: plane}, nil
}

// NewSnake returns the points of New, reordered so that odd numbered
// rows of the slow X axis run in descending Y.
func NewSnake(origin Coordinate, gridSize, stepSize Pair, plane Plane) (Path, error) {
	if err := checkGrid(gridSize, stepSize, plane); err != nil {
		return Path{}, err
	}
	nx, ny, err := gridPoints(gridSize, stepSize)
	if err != nil {
		return Path{}, err
	}
	return Path{points: grid(nx, ny, true), origin: origin, scale: stepSize, plane: plane}, nil
}

// NewSnakeByNumberOfPoints returns the points of NewByNumberOfPoints
// in snake order.
func NewSnakeByNumberOfPoints(origin Coordinate, gridSize Pair, n Counts, plane Plane) (Path, error) {
	if err := checkCounts(gridSize, n, plane); err != nil {
		return Path{}, err
	}
	if err := checkTotal(int64(n.X) * int64(n.Y)); err != nil {
		return Path{}, err
	}
	return Path{points: grid(n.X, n.Y, true), origin: origin, scale: countScale(gridSize, n), plane: plane}, nil
}

type rasterConfig struct {
	skip decimal.Decimal
}

// RasterOption adjusts how a raster path is generated.
type RasterOption func(*rasterConfig)

// WithFlybackSkip sets the distance, in micrometres, of each flyback
// move.
func WithFlybackSkip(d decimal.Decimal) RasterOption {
	return func(c *rasterConfig) {
		c.skip = d
	}
}

func rasterSetup(opts []RasterOption) (rasterConfig, error) {
	c := rasterConfig{skip: DefaultFlybackSkip}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.skip.IsPositive() {
		return c, fmt.Errorf("%w: %s", ErrBadFlyback, c.skip)
	}
	return c, nil
}

// flybackStride converts a number of lattice steps to a stride in
// [1, cols]. A stride of cols leaves no room for flyback points.
func flybackStride(steps decimal.Decimal, cols int) int {
	if steps.GreaterThanOrEqual(decimal.NewFromInt(int64(cols))) {
		return max(cols, 1)
	}
	if n := int(steps.Floor().IntPart()); n > 1 {
		return n
	}
	return 1
}

// NewRaster returns a raster path. Imaging rows run along lattice X
// and always ascend; rows advance along lattice Y. Only whole steps
// that fit in the grid are imaged, floor(gridSize/stepSize) per axis,
// as a raster cannot recover from overshooting the grid. Between rows
// the scan flies back in strides of the flyback skip distance
// expressed in steps, at least one.
func NewRaster(origin Coordinate, gridSize, stepSize Pair, plane Plane, opts ...RasterOption) (Path, error) {
	if err := checkGrid(gridSize, stepSize, plane); err != nil {
		return Path{}, err
	}
	c, err := rasterSetup(opts)
	if err != nil {
		return Path{}, err
	}
	cols, err := floorSteps(gridSize.X, stepSize.X)
	if err != nil {
		return Path{}, err
	}
	rows, err := floorSteps(gridSize.Y, stepSize.Y)
	if err != nil {
		return Path{}, err
	}
	if cols == 0 || rows == 0 {
		return Path{}, fmt.Errorf("%w: %s x %s grid with %s x %s steps", ErrEmptyPath, gridSize.X, gridSize.Y, stepSize.X, stepSize.Y)
	}
	fly := flybackStride(c.skip.Div(stepSize.X), cols)
	if err := checkTotal(rasterLen(cols, rows, fly)); err != nil {
		return Path{}, err
	}
	return Path{points: raster(cols, rows, fly), origin: origin, scale: stepSize, plane: plane}, nil
}

// NewRasterByNumberOfPoints returns a raster path of n.X imaging points
// on each of n.Y rows, with step size gridSize/n. The flyback stride
// is the flyback skip distance scaled by the number of points per
// micrometre of grid.
func NewRasterByNumberOfPoints(origin Coordinate, gridSize Pair, n Counts, plane Plane, opts ...RasterOption) (Path, error) {
	if err := checkCounts(gridSize, n, plane); err != nil {
		return Path{}, err
	}
	c, err := rasterSetup(opts)
	if err != nil {
		return Path{}, err
	}
	fly := 1
	if gridSize.X.IsPositive() {
		fly = flybackStride(c.skip.Mul(decimal.NewFromInt(int64(n.X))).Div(gridSize.X), n.X)
	}
	if err := checkTotal(rasterLen(n.X, n.Y, fly)); err != nil {
		return Path{}, err
	}
	return Path{points: raster(n.X, n.Y, fly), origin: origin, scale: countScale(gridSize, n), plane: plane}, nil
}

// NewSquare is New with the same grid and step size on both axes.
func NewSquare(origin Coordinate, gridSize, stepSize decimal.Decimal, plane Plane) (Path, error) {
	return New(origin, Square(gridSize), Square(stepSize), plane)
}

// NewSquareByNumberOfPoints is NewByNumberOfPoints for an n by n grid.
func NewSquareByNumberOfPoints(origin Coordinate, gridSize decimal.Decimal, n int, plane Plane) (Path, error) {
	return NewByNumberOfPoints(origin, Square(gridSize), Counts{X: n, Y: n}, plane)
}

// NewSquareSnake is NewSnake with the same grid and step size on both
// axes.
func NewSquareSnake(origin Coordinate, gridSize, stepSize decimal.Decimal, plane Plane) (Path, error) {
	return NewSnake(origin, Square(gridSize), Square(stepSize), plane)
}

// NewSquareSnakeByNumberOfPoints is NewSnakeByNumberOfPoints for an n
// by n grid.
func NewSquareSnakeByNumberOfPoints(origin Coordinate, gridSize decimal.Decimal, n int, plane Plane) (Path, error) {
	return NewSnakeByNumberOfPoints(origin, Square(gridSize), Counts{X: n, Y: n}, plane)
}

// NewSquareRaster is NewRaster with the same grid and step size on
// both axes.
func NewSquareRaster(origin Coordinate, gridSize, stepSize decimal.Decimal, plane Plane, opts ...RasterOption) (Path, error) {
	return NewRaster(origin, Square(gridSize), Square(stepSize), plane, opts...)
}

// NewSquareRasterByNumberOfPoints is NewRasterByNumberOfPoints for an
// n by n grid.
func NewSquareRasterByNumberOfPoints(origin Coordinate, gridSize decimal.Decimal, n int, plane Plane, opts ...RasterOption) (Path, error) {
	return NewRasterByNumberOfPoints(origin, Square(gridSize), Counts{X: n, Y: n}, plane, opts...)
}

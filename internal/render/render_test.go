package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"

	scan "zappem.net/pub/kinematics/scan"
)

func testPath(t *testing.T, plane scan.Plane) scan.Path {
	t.Helper()
	o := scan.Coordinate{X: decimal.NewFromInt(1), Y: decimal.NewFromInt(2), Z: decimal.NewFromInt(3)}
	p, err := scan.NewSquareSnake(o, decimal.NewFromInt(2), decimal.NewFromInt(1), plane)
	require.NoError(t, err)
	return p
}

func TestInPlane(t *testing.T) {
	xys := InPlane(testPath(t, scan.XY))
	require.Len(t, xys, 9)
	assert.Equal(t, plotter.XY{X: 1, Y: 2}, xys[0])
	assert.Equal(t, plotter.XY{X: 2, Y: 4}, xys[3])

	xys = InPlane(testPath(t, scan.YZ))
	assert.Equal(t, plotter.XY{X: 2, Y: 3}, xys[0])
	assert.Equal(t, plotter.XY{X: 3, Y: 5}, xys[3])
}

func TestPlot(t *testing.T) {
	pl, err := Plot(testPath(t, scan.XZ), "snake")
	require.NoError(t, err)
	assert.Equal(t, "snake", pl.Title.Text)
	assert.Equal(t, "x (um)", pl.X.Label.Text)
	assert.Equal(t, "z (um)", pl.Y.Label.Text)

	_, err = Plot(scan.Path{}, "empty")
	assert.ErrorIs(t, err, scan.ErrEmptyPath)
}

func TestSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, Save(testPath(t, scan.XY), "preview", file))
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// Package render draws previews of scan paths.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	scan "zappem.net/pub/kinematics/scan"
)

// Default preview dimensions.
const (
	Width  = 8 * vg.Inch
	Height = 8 * vg.Inch
)

var (
	moveColor  = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	pointColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	startColor = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// axes names the two in-plane axes of a plane.
func axes(pl scan.Plane) (string, string) {
	switch pl {
	case scan.XZ:
		return "x", "z"
	case scan.YZ:
		return "y", "z"
	}
	return "x", "y"
}

// InPlane returns the visited positions of p projected onto its plane,
// in micrometres.
func InPlane(p scan.Path) plotter.XYs {
	xys := make(plotter.XYs, 0, p.Len())
	for _, c := range p.Coordinates() {
		pt := c.Point()
		var xy plotter.XY
		switch p.Plane() {
		case scan.XZ:
			xy = plotter.XY{X: pt.X(), Y: pt.Z()}
		case scan.YZ:
			xy = plotter.XY{X: pt.Y(), Y: pt.Z()}
		default:
			xy = plotter.XY{X: pt.X(), Y: pt.Y()}
		}
		xys = append(xys, xy)
	}
	return xys
}

// Plot builds a plot of the path: the moves between points in visiting
// order, the points themselves, and the starting point highlighted.
func Plot(p scan.Path, title string) (*plot.Plot, error) {
	if p.Len() == 0 {
		return nil, scan.ErrEmptyPath
	}
	pl := plot.New()
	pl.Title.Text = title
	h, v := axes(p.Plane())
	pl.X.Label.Text = h + " (um)"
	pl.Y.Label.Text = v + " (um)"

	xys := InPlane(p)

	moves, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to create move line: %w", err)
	}
	moves.Width = vg.Points(0.5)
	moves.Color = moveColor

	pts, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to create point scatter: %w", err)
	}
	pts.GlyphStyle.Color = pointColor
	pts.GlyphStyle.Radius = vg.Points(1.5)
	pts.GlyphStyle.Shape = draw.CircleGlyph{}

	start, err := plotter.NewScatter(xys[:1])
	if err != nil {
		return nil, fmt.Errorf("failed to create start marker: %w", err)
	}
	start.GlyphStyle.Color = startColor
	start.GlyphStyle.Radius = vg.Points(4)
	start.GlyphStyle.Shape = draw.RingGlyph{}

	pl.Add(plotter.NewGrid(), moves, pts, start)
	pl.Legend.Add("move", moves)
	pl.Legend.Add("point", pts)
	pl.Legend.Add("start", start)
	pl.Legend.Top = true
	return pl, nil
}

// Save renders a preview of p to file. The image format follows the
// file extension (.png, .svg, .pdf, ...).
func Save(p scan.Path, title, file string) error {
	pl, err := Plot(p, title)
	if err != nil {
		return err
	}
	if err := pl.Save(Width, Height, file); err != nil {
		return fmt.Errorf("failed to save preview %s: %w", file, err)
	}
	return nil
}

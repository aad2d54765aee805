// Package render draws Hess charts with gonum/plot.
package render

import (
	"image/color"
	"math"

	"github.com/soypat/hess"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// DefaultSize is the image edge length in pixels used when neither
	// Options nor the chart specify one.
	DefaultSize = 512
	// DefaultSupersample is the default rasterization oversampling factor.
	DefaultSupersample = 2
)

var (
	red   = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	green = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// Options configures how a chart is drawn. The zero value is ready to use.
type Options struct {
	// Size is the edge length of raster output in pixels. Zero uses the
	// chart's SizePixels, or DefaultSize if the chart has no physical size.
	Size int
	// Supersample renders at Supersample times Size and downsamples the
	// result. Zero selects DefaultSupersample.
	Supersample int
	// Colors of the grid curves, the fixing point mark and the current point mark.
	GridColor, FixingColor, PointColor color.Color
	// MarkRadius is the radius of the point marks. Zero scales it with Size.
	MarkRadius vg.Length
}

func (o Options) size(c *hess.Chart) int {
	if o.Size > 0 {
		return o.Size
	}
	if px := int(math.Round(c.Config().SizePixels())); px > 0 {
		return px
	}
	return DefaultSize
}

func (o Options) supersample() int {
	if o.Supersample > 0 {
		return o.Supersample
	}
	return DefaultSupersample
}

func (o Options) markRadius(c *hess.Chart) vg.Length {
	if o.MarkRadius > 0 {
		return o.MarkRadius
	}
	return vg.Points(float64(o.size(c)) / 40)
}

func colorOr(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}

// Plot returns a plot of the chart's grid with its fixing point and current
// point marked. Marks whose position cannot be computed are omitted.
// The plot's data range is the chart's bounds and its axes are hidden.
func Plot(c *hess.Chart, o Options) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()
	p.X.Padding, p.Y.Padding = 0, 0

	grid := c.Grid()
	gridColor := colorOr(o.GridColor, red)
	for _, family := range [][]hess.Curve{grid.Horizontal, grid.Vertical} {
		for _, curve := range family {
			l, err := plotter.NewLine(curveXYs(curve))
			if err != nil {
				return nil, err
			}
			l.LineStyle.Color = gridColor
			l.LineStyle.Width = vg.Points(1)
			l.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
			p.Add(l)
		}
	}

	radius := o.markRadius(c)
	if fix, err := c.FixingPoint(); err == nil {
		s, err := mark(fix, colorOr(o.FixingColor, red), radius)
		if err != nil {
			return nil, err
		}
		p.Add(s)
	}
	if pt, ok := c.Point(); ok {
		s, err := mark(pt, colorOr(o.PointColor, green), radius)
		if err != nil {
			return nil, err
		}
		p.Add(s)
	}

	// Add widens the axes to fit the data; restore the chart's domain.
	bb := c.Bounds()
	p.X.Min, p.X.Max = bb.Min.X, bb.Max.X
	p.Y.Min, p.Y.Max = bb.Min.Y, bb.Max.Y
	return p, nil
}

func mark(pt r2.Vec, col color.Color, radius vg.Length) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYs{{X: pt.X, Y: pt.Y}})
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  col,
		Radius: radius,
		Shape:  draw.CircleGlyph{},
	}
	return s, nil
}

func curveXYs(c hess.Curve) plotter.XYs {
	xys := make(plotter.XYs, len(c))
	for i, v := range c {
		xys[i].X, xys[i].Y = v.X, v.Y
	}
	return xys
}

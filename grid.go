package hess

import (
	"fmt"
	"math"

	"github.com/soypat/hess/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// DefaultGridSamples is the number of points sampled along each grid curve.
	DefaultGridSamples = 100
	// DefaultGridStep is the angular spacing between grid curves in degrees.
	DefaultGridStep = 5.
)

// Curve is a polyline in chart coordinates.
type Curve []r2.Vec

// Bounds returns the bounding box of the curve's samples.
func (c Curve) Bounds() r2.Box {
	return r2.Box(d2.Set(c).Bounds())
}

// Grid holds the two families of iso-angle curves of a chart.
type Grid struct {
	// Horizontal holds curves of constant horizontal angle, ordered from
	// the largest horizontal angle to the smallest.
	Horizontal []Curve
	// Vertical holds curves of constant vertical angle, ordered from the
	// largest vertical angle to the smallest.
	Vertical []Curve
}

// Bounds returns the bounding box of all curves in the grid.
func (g Grid) Bounds() r2.Box {
	var bb d2.Box
	first := true
	for _, family := range [][]Curve{g.Horizontal, g.Vertical} {
		for _, c := range family {
			cb := d2.Box(c.Bounds())
			if first {
				bb, first = cb, false
				continue
			}
			bb = bb.Extend(cb)
		}
	}
	return r2.Box(bb)
}

// GridCurves generates the iso-angle grid of a chart spanning rangeDeg
// degrees to each side of the center. Iso-lines are placed every stepDeg
// degrees starting at 90-rangeDeg, up to but excluding 90+rangeDeg, and each
// curve holds samples points.
func GridCurves(rangeDeg float64, samples int, stepDeg float64) (Grid, error) {
	if err := validateRange(rangeDeg); err != nil {
		return Grid{}, err
	}
	if samples < 2 {
		return Grid{}, fmt.Errorf("%w: need at least 2 grid samples, got %d", ErrConfig, samples)
	}
	if !(stepDeg > 0) || math.IsInf(stepDeg, 0) {
		return Grid{}, fmt.Errorf("%w: grid step %g must be positive", ErrConfig, stepDeg)
	}
	r := DtoR(rangeDeg)
	sweep := floats.Span(make([]float64, samples), -r, r)
	// Tangents and secants of the sweep are shared by both families.
	tans := make([]float64, samples)
	secs := make([]float64, samples)
	for i, s := range sweep {
		tans[i] = math.Tan(s)
		secs[i] = 1 / math.Cos(s)
	}

	n := int(math.Ceil(2 * rangeDeg / stepDeg))
	g := Grid{
		Horizontal: make([]Curve, n),
		Vertical:   make([]Curve, n),
	}
	for i := 0; i < n; i++ {
		iso := DtoR(90 - rangeDeg + float64(i)*stepDeg)
		cot := math.Cos(iso) / math.Sin(iso)
		h := make(Curve, samples)
		v := make(Curve, samples)
		for j := range sweep {
			h[j] = r2.Vec{X: tans[j], Y: cot * secs[j]}
			v[j] = r2.Vec{X: cot * secs[j], Y: tans[j]}
		}
		g.Horizontal[i] = h
		g.Vertical[i] = v
	}
	return g, nil
}

func validateRange(rangeDeg float64) error {
	if !(rangeDeg > 0 && rangeDeg < 90) {
		return fmt.Errorf("%w: angle range %g not in (0, 90) degrees", ErrConfig, rangeDeg)
	}
	return nil
}

// Package hess implements the geometry of Hess charts, the polar grids used
// to plot ocular deviation angles against a fixation target.
//
// The package converts between gaze angle pairs and chart coordinates and
// generates the iso-angle grid curves of a chart. It does not draw; see the
// render package for a gonum/plot based renderer.
package hess

import (
	"fmt"
	"math"

	"github.com/soypat/hess/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Config holds the immutable parameters of a chart.
type Config struct {
	// Name identifies the chart in records, e.g. "LEFT, top right".
	Name string
	// Range is the half-angle of the displayed field in degrees.
	// The chart spans -Range to Range and it must lie in (0, 90).
	Range float64
	// Fixing is the reference gaze direction marked on the chart.
	Fixing Angles
	// DistanceCM is the fixed distance between subject and screen in centimetres.
	// Zero leaves the physical size unspecified.
	DistanceCM float64
	// DPI is the dots per inch of the display. Zero leaves the pixel size unspecified.
	DPI float64
	// Limit is the half-width of the chart's square coordinate domain.
	// Zero selects tan(Range), where coordinates match the projection's
	// natural scale. Limit only sets the chart bounds and the scale of
	// PointNormalized input; Forward, Inverse and the grid curves stay in
	// projection units, so a Limit other than tan(Range) shows the grid
	// spanning ±tan(Range) inside ±Limit.
	Limit float64
	// GridSamples is the number of points per grid curve. Zero selects DefaultGridSamples.
	GridSamples int
	// GridStep is the spacing between grid curves in degrees. Zero selects DefaultGridStep.
	GridStep float64
}

// SizeCM returns the physical edge length of the chart in centimetres so
// that its border subtends Range degrees at DistanceCM.
func (cfg Config) SizeCM() float64 {
	return 2 * math.Tan(DtoR(cfg.Range)) * cfg.DistanceCM
}

// SizePixels returns the edge length of the chart in display pixels.
func (cfg Config) SizePixels() float64 {
	return cfg.SizeCM() * InchesPerCentimetre * cfg.DPI
}

func (cfg Config) validate() error {
	if err := validateRange(cfg.Range); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"distance", cfg.DistanceCM},
		{"dpi", cfg.DPI},
		{"limit", cfg.Limit},
		{"grid step", cfg.GridStep},
	} {
		if !isFinite(f.v) || f.v < 0 {
			return fmt.Errorf("%w: %s %g must be finite and non-negative", ErrConfig, f.name, f.v)
		}
	}
	if cfg.GridSamples < 0 {
		return fmt.Errorf("%w: negative grid samples %d", ErrConfig, cfg.GridSamples)
	}
	if !isFinite(cfg.Fixing.Vertical) || !isFinite(cfg.Fixing.Horizontal) {
		return fmt.Errorf("%w: non-finite fixing point %v", ErrConfig, cfg.Fixing)
	}
	return nil
}

// PointMode selects how the arguments of SetPoint are interpreted.
type PointMode int

const (
	// PointAngles takes vertical and horizontal angles in degrees.
	PointAngles PointMode = iota
	// PointXY takes chart coordinates, stored as given.
	PointXY
	// PointNormalized takes coordinates in [-1, 1] that are scaled by the chart limit.
	PointNormalized
)

func (m PointMode) String() string {
	switch m {
	case PointAngles:
		return "angles"
	case PointXY:
		return "xy"
	case PointNormalized:
		return "normalized"
	}
	return fmt.Sprintf("PointMode(%d)", int(m))
}

// Chart is a configured Hess chart with a single current point slot.
// A Chart is not safe for concurrent use.
type Chart struct {
	cfg   Config
	limit float64
	grid  Grid

	point    r2.Vec
	hasPoint bool
}

// New validates cfg and returns a chart with its grid precomputed.
func New(cfg Config) (*Chart, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.GridSamples == 0 {
		cfg.GridSamples = DefaultGridSamples
	}
	if cfg.GridStep == 0 {
		cfg.GridStep = DefaultGridStep
	}
	grid, err := GridCurves(cfg.Range, cfg.GridSamples, cfg.GridStep)
	if err != nil {
		return nil, err
	}
	c := &Chart{
		cfg:   cfg,
		limit: cfg.Limit,
		grid:  grid,
	}
	if c.limit == 0 {
		c.limit = math.Tan(DtoR(cfg.Range))
	}
	return c, nil
}

// MustNew is like New but panics if cfg is invalid.
func MustNew(cfg Config) *Chart {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Config returns the chart's configuration with defaults filled in.
func (c *Chart) Config() Config { return c.cfg }

// Name returns the chart's name.
func (c *Chart) Name() string { return c.cfg.Name }

// Fixing returns the chart's fixing point angles.
func (c *Chart) Fixing() Angles { return c.cfg.Fixing }

// Limit returns the half-width of the chart's coordinate domain.
func (c *Chart) Limit() float64 { return c.limit }

// Bounds returns the chart's coordinate domain [-Limit, Limit]².
func (c *Chart) Bounds() r2.Box { return r2.Box(d2.Square(c.limit)) }

// Contains reports whether p lies within the chart's coordinate domain.
func (c *Chart) Contains(p r2.Vec) bool { return d2.Square(c.limit).Contains(p) }

// Grid returns the chart's iso-angle curves. The curves are shared between
// calls and must not be modified.
func (c *Chart) Grid() Grid { return c.grid }

// FixingPoint returns the chart coordinate of the fixing point.
func (c *Chart) FixingPoint() (r2.Vec, error) {
	return Forward(c.cfg.Fixing.Vertical, c.cfg.Fixing.Horizontal)
}

// Forward converts an angle pair to a chart coordinate and stores it as the
// current point. The current point is left unchanged on error.
func (c *Chart) Forward(vertical, horizontal float64) (r2.Vec, error) {
	p, err := Forward(vertical, horizontal)
	if err != nil {
		return p, err
	}
	c.point, c.hasPoint = p, true
	return p, nil
}

// Inverse converts a chart coordinate to an angle pair. See Inverse.
func (c *Chart) Inverse(p r2.Vec) (Angles, error) {
	return Inverse(p)
}

// SetPoint stores a new current point. The meaning of a and b depends on mode.
func (c *Chart) SetPoint(a, b float64, mode PointMode) error {
	var p r2.Vec
	switch mode {
	case PointAngles:
		_, err := c.Forward(a, b)
		return err
	case PointXY:
		p = r2.Vec{X: a, Y: b}
	case PointNormalized:
		p = r2.Scale(c.limit, r2.Vec{X: a, Y: b})
	default:
		return fmt.Errorf("hess: unknown point mode %v", mode)
	}
	if !d2.IsFinite(p) {
		return fmt.Errorf("%w: non-finite point %v", ErrDomain, p)
	}
	c.point, c.hasPoint = p, true
	return nil
}

// Point returns the current point. ok is false if no point was set.
func (c *Chart) Point() (p r2.Vec, ok bool) {
	if !c.hasPoint {
		return d2.NaN(), false
	}
	return c.point, true
}

// PointAngles returns the angles of the current point.
func (c *Chart) PointAngles() (Angles, error) {
	if !c.hasPoint {
		return nanAngles(), fmt.Errorf("hess: chart %q has no point", c.cfg.Name)
	}
	return Inverse(c.point)
}

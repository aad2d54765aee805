package hess

import (
	"fmt"
	"math"

	"github.com/soypat/hess/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Angles is a gaze direction relative to the fixation target in degrees.
// Vertical drives the chart's x coordinate and Horizontal its y coordinate.
type Angles struct {
	Vertical   float64
	Horizontal float64
}

// Forward converts an angle pair in degrees to a chart coordinate.
//
// Points with |vertical|+|horizontal| > 90° fall outside the projected cone
// and return ErrDomain, as do angles beyond ±90° which would alias a point of
// the front hemisphere. A horizontal angle of ±90° or a point on the cone
// boundary returns ErrSingular. On error the returned vector is NaN.
func Forward(vertical, horizontal float64) (r2.Vec, error) {
	if !isFinite(vertical) || !isFinite(horizontal) {
		return d2.NaN(), fmt.Errorf("%w: non-finite angles (%g, %g)", ErrDomain, vertical, horizontal)
	}
	if math.Abs(vertical) > 90 || math.Abs(horizontal) > 90 {
		return d2.NaN(), fmt.Errorf("%w: (%g, %g) beyond ±90°", ErrDomain, vertical, horizontal)
	}
	alpha := DtoR(90 - vertical)
	theta := DtoR(90 - horizontal)
	sinT := math.Sin(theta)
	if math.Abs(sinT) < epsilon {
		return d2.NaN(), fmt.Errorf("%w: horizontal angle %g", ErrSingular, horizontal)
	}
	cosA := math.Cos(alpha)
	disc := sinT*sinT - cosA*cosA
	switch {
	case disc < -epsilon:
		return d2.NaN(), fmt.Errorf("%w: (%g, %g)", ErrDomain, vertical, horizontal)
	case disc <= epsilon:
		return d2.NaN(), fmt.Errorf("%w: (%g, %g) on cone boundary", ErrSingular, vertical, horizontal)
	}
	phi := math.Atan(cosA / math.Sqrt(disc))
	return r2.Vec{
		X: math.Tan(phi),
		Y: math.Cos(theta) / (sinT * math.Cos(phi)),
	}, nil
}

// Inverse converts a chart coordinate back to an angle pair in degrees.
//
// Inverse(Forward(v, h)) returns (v, h) for any pair Forward accepts. The
// sign of the vertical angle is taken from p.X and a negative p.Y shifts the
// principal horizontal angle by -180°, so the result for an arbitrary p is
// the unique pair with |v|+|h| <= 90° that projects onto it.
func Inverse(p r2.Vec) (Angles, error) {
	if !d2.IsFinite(p) {
		return nanAngles(), fmt.Errorf("%w: non-finite point %v", ErrDomain, p)
	}
	phi := math.Atan(p.X)
	theta := halfPi
	if p.Y != 0 {
		theta = math.Atan(1 / (p.Y * math.Cos(phi)))
	}
	tan2 := math.Tan(phi)
	tan2 *= tan2
	sinT := math.Sin(theta)
	alpha := math.Acos(Clamp(math.Sqrt(sinT*sinT*tan2/(tan2+1)), 0, 1))

	a := Angles{
		Vertical:   RtoD(halfPi - alpha),
		Horizontal: RtoD(halfPi - theta),
	}
	if p.X < 0 {
		a.Vertical = -a.Vertical
	}
	if p.Y < 0 {
		a.Horizontal -= 180
	}
	return a, nil
}

package hess

import (
	"math"
)

const (
	// CentimetresPerInch is centimetres per inch (2.54)
	CentimetresPerInch = 2.54
	// InchesPerCentimetre is inches per centimetre
	InchesPerCentimetre = 1.0 / CentimetresPerInch
)

const (
	pi     = math.Pi
	halfPi = pi / 2
	// epsilon is the magnitude below which a divisor is treated as zero.
	epsilon = 1e-12
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func nanAngles() Angles {
	return Angles{Vertical: math.NaN(), Horizontal: math.NaN()}
}

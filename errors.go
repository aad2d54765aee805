package hess

import "errors"

var (
	// ErrDomain is returned when an angle pair lies outside the cone the
	// chart projection can represent, that is when sin²θ < cos²α, or when
	// an input is NaN or infinite.
	ErrDomain = errors.New("hess: angles outside projection domain")
	// ErrSingular is returned when a conversion divides by a value that is
	// numerically zero, e.g. a horizontal angle of ±90°.
	ErrSingular = errors.New("hess: singular projection")
	// ErrConfig is returned by constructors given an unusable configuration.
	ErrConfig = errors.New("hess: invalid configuration")
)

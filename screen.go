package hess

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DPI returns the dots per inch of a display given its resolution and
// diagonal size in inches.
func DPI(widthPx, heightPx int, diagonalInches float64) (float64, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return 0, fmt.Errorf("%w: display resolution %dx%d", ErrConfig, widthPx, heightPx)
	}
	if !(diagonalInches > 0) || math.IsInf(diagonalInches, 0) {
		return 0, fmt.Errorf("%w: display diagonal %g inches", ErrConfig, diagonalInches)
	}
	return math.Hypot(float64(widthPx), float64(heightPx)) / diagonalInches, nil
}

// PixelToNormalized maps a pixel position on a square chart image of edge
// sizePx, origin at the top left and y growing downwards, to chart-local
// coordinates in [-1, 1] with y growing upwards.
func PixelToNormalized(px, py, sizePx float64) r2.Vec {
	return r2.Vec{
		X: 2 * (px/sizePx - 0.5),
		Y: -2 * (py/sizePx - 0.5),
	}
}

// NormalizedToPixel is the inverse of PixelToNormalized.
func NormalizedToPixel(p r2.Vec, sizePx float64) (px, py float64) {
	return sizePx * (p.X/2 + 0.5), sizePx * (0.5 - p.Y/2)
}

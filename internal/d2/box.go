package d2

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// Square returns the box [-half, half]x[-half, half].
func Square(half float64) Box {
	return Box{Min: Elem(-half), Max: Elem(half)}
}

// Equals test the equality of 2d boxes.
func (a Box) Equals(b Box, tol float64) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// Extend returns a box enclosing two 2d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Contains checks if the 2d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r2.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y &&
		v.X <= a.Max.X && v.Y <= a.Max.Y
}

// Random returns a random point within a bounding box.
func (a Box) Random(rng *rand.Rand) r2.Vec {
	return r2.Vec{
		X: randomRange(rng, a.Min.X, a.Max.X),
		Y: randomRange(rng, a.Min.Y, a.Max.Y),
	}
}

// RandomSet returns a set of random points from within a bounding box.
func (a Box) RandomSet(rng *rand.Rand, n int) Set {
	s := make([]r2.Vec, n)
	for i := range s {
		s[i] = a.Random(rng)
	}
	return s
}

// randomRange returns a random float64 [a,b)
func randomRange(rng *rand.Rand, a, b float64) float64 {
	return a + (b-a)*rng.Float64()
}

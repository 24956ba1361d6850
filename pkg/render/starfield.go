package render

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultStarCount is the size of the decorative background cloud.
const DefaultStarCount = 120

// Starfield is the decorative background point cloud drawn behind the
// graph. It is generated once at construction from the injected random
// source and never moves relative to the world.
type Starfield struct {
	points []r3.Vec
}

// NewStarfield scatters count points in a shell between inner and
// outer radius around the origin.
func NewStarfield(count int, inner, outer float64, rng *rand.Rand) *Starfield {
	points := make([]r3.Vec, 0, count)
	for len(points) < count {
		v := r3.Vec{
			X: rng.NormFloat64(),
			Y: rng.NormFloat64(),
			Z: rng.NormFloat64(),
		}
		n := r3.Norm(v)
		if n < 1e-9 {
			continue
		}
		radius := inner + rng.Float64()*(outer-inner)
		points = append(points, r3.Scale(radius/n, v))
	}
	return &Starfield{points: points}
}

// Points returns the star positions.
func (s *Starfield) Points() []r3.Vec {
	return s.points
}

package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/memexia/graphview/pkg/graph"
)

// goldenAngle spaces successive points evenly around the sphere.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// SpherePoint returns the i-th of n evenly spaced points on a sphere of
// the given radius (Fibonacci lattice). No two indices map to the same
// point, so repulsion never sees a degenerate zero vector at the start.
func SpherePoint(i, n int, radius float64) r3.Vec {
	if n <= 1 {
		return r3.Vec{}
	}
	y := 1 - 2*float64(i)/float64(n-1)
	ring := math.Sqrt(math.Max(0, 1-y*y))
	theta := goldenAngle * float64(i)
	return r3.Scale(radius, r3.Vec{
		X: math.Cos(theta) * ring,
		Y: y,
		Z: math.Sin(theta) * ring,
	})
}

// Sphere places nodes on an even shell without any relaxation. This is
// the cosmetic start state of the force-directed layout, exposed as a
// layout of its own.
type Sphere struct {
	radius float64
}

// NewSphere creates a sphere layout with the given shell radius.
func NewSphere(radius float64) *Sphere {
	if radius == 0 {
		radius = DefaultRadius
	}
	return &Sphere{radius: radius}
}

// Compute assigns each node its shell point by index.
func (s *Sphere) Compute(snap *graph.Snapshot) map[string]r3.Vec {
	nodes := snap.Nodes()
	positions := make(map[string]r3.Vec, len(nodes))
	for i, n := range nodes {
		positions[n.ID] = SpherePoint(i, len(nodes), s.radius)
	}
	return positions
}

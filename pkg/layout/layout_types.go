// Package layout turns an abstract node/edge set into 3D positions.
//
// The force-directed algorithm is an O(n²)-per-iteration relaxation and
// is intended for graphs up to a few thousand nodes. Beyond that,
// replace the pairwise scan with a spatial partition before reaching
// for more iterations.
package layout

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/memexia/graphview/pkg/graph"
)

// Defaults for Config fields left at zero.
const (
	DefaultIterations = 50
	DefaultRepulsion  = 0.5
	DefaultAttraction = 0.01
	DefaultRadius     = 10.0
	DefaultJitter     = 0.25
)

// Config configures layout parameters
type Config struct {
	Iterations int     // Relaxation passes per layout
	Repulsion  float64 // Pairwise push strength, scaled by 1/d²
	Attraction float64 // Per-edge spring strength, scaled by d
	Radius     float64 // Radius of the initial placement shell
	Jitter     float64 // Random perturbation of initial placement
}

func (c *Config) applyDefaults() {
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.Repulsion == 0 {
		c.Repulsion = DefaultRepulsion
	}
	if c.Attraction == 0 {
		c.Attraction = DefaultAttraction
	}
	if c.Radius == 0 {
		c.Radius = DefaultRadius
	}
	if c.Jitter == 0 {
		c.Jitter = DefaultJitter
	}
}

// Layout is the interface for layout algorithms
type Layout interface {
	Compute(snap *graph.Snapshot) map[string]r3.Vec
}

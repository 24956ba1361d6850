package controls

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/memexia/graphview/pkg/render"
)

// Pick casts a ray from the camera through the given viewport cell and
// tests it against the point primitive. The hit test uses a
// screen-space radius (cfg.HitRadius, in cells) scaled by depth, so
// small distant points stay clickable without exact-cell matching.
// The nearest hit wins. Returns the vertex index, or ok=false on a
// miss.
func (c *Controller) Pick(bundle *render.Bundle, px, py float64) (int, bool) {
	if bundle.Disposed() || bundle.Points == nil {
		return 0, false
	}

	origin, dir := c.camera.Ray(px, py)
	angleTol := c.cfg.HitRadius * c.camera.PixelAngle()

	best := -1
	bestDepth := math.Inf(1)
	for i, p := range bundle.Points.Positions {
		v := r3.Sub(p, origin)
		along := r3.Dot(v, dir)
		if along < c.camera.Near || along > c.camera.Far {
			continue
		}
		perp := r3.Norm(r3.Sub(v, r3.Scale(along, dir)))
		if perp > angleTol*along {
			continue
		}
		if along < bestDepth {
			bestDepth = along
			best = i
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}

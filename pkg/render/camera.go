package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera defaults. CellAspect compensates for terminal cells being
// roughly twice as tall as they are wide.
const (
	DefaultFOV        = math.Pi / 3
	DefaultNear       = 0.1
	DefaultFar        = 500.0
	DefaultCellAspect = 0.5
)

var worldUp = r3.Vec{Y: 1}

// Camera is a perspective camera with a fixed field of view and
// near/far clip planes. Aspect ratio follows the viewport size set via
// SetViewport.
type Camera struct {
	Position r3.Vec
	Target   r3.Vec

	FOV        float64 // vertical field of view, radians
	Near, Far  float64
	CellAspect float64

	width, height int
}

// NewCamera creates a camera looking at the origin from a default
// vantage point.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:   r3.Vec{Z: 30},
		Target:     r3.Vec{},
		FOV:        DefaultFOV,
		Near:       DefaultNear,
		Far:        DefaultFar,
		CellAspect: DefaultCellAspect,
		width:      width,
		height:     height,
	}
}

// SetViewport resynchronizes the aspect ratio to the viewport's
// current width and height.
func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

// Viewport returns the current viewport size in cells.
func (c *Camera) Viewport() (int, int) {
	return c.width, c.height
}

func (c *Camera) aspect() float64 {
	if c.height == 0 {
		return 1
	}
	return float64(c.width) / float64(c.height) * c.CellAspect
}

// Basis returns the camera's orthonormal right, up and forward vectors.
func (c *Camera) Basis() (right, up, forward r3.Vec) {
	forward = r3.Sub(c.Target, c.Position)
	if r3.Norm(forward) == 0 {
		forward = r3.Vec{Z: -1}
	}
	forward = r3.Unit(forward)

	right = r3.Cross(forward, worldUp)
	if r3.Norm(right) < 1e-9 {
		// Looking straight along the world up axis; any horizontal
		// right vector will do.
		right = r3.Vec{X: 1}
	}
	right = r3.Unit(right)
	up = r3.Cross(right, forward)
	return right, up, forward
}

// Project maps a world position to viewport cell coordinates and a
// depth along the view axis. ok is false when the point falls outside
// the near/far range.
func (c *Camera) Project(p r3.Vec) (x, y float64, depth float64, ok bool) {
	right, up, forward := c.Basis()
	v := r3.Sub(p, c.Position)

	depth = r3.Dot(v, forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}

	tanHalf := math.Tan(c.FOV / 2)
	ndcX := r3.Dot(v, right) / (depth * tanHalf * c.aspect())
	ndcY := r3.Dot(v, up) / (depth * tanHalf)

	x = (ndcX + 1) / 2 * float64(c.width)
	y = (1 - ndcY) / 2 * float64(c.height)
	return x, y, depth, true
}

// Ray builds a world-space ray from the camera through the given
// viewport cell coordinates.
func (c *Camera) Ray(px, py float64) (origin, dir r3.Vec) {
	right, up, forward := c.Basis()
	tanHalf := math.Tan(c.FOV / 2)

	ndcX := 2*px/float64(c.width) - 1
	ndcY := 1 - 2*py/float64(c.height)

	dir = forward
	dir = r3.Add(dir, r3.Scale(ndcX*tanHalf*c.aspect(), right))
	dir = r3.Add(dir, r3.Scale(ndcY*tanHalf, up))
	return c.Position, r3.Unit(dir)
}

// PixelAngle returns the approximate angular size of one viewport cell
// row, used to convert a screen-space pick radius into a world-space
// tolerance at a given depth.
func (c *Camera) PixelAngle() float64 {
	if c.height == 0 {
		return 0
	}
	return 2 * math.Tan(c.FOV/2) / float64(c.height)
}

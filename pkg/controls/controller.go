package controls

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/memexia/graphview/pkg/render"
)

// pitch stops just short of the poles so the orbit basis never
// degenerates.
const pitchLimit = math.Pi/2 - 0.05

// Controller drives one camera from pointer and keyboard input. Orbit
// and zoom are applied through per-frame exponential damping; free
// movement is sampled from the active key set once per frame.
type Controller struct {
	cfg    Config
	camera *render.Camera

	// Orbit state, spherical around the focus target. The target*
	// values move instantly on input; the unprefixed values chase them
	// under damping and drive the camera.
	yaw, pitch, distance                   float64
	targetYaw, targetPitch, targetDistance float64
	focus                                  r3.Vec

	// Active input set. Values are hold deadlines: terminals deliver
	// key repeats rather than key-up events, so a press counts as held
	// until its deadline passes or an explicit KeyUp arrives.
	held map[MoveKey]time.Time

	selection *Selection
}

// NewController wraps a camera, adopting its current position and
// target as the initial orbit state.
func NewController(camera *render.Camera, cfg Config) *Controller {
	cfg.applyDefaults()
	c := &Controller{
		cfg:    cfg,
		camera: camera,
		held:   make(map[MoveKey]time.Time),
	}

	c.focus = camera.Target
	offset := r3.Sub(camera.Position, camera.Target)
	c.distance = r3.Norm(offset)
	if c.distance == 0 {
		c.distance = cfg.MinDistance
		offset = r3.Vec{Z: c.distance}
	}
	c.pitch = math.Asin(clamp(offset.Y/c.distance, -1, 1))
	c.yaw = math.Atan2(offset.X, offset.Z)

	c.targetYaw, c.targetPitch, c.targetDistance = c.yaw, c.pitch, c.distance
	return c
}

// Rotate feeds a pointer drag delta (in cells) into the orbit targets.
func (c *Controller) Rotate(dx, dy int) {
	c.targetYaw -= float64(dx) * c.cfg.RotateSpeed
	c.targetPitch = clamp(
		c.targetPitch+float64(dy)*c.cfg.RotateSpeed,
		-pitchLimit, pitchLimit,
	)
}

// Zoom feeds wheel steps into the orbit distance target. Positive
// steps zoom in.
func (c *Controller) Zoom(steps int) {
	factor := math.Pow(c.cfg.ZoomFactor, float64(steps))
	c.targetDistance = clamp(
		c.targetDistance*factor,
		c.cfg.MinDistance, c.cfg.MaxDistance,
	)
}

// KeyDown adds a movement key to the active input set. Repeated calls
// for the same key refresh its hold deadline; pressing a held key has
// no further effect.
func (c *Controller) KeyDown(k MoveKey, now time.Time) {
	c.held[k] = now.Add(c.cfg.KeyHold)
}

// KeyUp removes a movement key from the active input set.
func (c *Controller) KeyUp(k MoveKey) {
	delete(c.held, k)
}

// ActiveKeys returns the currently held movement keys, pruning any
// whose hold deadline has passed.
func (c *Controller) ActiveKeys(now time.Time) []MoveKey {
	keys := make([]MoveKey, 0, len(c.held))
	for k, deadline := range c.held {
		if now.After(deadline) {
			delete(c.held, k)
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// MoveVector builds this frame's aggregate movement direction from the
// active key set, normalized so diagonal combinations are no faster
// than a single key, and rotated into the camera's orientation.
func (c *Controller) MoveVector(now time.Time) r3.Vec {
	var local r3.Vec
	for _, k := range c.ActiveKeys(now) {
		switch k {
		case MoveForward:
			local.Z++
		case MoveBack:
			local.Z--
		case MoveLeft:
			local.X--
		case MoveRight:
			local.X++
		case MoveUp:
			local.Y++
		case MoveDown:
			local.Y--
		}
	}
	if r3.Norm(local) == 0 {
		return r3.Vec{}
	}
	local = r3.Unit(local)

	right, up, forward := c.camera.Basis()
	world := r3.Scale(local.X, right)
	world = r3.Add(world, r3.Scale(local.Y, up))
	world = r3.Add(world, r3.Scale(local.Z, forward))
	return world
}

// Update advances damping and movement by dt and writes the resulting
// pose to the camera. Called once per frame.
func (c *Controller) Update(dt time.Duration, now time.Time) {
	seconds := dt.Seconds()
	if seconds <= 0 {
		return
	}

	// Exponential smoothing toward the targets, fluid rather than
	// instantaneous.
	blend := 1 - math.Exp(-c.cfg.Damping*seconds)
	c.yaw += (c.targetYaw - c.yaw) * blend
	c.pitch += (c.targetPitch - c.pitch) * blend
	c.distance += (c.targetDistance - c.distance) * blend

	// Free movement shifts the focus too, so later orbiting still
	// pivots around a sensible point.
	move := c.MoveVector(now)
	if r3.Norm(move) > 0 {
		c.focus = r3.Add(c.focus, r3.Scale(c.cfg.MoveSpeed*seconds, move))
	}

	offset := r3.Vec{
		X: math.Cos(c.pitch) * math.Sin(c.yaw),
		Y: math.Sin(c.pitch),
		Z: math.Cos(c.pitch) * math.Cos(c.yaw),
	}
	c.camera.Position = r3.Add(c.focus, r3.Scale(c.distance, offset))
	c.camera.Target = c.focus
}

// Focus returns the current orbit focus target.
func (c *Controller) Focus() r3.Vec {
	return c.focus
}

// Distance returns the current (damped) orbit distance.
func (c *Controller) Distance() float64 {
	return c.distance
}

// Select records the selection state.
func (c *Controller) Select(nodeID string, screenX, screenY int) {
	c.selection = &Selection{NodeID: nodeID, ScreenX: screenX, ScreenY: screenY}
}

// ClearSelection drops the selection state.
func (c *Controller) ClearSelection() {
	c.selection = nil
}

// Selection returns the current selection, or nil when nothing is
// selected.
func (c *Controller) Selection() *Selection {
	return c.selection
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

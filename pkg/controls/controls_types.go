// Package controls owns pointer picking, damped orbit/zoom and
// keyboard free movement for one viewport. All input state lives on a
// Controller instance; nothing is ambient, so several independent
// viewports (or headless tests) can coexist.
package controls

import (
	"time"
)

// Defaults for Config fields left at zero.
const (
	DefaultHitRadius   = 2.0 // cells
	DefaultRotateSpeed = 0.05
	DefaultZoomFactor  = 0.9
	DefaultMoveSpeed   = 12.0 // world units per second
	DefaultDamping     = 8.0  // smoothing rate per second
	DefaultMinDistance = 2.0
	DefaultMaxDistance = 200.0
	DefaultKeyHold     = 250 * time.Millisecond
)

// Config configures interaction parameters
type Config struct {
	HitRadius   float64 // screen-space pick tolerance, in cells
	RotateSpeed float64 // radians per dragged cell
	ZoomFactor  float64 // distance multiplier per wheel step
	MoveSpeed   float64 // free movement speed, world units/second
	Damping     float64 // exponential smoothing rate for orbit/zoom
	MinDistance float64 // closest orbit distance
	MaxDistance float64 // furthest orbit distance
	KeyHold     time.Duration // how long a key press counts as held
}

func (c *Config) applyDefaults() {
	if c.HitRadius == 0 {
		c.HitRadius = DefaultHitRadius
	}
	if c.RotateSpeed == 0 {
		c.RotateSpeed = DefaultRotateSpeed
	}
	if c.ZoomFactor == 0 {
		c.ZoomFactor = DefaultZoomFactor
	}
	if c.MoveSpeed == 0 {
		c.MoveSpeed = DefaultMoveSpeed
	}
	if c.Damping == 0 {
		c.Damping = DefaultDamping
	}
	if c.MinDistance == 0 {
		c.MinDistance = DefaultMinDistance
	}
	if c.MaxDistance == 0 {
		c.MaxDistance = DefaultMaxDistance
	}
	if c.KeyHold == 0 {
		c.KeyHold = DefaultKeyHold
	}
}

// MoveKey identifies one free-movement direction.
type MoveKey int

const (
	MoveForward MoveKey = iota
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

/// Selection is the controller's selection state: at most one selected
// node id plus the screen coordinate of the triggering pointer event.
type Selection struct {
	NodeID  string
	ScreenX int
	ScreenY int
}

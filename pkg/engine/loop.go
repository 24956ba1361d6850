package engine

import (
	"time"
)

// Start enables the frame loop. Calling Start on a running engine is
// a no-op.
func (e *Engine) Start() {
	if e.closed || e.running {
		return
	}
	e.running = true
	e.log.Debug("frame loop started")
}

// Stop pauses the frame loop without tearing the engine down; Step
// becomes a no-op until Start is called again.
func (e *Engine) Stop() {
	if e.closed || !e.running {
		return
	}
	e.running = false
	e.log.Debug("frame loop stopped")
}

// Running reports whether the frame loop is active.
func (e *Engine) Running() bool {
	return e.running
}

// Step advances the simulation by dt: damped camera parameters ease
// toward their targets, held movement keys translate the view, and a
// frame is rendered. Returns the rendered frame, or "" when the loop
// is stopped or the engine closed.
func (e *Engine) Step(dt time.Duration) string {
	if e.closed || !e.running {
		return ""
	}

	start := e.clock()
	e.controller.Update(dt, start)
	frame := e.renderer.Render()
	e.reg.RecordFrame(e.clock().Sub(start))
	return frame
}

// Frame renders the scene at the current camera state without
// advancing the simulation.
func (e *Engine) Frame() string {
	if e.closed {
		return ""
	}
	return e.renderer.Render()
}

// Resize adjusts the viewport; the framebuffer and projection pick up
// the new dimensions on the next frame.
func (e *Engine) Resize(width, height int) {
	if e.closed || width <= 0 || height <= 0 {
		return
	}
	e.renderer.Resize(width, height)
}

// Viewport returns the current framebuffer dimensions in cells.
func (e *Engine) Viewport() (int, int) {
	return e.renderer.Camera().Viewport()
}

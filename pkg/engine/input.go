package engine

import (
	"github.com/memexia/graphview/pkg/controls"
	"github.com/memexia/graphview/pkg/events"
	"github.com/memexia/graphview/pkg/logging"
)

// HandleClick resolves a pointer press at cell (px, py) against the
// current scene. A hit selects the node and publishes NodeSelected; a
// miss clears any selection and publishes SelectionCleared.
func (e *Engine) HandleClick(px, py int) {
	if e.closed {
		return
	}

	idx, ok := e.controller.Pick(e.renderer.Bundle(), float64(px), float64(py))
	e.reg.RecordPick(ok)
	if !ok {
		e.clearSelection()
		return
	}

	node := e.snapshot.NodeAt(idx)
	e.controller.Select(node.ID, px, py)
	e.renderer.SetSelection(node.ID)
	e.log.Debug("node selected", logging.NodeID(node.ID))

	e.bus.Publish(events.TopicSelection, events.NodeSelected{
		Node:    node,
		ScreenX: px,
		ScreenY: py,
	})
}

// HandleDrag orbits the camera by a pointer delta in cells.
func (e *Engine) HandleDrag(dx, dy int) {
	if e.closed {
		return
	}
	e.controller.Rotate(dx, dy)
}

// HandleWheel zooms by the given number of wheel steps; positive
// steps zoom in.
func (e *Engine) HandleWheel(steps int) {
	if e.closed {
		return
	}
	e.controller.Zoom(steps)
}

// KeyDown marks a movement key active. Terminals deliver no release
// events, so the key stays active until its hold window expires or
// KeyUp is called; auto-repeat refreshes the window.
func (e *Engine) KeyDown(k controls.MoveKey) {
	if e.closed {
		return
	}
	e.controller.KeyDown(k, e.clock())
}

// KeyUp marks a movement key released.
func (e *Engine) KeyUp(k controls.MoveKey) {
	if e.closed {
		return
	}
	e.controller.KeyUp(k)
}

// Selection returns the current selection, or nil when nothing is
// selected.
func (e *Engine) Selection() *controls.Selection {
	return e.controller.Selection()
}

// ClearSelection drops the current selection and publishes
// SelectionCleared if one existed.
func (e *Engine) ClearSelection() {
	if e.closed {
		return
	}
	e.clearSelection()
}

func (e *Engine) clearSelection() {
	if e.controller.Selection() == nil {
		return
	}
	e.controller.ClearSelection()
	e.renderer.SetSelection("")
	e.bus.Publish(events.TopicSelection, events.SelectionCleared{})
}

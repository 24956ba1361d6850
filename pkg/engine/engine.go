// Package engine ties the graph model, layout, scene renderer and
// interaction controller together behind one facade, and owns the
// frame loop state machine.
//
// An Engine is single-owner: all methods are expected to be called
// from one goroutine (the UI loop). The event bus is the only
// concurrency boundary; subscribers may live on other goroutines.
package engine

import (
	"context"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/memexia/graphview/pkg/controls"
	"github.com/memexia/graphview/pkg/events"
	"github.com/memexia/graphview/pkg/graph"
	"github.com/memexia/graphview/pkg/layout"
	"github.com/memexia/graphview/pkg/logging"
	"github.com/memexia/graphview/pkg/metrics"
	"github.com/memexia/graphview/pkg/render"
)

// Options configures a new Engine. Zero values fall back to sensible
// defaults throughout.
type Options struct {
	Width, Height int

	Layout   layout.Config
	Controls controls.Config
	Palette  *render.Palette
	FOV      float64 // radians; 0 keeps the camera default

	// Stars sets the background point cloud size; negative disables
	// it, 0 uses the default.
	Stars int

	// ColdStart disables warm-starting layout from the previous
	// snapshot's positions, restoring the full reshuffle on every
	// data update.
	ColdStart bool

	// Rand seeds layout jitter and the starfield. Nil uses entropy.
	Rand *rand.Rand

	Logger  logging.Logger
	Metrics *metrics.Registry

	// Clock overrides the time source; nil uses time.Now.
	Clock func() time.Time
}

// Engine is the graph visualization core: it accepts node/edge data,
// lays it out, renders frames and translates pointer/keyboard input
// into camera state and selection events.
type Engine struct {
	log logging.Logger
	reg *metrics.Registry

	force      *layout.ForceDirected
	palette    render.Palette
	renderer   *render.Renderer
	controller *controls.Controller
	bus        *events.Bus

	snapshot  *graph.Snapshot
	positions map[string]r3.Vec
	coldStart bool
	clock     func() time.Time

	running bool
	closed  bool
}

// New creates an engine with an empty scene. Call SetGraph to supply
// data and Start to enable the frame loop.
func New(opts Options) *Engine {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewRegistry()
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	palette := render.DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}

	camera := render.NewCamera(opts.Width, opts.Height)
	if opts.FOV > 0 {
		camera.FOV = opts.FOV
	}

	var stars *render.Starfield
	starCount := opts.Stars
	if starCount == 0 {
		starCount = render.DefaultStarCount
	}
	if starCount > 0 {
		stars = render.NewStarfield(starCount, 120, 300, rng)
	}

	e := &Engine{
		log:        opts.Logger.With(logging.Component("engine")),
		reg:        opts.Metrics,
		force:      layout.NewForceDirected(opts.Layout, rng),
		palette:    palette,
		renderer:   render.NewRenderer(camera, palette, stars),
		controller: controls.NewController(camera, opts.Controls),
		bus:        events.NewBus(),
		coldStart:  opts.ColdStart,
		clock:      opts.Clock,
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	return e
}

// SetGraph replaces the node/edge set: a new immutable snapshot is
// built, laid out in full, and the scene's primitives are rebuilt
// atomically. Surviving nodes keep their previous positions as layout
// seeds unless the engine was created with ColdStart.
func (e *Engine) SetGraph(nodes []graph.Node, edges []graph.Edge, seedID string) {
	if e.closed {
		return
	}

	trigger := "update"
	if e.snapshot == nil {
		trigger = "initial"
	}

	snap := graph.NewSnapshot(nodes, edges, seedID)

	start := time.Now()
	prev := e.positions
	if e.coldStart {
		prev = nil
	}
	positions := e.force.ComputeWarm(snap, prev)
	elapsed := time.Since(start)

	bundle := render.BuildBundle(snap, positions, e.palette)
	e.renderer.Install(bundle)

	e.snapshot = snap
	e.positions = positions

	// A selection pointing at a node that no longer exists is stale
	if sel := e.controller.Selection(); sel != nil {
		if _, ok := snap.NodeByID(sel.NodeID); !ok {
			e.clearSelection()
		}
	}

	e.reg.RecordLayout(trigger, elapsed, snap.NodeCount(), snap.EdgeCount(), snap.DroppedEdges())
	e.reg.RecordSceneRebuild(bundle.VertexCount(), bundle.SegmentCount())

	if snap.DroppedEdges() > 0 {
		e.log.Debug("dropped dangling edges", logging.Count(snap.DroppedEdges()))
	}
	e.log.Info("graph replaced",
		logging.Operation(trigger),
		logging.Nodes(snap.NodeCount()),
		logging.Edges(snap.EdgeCount()),
		logging.Latency(elapsed),
	)

	e.bus.Publish(events.TopicGraph, events.GraphReplaced{
		Nodes:        snap.NodeCount(),
		Edges:        snap.EdgeCount(),
		DroppedEdges: snap.DroppedEdges(),
	})
}

// Snapshot returns the current graph snapshot, or nil before the first
// SetGraph.
func (e *Engine) Snapshot() *graph.Snapshot {
	return e.snapshot
}

// Positions returns the current layout positions keyed by node id.
// The map must not be mutated.
func (e *Engine) Positions() map[string]r3.Vec {
	return e.positions
}

// Subscribe opens an event subscription on the given topic. Returns
// nil after Close.
func (e *Engine) Subscribe(ctx context.Context, topic string) *events.Subscription {
	return e.bus.Subscribe(ctx, topic)
}

// Events opens a subscription to the selection event stream.
func (e *Engine) Events(ctx context.Context) *events.Subscription {
	return e.Subscribe(ctx, events.TopicSelection)
}

// Close tears the engine down: stops the loop, disposes the scene and
// shuts the event bus down. Later calls on a closed engine are no-ops,
// guarding against late asynchronous callbacks after teardown.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.running = false
	e.renderer.Install(nil)
	e.bus.Shutdown()
	e.log.Info("engine closed")
}

// Closed reports whether the engine has been torn down.
func (e *Engine) Closed() bool {
	return e.closed
}

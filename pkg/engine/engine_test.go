package engine

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memexia/graphview/pkg/controls"
	"github.com/memexia/graphview/pkg/events"
	"github.com/memexia/graphview/pkg/graph"
	"github.com/memexia/graphview/pkg/layout"
)

func testEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(7))
	}
	if opts.Stars == 0 {
		opts.Stars = -1
	}
	e := New(opts)
	t.Cleanup(e.Close)
	return e
}

func triangle() ([]graph.Node, []graph.Edge) {
	nodes := []graph.Node{
		{ID: "a", Content: "alpha", Type: "concept"},
		{ID: "b", Content: "beta", Type: "concept"},
		{ID: "c", Content: "gamma", Type: "concept"},
	}
	edges := []graph.Edge{
		{ID: "ab", SourceID: "a", TargetID: "b", RelationType: "related", Weight: 1},
		{ID: "bc", SourceID: "b", TargetID: "c", RelationType: "related", Weight: 1},
		{ID: "ca", SourceID: "c", TargetID: "a", RelationType: "related", Weight: 1},
	}
	return nodes, edges
}

func TestNewRendersEmptyScene(t *testing.T) {
	e := testEngine(t, Options{Width: 40, Height: 10})

	frame := e.Frame()
	require.NotEmpty(t, frame)
	assert.Equal(t, 10, strings.Count(frame, "\n")+1)
	assert.Nil(t, e.Snapshot())
}

func TestSetGraphBuildsScene(t *testing.T) {
	e := testEngine(t, Options{Width: 80, Height: 24})

	sub := e.Subscribe(context.Background(), events.TopicGraph)
	require.NotNil(t, sub)

	nodes, edges := triangle()
	e.SetGraph(nodes, edges, "a")

	require.NotNil(t, e.Snapshot())
	assert.Equal(t, 3, e.Snapshot().NodeCount())
	assert.Equal(t, 3, e.Snapshot().EdgeCount())
	assert.Len(t, e.Positions(), 3)

	select {
	case ev := <-sub.Channel():
		replaced, ok := ev.(events.GraphReplaced)
		require.True(t, ok)
		assert.Equal(t, 3, replaced.Nodes)
		assert.Equal(t, 3, replaced.Edges)
		assert.Equal(t, 0, replaced.DroppedEdges)
	case <-time.After(time.Second):
		t.Fatal("no graph event received")
	}
}

func TestSetGraphWarmStartKeepsSurvivors(t *testing.T) {
	// Near-zero forces so positions barely move between updates.
	cfg := layout.Config{Iterations: 1, Repulsion: 1e-9, Attraction: 1e-9}
	e := testEngine(t, Options{Width: 80, Height: 24, Layout: cfg})

	nodes, edges := triangle()
	e.SetGraph(nodes, edges, "a")
	before := e.Positions()["a"]

	nodes = append(nodes, graph.Node{ID: "d", Content: "delta", Type: "concept"})
	e.SetGraph(nodes, edges, "a")
	after := e.Positions()["a"]

	assert.InDelta(t, before.X, after.X, 1e-3)
	assert.InDelta(t, before.Y, after.Y, 1e-3)
	assert.InDelta(t, before.Z, after.Z, 1e-3)
}

func TestColdStartReshuffles(t *testing.T) {
	cfg := layout.Config{Iterations: 1, Repulsion: 1e-9, Attraction: 1e-9}
	e := testEngine(t, Options{Width: 80, Height: 24, Layout: cfg, ColdStart: true})

	nodes, edges := triangle()
	e.SetGraph(nodes, edges, "a")
	before := e.Positions()["c"]

	// Same data again: without warm start the last node's shell slot
	// changes when the node count changes.
	nodes = append(nodes, graph.Node{ID: "d", Content: "delta", Type: "concept"})
	e.SetGraph(nodes, edges, "a")
	after := e.Positions()["c"]

	moved := before.X != after.X || before.Y != after.Y || before.Z != after.Z
	assert.True(t, moved, "cold start should re-place nodes")
}

func TestClickSelectsCenterNode(t *testing.T) {
	e := testEngine(t, Options{Width: 80, Height: 24})
	sub := e.Events(context.Background())

	// A single node lays out at the origin, which projects to the
	// viewport center.
	e.SetGraph([]graph.Node{{ID: "solo", Content: "only", Type: "concept"}}, nil, "")

	e.HandleClick(40, 12)

	sel := e.Selection()
	require.NotNil(t, sel)
	assert.Equal(t, "solo", sel.NodeID)

	select {
	case ev := <-sub.Channel():
		selected, ok := ev.(events.NodeSelected)
		require.True(t, ok)
		assert.Equal(t, "solo", selected.Node.ID)
		assert.Equal(t, 40, selected.ScreenX)
		assert.Equal(t, 12, selected.ScreenY)
	case <-time.After(time.Second):
		t.Fatal("no selection event received")
	}
}

func TestClickMissClearsSelection(t *testing.T) {
	e := testEngine(t, Options{Width: 80, Height: 24})
	e.SetGraph([]graph.Node{{ID: "solo", Content: "only", Type: "concept"}}, nil, "")

	e.HandleClick(40, 12)
	require.NotNil(t, e.Selection())

	sub := e.Events(context.Background())
	e.HandleClick(0, 0)
	assert.Nil(t, e.Selection())

	select {
	case ev := <-sub.Channel():
		_, ok := ev.(events.SelectionCleared)
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("no cleared event received")
	}
}

func TestSetGraphDropsStaleSelection(t *testing.T) {
	e := testEngine(t, Options{Width: 80, Height: 24})
	e.SetGraph([]graph.Node{{ID: "solo", Content: "only", Type: "concept"}}, nil, "")
	e.HandleClick(40, 12)
	require.NotNil(t, e.Selection())

	e.SetGraph([]graph.Node{{ID: "other", Content: "new", Type: "concept"}}, nil, "")
	assert.Nil(t, e.Selection())
}

func TestStartStopAndStep(t *testing.T) {
	e := testEngine(t, Options{Width: 40, Height: 10})
	e.SetGraph([]graph.Node{{ID: "solo", Content: "only", Type: "concept"}}, nil, "")

	assert.Empty(t, e.Step(time.Second/30), "step before start should render nothing")

	e.Start()
	assert.True(t, e.Running())
	e.Start() // second start is a no-op
	assert.True(t, e.Running())

	frame := e.Step(time.Second / 30)
	assert.NotEmpty(t, frame)

	e.Stop()
	assert.False(t, e.Running())
	assert.Empty(t, e.Step(time.Second/30))
}

func TestStepAdvancesDampedZoom(t *testing.T) {
	e := testEngine(t, Options{Width: 80, Height: 24})
	e.SetGraph([]graph.Node{{ID: "solo", Content: "only", Type: "concept"}}, nil, "")
	e.Start()

	before := e.renderer.Camera().Position
	e.HandleWheel(3)
	e.Step(50 * time.Millisecond)
	after := e.renderer.Camera().Position

	assert.Less(t, after.Z, before.Z, "zooming in should move the camera toward the target")
}

func TestKeyHoldMovesView(t *testing.T) {
	e := testEngine(t, Options{Width: 80, Height: 24})
	e.SetGraph([]graph.Node{{ID: "solo", Content: "only", Type: "concept"}}, nil, "")
	e.Start()

	before := e.renderer.Camera().Target
	e.KeyDown(controls.MoveRight)
	e.Step(100 * time.Millisecond)
	after := e.renderer.Camera().Target

	assert.NotEqual(t, before, after, "held key should translate the focus")
	e.KeyUp(controls.MoveRight)
}

func TestResize(t *testing.T) {
	e := testEngine(t, Options{Width: 80, Height: 24})
	e.Resize(120, 40)
	w, h := e.Viewport()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)

	e.Resize(0, -1)
	w, h = e.Viewport()
	assert.Equal(t, 120, w, "invalid dimensions are ignored")
	assert.Equal(t, 40, h)
}

func TestCloseIsIdempotent(t *testing.T) {
	e := New(Options{Width: 40, Height: 10, Stars: -1})
	e.SetGraph([]graph.Node{{ID: "solo", Content: "only", Type: "concept"}}, nil, "")
	e.Start()

	e.Close()
	assert.True(t, e.Closed())
	assert.False(t, e.Running())
	assert.Empty(t, e.Frame())
	assert.Empty(t, e.Step(time.Second/30))
	assert.Nil(t, e.Subscribe(context.Background(), events.TopicSelection))

	// Late calls after teardown must not panic.
	e.SetGraph(nil, nil, "")
	e.HandleClick(1, 1)
	e.HandleDrag(1, 1)
	e.HandleWheel(1)
	e.KeyDown(controls.MoveForward)
	e.Close()
}

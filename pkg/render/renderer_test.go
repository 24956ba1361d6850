package render

import (
	"math/rand"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/memexia/graphview/pkg/graph"
)

func buildTestBundle(t *testing.T) (*graph.Snapshot, *Bundle) {
	t.Helper()
	nodes := []graph.Node{
		{ID: "seed", Content: "root"},
		{ID: "gen", Content: "generated", Generated: true},
		{ID: "plain", Content: "plain"},
	}
	edges := []graph.Edge{
		{SourceID: "seed", TargetID: "gen"},
		{SourceID: "seed", TargetID: "plain"},
	}
	snap := graph.NewSnapshot(nodes, edges, "seed")
	positions := map[string]r3.Vec{
		"seed":  {},
		"gen":   {X: 3},
		"plain": {X: -3},
	}
	return snap, BuildBundle(snap, positions, DefaultPalette())
}

func TestBundleColorPolicy(t *testing.T) {
	_, bundle := buildTestBundle(t)
	palette := DefaultPalette()

	if bundle.VertexCount() != 3 {
		t.Fatalf("VertexCount() = %d, want 3", bundle.VertexCount())
	}
	if bundle.SegmentCount() != 2 {
		t.Fatalf("SegmentCount() = %d, want 2", bundle.SegmentCount())
	}

	colorOf := func(id string) string {
		for i, nodeID := range bundle.Points.NodeIDs {
			if nodeID == id {
				return string(bundle.Points.Colors[i])
			}
		}
		t.Fatalf("node %s missing from point primitive", id)
		return ""
	}

	if colorOf("seed") != string(palette.Seed) {
		t.Error("seed node did not get the highlight color")
	}
	if colorOf("gen") != string(palette.Generated) {
		t.Error("generated node did not get the accent color")
	}
	if colorOf("plain") != string(palette.Node) {
		t.Error("plain node did not get the default color")
	}
}

func TestInstallDisposesOldBundle(t *testing.T) {
	cam := NewCamera(40, 12)
	r := NewRenderer(cam, DefaultPalette(), nil)

	_, first := buildTestBundle(t)
	r.Install(first)
	if first.Disposed() {
		t.Fatal("live bundle must not be disposed")
	}

	_, second := buildTestBundle(t)
	r.Install(second)

	if !first.Disposed() {
		t.Error("old bundle should be disposed on install")
	}
	if second.Disposed() {
		t.Error("new bundle should be live")
	}
	if r.Bundle() != second {
		t.Error("renderer should own the new bundle")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	_, bundle := buildTestBundle(t)
	bundle.Dispose()
	bundle.Dispose()
	if !bundle.Disposed() {
		t.Error("bundle should stay disposed")
	}
	var nilBundle *Bundle
	nilBundle.Dispose() // Must not panic
}

func TestRenderDrawsNodeAtCenter(t *testing.T) {
	cam := NewCamera(41, 13)
	cam.Position = r3.Vec{Z: 20}
	cam.Target = r3.Vec{}
	r := NewRenderer(cam, DefaultPalette(), nil)

	snap := graph.NewSnapshot([]graph.Node{{ID: "only"}}, nil, "")
	r.Install(BuildBundle(snap, map[string]r3.Vec{"only": {}}, DefaultPalette()))

	frame := r.Render()
	if !strings.ContainsRune(frame, DefaultPalette().NodeGlyph) {
		t.Fatal("node glyph missing from rendered frame")
	}
}

func TestRenderEmptySceneIsNoop(t *testing.T) {
	cam := NewCamera(20, 6)
	r := NewRenderer(cam, DefaultPalette(), nil)

	// No bundle installed at all: render must not panic and returns a
	// blank frame of the right shape
	frame := r.Render()
	lines := strings.Split(frame, "\n")
	if len(lines) != 6 {
		t.Fatalf("frame has %d rows, want 6", len(lines))
	}

	// Empty snapshot: still nothing to draw
	snap := graph.NewSnapshot(nil, nil, "")
	r.Install(BuildBundle(snap, nil, DefaultPalette()))
	if got := r.Render(); strings.ContainsRune(got, DefaultPalette().NodeGlyph) {
		t.Error("empty scene rendered node glyphs")
	}
}

func TestRenderSelectionHighlight(t *testing.T) {
	cam := NewCamera(41, 13)
	cam.Position = r3.Vec{Z: 20}
	r := NewRenderer(cam, DefaultPalette(), nil)

	snap := graph.NewSnapshot([]graph.Node{{ID: "n"}}, nil, "")
	r.Install(BuildBundle(snap, map[string]r3.Vec{"n": {}}, DefaultPalette()))

	r.SetSelection("n")
	if !strings.ContainsRune(r.Render(), '◎') {
		t.Error("selected node should render with the selection ring")
	}
	r.SetSelection("")
	if strings.ContainsRune(r.Render(), '◎') {
		t.Error("cleared selection should drop the ring")
	}
}

func TestStarfieldRendersBehindGraph(t *testing.T) {
	cam := NewCamera(61, 21)
	cam.Position = r3.Vec{Z: 20}
	stars := NewStarfield(200, 50, 80, rand.New(rand.NewSource(1)))
	r := NewRenderer(cam, DefaultPalette(), stars)

	frame := r.Render()
	if !strings.ContainsRune(frame, DefaultPalette().StarGlyph) {
		t.Error("starfield missing from background")
	}
}

func TestFramebufferLine(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Line(0, 0, 9, 9, '*', "")

	for i := 0; i < 10; i++ {
		if fb.At(i, i) != '*' {
			t.Errorf("diagonal cell (%d,%d) = %q", i, i, fb.At(i, i))
		}
	}
	// Out-of-bounds writes are ignored
	fb.Set(-1, 2, 'x', "")
	fb.Set(2, 99, 'x', "")
}

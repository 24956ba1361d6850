package render

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/charmbracelet/lipgloss"
	"github.com/memexia/graphview/pkg/graph"
)

// PointPrimitive carries one vertex per node: position, color, glyph
// and the owning node id. Vertex order matches the snapshot's stable
// node order, so a picked vertex index resolves back to its node.
type PointPrimitive struct {
	Positions []r3.Vec
	Colors    []lipgloss.Color
	Glyphs    []rune
	NodeIDs   []string
}

// LinePrimitive carries two endpoints per rendered edge.
type LinePrimitive struct {
	Starts []r3.Vec
	Ends   []r3.Vec
	Color  lipgloss.Color
	Glyph  rune
}

// Bundle is the immutable primitive set for one snapshot. The renderer
// owns exactly one live bundle at a time; installing a new one disposes
// the old one.
type Bundle struct {
	Points   *PointPrimitive
	Lines    *LinePrimitive
	disposed bool
}

// BuildBundle converts a snapshot plus layout positions into a
// primitive bundle. Color and glyph policy is applied here, at build
// time. Edges referencing ids missing from the position map are
// skipped; the snapshot normally guarantees there are none.
func BuildBundle(snap *graph.Snapshot, positions map[string]r3.Vec, palette Palette) *Bundle {
	nodes := snap.Nodes()

	points := &PointPrimitive{
		Positions: make([]r3.Vec, 0, len(nodes)),
		Colors:    make([]lipgloss.Color, 0, len(nodes)),
		Glyphs:    make([]rune, 0, len(nodes)),
		NodeIDs:   make([]string, 0, len(nodes)),
	}
	for _, n := range nodes {
		isSeed := snap.IsSeed(n.ID)
		points.Positions = append(points.Positions, positions[n.ID])
		points.Colors = append(points.Colors, palette.NodeColor(isSeed, n.Generated))
		points.Glyphs = append(points.Glyphs, palette.NodeRune(isSeed, n.Generated))
		points.NodeIDs = append(points.NodeIDs, n.ID)
	}

	lines := &LinePrimitive{
		Starts: make([]r3.Vec, 0, snap.EdgeCount()),
		Ends:   make([]r3.Vec, 0, snap.EdgeCount()),
		Color:  palette.Edge,
		Glyph:  palette.EdgeGlyph,
	}
	for _, e := range snap.Edges() {
		src, srcOK := positions[e.SourceID]
		dst, dstOK := positions[e.TargetID]
		if !srcOK || !dstOK {
			continue
		}
		lines.Starts = append(lines.Starts, src)
		lines.Ends = append(lines.Ends, dst)
	}

	return &Bundle{Points: points, Lines: lines}
}

// VertexCount returns the number of point vertices.
func (b *Bundle) VertexCount() int {
	if b == nil || b.Points == nil {
		return 0
	}
	return len(b.Points.Positions)
}

// SegmentCount returns the number of line segments.
func (b *Bundle) SegmentCount() int {
	if b == nil || b.Lines == nil {
		return 0
	}
	return len(b.Lines.Starts)
}

// Dispose releases the bundle's buffers. A disposed bundle renders
// nothing; disposing twice is a no-op.
func (b *Bundle) Dispose() {
	if b == nil || b.disposed {
		return
	}
	b.disposed = true
	b.Points = nil
	b.Lines = nil
}

// Disposed reports whether the bundle has been released.
func (b *Bundle) Disposed() bool {
	return b == nil || b.disposed
}

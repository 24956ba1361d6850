package render

import (
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Renderer owns the scene: the camera, the live primitive bundle and
// the decorative background. The interaction layer reads the camera
// but never mutates geometry; all bundle swaps go through Install.
type Renderer struct {
	camera    *Camera
	palette   Palette
	bundle    *Bundle
	stars     *Starfield
	fb        *Framebuffer
	selection string
}

// NewRenderer creates a renderer for the given camera. stars may be
// nil to disable the background.
func NewRenderer(camera *Camera, palette Palette, stars *Starfield) *Renderer {
	w, h := camera.Viewport()
	return &Renderer{
		camera:  camera,
		palette: palette,
		stars:   stars,
		fb:      NewFramebuffer(w, h),
	}
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Bundle returns the live primitive bundle, or nil before the first
// install.
func (r *Renderer) Bundle() *Bundle {
	return r.bundle
}

// Install swaps in a freshly built bundle and disposes the previous
// one. The swap is the only mutation point for scene geometry.
func (r *Renderer) Install(bundle *Bundle) {
	old := r.bundle
	r.bundle = bundle
	old.Dispose()
}

// Resize resynchronizes the camera aspect and the framebuffer to a new
// viewport size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.camera.SetViewport(width, height)
	r.fb = NewFramebuffer(width, height)
}

// SetSelection marks the node drawn highlighted, or clears it with "".
func (r *Renderer) SetSelection(nodeID string) {
	r.selection = nodeID
}

// Render draws the scene through the camera and returns the styled
// frame. With no bundle installed (or an empty graph) it draws only
// the background.
func (r *Renderer) Render() string {
	if r.fb == nil || r.camera == nil {
		return ""
	}
	r.fb.Clear()

	r.drawStars()
	r.drawLines()
	r.drawPoints()

	return r.fb.String()
}

func (r *Renderer) drawStars() {
	if r.stars == nil {
		return
	}
	for _, p := range r.stars.Points() {
		x, y, _, ok := r.camera.Project(p)
		if !ok {
			continue
		}
		r.fb.Set(int(math.Round(x)), int(math.Round(y)), r.palette.StarGlyph, r.palette.Star)
	}
}

func (r *Renderer) drawLines() {
	if r.bundle.Disposed() || r.bundle.Lines == nil {
		return
	}
	lines := r.bundle.Lines
	for i := range lines.Starts {
		x0, y0, _, ok0 := r.camera.Project(lines.Starts[i])
		x1, y1, _, ok1 := r.camera.Project(lines.Ends[i])
		if !ok0 || !ok1 {
			// Segments crossing the near plane are dropped whole; a
			// clipped partial edge reads worse than a missing one at
			// cell resolution.
			continue
		}
		r.fb.Line(
			int(math.Round(x0)), int(math.Round(y0)),
			int(math.Round(x1)), int(math.Round(y1)),
			lines.Glyph, lines.Color,
		)
	}
}

func (r *Renderer) drawPoints() {
	if r.bundle.Disposed() || r.bundle.Points == nil {
		return
	}
	points := r.bundle.Points

	type projected struct {
		x, y  int
		depth float64
		idx   int
	}
	visible := make([]projected, 0, len(points.Positions))
	for i, p := range points.Positions {
		x, y, depth, ok := r.camera.Project(p)
		if !ok {
			continue
		}
		visible = append(visible, projected{
			x:     int(math.Round(x)),
			y:     int(math.Round(y)),
			depth: depth,
			idx:   i,
		})
	}

	// Far to near so close nodes overdraw distant ones
	sort.Slice(visible, func(a, b int) bool {
		return visible[a].depth > visible[b].depth
	})

	for _, v := range visible {
		glyph := points.Glyphs[v.idx]
		color := points.Colors[v.idx]
		if r.selection != "" && points.NodeIDs[v.idx] == r.selection {
			glyph = '◎'
			color = lipgloss.Color("#FFFFFF")
		}
		r.fb.Set(v.x, v.y, glyph, color)
	}
}

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	glyph rune
	color lipgloss.Color
}

// Framebuffer is a width×height grid of colored glyphs, the terminal
// analogue of a render target.
type Framebuffer struct {
	width, height int
	cells         []cell
}

// NewFramebuffer allocates a cleared framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{width: width, height: height}
	fb.cells = make([]cell, width*height)
	fb.Clear()
	return fb
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (int, int) {
	return fb.width, fb.height
}

// Clear resets every cell to empty.
func (fb *Framebuffer) Clear() {
	for i := range fb.cells {
		fb.cells[i] = cell{glyph: ' '}
	}
}

// Set writes a glyph at the given cell, ignoring out-of-bounds writes.
func (fb *Framebuffer) Set(x, y int, glyph rune, color lipgloss.Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.cells[y*fb.width+x] = cell{glyph: glyph, color: color}
}

// At returns the glyph at the given cell, or space when out of bounds.
func (fb *Framebuffer) At(x, y int) rune {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return ' '
	}
	return fb.cells[y*fb.width+x].glyph
}

// Line draws a straight run of glyphs between two cells (Bresenham).
func (fb *Framebuffer) Line(x0, y0, x1, y1 int, glyph rune, color lipgloss.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.Set(x0, y0, glyph, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the framebuffer as styled terminal output. Runs of
// same-colored cells share one style invocation to keep the per-frame
// allocation load down.
func (fb *Framebuffer) String() string {
	var sb strings.Builder
	var run strings.Builder

	for y := 0; y < fb.height; y++ {
		var runColor lipgloss.Color
		run.Reset()

		flush := func() {
			if run.Len() == 0 {
				return
			}
			text := run.String()
			if runColor == "" || strings.TrimSpace(text) == "" {
				sb.WriteString(text)
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(text))
			}
			run.Reset()
		}

		for x := 0; x < fb.width; x++ {
			c := fb.cells[y*fb.width+x]
			if c.color != runColor {
				flush()
				runColor = c.color
			}
			run.WriteRune(c.glyph)
		}
		flush()
		if y != fb.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the static color policy, resolved once when the scene is
// built, never per frame.
type Palette struct {
	Seed      lipgloss.Color // distinct highlight for the seed node
	Generated lipgloss.Color // accent for AI-generated nodes
	Node      lipgloss.Color // everything else
	Edge      lipgloss.Color
	Star      lipgloss.Color

	SeedGlyph      rune
	GeneratedGlyph rune
	NodeGlyph      rune
	EdgeGlyph      rune
	StarGlyph      rune
}

// DefaultPalette returns the stock dark-terminal palette.
func DefaultPalette() Palette {
	return Palette{
		Seed:      lipgloss.Color("#FF00FF"),
		Generated: lipgloss.Color("#00FFFF"),
		Node:      lipgloss.Color("#00FF00"),
		Edge:      lipgloss.Color("#666666"),
		Star:      lipgloss.Color("#3A3A4A"),

		SeedGlyph:      '◉',
		GeneratedGlyph: '○',
		NodeGlyph:      '●',
		EdgeGlyph:      '·',
		StarGlyph:      '˙',
	}
}

// NodeColor applies the color policy for one node.
func (p Palette) NodeColor(isSeed, generated bool) lipgloss.Color {
	switch {
	case isSeed:
		return p.Seed
	case generated:
		return p.Generated
	default:
		return p.Node
	}
}

// NodeRune applies the glyph policy for one node.
func (p Palette) NodeRune(isSeed, generated bool) rune {
	switch {
	case isSeed:
		return p.SeedGlyph
	case generated:
		return p.GeneratedGlyph
	default:
		return p.NodeGlyph
	}
}

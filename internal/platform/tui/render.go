package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/runefall/internal/config"
)

// Palette holds the glyphs and lipgloss styles derived from a theme.
// Built once per session so styles are not reallocated every frame.
type Palette struct {
	playerGlyph   rune
	runeGlyph     rune
	obstacleGlyph rune
	styles        map[paint]lipgloss.Style
}

// NewPalette builds a palette from the configured theme.
func NewPalette(th config.Theme) *Palette {
	return &Palette{
		playerGlyph:   firstRune(th.PlayerGlyph, '@'),
		runeGlyph:     firstRune(th.RuneGlyph, '*'),
		obstacleGlyph: firstRune(th.ObstacleGlyph, '#'),
		styles: map[paint]lipgloss.Style{
			paintNone:     lipgloss.NewStyle(),
			paintPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.PlayerColor)),
			paintRune:     lipgloss.NewStyle().Foreground(lipgloss.Color(th.RuneColor)),
			paintObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color(th.ObstacleColor)),
			paintDim:      lipgloss.NewStyle().Foreground(lipgloss.Color(th.DimColor)),
		},
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// Render converts the canvas to a styled string for display.
// Groups adjacent cells with the same paint class to minimize ANSI
// escape sequences.
func (p *Palette) Render(c *Canvas) string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.width {
			start := c.cells[y][x].color

			var run strings.Builder
			for x < c.width && c.cells[y][x].color == start {
				run.WriteRune(c.cells[y][x].glyph)
				x++
			}

			style, ok := p.styles[start]
			if !ok {
				style = p.styles[paintNone]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

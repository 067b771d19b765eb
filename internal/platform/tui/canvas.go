package tui

import (
	"github.com/arcadelab/runefall/internal/engine"
)

// paint classifies a cell for styling. The palette maps each class to
// a lipgloss style derived from the configured theme.
type paint int

const (
	paintNone paint = iota
	paintPlayer
	paintRune
	paintObstacle
	paintDim
)

type cell struct {
	glyph rune
	color paint
}

// Canvas is a 2D cell buffer that projects corridor-space coordinates
// onto terminal cells. The corridor keeps its fixed logical size; the
// canvas scales it to whatever the terminal gives, so the simulation
// never depends on the screen.
type Canvas struct {
	width  int
	height int
	bounds engine.Bounds
	cells  [][]cell
}

// NewCanvas creates a canvas for the given terminal size and corridor bounds.
func NewCanvas(width, height int, b engine.Bounds) *Canvas {
	c := &Canvas{width: width, height: height, bounds: b}
	c.allocate()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]cell, c.width)
	}
	c.Clear()
}

// Width returns the canvas width in terminal cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in terminal cells.
func (c *Canvas) Height() int { return c.height }

// Resize changes the canvas dimensions. Content is discarded; the next
// frame redraws everything anyway.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.allocate()
}

// Clear fills the canvas with blanks.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{glyph: ' ', color: paintNone}
		}
	}
}

// Project maps a corridor-space point to a terminal cell. Points
// outside the corridor project outside the canvas; set clips them.
func (c *Canvas) Project(p engine.Vec2) (int, int) {
	if c.bounds.Width <= 0 || c.bounds.Height <= 0 {
		return -1, -1
	}
	x := int(p.X / c.bounds.Width * float64(c.width))
	y := int(p.Y / c.bounds.Height * float64(c.height))
	return x, y
}

// set places a glyph at the given cell. Out-of-bounds cells are
// silently ignored so callers never have to clip.
func (c *Canvas) set(x, y int, glyph rune, color paint) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = cell{glyph: glyph, color: color}
}

// DrawSnapshot renders a full world snapshot onto the canvas: the
// obstacles and runes first, the player on top. The player cell comes
// from the same corridor mapping the collision check uses, so what the
// player sees is what the engine tests.
func (c *Canvas) DrawSnapshot(snap engine.Snapshot, pal *Palette) {
	c.Clear()

	for _, o := range snap.Obstacles {
		c.drawObstacle(o, pal)
	}
	for _, col := range snap.Collectibles {
		if col.Collected {
			continue
		}
		x, y := c.Project(col.Pos)
		c.set(x, y, pal.runeGlyph, paintRune)
	}

	px, py := c.Project(engine.PlayerCorridorPos(snap.PlayerPos, c.bounds))
	c.set(px, py, pal.playerGlyph, paintPlayer)
}

// rotGlyphs cycles as a rotating obstacle spins.
var rotGlyphs = [4]rune{'-', '\\', '|', '/'}

func (c *Canvas) drawObstacle(o engine.Obstacle, pal *Palette) {
	glyph := pal.obstacleGlyph
	color := paintObstacle
	switch {
	case !o.Visible:
		// Hidden obstacles do not collide; show a faint outline so the
		// player can anticipate the reappearance.
		glyph = '·'
		color = paintDim
	case o.Pattern == engine.PatternRotating:
		idx := int(o.Rotation/45) % len(rotGlyphs)
		if idx < 0 {
			idx += len(rotGlyphs)
		}
		glyph = rotGlyphs[idx]
	}

	x0, y0 := c.Project(engine.Vec2{X: o.Pos.X - o.Width/2, Y: o.Pos.Y - o.Height/2})
	x1, y1 := c.Project(engine.Vec2{X: o.Pos.X + o.Width/2, Y: o.Pos.Y + o.Height/2})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, glyph, color)
		}
	}
}

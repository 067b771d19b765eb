package tui

import (
	"testing"

	"github.com/arcadelab/runefall/internal/config"
	"github.com/arcadelab/runefall/internal/engine"
)

func testCanvas() *Canvas {
	return NewCanvas(80, 24, engine.Bounds{Width: 400, Height: 600})
}

func testPalette() *Palette {
	return NewPalette(config.Default().Theme)
}

func TestPlayerCellMatchesCollisionMapping(t *testing.T) {
	c := testCanvas()
	pal := testPalette()

	snap := engine.Snapshot{
		State:     engine.StatePlaying,
		PlayerPos: engine.Vec2{X: 0.5, Y: 0.8},
	}
	c.DrawSnapshot(snap, pal)

	// The rendered player cell must come from the same corridor mapping
	// the engine uses for collisions.
	want := engine.PlayerCorridorPos(snap.PlayerPos, c.bounds)
	x, y := c.Project(want)

	if got := c.cells[y][x]; got.color != paintPlayer {
		t.Errorf("cell (%d,%d) color = %v, want player", x, y, got.color)
	}
	if got := c.cells[y][x]; got.glyph != pal.playerGlyph {
		t.Errorf("cell (%d,%d) glyph = %q, want %q", x, y, got.glyph, pal.playerGlyph)
	}
}

func TestObstacleFillsProjectedRect(t *testing.T) {
	c := testCanvas()
	pal := testPalette()

	snap := engine.Snapshot{
		Obstacles: []engine.Obstacle{{
			ID:      1,
			Pos:     engine.Vec2{X: 200, Y: 300},
			Width:   100,
			Height:  60,
			Pattern: engine.PatternStationary,
			Visible: true,
		}},
	}
	c.DrawSnapshot(snap, pal)

	// Corners of the projected rect: x spans 150..250, y spans 270..330.
	x0, y0 := c.Project(engine.Vec2{X: 150, Y: 270})
	x1, y1 := c.Project(engine.Vec2{X: 250, Y: 330})
	for _, pt := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		if got := c.cells[pt[1]][pt[0]]; got.color != paintObstacle {
			t.Errorf("cell (%d,%d) color = %v, want obstacle", pt[0], pt[1], got.color)
		}
	}

	// Just outside the rect stays blank.
	if got := c.cells[y0][x0-1]; got.color != paintNone {
		t.Errorf("cell left of rect painted %v, want blank", got.color)
	}
}

func TestInvisibleObstacleDrawnDim(t *testing.T) {
	c := testCanvas()
	pal := testPalette()

	snap := engine.Snapshot{
		Obstacles: []engine.Obstacle{{
			ID:      1,
			Pos:     engine.Vec2{X: 200, Y: 300},
			Width:   100,
			Height:  60,
			Pattern: engine.PatternDisappearing,
			Visible: false,
		}},
	}
	c.DrawSnapshot(snap, pal)

	x, y := c.Project(engine.Vec2{X: 200, Y: 300})
	got := c.cells[y][x]
	if got.color != paintDim {
		t.Errorf("hidden obstacle color = %v, want dim", got.color)
	}
	if got.glyph == pal.obstacleGlyph {
		t.Error("hidden obstacle should not use the solid obstacle glyph")
	}
}

func TestCollectedRuneNotDrawn(t *testing.T) {
	c := testCanvas()
	pal := testPalette()

	snap := engine.Snapshot{
		Collectibles: []engine.Collectible{
			{ID: 1, Pos: engine.Vec2{X: 100, Y: 150}, Collected: true},
			{ID: 2, Pos: engine.Vec2{X: 300, Y: 450}},
		},
	}
	c.DrawSnapshot(snap, pal)

	x, y := c.Project(engine.Vec2{X: 100, Y: 150})
	if got := c.cells[y][x]; got.color != paintNone {
		t.Errorf("collected rune painted %v, want blank", got.color)
	}
	x, y = c.Project(engine.Vec2{X: 300, Y: 450})
	if got := c.cells[y][x]; got.color != paintRune {
		t.Errorf("uncollected rune color = %v, want rune", got.color)
	}
}

func TestOffscreenObstacleClipped(t *testing.T) {
	c := testCanvas()
	pal := testPalette()

	// Spawned above the corridor, as generated layouts are.
	snap := engine.Snapshot{
		Obstacles: []engine.Obstacle{{
			ID:      1,
			Pos:     engine.Vec2{X: 200, Y: -500},
			Width:   100,
			Height:  60,
			Pattern: engine.PatternStationary,
			Visible: true,
		}},
	}
	c.DrawSnapshot(snap, pal)

	for x := 0; x < c.Width(); x++ {
		if got := c.cells[0][x]; got.color != paintNone {
			t.Fatalf("row 0 cell %d painted %v for an offscreen obstacle", x, got.color)
		}
	}
}

func TestResizeKeepsProjectionProportional(t *testing.T) {
	c := testCanvas()
	c.Resize(160, 48)

	x, y := c.Project(engine.Vec2{X: 200, Y: 300})
	if x != 80 || y != 24 {
		t.Errorf("Project(center) after resize = (%d,%d), want (80,24)", x, y)
	}
}

package engine

import (
	"math"
	"testing"
)

func TestCircleHitsObstacle(t *testing.T) {
	center := Vec2{X: 100, Y: 100}

	tests := []struct {
		name     string
		obstacle Obstacle
		expected bool
	}{
		{
			"rect centered on the circle",
			Obstacle{Pos: Vec2{X: 100, Y: 100}, Width: 20, Height: 20},
			true,
		},
		{
			"rect far away",
			Obstacle{Pos: Vec2{X: 200, Y: 200}, Width: 20, Height: 20},
			false,
		},
		{
			"edge inside the radius",
			Obstacle{Pos: Vec2{X: 125, Y: 100}, Width: 20, Height: 20},
			true,
		},
		{
			"corner just outside the radius",
			Obstacle{Pos: Vec2{X: 125, Y: 125}, Width: 20, Height: 20},
			false,
		},
		{
			"touching exactly is not a hit",
			Obstacle{Pos: Vec2{X: 128, Y: 100}, Width: 20, Height: 20},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := circleHitsObstacle(center, PlayerRadius, tc.obstacle); got != tc.expected {
				t.Errorf("circleHitsObstacle() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	combined := float64(PlayerRadius + RuneRadius)

	tests := []struct {
		name     string
		a, b     Vec2
		expected bool
	}{
		{"coincident centers", Vec2{50, 50}, Vec2{50, 50}, true},
		{"within combined radius", Vec2{50, 50}, Vec2{70, 70}, true},
		{"exactly at combined radius", Vec2{50, 50}, Vec2{83, 50}, false},
		{"outside", Vec2{50, 50}, Vec2{200, 200}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := circlesOverlap(tc.a, tc.b, combined); got != tc.expected {
				t.Errorf("circlesOverlap() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPlayerCorridorMapping(t *testing.T) {
	b := Bounds{Width: 400, Height: 600}

	tests := []struct {
		name       string
		normalized Vec2
		expected   Vec2
	}{
		{"band center maps inside", Vec2{0.5, 0.2}, Vec2{200, 50}},
		{"left of band", Vec2{0.1, 0.2}, Vec2{200 + (0.1-0.5)*350, 50}},
		{"bottom of band", Vec2{0.5, 0.9}, Vec2{200, 550}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PlayerCorridorPos(tc.normalized, b)
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("PlayerCorridorPos(%+v) = %+v, expected %+v", tc.normalized, got, tc.expected)
			}
		})
	}
}

func TestInvisibleObstaclesDoNotCollide(t *testing.T) {
	desc := LevelDescriptor{ID: "easy-1", Difficulty: DifficultyEasy, LevelNumber: 1}
	r := NewRun(desc, 1, nil)
	r.Start(testBounds())

	center := PlayerCorridorPos(r.player.Pos, r.bounds)
	r.obstacles = []Obstacle{{
		ID:      0,
		Pattern: PatternDisappearing,
		Pos:     Vec2{X: center.X, Y: center.Y - DifficultyEasy.Params().BaseSpeed*scrollFactor/60},
		Width:   120,
		Height:  16,
		Visible: true,
	}}
	// Pick a game time where the duty cycle hides the obstacle.
	r.gameTime = (3*math.Pi/2 - blinkPhase(0)) / blinkRate

	r.Advance(1.0 / 60.0)

	if r.State() == StateLost {
		t.Error("an invisible obstacle must not collide")
	}
}

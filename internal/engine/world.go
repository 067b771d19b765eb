package engine

// Vec2 is a point or displacement in corridor space. The corridor runs
// top to bottom: obstacles spawn at negative y and scroll toward
// positive y.
type Vec2 struct {
	X, Y float64
}

// Bounds is the corridor's fixed extent for one run, supplied by the
// host at Start. Width and height must be comfortably positive; the
// generator degrades to center placement for pathologically narrow
// corridors but values at or under 100 are outside the supported range.
type Bounds struct {
	Width, Height float64
}

// Center returns the corridor's horizontal center.
func (b Bounds) Center() float64 {
	return b.Width / 2
}

// Obstacle is one hazard scrolling down the corridor. Identity is the
// dense generation index, stable for the lifetime of a run. Pos.Y only
// ever increases; the lateral fields are mutated per pattern rule each
// tick.
type Obstacle struct {
	ID          int
	Pos         Vec2
	Width       float64
	Height      float64
	Pattern     ObstaclePattern
	Speed       float64
	Rotation    float64 // degrees, accumulates unbounded; display modulo is the renderer's job
	Visible     bool
	MovingRight bool
}

// Collectible is one rune pickup. Collected flips false to true exactly
// once and never reverts.
type Collectible struct {
	ID        int
	Pos       Vec2
	Collected bool
}

// PlayerState holds the player's normalized position and input target,
// both in [0,1]x[0,1] corridor fractions. Position trails the target
// via exponential smoothing; the target is clamped to the legal band on
// every set.
type PlayerState struct {
	Pos    Vec2
	Target Vec2
}

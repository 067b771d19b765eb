package engine

import "math"

// Scroll converts BaseSpeed to world units per second.
const scrollFactor = 100

// Lateral motion tuning, in world units.
const (
	slideMargin    = 20 // sliding bounce range stops this short of the walls
	zigzagMargin   = 30
	zigzagWobble   = 0.003 // radians of phase per world unit of descent
	rotationFactor = 2     // degrees per second = Speed * rotationFactor
	convergeFactor = 0.5
	blinkRate      = 2 // disappearing duty cycle, radians per second of game time
)

// advanceObstacle applies one tick of motion to an obstacle: uniform
// downward scroll first, then the pattern's lateral rule. gameTime is
// total simulated seconds since Start, used only by the disappearing
// duty cycle.
func advanceObstacle(o *Obstacle, dt float64, params DifficultyParams, b Bounds, gameTime float64) {
	o.Pos.Y += params.BaseSpeed * scrollFactor * dt

	switch o.Pattern {
	case PatternSlidingHorizontal:
		slideStep(o, dt, b)
	case PatternZigzag:
		// Pure function of depth, not integrated velocity.
		amp := (b.Width-o.Width)/2 - zigzagMargin
		o.Pos.X = b.Center() + math.Sin(o.Pos.Y*zigzagWobble)*amp
	case PatternRotating:
		o.Rotation += o.Speed * dt * rotationFactor
	case PatternDisappearing:
		o.Visible = math.Sin(blinkRate*gameTime+blinkPhase(o.ID)) > 0
	case PatternConverging:
		convergeStep(o, dt, b)
	}
}

// slideStep bounces the obstacle between center±range. The bound check
// runs after this tick's movement, so a fast obstacle may overshoot by
// one tick's distance before the direction flips; the next tick pulls
// it back. That overshoot is accepted behavior, not corrected.
func slideStep(o *Obstacle, dt float64, b Bounds) {
	slideRange := (b.Width-o.Width)/2 - slideMargin

	step := o.Speed * dt
	if o.MovingRight {
		o.Pos.X += step
	} else {
		o.Pos.X -= step
	}

	if o.Pos.X > b.Center()+slideRange {
		o.MovingRight = false
	} else if o.Pos.X < b.Center()-slideRange {
		o.MovingRight = true
	}
}

// convergeStep moves the obstacle toward the corridor center without
// overshooting it.
func convergeStep(o *Obstacle, dt float64, b Bounds) {
	step := o.Speed * convergeFactor * dt
	delta := b.Center() - o.Pos.X
	if math.Abs(delta) <= step {
		o.Pos.X = b.Center()
		return
	}
	if delta > 0 {
		o.Pos.X += step
	} else {
		o.Pos.X -= step
	}
}

// blinkPhase derives a deterministic per-obstacle phase offset from the
// generation index. An identity hash would not be stable across
// platforms, the index is.
func blinkPhase(id int) float64 {
	return float64(id % 10)
}

// advanceCollectible applies the uniform scroll; runes have no lateral
// behavior.
func advanceCollectible(c *Collectible, dt float64, params DifficultyParams) {
	c.Pos.Y += params.BaseSpeed * scrollFactor * dt
}

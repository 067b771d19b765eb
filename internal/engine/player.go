package engine

// Player movement constants. The smoothing factor is a fixed design
// parameter: it defines the game's feel and is deliberately not
// configurable.
const (
	PlayerSmoothing = 0.15
	PlayerRadius    = 18 // collision circle, world units

	minTargetX = 0.1
	maxTargetX = 0.9
	minTargetY = 0.2
	maxTargetY = 0.9
)

// defaultPlayerState places the player at the bottom center of the
// legal band with the target on top of it.
func defaultPlayerState() PlayerState {
	p := Vec2{X: 0.5, Y: 0.8}
	return PlayerState{Pos: p, Target: p}
}

// setTarget stores a clamped movement target. Out-of-band input is
// silently pulled to the nearest legal value.
func (p *PlayerState) setTarget(x, y float64) {
	p.Target.X = clamp(x, minTargetX, maxTargetX)
	p.Target.Y = clamp(y, minTargetY, maxTargetY)
}

// step advances the player one tick of first-order exponential
// smoothing toward the target, per axis. Because the target is always
// inside the clamp band and the position starts inside it, the
// position can never leave the band.
func (p *PlayerState) step() {
	p.Pos.X += (p.Target.X - p.Pos.X) * PlayerSmoothing
	p.Pos.Y += (p.Target.Y - p.Pos.Y) * PlayerSmoothing
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

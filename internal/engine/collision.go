package engine

// RuneRadius is the pickup circle around a collectible; a rune is
// collected when the player circle and rune circle overlap.
const RuneRadius = 15

// Corridor mapping insets, in world units. The presentation layer must
// project the player with exactly this mapping or collisions will not
// line up with what the player sees.
const (
	playerSpanInsetX = 50
	playerInsetTopY  = 50
	playerSpanInsetY = 100
)

// PlayerCorridorPos maps the player's normalized position into
// corridor space. X spans the corridor width minus a fixed inset;
// Y maps the legal band [0.2, 0.9] onto the corridor height minus the
// vertical insets.
func PlayerCorridorPos(p Vec2, b Bounds) Vec2 {
	return Vec2{
		X: b.Width/2 + (p.X-0.5)*(b.Width-playerSpanInsetX),
		Y: playerInsetTopY + (p.Y-minTargetY)/(maxTargetY-minTargetY)*(b.Height-playerSpanInsetY),
	}
}

// circleHitsObstacle reports whether a circle at center with the given
// radius overlaps the obstacle's axis-aligned rectangle, by clamping
// the center to the rectangle and comparing squared distances.
// Rotation is ignored: rotating obstacles collide as their AABB.
func circleHitsObstacle(center Vec2, radius float64, o Obstacle) bool {
	halfW := o.Width / 2
	halfH := o.Height / 2

	nearest := Vec2{
		X: clamp(center.X, o.Pos.X-halfW, o.Pos.X+halfW),
		Y: clamp(center.Y, o.Pos.Y-halfH, o.Pos.Y+halfH),
	}

	dx := center.X - nearest.X
	dy := center.Y - nearest.Y
	return dx*dx+dy*dy < radius*radius
}

// circlesOverlap reports whether two circles with the given combined
// radius overlap, by squared center distance.
func circlesOverlap(a, b Vec2, combinedRadius float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy < combinedRadius*combinedRadius
}

package engine

import "math/rand"

// Horizontal margins for spawn sampling, in world units.
const (
	spawnEdgeMargin = 20 // kept clear beyond each obstacle's half width
	convergeEdgeX   = 40 // converging obstacles spawn this far from a wall
	runeEdgeMargin  = 40
	runeBandOffset  = 50 // runes sit this far above the first obstacle band
)

// GenerateLevel produces the initial obstacle and collectible layouts
// for a level. The caller owns the rand source, so generation is
// reproducible by seed. Obstacle and collectible IDs are their dense
// generation indexes.
func GenerateLevel(desc LevelDescriptor, b Bounds, rng *rand.Rand) ([]Obstacle, []Collectible) {
	return generateObstacles(desc, b, rng), generateCollectibles(desc, b, rng)
}

func generateObstacles(desc LevelDescriptor, b Bounds, rng *rand.Rand) []Obstacle {
	roster := desc.PatternRoster()
	count := desc.ObstacleCount()
	length := desc.CorridorLength(b)
	spacing := length / float64(count+1)
	mult := desc.Difficulty.Params().ObstacleSpeedMult

	obstacles := make([]Obstacle, 0, count)
	for i := 0; i < count; i++ {
		pattern := roster[i%len(roster)]

		o := Obstacle{
			ID:      i,
			Pattern: pattern,
			Height:  16,
			Visible: true,
		}

		switch pattern {
		case PatternStationary:
			o.Width = uniform(rng, 60, 120)
		case PatternSlidingHorizontal:
			o.Width = uniform(rng, 50, 100)
			o.Speed = uniform(rng, 60, 120) * mult
			o.MovingRight = rng.Intn(2) == 0
		case PatternZigzag:
			o.Width = uniform(rng, 40, 80)
		case PatternRotating:
			o.Width = uniform(rng, 80, 140)
			o.Height = 14
			o.Speed = uniform(rng, 60, 120) * mult
		case PatternDisappearing:
			o.Width = uniform(rng, 100, 160)
		case PatternConverging:
			o.Width = uniform(rng, 50, 80)
			o.Speed = uniform(rng, 60, 120) * mult
		}

		o.Pos = Vec2{
			X: spawnX(o, b, rng),
			Y: -spacing * float64(i+1),
		}

		obstacles = append(obstacles, o)
	}
	return obstacles
}

// spawnX picks the initial horizontal position for an obstacle.
// Converging obstacles start hard against one wall; everything else
// samples uniformly inside the margins, falling back to the corridor
// center when the obstacle is too wide to leave a valid range.
func spawnX(o Obstacle, b Bounds, rng *rand.Rand) float64 {
	if o.Pattern == PatternConverging {
		if rng.Intn(2) == 0 {
			return convergeEdgeX
		}
		return b.Width - convergeEdgeX
	}

	lo := o.Width/2 + spawnEdgeMargin
	hi := b.Width - o.Width/2 - spawnEdgeMargin
	if lo >= hi {
		return b.Center()
	}
	return uniform(rng, lo, hi)
}

func generateCollectibles(desc LevelDescriptor, b Bounds, rng *rand.Rand) []Collectible {
	count := desc.Difficulty.Params().RunesPerLevel
	spacing := desc.CorridorLength(b) / float64(count+2)

	hi := b.Width - runeEdgeMargin
	if hi < runeEdgeMargin+1 {
		hi = runeEdgeMargin + 1
	}

	runes := make([]Collectible, 0, count)
	for i := 0; i < count; i++ {
		runes = append(runes, Collectible{
			ID: i,
			Pos: Vec2{
				X: uniform(rng, runeEdgeMargin, hi),
				Y: -spacing*float64(i+1) - runeBandOffset,
			},
		})
	}
	return runes
}

// uniform samples from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

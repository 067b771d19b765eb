package engine

// ObstaclePattern identifies one of the fixed lateral motion behaviors
// an obstacle can carry. The set is closed; new patterns require a new
// case in the motion simulator.
type ObstaclePattern int

const (
	PatternStationary ObstaclePattern = iota
	PatternSlidingHorizontal
	PatternZigzag
	PatternRotating
	PatternDisappearing
	PatternConverging
)

// String returns a human-readable name for the pattern.
func (p ObstaclePattern) String() string {
	switch p {
	case PatternStationary:
		return "stationary"
	case PatternSlidingHorizontal:
		return "sliding"
	case PatternZigzag:
		return "zigzag"
	case PatternRotating:
		return "rotating"
	case PatternDisappearing:
		return "disappearing"
	case PatternConverging:
		return "converging"
	default:
		return "unknown"
	}
}

// patternUnlocks maps each pattern to the first global level index it
// appears at. The roster for a level is every pattern whose threshold
// is at or below the level's global index, in this order.
var patternUnlocks = []struct {
	pattern  ObstaclePattern
	minIndex int
}{
	{PatternStationary, 0},
	{PatternSlidingHorizontal, 2},
	{PatternZigzag, 5},
	{PatternRotating, 9},
	{PatternDisappearing, 14},
	{PatternConverging, 20},
}

// rosterForIndex returns the cumulative pattern roster unlocked at the
// given global level index. The roster is never empty: PatternStationary
// unlocks at index 0.
func rosterForIndex(globalIndex int) []ObstaclePattern {
	roster := make([]ObstaclePattern, 0, len(patternUnlocks))
	for _, u := range patternUnlocks {
		if globalIndex >= u.minIndex {
			roster = append(roster, u.pattern)
		}
	}
	return roster
}

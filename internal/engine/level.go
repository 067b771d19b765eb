package engine

// LevelDescriptor is the immutable parameter set for one run. The
// catalog owns descriptor construction and unlock eligibility; the
// engine only consumes them. Identity is the ID field; two descriptors
// with equal fields are interchangeable.
type LevelDescriptor struct {
	ID            string
	Difficulty    Difficulty
	LevelNumber   int // 1-based within the difficulty
	RequiredRunes int
}

// GlobalIndex returns the level's position across all difficulties,
// counting from zero: Easy levels first, then Normal, then Hard.
func (d LevelDescriptor) GlobalIndex() int {
	index := 0
	for _, diff := range Difficulties() {
		if diff == d.Difficulty {
			break
		}
		index += diff.Params().LevelCount
	}
	n := d.LevelNumber - 1
	if n < 0 {
		n = 0
	}
	return index + n
}

// PatternRoster returns the obstacle patterns unlocked for this level,
// cumulative by global index.
func (d LevelDescriptor) PatternRoster() []ObstaclePattern {
	return rosterForIndex(d.GlobalIndex())
}

// ObstacleCount returns the number of obstacles generated for this
// level: four plus the global index.
func (d LevelDescriptor) ObstacleCount() int {
	return 4 + d.GlobalIndex()
}

// CorridorLength returns the total scroll distance of the level in
// world units. Later levels produce longer corridors.
func (d LevelDescriptor) CorridorLength(b Bounds) float64 {
	return b.Height*3 + 400*float64(d.GlobalIndex())
}

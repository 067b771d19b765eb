// Package engine implements the Runefall simulation core: level
// generation, obstacle motion, player smoothing, collision detection,
// and the run state machine. It contains no rendering, persistence, or
// Bubble Tea dependencies so the whole simulation stays deterministic
// and testable with synthetic ticks.
package engine

// Difficulty selects one of the fixed gameplay tiers.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// DifficultyParams holds the compile-time constants carried by a
// difficulty tier.
type DifficultyParams struct {
	Title             string
	LevelCount        int
	BaseSpeed         float64 // scroll speed factor; world units/sec = BaseSpeed * 100
	ObstacleSpeedMult float64
	RunesPerLevel     int
}

var difficultyParams = map[Difficulty]DifficultyParams{
	DifficultyEasy: {
		Title:             "Easy",
		LevelCount:        10,
		BaseSpeed:         1.0,
		ObstacleSpeedMult: 1.0,
		RunesPerLevel:     3,
	},
	DifficultyNormal: {
		Title:             "Normal",
		LevelCount:        10,
		BaseSpeed:         1.4,
		ObstacleSpeedMult: 1.3,
		RunesPerLevel:     4,
	},
	DifficultyHard: {
		Title:             "Hard",
		LevelCount:        10,
		BaseSpeed:         1.8,
		ObstacleSpeedMult: 1.6,
		RunesPerLevel:     5,
	},
}

// Difficulties lists all tiers in progression order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// Params returns the constants for this difficulty. Unknown values get
// the Easy parameters.
func (d Difficulty) Params() DifficultyParams {
	if p, ok := difficultyParams[d]; ok {
		return p
	}
	return difficultyParams[DifficultyEasy]
}

// String returns a human-readable name for the difficulty.
func (d Difficulty) String() string {
	return d.Params().Title
}

// ParseDifficulty converts a name like "easy" to a Difficulty.
func ParseDifficulty(name string) (Difficulty, bool) {
	switch name {
	case "easy", "Easy":
		return DifficultyEasy, true
	case "normal", "Normal":
		return DifficultyNormal, true
	case "hard", "Hard":
		return DifficultyHard, true
	}
	return DifficultyEasy, false
}

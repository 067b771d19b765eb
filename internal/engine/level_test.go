package engine

import "testing"

func TestGlobalIndex(t *testing.T) {
	tests := []struct {
		name     string
		desc     LevelDescriptor
		expected int
	}{
		{"first easy level", LevelDescriptor{Difficulty: DifficultyEasy, LevelNumber: 1}, 0},
		{"fifth easy level", LevelDescriptor{Difficulty: DifficultyEasy, LevelNumber: 5}, 4},
		{"first normal level", LevelDescriptor{Difficulty: DifficultyNormal, LevelNumber: 1}, 10},
		{"first hard level", LevelDescriptor{Difficulty: DifficultyHard, LevelNumber: 1}, 20},
		{"last hard level", LevelDescriptor{Difficulty: DifficultyHard, LevelNumber: 10}, 29},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.desc.GlobalIndex(); got != tc.expected {
				t.Errorf("GlobalIndex() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestObstacleCount(t *testing.T) {
	desc := LevelDescriptor{Difficulty: DifficultyNormal, LevelNumber: 3}
	// Global index 12, so 4 + 12 obstacles.
	if got := desc.ObstacleCount(); got != 16 {
		t.Errorf("ObstacleCount() = %d, expected 16", got)
	}
}

func TestPatternRosterCumulative(t *testing.T) {
	tests := []struct {
		name     string
		desc     LevelDescriptor
		expected []ObstaclePattern
	}{
		{
			"only stationary at start",
			LevelDescriptor{Difficulty: DifficultyEasy, LevelNumber: 1},
			[]ObstaclePattern{PatternStationary},
		},
		{
			"sliding joins at index 2",
			LevelDescriptor{Difficulty: DifficultyEasy, LevelNumber: 3},
			[]ObstaclePattern{PatternStationary, PatternSlidingHorizontal},
		},
		{
			"zigzag joins at index 5",
			LevelDescriptor{Difficulty: DifficultyEasy, LevelNumber: 6},
			[]ObstaclePattern{PatternStationary, PatternSlidingHorizontal, PatternZigzag},
		},
		{
			"full roster on late hard levels",
			LevelDescriptor{Difficulty: DifficultyHard, LevelNumber: 10},
			[]ObstaclePattern{
				PatternStationary, PatternSlidingHorizontal, PatternZigzag,
				PatternRotating, PatternDisappearing, PatternConverging,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			roster := tc.desc.PatternRoster()
			if len(roster) != len(tc.expected) {
				t.Fatalf("roster length = %d, expected %d (%v)", len(roster), len(tc.expected), roster)
			}
			for i, p := range tc.expected {
				if roster[i] != p {
					t.Errorf("roster[%d] = %v, expected %v", i, roster[i], p)
				}
			}
		})
	}
}

func TestRosterNeverEmpty(t *testing.T) {
	for gi := 0; gi < 40; gi++ {
		if len(rosterForIndex(gi)) == 0 {
			t.Fatalf("roster empty at global index %d", gi)
		}
	}
}

func TestCorridorLengthGrowsWithIndex(t *testing.T) {
	b := Bounds{Width: 400, Height: 600}
	early := LevelDescriptor{Difficulty: DifficultyEasy, LevelNumber: 1}
	late := LevelDescriptor{Difficulty: DifficultyHard, LevelNumber: 10}

	if early.CorridorLength(b) >= late.CorridorLength(b) {
		t.Errorf("corridor length should grow with global index: early=%f late=%f",
			early.CorridorLength(b), late.CorridorLength(b))
	}
	if early.CorridorLength(b) <= 0 {
		t.Errorf("corridor length must be positive, got %f", early.CorridorLength(b))
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected Difficulty
		ok       bool
	}{
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"Hard", DifficultyHard, true},
		{"nightmare", DifficultyEasy, false},
	}

	for _, tc := range tests {
		d, ok := ParseDifficulty(tc.input)
		if ok != tc.ok || d != tc.expected {
			t.Errorf("ParseDifficulty(%q) = (%v, %v), expected (%v, %v)", tc.input, d, ok, tc.expected, tc.ok)
		}
	}
}

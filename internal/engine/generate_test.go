package engine

import (
	"math/rand"
	"testing"
)

func testBounds() Bounds {
	return Bounds{Width: 400, Height: 600}
}

func TestGenerateObstacleLayout(t *testing.T) {
	desc := LevelDescriptor{ID: "easy-3", Difficulty: DifficultyEasy, LevelNumber: 3}
	b := testBounds()
	rng := rand.New(rand.NewSource(7))

	obstacles, _ := GenerateLevel(desc, b, rng)

	if len(obstacles) != desc.ObstacleCount() {
		t.Fatalf("obstacle count = %d, expected %d", len(obstacles), desc.ObstacleCount())
	}

	spacing := desc.CorridorLength(b) / float64(len(obstacles)+1)
	roster := desc.PatternRoster()

	for i, o := range obstacles {
		if o.ID != i {
			t.Errorf("obstacle %d has ID %d, expected dense index", i, o.ID)
		}
		expectedY := -spacing * float64(i+1)
		if o.Pos.Y != expectedY {
			t.Errorf("obstacle %d y = %f, expected %f", i, o.Pos.Y, expectedY)
		}
		if o.Pattern != roster[i%len(roster)] {
			t.Errorf("obstacle %d pattern = %v, expected round-robin %v", i, o.Pattern, roster[i%len(roster)])
		}
		if !o.Visible {
			t.Errorf("obstacle %d should start visible", i)
		}
	}
}

func TestGenerateDeterministicBySeed(t *testing.T) {
	desc := LevelDescriptor{ID: "hard-10", Difficulty: DifficultyHard, LevelNumber: 10}
	b := testBounds()

	o1, c1 := GenerateLevel(desc, b, rand.New(rand.NewSource(42)))
	o2, c2 := GenerateLevel(desc, b, rand.New(rand.NewSource(42)))

	if len(o1) != len(o2) || len(c1) != len(c2) {
		t.Fatal("same seed produced different object counts")
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Errorf("obstacle %d differs between same-seed runs: %+v vs %+v", i, o1[i], o2[i])
		}
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Errorf("collectible %d differs between same-seed runs", i)
		}
	}
}

func TestGenerateSizeAndSpeedRanges(t *testing.T) {
	// Late hard level has the full roster, so every pattern appears.
	desc := LevelDescriptor{ID: "hard-10", Difficulty: DifficultyHard, LevelNumber: 10}
	b := Bounds{Width: 800, Height: 600}
	mult := desc.Difficulty.Params().ObstacleSpeedMult

	widthRanges := map[ObstaclePattern][2]float64{
		PatternStationary:        {60, 120},
		PatternSlidingHorizontal: {50, 100},
		PatternZigzag:            {40, 80},
		PatternRotating:          {80, 140},
		PatternDisappearing:      {100, 160},
		PatternConverging:        {50, 80},
	}

	for seed := int64(0); seed < 5; seed++ {
		obstacles, _ := GenerateLevel(desc, b, rand.New(rand.NewSource(seed)))
		for _, o := range obstacles {
			r := widthRanges[o.Pattern]
			if o.Width < r[0] || o.Width >= r[1] {
				t.Errorf("seed %d: %v width %f outside [%f, %f)", seed, o.Pattern, o.Width, r[0], r[1])
			}

			switch o.Pattern {
			case PatternRotating:
				if o.Height != 14 {
					t.Errorf("rotating height = %f, expected 14", o.Height)
				}
			default:
				if o.Height != 16 {
					t.Errorf("%v height = %f, expected 16", o.Pattern, o.Height)
				}
			}

			switch o.Pattern {
			case PatternSlidingHorizontal, PatternRotating, PatternConverging:
				if o.Speed < 60*mult || o.Speed >= 120*mult {
					t.Errorf("%v speed %f outside scaled [%f, %f)", o.Pattern, o.Speed, 60*mult, 120*mult)
				}
			}
		}
	}
}

func TestGenerateConvergingSpawnsAtEdge(t *testing.T) {
	desc := LevelDescriptor{ID: "hard-10", Difficulty: DifficultyHard, LevelNumber: 10}
	b := testBounds()

	for seed := int64(0); seed < 10; seed++ {
		obstacles, _ := GenerateLevel(desc, b, rand.New(rand.NewSource(seed)))
		for _, o := range obstacles {
			if o.Pattern != PatternConverging {
				continue
			}
			if o.Pos.X != convergeEdgeX && o.Pos.X != b.Width-convergeEdgeX {
				t.Errorf("converging obstacle x = %f, expected %f or %f", o.Pos.X, float64(convergeEdgeX), b.Width-convergeEdgeX)
			}
		}
	}
}

func TestGenerateSpawnRangeRespectsMargins(t *testing.T) {
	desc := LevelDescriptor{ID: "easy-1", Difficulty: DifficultyEasy, LevelNumber: 1}
	b := testBounds()

	for seed := int64(0); seed < 10; seed++ {
		obstacles, _ := GenerateLevel(desc, b, rand.New(rand.NewSource(seed)))
		for _, o := range obstacles {
			lo := o.Width/2 + spawnEdgeMargin
			hi := b.Width - o.Width/2 - spawnEdgeMargin
			if o.Pos.X < lo || o.Pos.X >= hi {
				t.Errorf("seed %d: obstacle x = %f outside spawn range [%f, %f)", seed, o.Pos.X, lo, hi)
			}
		}
	}
}

func TestGenerateDegenerateCorridorFallsBackToCenter(t *testing.T) {
	// Corridor so narrow no obstacle leaves a valid sampling range.
	desc := LevelDescriptor{ID: "easy-1", Difficulty: DifficultyEasy, LevelNumber: 1}
	b := Bounds{Width: 110, Height: 600}

	obstacles, _ := GenerateLevel(desc, b, rand.New(rand.NewSource(1)))
	for _, o := range obstacles {
		if o.Width/2+spawnEdgeMargin >= b.Width-o.Width/2-spawnEdgeMargin {
			if o.Pos.X != b.Center() {
				t.Errorf("degenerate spawn should fall back to center %f, got %f", b.Center(), o.Pos.X)
			}
		}
	}
}

func TestGenerateCollectibles(t *testing.T) {
	desc := LevelDescriptor{ID: "normal-2", Difficulty: DifficultyNormal, LevelNumber: 2}
	b := testBounds()
	rng := rand.New(rand.NewSource(3))

	_, runes := GenerateLevel(desc, b, rng)

	expected := desc.Difficulty.Params().RunesPerLevel
	if len(runes) != expected {
		t.Fatalf("collectible count = %d, expected %d", len(runes), expected)
	}

	spacing := desc.CorridorLength(b) / float64(expected+2)
	for i, c := range runes {
		if c.ID != i {
			t.Errorf("collectible %d has ID %d, expected dense index", i, c.ID)
		}
		if c.Collected {
			t.Errorf("collectible %d should start uncollected", i)
		}
		expectedY := -spacing*float64(i+1) - runeBandOffset
		if c.Pos.Y != expectedY {
			t.Errorf("collectible %d y = %f, expected %f", i, c.Pos.Y, expectedY)
		}
		if c.Pos.X < runeEdgeMargin || c.Pos.X >= b.Width-runeEdgeMargin {
			t.Errorf("collectible %d x = %f outside [%d, %f)", i, c.Pos.X, runeEdgeMargin, b.Width-runeEdgeMargin)
		}
	}
}

// Package catalog owns level metadata for Runefall: the built-in level
// roster, optional YAML level packs, and unlock eligibility. The engine
// only consumes descriptors; deciding which levels a player may start
// lives here, fed by the progress totals the storage layer reports.
package catalog

import (
	"fmt"
	"sort"

	"github.com/arcadelab/runefall/internal/engine"
)

// runesPerUnlockStep is how many banked runes each global level index
// adds to a level's unlock requirement.
const runesPerUnlockStep = 2

// Catalog is an ordered, ID-unique collection of level descriptors.
type Catalog struct {
	levels []engine.LevelDescriptor
	byID   map[string]int
}

// BuiltIn returns the standard catalog: every difficulty's levels in
// global order, with unlock requirements ramping by global index. The
// first level requires nothing.
func BuiltIn() *Catalog {
	c := &Catalog{byID: make(map[string]int)}

	for _, diff := range engine.Difficulties() {
		params := diff.Params()
		for n := 1; n <= params.LevelCount; n++ {
			desc := engine.LevelDescriptor{
				ID:          fmt.Sprintf("%s-%d", lowerTitle(diff), n),
				Difficulty:  diff,
				LevelNumber: n,
			}
			desc.RequiredRunes = desc.GlobalIndex() * runesPerUnlockStep
			c.add(desc)
		}
	}
	return c
}

func lowerTitle(d engine.Difficulty) string {
	switch d {
	case engine.DifficultyNormal:
		return "normal"
	case engine.DifficultyHard:
		return "hard"
	default:
		return "easy"
	}
}

// add appends a descriptor unless its ID is already taken.
func (c *Catalog) add(desc engine.LevelDescriptor) {
	if _, exists := c.byID[desc.ID]; exists {
		return
	}
	c.byID[desc.ID] = len(c.levels)
	c.levels = append(c.levels, desc)
}

// Merge adds pack levels to the catalog. Levels whose ID collides with
// an existing one are dropped; built-in definitions win.
func (c *Catalog) Merge(levels []engine.LevelDescriptor) {
	for _, desc := range levels {
		c.add(desc)
	}
}

// Levels returns all descriptors sorted by global index, then ID for
// stable ordering of pack levels sharing an index.
func (c *Catalog) Levels() []engine.LevelDescriptor {
	out := make([]engine.LevelDescriptor, len(c.levels))
	copy(out, c.levels)
	sort.SliceStable(out, func(i, j int) bool {
		gi, gj := out[i].GlobalIndex(), out[j].GlobalIndex()
		if gi != gj {
			return gi < gj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ByID looks up a descriptor.
func (c *Catalog) ByID(id string) (engine.LevelDescriptor, bool) {
	i, ok := c.byID[id]
	if !ok {
		return engine.LevelDescriptor{}, false
	}
	return c.levels[i], true
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Unlocked reports whether a player with the given banked rune total
// may start the level.
func Unlocked(desc engine.LevelDescriptor, totalRunes int) bool {
	return totalRunes >= desc.RequiredRunes
}

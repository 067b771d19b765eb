package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arcadelab/runefall/internal/engine"
)

//go:embed packs/default.yaml
var defaultPackYAML []byte

// Pack is the YAML structure for a level pack file.
type Pack struct {
	Name   string      `yaml:"name"`
	Levels []PackLevel `yaml:"levels"`
}

// PackLevel is one level entry in a pack file.
type PackLevel struct {
	ID            string `yaml:"id"`
	Difficulty    string `yaml:"difficulty"`
	Number        int    `yaml:"number"`
	RequiredRunes int    `yaml:"required_runes"`
}

// ParsePack parses a YAML level pack. Entries with an empty ID, an
// unknown difficulty, or a non-positive level number are rejected.
func ParsePack(data []byte) ([]engine.LevelDescriptor, error) {
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	levels := make([]engine.LevelDescriptor, 0, len(pack.Levels))
	for i, pl := range pack.Levels {
		if pl.ID == "" {
			return nil, fmt.Errorf("level %d: missing id", i)
		}
		diff, ok := engine.ParseDifficulty(pl.Difficulty)
		if !ok {
			return nil, fmt.Errorf("level %q: unknown difficulty %q", pl.ID, pl.Difficulty)
		}
		if pl.Number < 1 {
			return nil, fmt.Errorf("level %q: number must be positive, got %d", pl.ID, pl.Number)
		}
		levels = append(levels, engine.LevelDescriptor{
			ID:            pl.ID,
			Difficulty:    diff,
			LevelNumber:   pl.Number,
			RequiredRunes: pl.RequiredRunes,
		})
	}
	return levels, nil
}

// Load builds the full catalog: built-in levels, then the embedded
// default pack, then any packs found under dir. An empty dir skips the
// directory scan. Invalid pack files in the directory are skipped, not
// fatal; a missing directory is also fine.
func Load(dir string) (*Catalog, error) {
	c := BuiltIn()

	if levels, err := ParsePack(defaultPackYAML); err == nil {
		c.Merge(levels)
	}

	if dir == "" {
		return c, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return c, nil
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		levels, parseErr := ParsePack(data)
		if parseErr != nil {
			// Broken pack files don't take down the catalog.
			return nil
		}
		c.Merge(levels)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking pack directory %s: %w", dir, err)
	}

	return c, nil
}

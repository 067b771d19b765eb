package config

import (
	_ "embed"
)

//go:embed defaults/runefall.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when no
// config file is present and the embedded YAML fails to parse.
func Default() Config {
	return Config{
		TickRate: 60,
		DBPath:   "~/.runefall/progress.db",
		SSH: SSHConfig{
			Address:        ":23235",
			IdleTimeoutMin: 30,
		},
		Theme: Theme{
			PlayerGlyph:   "◆",
			RuneGlyph:     "ᚱ",
			ObstacleGlyph: "█",
			PlayerColor:   "14",
			RuneColor:     "11",
			ObstacleColor: "9",
			DimColor:      "240",
		},
	}
}

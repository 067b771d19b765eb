// Package config provides YAML-based application configuration for the
// Runefall platform: tick rate, storage and level pack paths, SSH
// serving, and presentation tuning. Gameplay constants live in the
// engine and are deliberately not configurable here.
package config

// Config is the root application configuration.
type Config struct {
	TickRate  int       `yaml:"tick_rate"`
	DBPath    string    `yaml:"db_path"`
	LevelsDir string    `yaml:"levels_dir"`
	SSH       SSHConfig `yaml:"ssh"`
	Theme     Theme     `yaml:"theme"`
}

// SSHConfig configures the remote-play SSH server.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKeyPath    string `yaml:"host_key_path"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// Theme selects the glyphs and ANSI colors the corridor renderer uses.
type Theme struct {
	PlayerGlyph   string `yaml:"player_glyph"`
	RuneGlyph     string `yaml:"rune_glyph"`
	ObstacleGlyph string `yaml:"obstacle_glyph"`
	PlayerColor   string `yaml:"player_color"`
	RuneColor     string `yaml:"rune_color"`
	ObstacleColor string `yaml:"obstacle_color"`
	DimColor      string `yaml:"dim_color"`
}

// normalize fills in zero values with defaults so a partial YAML file
// still yields a usable config.
func (c *Config) normalize() {
	def := Default()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.IdleTimeoutMin <= 0 {
		c.SSH.IdleTimeoutMin = def.SSH.IdleTimeoutMin
	}
	if c.Theme.PlayerGlyph == "" {
		c.Theme.PlayerGlyph = def.Theme.PlayerGlyph
	}
	if c.Theme.RuneGlyph == "" {
		c.Theme.RuneGlyph = def.Theme.RuneGlyph
	}
	if c.Theme.ObstacleGlyph == "" {
		c.Theme.ObstacleGlyph = def.Theme.ObstacleGlyph
	}
	if c.Theme.PlayerColor == "" {
		c.Theme.PlayerColor = def.Theme.PlayerColor
	}
	if c.Theme.RuneColor == "" {
		c.Theme.RuneColor = def.Theme.RuneColor
	}
	if c.Theme.ObstacleColor == "" {
		c.Theme.ObstacleColor = def.Theme.ObstacleColor
	}
	if c.Theme.DimColor == "" {
		c.Theme.DimColor = def.Theme.DimColor
	}
}

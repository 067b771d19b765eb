// runefall is a terminal corridor-dodging game. The player glides down
// an endless corridor, dodging obstacles and collecting runes to
// unlock harder levels.
//
// Usage:
//
//	runefall levels           - List levels and unlock status
//	runefall play <level>     - Play a level
//	runefall progress         - Show per-level history
//	runefall serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path
//	--config <path>  - Set config file path
//	--levels <dir>   - Set extra level pack directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadelab/runefall/internal/config"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runefall",
	Short: "Runefall - dodge the corridor, collect the runes",
	Long: `Runefall is a terminal corridor-dodging game. Steer through
scrolling obstacle fields, collect runes, and bank them to unlock
harder levels.

Available commands:
  levels   - Show all levels and their unlock status
  play     - Play a specific level
  progress - View attempt and completion history
  serve    - Start SSH server for remote play

Examples:
  runefall levels
  runefall play easy-1
  runefall play normal-4 --seed 42
  runefall serve --ssh :2222
  runefall progress`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra level packs")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the application config and applies global flag
// overrides on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.LevelsDir = flagLevelsDir
	}
	return cfg, nil
}

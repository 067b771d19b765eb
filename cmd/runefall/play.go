package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/runefall/internal/catalog"
	"github.com/arcadelab/runefall/internal/engine"
	"github.com/arcadelab/runefall/internal/platform/tui"
	"github.com/arcadelab/runefall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level. With no argument, opens an
interactive level picker.

Controls:
  Arrows/hjkl  - Steer
  P/Space      - Pause
  R            - Restart
  Esc          - Back to picker (when paused or finished)
  Q/Ctrl+C     - Quit

Locked levels need banked runes to open: finish easier levels and
collect runes along the way.

Examples:
  runefall play easy-1
  runefall play normal-4 --seed 42
  runefall play`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.Load(cfg.LevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the picker and the canvas
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	desc, ok := pickLevel(cat, store, args, width, height)
	if !ok {
		return
	}

	totalRunes := 0
	if store != nil {
		if total, totalErr := store.TotalRunes(); totalErr == nil {
			totalRunes = total
		}
	}
	if !catalog.Unlocked(desc, totalRunes) {
		fmt.Fprintf(os.Stderr, "Level %q is locked: requires %d runes, you have %d.\n",
			desc.ID, desc.RequiredRunes, totalRunes)
		fmt.Fprintln(os.Stderr, "Run 'runefall levels' to see what is open.")
		os.Exit(1)
	}

	opts := tui.Options{
		Width:    width,
		Height:   height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
		Theme:    cfg.Theme,
	}

	if runErr := tui.Run(desc, store, opts); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}

// pickLevel resolves the level to play: by ID when given, otherwise
// through the interactive picker. Returns false when the user backed
// out without choosing.
func pickLevel(cat *catalog.Catalog, store *storage.Store, args []string, width, height int) (desc engine.LevelDescriptor, ok bool) {
	if len(args) == 1 {
		d, found := cat.ByID(args[0])
		if !found {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'runefall levels' to see available levels.")
			os.Exit(1)
		}
		return d, true
	}

	selected, err := tui.RunLevelPicker(cat, store, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if selected == nil {
		return desc, false
	}
	return *selected, true
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/runefall/internal/catalog"
	"github.com/arcadelab/runefall/internal/platform/tui"
	"github.com/arcadelab/runefall/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress [level]",
	Short: "Show attempt and completion history",
	Long: `Shows your run history: attempts, wins, and best rune hauls.

With no argument, opens an interactive view over every level. With a
level ID, prints that level's stats and recent wins.

Examples:
  runefall progress
  runefall progress normal-4`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProgress,
}

func runProgress(cmd *cobra.Command, args []string) {
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

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		printLevelProgress(cat, store, args[0])
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if viewErr := tui.RunProgress(cat, store, width, height); viewErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", viewErr)
		os.Exit(1)
	}
}

// recentWins caps the completion rows shown for a single level.
const recentWins = 10

func printLevelProgress(cat *catalog.Catalog, store *storage.Store, levelID string) {
	if _, ok := cat.ByID(levelID); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'runefall levels' to see available levels.")
		os.Exit(1)
	}

	stats, err := store.Stats(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", levelID)
	fmt.Printf("  Attempts: %d\n", stats.Attempts)
	fmt.Printf("  Wins:     %d\n", stats.Completions)
	fmt.Printf("  Best:     %d runes\n", stats.BestRunes)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last:     %s\n", stats.LastPlayed.Format("Jan 02 2006 15:04"))
	}

	completions, err := store.Completions(levelID, recentWins)
	if err != nil || len(completions) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("  Recent wins:")
	for _, c := range completions {
		fmt.Printf("    %s  %d runes\n", c.CreatedAt.Format("Jan 02 15:04"), c.Runes)
	}
}

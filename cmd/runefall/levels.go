package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadelab/runefall/internal/catalog"
	"github.com/arcadelab/runefall/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels and their unlock status",
	Long:  `Shows every level in the catalog with its rune requirement and whether it is open for play.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
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

	totalRunes := 0
	if store, storeErr := storage.Open(cfg.DBPath); storeErr == nil {
		if total, totalErr := store.TotalRunes(); totalErr == nil {
			totalRunes = total
		}
		store.Close()
	}

	levels := cat.Levels()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	maxIDLen := 5 // "Level" header
	for _, lvl := range levels {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	fmt.Printf("Runes banked: %d\n\n", totalRunes)
	fmt.Printf("  %-*s  %-10s  %9s  %s\n", maxIDLen, "Level", "Difficulty", "Runes Req", "Status")
	fmt.Printf("  %-*s  %-10s  %9s  %s\n", maxIDLen, "-----", "----------", "---------", "------")

	for _, lvl := range levels {
		status := "locked"
		if catalog.Unlocked(lvl, totalRunes) {
			status = "open"
		}
		fmt.Printf("  %-*s  %-10s  %9d  %s\n",
			maxIDLen, lvl.ID, lvl.Difficulty, lvl.RequiredRunes, status)
	}

	fmt.Println()
	fmt.Println("Run 'runefall play <level>' to play.")
}

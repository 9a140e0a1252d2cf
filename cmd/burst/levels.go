package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-burst/internal/games/burst"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows every level with its theme and opening bubble count.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxThemeLen := 5 // "Theme" header
	for level := 1; level <= cfg.Session.MaxLevel; level++ {
		maxThemeLen = max(maxThemeLen, len(burst.ThemeFor(cfg.Themes, level).Name))
	}

	// Print header
	fmt.Printf("  %-5s  %-*s  %s\n", "Level", maxThemeLen, "Theme", "Bubbles")
	fmt.Printf("  %-5s  %-*s  %s\n", "-----", maxThemeLen, "-----", "-------")

	for level := 1; level <= cfg.Session.MaxLevel; level++ {
		theme := burst.ThemeFor(cfg.Themes, level)
		bubbles := len(burst.LevelBubbles(cfg, level))
		fmt.Printf("  %-5d  %-*s  %d\n", level, maxThemeLen, theme.Name, bubbles)
	}

	fmt.Println()
	fmt.Printf("Lives: %d  Time per level: %ds\n", cfg.Session.Lives, cfg.Session.LevelTime)
	fmt.Println("Run 'burst play --level <n>' to start at a level.")
}

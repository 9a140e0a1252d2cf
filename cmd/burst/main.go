// burst is a bubble-popping arcade game for the terminal.
//
// Usage:
//
//	burst play              - Play the game
//	burst levels            - List levels and their themes
//	burst config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Log destination (default: ~/.burst/burst.log, "-" for stderr)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "burst",
	Short: "Bubble Burst - Pop bubbles in your terminal",
	Long: `Bubble Burst is a terminal arcade game. Bubbles bounce around the
stage; shoot them with a vertical beam to split them into smaller ones until
none are left. Don't let them touch you, and clear each level before the
timer runs out.

Available commands:
  play     - Play the game
  levels   - Show the level list
  config   - Print the effective configuration

Examples:
  burst play
  burst play --difficulty hard --level 3
  burst play --config ./my-burst.toml
  burst config --format toml > ~/.burst/burst.toml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.burst/burst.log", `Log file ("-" for stderr, "" to disable)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

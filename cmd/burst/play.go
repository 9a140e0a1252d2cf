package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-burst/internal/core"
	"github.com/vovakirdan/bubble-burst/internal/games/burst"
	"github.com/vovakirdan/bubble-burst/internal/platform/tui"
)

var (
	flagLevel       int
	flagNoParticles bool
	flagNoShake     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Bubble Burst.

Controls:
  Left/A, Right/D  - Move (keep the key pressed)
  Down/S           - Stop
  Space/Up         - Shoot
  Enter            - Next level / new game
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, 90 seconds per level, slower bubbles
  normal - 3 lives, 60 seconds per level
  hard   - 2 lives, 45 seconds per level, faster bubbles

Examples:
  burst play
  burst play --difficulty easy
  burst play --level 4 --seed 42
  burst play --no-particles --no-shake`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Starting level")
	playCmd.Flags().BoolVar(&flagNoParticles, "no-particles", false, "Disable particle effects")
	playCmd.Flags().BoolVar(&flagNoShake, "no-shake", false, "Disable screen shake")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagNoParticles {
		cfg.Particles.Enabled = false
	}
	if flagNoShake {
		cfg.Effects.ScreenShake = false
	}

	logWriter, closeLog, err := openLogWriter(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logWriter, closeLog, _ = openLogWriter("")
	}
	defer closeLog()

	logger, err := newLogger(logWriter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if flagFPS > 0 {
		runtime.TickRate = flagFPS
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	game := burst.New(cfg, burst.Options{
		StartLevel: flagLevel,
		Logger:     logger,
	})

	opts := tui.Options{Logger: logger}
	if dir, homeErr := expandHome("~/.burst/screenshots"); homeErr == nil {
		opts.ScreenshotDir = filepath.Clean(dir)
	}

	if runErr := tui.Run(game, runtime, opts); runErr != nil {
		logger.Error("game aborted", "err", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

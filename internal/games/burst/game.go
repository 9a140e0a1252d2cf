package burst

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-burst/internal/config"
	"github.com/vovakirdan/bubble-burst/internal/core"
)

// Options configures a Game beyond the tunables in config.BurstConfig.
type Options struct {
	StartLevel int
	Logger     *log.Logger // Nil discards
}

// Game adapts the Engine to the platform's fixed-step game contract:
// it maps input actions to engine commands, owns pause, and logs events.
type Game struct {
	cfg     config.BurstConfig
	opts    Options
	runtime core.RuntimeConfig
	logger  *log.Logger

	engine *Engine
	tick   time.Duration
	paused bool
	last   Snapshot

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.BurstConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:        cfg,
		opts:       opts,
		logger:     logger,
		minScreenW: 40,
		minScreenH: 12,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "burst"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bubble Burst"
}

// Reset starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tick = runtime.TickDuration()
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	g.paused = false

	g.engine = NewEngine(g.cfg, runtime.Seed, g.opts.StartLevel)
	g.last = g.engine.Snapshot()
	g.logger.Debug("session reset", "seed", runtime.Seed, "tick", g.tick, "level", g.last.Level)
}

// Resize updates the render target without resetting the session.
// The simulation is suspended while the screen is too small.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	phase := g.engine.State()

	if in.Has(core.ActionPause) && phase == PhasePlaying {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.engine.SetMovingLeft(in.Has(core.ActionLeft))
	g.engine.SetMovingRight(in.Has(core.ActionRight))

	switch {
	case in.Has(core.ActionRestart) && phase == PhaseGameOver:
		g.engine.Restart()
	case in.Has(core.ActionConfirm):
		g.engine.Advance()
	case in.Has(core.ActionShoot):
		g.engine.Shoot()
	}

	frame := g.engine.Update(g.tick)
	g.logEvents(frame.Events)
	g.last = g.engine.Snapshot()

	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents(events []Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case LevelChanged:
			g.logger.Info("level started", "level", ev.Level, "theme", ev.Theme)
		case BubblePopped:
			g.logger.Debug("bubble popped", "size", ev.Size, "points", ev.Points, "combo", ev.Multiplier)
		case LifeLost:
			g.logger.Info("life lost", "cause", ev.Cause, "lives", ev.LivesLeft)
		case LevelCleared:
			g.logger.Info("level cleared", "level", ev.Level, "bonus", ev.Bonus)
		case GameOver:
			g.logger.Info("game over", "score", ev.Score, "level", ev.Level, "cleared", ev.Cleared)
		}
	}
}

// Snapshot returns the state committed by the last Step.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// Paused reports whether the host-level pause is active.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.Score,
		Level:    g.last.Level,
		Lives:    g.last.Lives,
		GameOver: g.last.GameOver(),
		Paused:   g.paused,
	}
}

package core

import "time"

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig describes the host a game runs in: the render target size,
// the simulation rate, and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig returns an 80x24 runtime at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score    int
	Level    int
	Lives    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

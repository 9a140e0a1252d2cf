package burst

import (
	"math"
	"slices"
	"time"
)

// Snapshot is a read-only copy of the committed engine state. It shares no
// memory with the engine and is safe to keep across updates.
type Snapshot struct {
	Frame uint64

	Player      Player
	Bubbles     []Bubble
	Projectiles []Projectile
	Particles   []Particle

	Level         int
	Lives         int
	Score         int
	TimeRemaining int
	Combo         int
	Phase         Phase
	Cleared       bool
	Theme         Theme

	ShakeX int
	ShakeY int

	Clock    time.Duration
	RNGState uint64
}

// GameOver reports whether the session has ended.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// LevelComplete reports whether the level is waiting for Advance.
func (s Snapshot) LevelComplete() bool {
	return s.Phase == PhaseLevelComplete
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Frame:         e.frame,
		Player:        e.player,
		Bubbles:       slices.Clone(e.bubbles),
		Projectiles:   slices.Clone(e.projectiles),
		Particles:     slices.Clone(e.particles),
		Level:         e.level,
		Lives:         e.lives,
		Score:         e.score,
		TimeRemaining: e.timeRemaining,
		Combo:         e.combo.Multiplier(),
		Phase:         e.phase,
		Cleared:       e.cleared,
		Theme:         ThemeFor(e.cfg.Themes, e.level),
		ShakeX:        e.shakeX,
		ShakeY:        e.shakeY,
		Clock:         e.clock,
		RNGState:      e.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Frame
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation

	mixF(s.Player.Pos.X)
	mixF(s.Player.Pos.Y)
	mixI(s.Player.Facing)

	mixI(len(s.Bubbles))
	for _, b := range s.Bubbles {
		mixF(b.Pos.X)
		mixF(b.Pos.Y)
		mixF(b.Vel.X)
		mixF(b.Vel.Y)
		mixI(int(b.Size))
	}

	mixI(len(s.Projectiles))
	for _, p := range s.Projectiles {
		mixF(p.Pos.X)
		mixF(p.Pos.Y)
	}

	mixI(len(s.Particles))
	for _, p := range s.Particles {
		mixF(p.Pos.X)
		mixF(p.Pos.Y)
		mixI(p.Life)
	}

	mixI(s.Level)
	mixI(s.Lives)
	mixI(s.Score)
	mixI(s.TimeRemaining)
	mixI(s.Combo)
	mixI(int(s.Phase))
	mixI(s.ShakeX)
	mixI(s.ShakeY)
	mix(s.RNGState)

	return h
}

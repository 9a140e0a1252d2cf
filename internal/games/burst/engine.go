package burst

import (
	"time"

	"github.com/vovakirdan/bubble-burst/internal/config"
	"github.com/vovakirdan/bubble-burst/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelComplete
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Engine owns all entities and the session state. It is single threaded and
// performs no I/O; the host drives it with Update at a fixed rate.
type Engine struct {
	cfg     config.BurstConfig
	rng     *core.RNG
	spawner Spawner

	player      Player
	bubbles     []Bubble
	projectiles []Projectile
	particles   []Particle

	level         int
	lives         int
	score         int
	timeRemaining int // Seconds
	phase         Phase
	cleared       bool // Finished the last level

	clock     time.Duration // Simulation time, advances only while playing
	secondAcc time.Duration
	combo     Combo

	shakeFrames int
	shakeX      int
	shakeY      int

	frame   uint64
	pending []Event
}

// NewEngine creates an engine at the given level (clamped into range) with
// a seeded RNG. The first Frame carries a LevelChanged event.
func NewEngine(cfg config.BurstConfig, seed int64, startLevel int) *Engine {
	rng := core.NewRNG(seed)
	e := &Engine{
		cfg:     cfg,
		rng:     rng,
		spawner: NewSpawner(cfg.Stage, cfg.Particles, rng),
		combo:   NewCombo(time.Duration(cfg.Scoring.ComboWindowMS)*time.Millisecond, cfg.Scoring.MaxCombo),
	}
	e.reset(core.Clamp(startLevel, 1, max(cfg.Session.MaxLevel, 1)))
	return e
}

// State returns the current phase.
func (e *Engine) State() Phase {
	return e.phase
}

// SetMovingLeft sets the player's left intent.
func (e *Engine) SetMovingLeft(on bool) {
	e.player.MovingLeft = on
}

// SetMovingRight sets the player's right intent.
func (e *Engine) SetMovingRight(on bool) {
	e.player.MovingRight = on
}

// Shoot fires a beam from the player's centre. It reports false when a beam
// is already in flight or the level is not being played.
func (e *Engine) Shoot() bool {
	if e.phase != PhasePlaying {
		return false
	}
	for _, p := range e.projectiles {
		if p.Active {
			return false
		}
	}
	x := e.player.Center(e.cfg.Player).X
	e.projectiles = append(e.projectiles, NewProjectile(x, e.cfg.Stage))
	return true
}

// Advance moves past a completed level, or restarts after game over.
func (e *Engine) Advance() {
	switch e.phase {
	case PhaseLevelComplete:
		e.NextLevel()
	case PhaseGameOver:
		e.Restart()
	}
}

// NextLevel starts the next level. Past the final level the session ends
// as a victory. It does nothing unless the current level is complete.
func (e *Engine) NextLevel() {
	if e.phase != PhaseLevelComplete {
		return
	}
	if e.level >= e.cfg.Session.MaxLevel {
		e.cleared = true
		e.endGame()
		return
	}
	e.level++
	e.initLevel()
	e.player.Reset(e.cfg)
}

// Restart begins a new session at level 1.
func (e *Engine) Restart() {
	e.reset(1)
}

func (e *Engine) reset(level int) {
	e.level = level
	e.lives = e.cfg.Session.Lives
	e.score = 0
	e.cleared = false
	e.shakeFrames, e.shakeX, e.shakeY = 0, 0, 0
	e.player.Reset(e.cfg)
	e.initLevel()
}

func (e *Engine) initLevel() {
	e.bubbles = LevelBubbles(e.cfg, e.level)
	e.projectiles = e.projectiles[:0]
	e.particles = e.particles[:0]
	e.phase = PhasePlaying
	e.timeRemaining = e.cfg.Session.LevelTime
	e.secondAcc = 0
	e.combo.Reset()
	e.emit(LevelChanged{Level: e.level, Theme: ThemeFor(e.cfg.Themes, e.level).Name})
}

// Update advances the simulation by dt and returns the events raised since
// the previous update. It is a no-op outside the playing phase.
func (e *Engine) Update(dt time.Duration) Frame {
	if e.phase == PhasePlaying {
		e.step(dt)
	}
	f := Frame{Events: e.pending, Phase: e.phase}
	e.pending = nil
	return f
}

func (e *Engine) step(dt time.Duration) {
	e.frame++
	e.clock += dt

	e.updateShake()
	e.combo.Decay(e.clock)

	if e.tickTimer(dt) {
		return
	}

	e.player.Update(e.cfg)

	for i := range e.bubbles {
		e.bubbles[i].Update(e.cfg.Stage, e.cfg.Bubbles)
		if BubbleHitsPlayer(e.bubbles[i], e.player, e.cfg.Player) {
			e.loseLife(CauseBubble)
			return
		}
	}

	e.updateProjectiles()
	e.updateParticles()

	e.bubbles = compact(e.bubbles, func(b Bubble) bool { return b.Active })
	if len(e.bubbles) == 0 {
		e.clearLevel()
	}
}

// tickTimer counts down one second per elapsed second. At most one second
// is consumed per frame; the remainder carries over. It reports whether the
// frame ended on a timeout.
func (e *Engine) tickTimer(dt time.Duration) bool {
	e.secondAcc += dt
	if e.secondAcc < time.Second {
		return false
	}
	e.secondAcc -= time.Second
	e.timeRemaining--
	if e.timeRemaining > 0 {
		return false
	}
	e.timeRemaining = 0
	e.loseLife(CauseTimeout)
	if e.phase == PhasePlaying {
		e.timeRemaining = e.cfg.Session.LevelTime
		e.secondAcc = 0
	}
	return true
}

func (e *Engine) updateProjectiles() {
	var spawned []Bubble
	for i := range e.projectiles {
		p := &e.projectiles[i]
		if !p.Active {
			continue
		}
		p.Update(e.cfg.Projectile)
		if !p.Active {
			continue
		}
		for j := range e.bubbles {
			b := &e.bubbles[j]
			if !b.Active || !BeamHitsBubble(*p, *b, e.cfg.Stage) {
				continue
			}
			p.Active = false
			b.Active = false
			spawned = append(spawned, e.pop(*b)...)
			break
		}
	}
	e.projectiles = compact(e.projectiles, func(p Projectile) bool { return p.Active })
	e.bubbles = append(e.bubbles, spawned...)
}

// pop scores a hit and returns the children of the popped bubble.
func (e *Engine) pop(b Bubble) []Bubble {
	mult := e.combo.Hit(e.clock)
	points := b.Size.Points(e.cfg.Scoring) * mult
	e.score += points

	c := b.Circle().Center
	e.particles = append(e.particles, e.spawner.Pop(c.X, c.Y)...)
	e.shake(e.cfg.Effects.PopShake)

	e.emit(BubblePopped{Size: b.Size, Points: points, Multiplier: mult, At: c})
	return Split(b, e.cfg.Bubbles)
}

func (e *Engine) updateParticles() {
	for i := range e.particles {
		e.particles[i].Update(e.cfg.Particles)
	}
	e.particles = compact(e.particles, func(p Particle) bool {
		return p.Alive(e.cfg.Stage, e.cfg.Particles)
	})
}

func (e *Engine) loseLife(cause LossCause) {
	e.lives = max(e.lives-1, 0)

	at := e.player.Center(e.cfg.Player)
	e.particles = append(e.particles, e.spawner.Death(at.X, e.player.Pos.Y)...)
	e.shake(e.cfg.Effects.ShakeDuration)
	e.player.Reset(e.cfg)

	e.emit(LifeLost{Cause: cause, LivesLeft: e.lives})
	if e.lives == 0 {
		e.endGame()
	}
}

func (e *Engine) clearLevel() {
	timeBonus := e.timeRemaining * e.cfg.Scoring.TimeBonus
	bonus := timeBonus + e.cfg.Scoring.LevelComplete
	e.score += bonus
	e.phase = PhaseLevelComplete
	e.particles = append(e.particles, e.spawner.Celebrate()...)
	e.emit(LevelCleared{Level: e.level, TimeBonus: timeBonus, Bonus: bonus})
}

func (e *Engine) endGame() {
	e.phase = PhaseGameOver
	e.emit(GameOver{Score: e.score, Level: e.level, Cleared: e.cleared})
}

func (e *Engine) shake(frames int) {
	if !e.cfg.Effects.ScreenShake || frames <= 0 {
		return
	}
	e.shakeFrames = frames
}

func (e *Engine) updateShake() {
	if e.shakeFrames <= 0 {
		e.shakeX, e.shakeY = 0, 0
		return
	}
	e.shakeFrames--
	if e.shakeFrames == 0 {
		e.shakeX, e.shakeY = 0, 0
		return
	}
	n := e.cfg.Effects.ShakeIntensity
	e.shakeX = e.rng.Intn(2*n+1) - n
	e.shakeY = e.rng.Intn(2*n+1) - n
}

func (e *Engine) emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// compact keeps the elements for which keep returns true, in order,
// reusing the backing array.
func compact[T any](s []T, keep func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}

package burst

import (
	"math"

	"github.com/vovakirdan/bubble-burst/internal/config"
	"github.com/vovakirdan/bubble-burst/internal/core"
)

// Size is a bubble size class. Larger bubbles split into smaller ones.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// String returns the name of the size class.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Diameter returns the bubble diameter for this size.
func (s Size) Diameter(cfg config.BubbleConfig) float64 {
	switch s {
	case SizeLarge:
		return cfg.Large
	case SizeMedium:
		return cfg.Medium
	default:
		return cfg.Small
	}
}

// Points returns the base score for popping a bubble of this size.
func (s Size) Points(cfg config.ScoringConfig) int {
	switch s {
	case SizeLarge:
		return cfg.Large
	case SizeMedium:
		return cfg.Medium
	default:
		return cfg.Small
	}
}

// Player is the character walking along the ground line.
type Player struct {
	Pos         core.Vec // Top-left corner
	MovingLeft  bool
	MovingRight bool
	Facing      int // -1 left, +1 right
}

// NewPlayer creates a player standing at the centre of the ground line.
func NewPlayer(cfg config.BurstConfig) Player {
	p := Player{}
	p.Reset(cfg)
	return p
}

// Reset moves the player back to the start position and drops its intents.
func (p *Player) Reset(cfg config.BurstConfig) {
	p.Pos = core.Vec{
		X: cfg.Stage.Width/2 - cfg.Player.Width/2,
		Y: cfg.Stage.GroundLevel - cfg.Player.Height,
	}
	p.MovingLeft = false
	p.MovingRight = false
	p.Facing = 1
}

// Update moves the player one frame. Movement has no inertia: the player
// only moves while exactly one direction is held.
func (p *Player) Update(cfg config.BurstConfig) {
	switch {
	case p.MovingLeft && !p.MovingRight:
		p.Pos.X -= cfg.Player.Speed
		p.Facing = -1
	case p.MovingRight && !p.MovingLeft:
		p.Pos.X += cfg.Player.Speed
		p.Facing = 1
	}
	p.Pos.X = core.ClampF(p.Pos.X, 0, cfg.Stage.Width-cfg.Player.Width)
}

// Center returns the centre of the player's body.
func (p Player) Center(cfg config.PlayerConfig) core.Vec {
	return core.Vec{X: p.Pos.X + cfg.Width/2, Y: p.Pos.Y + cfg.Height/2}
}

// Bubble is a bouncing ball. Pos is the top-left of its bounding box.
type Bubble struct {
	Pos      core.Vec
	Vel      core.Vec
	Size     Size
	Diameter float64
	Active   bool
}

// NewBubble creates an active bubble of the given size moving horizontally.
func NewBubble(cfg config.BubbleConfig, size Size, pos core.Vec, vx float64) Bubble {
	return Bubble{
		Pos:      pos,
		Vel:      core.Vec{X: vx},
		Size:     size,
		Diameter: size.Diameter(cfg),
		Active:   true,
	}
}

// Circle returns the bubble's collision circle.
func (b Bubble) Circle() core.Circle {
	r := b.Diameter / 2
	return core.Circle{Center: core.Vec{X: b.Pos.X + r, Y: b.Pos.Y + r}, R: r}
}

// Update integrates one frame of gravity and resolves wall, ground and
// ceiling bounces.
func (b *Bubble) Update(stage config.StageConfig, cfg config.BubbleConfig) {
	b.Vel.Y += cfg.Gravity
	b.Pos = b.Pos.Add(b.Vel)

	maxX := stage.Width - b.Diameter
	if b.Pos.X <= 0 || b.Pos.X >= maxX {
		b.Vel.X = -b.Vel.X
		b.Pos.X = core.ClampF(b.Pos.X, 0, maxX)
	}

	floor := stage.GroundLevel - b.Diameter
	if b.Pos.Y >= floor {
		b.Pos.Y = floor
		b.Vel.Y = -math.Abs(b.Vel.Y)
		// Keep bubbles from dying on the ground or bouncing out of control
		if math.Abs(b.Vel.Y) < cfg.MinBounce {
			b.Vel.Y = -cfg.ResetBounce
		}
		if b.Vel.Y < -cfg.MaxBounce {
			b.Vel.Y = -cfg.MaxBounce
		}
	}

	if b.Pos.Y <= 0 {
		b.Pos.Y = 0
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
}

// Projectile is the vertical beam fired from the player's position.
// Pos.Y is the tip; the beam extends down to the ground line.
type Projectile struct {
	Pos    core.Vec
	Active bool
}

// NewProjectile creates a beam at x starting from the ground line.
func NewProjectile(x float64, stage config.StageConfig) Projectile {
	return Projectile{
		Pos:    core.Vec{X: x, Y: stage.GroundLevel},
		Active: true,
	}
}

// Update moves the tip upward and deactivates the beam above the screen.
func (p *Projectile) Update(cfg config.ProjectileConfig) {
	p.Pos.Y -= cfg.Speed
	if p.Pos.Y < 0 {
		p.Active = false
	}
}

// Beam returns the segment covered by the projectile.
func (p Projectile) Beam(stage config.StageConfig) core.VSegment {
	return core.VSegment{X: p.Pos.X, Top: p.Pos.Y, Bottom: stage.GroundLevel}
}

// ParticleKind is a visual tag; it has no effect on physics.
type ParticleKind int

const (
	ParticlePop       ParticleKind = iota // Bubble pop
	ParticleExplosion                     // Life lost
	ParticleSparkle                       // Level clear
)

// Particle is a short-lived cosmetic spark.
type Particle struct {
	Pos     core.Vec
	Vel     core.Vec
	Life    int // Remaining frames
	MaxLife int
	Kind    ParticleKind
}

// Update integrates one frame of ballistic motion with damping.
func (p *Particle) Update(cfg config.ParticleConfig) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += cfg.Gravity
	p.Vel = p.Vel.Scale(cfg.Damping)
	p.Life--
}

// Alive reports whether the particle should still be simulated.
func (p Particle) Alive(stage config.StageConfig, cfg config.ParticleConfig) bool {
	return p.Life > 0 && p.Pos.Y < stage.Height+cfg.FallMargin
}

// Alpha returns the particle opacity in [0, 1], derived from its lifetime.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(float64(p.Life)/float64(p.MaxLife), 0, 1)
}

package burst

import (
	"math"

	"github.com/vovakirdan/bubble-burst/internal/config"
	"github.com/vovakirdan/bubble-burst/internal/core"
)

// Spawner creates particle bursts. It draws from the engine's RNG so that
// a seeded session replays identically.
type Spawner struct {
	stage config.StageConfig
	cfg   config.ParticleConfig
	rng   *core.RNG
}

// NewSpawner creates a spawner sharing the given RNG.
func NewSpawner(stage config.StageConfig, cfg config.ParticleConfig, rng *core.RNG) Spawner {
	return Spawner{stage: stage, cfg: cfg, rng: rng}
}

// Pop returns a ring of particles spread evenly around (x, y).
func (s Spawner) Pop(x, y float64) []Particle {
	if !s.cfg.Enabled || s.cfg.PopCount <= 0 {
		return nil
	}
	out := make([]Particle, 0, s.cfg.PopCount)
	step := 2 * math.Pi / float64(s.cfg.PopCount)
	for i := 0; i < s.cfg.PopCount; i++ {
		speed := s.cfg.Speed * s.rng.Range(0.5, 1.0)
		out = append(out, s.particle(core.Vec{X: x, Y: y}, core.Polar(step*float64(i), speed), ParticlePop))
	}
	return out
}

// Death returns a randomly scattered burst biased upward.
func (s Spawner) Death(x, y float64) []Particle {
	if !s.cfg.Enabled || s.cfg.DeathCount <= 0 {
		return nil
	}
	out := make([]Particle, 0, s.cfg.DeathCount)
	for iter := 0; iter < s.cfg.DeathCount; iter++ {
		angle := s.rng.Range(0, 2*math.Pi)
		speed := s.cfg.Speed * s.rng.Range(0.5, 1.5)
		vel := core.Polar(angle, speed)
		vel.Y -= s.cfg.DeathLift
		out = append(out, s.particle(core.Vec{X: x, Y: y}, vel, ParticleExplosion))
	}
	return out
}

// Celebrate returns sparks launched upward from random points along the
// ground line.
func (s Spawner) Celebrate() []Particle {
	if !s.cfg.Enabled || s.cfg.CelebrationCount <= 0 {
		return nil
	}
	out := make([]Particle, 0, s.cfg.CelebrationCount)
	for iter := 0; iter < s.cfg.CelebrationCount; iter++ {
		pos := core.Vec{X: s.rng.Range(0, s.stage.Width), Y: s.stage.GroundLevel}
		vel := core.Vec{
			X: s.rng.Range(-2, 2),
			Y: -s.rng.Range(5, 13),
		}
		out = append(out, s.particle(pos, vel, ParticleSparkle))
	}
	return out
}

func (s Spawner) particle(pos, vel core.Vec, kind ParticleKind) Particle {
	return Particle{
		Pos:     pos,
		Vel:     vel,
		Life:    s.cfg.Lifetime,
		MaxLife: s.cfg.Lifetime,
		Kind:    kind,
	}
}

package burst

import (
	"math"
	"testing"

	"github.com/vovakirdan/bubble-burst/internal/config"
	"github.com/vovakirdan/bubble-burst/internal/core"
)

func TestSpawnerBatches(t *testing.T) {
	cfg := config.DefaultBurstConfig()
	s := NewSpawner(cfg.Stage, cfg.Particles, core.NewRNG(7))

	tests := []struct {
		name      string
		batch     []Particle
		wantCount int
		wantKind  ParticleKind
	}{
		{"pop", s.Pop(100, 200), 15, ParticlePop},
		{"death", s.Death(400, 500), 20, ParticleExplosion},
		{"celebrate", s.Celebrate(), 50, ParticleSparkle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.batch) != tt.wantCount {
				t.Fatalf("got %d particles, want %d", len(tt.batch), tt.wantCount)
			}
			for _, p := range tt.batch {
				if p.Kind != tt.wantKind {
					t.Errorf("kind = %v, want %v", p.Kind, tt.wantKind)
				}
				if p.Life != 30 || p.MaxLife != 30 {
					t.Errorf("lifetime = %d/%d, want 30/30", p.Life, p.MaxLife)
				}
			}
		})
	}
}

func TestSpawnerPopRing(t *testing.T) {
	cfg := config.DefaultBurstConfig()
	s := NewSpawner(cfg.Stage, cfg.Particles, core.NewRNG(3))

	for i, p := range s.Pop(0, 0) {
		speed := p.Vel.Len()
		if speed < 2-1e-9 || speed > 4+1e-9 {
			t.Errorf("particle %d speed %v outside [2, 4]", i, speed)
		}
		want := 2 * math.Pi * float64(i) / 15
		got := math.Atan2(p.Vel.Y, p.Vel.X)
		if got < 0 {
			got += 2 * math.Pi
		}
		if math.Abs(got-want) > 1e-6 && math.Abs(got-want) < 2*math.Pi-1e-6 {
			t.Errorf("particle %d angle %v, want %v", i, got, want)
		}
	}
}

func TestSpawnerCelebrationRanges(t *testing.T) {
	cfg := config.DefaultBurstConfig()
	s := NewSpawner(cfg.Stage, cfg.Particles, core.NewRNG(11))

	for _, p := range s.Celebrate() {
		if p.Pos.Y != cfg.Stage.GroundLevel {
			t.Errorf("spark Y = %v, want ground", p.Pos.Y)
		}
		if p.Pos.X < 0 || p.Pos.X >= cfg.Stage.Width {
			t.Errorf("spark X = %v outside stage", p.Pos.X)
		}
		if p.Vel.X < -2 || p.Vel.X >= 2 {
			t.Errorf("spark VX = %v outside [-2, 2)", p.Vel.X)
		}
		if p.Vel.Y > -5 || p.Vel.Y <= -13 {
			t.Errorf("spark VY = %v outside (-13, -5]", p.Vel.Y)
		}
	}
}

func TestSpawnerDisabled(t *testing.T) {
	cfg := config.DefaultBurstConfig()
	cfg.Particles.Enabled = false
	s := NewSpawner(cfg.Stage, cfg.Particles, core.NewRNG(1))

	if n := len(s.Pop(0, 0)) + len(s.Death(0, 0)) + len(s.Celebrate()); n != 0 {
		t.Errorf("disabled spawner produced %d particles", n)
	}
}

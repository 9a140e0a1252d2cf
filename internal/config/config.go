// Package config provides YAML/TOML-based configuration loading and
// difficulty presets for the game.
package config

// BurstConfig contains all tunable constants consumed by the simulation.
// The engine never mutates it.
type BurstConfig struct {
	Stage      StageConfig      `yaml:"stage" toml:"stage"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Bubbles    BubbleConfig     `yaml:"bubbles" toml:"bubbles"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Particles  ParticleConfig   `yaml:"particles" toml:"particles"`
	Effects    EffectsConfig    `yaml:"effects" toml:"effects"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Session    SessionConfig    `yaml:"session" toml:"session"`
	Themes     []ThemeConfig    `yaml:"themes" toml:"themes"`
}

// StageConfig defines the world dimensions in pixels.
type StageConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	GroundLevel float64 `yaml:"ground_level" toml:"ground_level"`
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// BubbleConfig defines bubble sizes and bounce physics.
type BubbleConfig struct {
	Large       float64 `yaml:"large" toml:"large"` // Diameters
	Medium      float64 `yaml:"medium" toml:"medium"`
	Small       float64 `yaml:"small" toml:"small"`
	Speed       float64 `yaml:"speed" toml:"speed"` // Base horizontal speed
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	SpawnY      float64 `yaml:"spawn_y" toml:"spawn_y"`
	MinBounce   float64 `yaml:"min_bounce" toml:"min_bounce"`     // Rebounds slower than this are boosted
	ResetBounce float64 `yaml:"reset_bounce" toml:"reset_bounce"` // Boosted rebound speed
	MaxBounce   float64 `yaml:"max_bounce" toml:"max_bounce"`     // Rebound speed cap
	MediumSpeed float64 `yaml:"medium_speed" toml:"medium_speed"` // Child speed factor when a large pops
	SmallSpeed  float64 `yaml:"small_speed" toml:"small_speed"`   // Child speed factor when a medium pops
}

// ProjectileConfig defines the vertical beam.
type ProjectileConfig struct {
	Width float64 `yaml:"width" toml:"width"`
	Speed float64 `yaml:"speed" toml:"speed"`
}

// ParticleConfig defines the cosmetic particle bursts.
type ParticleConfig struct {
	Enabled          bool    `yaml:"enabled" toml:"enabled"`
	PopCount         int     `yaml:"pop_count" toml:"pop_count"`
	DeathCount       int     `yaml:"death_count" toml:"death_count"`
	CelebrationCount int     `yaml:"celebration_count" toml:"celebration_count"`
	Lifetime         int     `yaml:"lifetime" toml:"lifetime"` // Frames
	Speed            float64 `yaml:"speed" toml:"speed"`
	Gravity          float64 `yaml:"gravity" toml:"gravity"`
	Damping          float64 `yaml:"damping" toml:"damping"`
	DeathLift        float64 `yaml:"death_lift" toml:"death_lift"`   // Upward bias for death bursts
	FallMargin       float64 `yaml:"fall_margin" toml:"fall_margin"` // Distance below the stage before culling
}

// EffectsConfig defines screen shake.
type EffectsConfig struct {
	ScreenShake    bool `yaml:"screen_shake" toml:"screen_shake"`
	ShakeDuration  int  `yaml:"shake_duration" toml:"shake_duration"` // Frames, on life loss
	ShakeIntensity int  `yaml:"shake_intensity" toml:"shake_intensity"`
	PopShake       int  `yaml:"pop_shake" toml:"pop_shake"` // Frames, on bubble pop
}

// ScoringConfig defines points and the combo window.
type ScoringConfig struct {
	Large         int `yaml:"large" toml:"large"`
	Medium        int `yaml:"medium" toml:"medium"`
	Small         int `yaml:"small" toml:"small"`
	LevelComplete int `yaml:"level_complete" toml:"level_complete"`
	TimeBonus     int `yaml:"time_bonus" toml:"time_bonus"` // Per second remaining
	ComboWindowMS int `yaml:"combo_window_ms" toml:"combo_window_ms"`
	MaxCombo      int `yaml:"max_combo" toml:"max_combo"`
}

// SessionConfig defines lives, levels and the countdown.
type SessionConfig struct {
	InitialBubbles int `yaml:"initial_bubbles" toml:"initial_bubbles"`
	MaxLevel       int `yaml:"max_level" toml:"max_level"`
	Lives          int `yaml:"lives" toml:"lives"`
	LevelTime      int `yaml:"level_time" toml:"level_time"` // Seconds
}

// ThemeConfig is a cosmetic palette for one level.
// Colors are names understood by core.ParseColor.
type ThemeConfig struct {
	Name   string `yaml:"name" toml:"name"`
	Sky    string `yaml:"sky" toml:"sky"`
	Ground string `yaml:"ground" toml:"ground"`
	Accent string `yaml:"accent" toml:"accent"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset.
// Unknown values map to the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

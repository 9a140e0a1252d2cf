package config

import (
	_ "embed"
)

//go:embed defaults/burst.yaml
var defaultBurstYAML []byte

// DefaultBurstConfig returns the built-in configuration.
// It mirrors defaults/burst.yaml and is the fallback if the embed fails to parse.
func DefaultBurstConfig() BurstConfig {
	return BurstConfig{
		Stage: StageConfig{
			Width:       800,
			Height:      600,
			GroundLevel: 550,
		},
		Player: PlayerConfig{
			Width:  40,
			Height: 50,
			Speed:  6.0,
		},
		Bubbles: BubbleConfig{
			Large:       80,
			Medium:      50,
			Small:       25,
			Speed:       1.5,
			Gravity:     0.4,
			SpawnY:      100,
			MinBounce:   5,
			ResetBounce: 7,
			MaxBounce:   12,
			MediumSpeed: 1.2,
			SmallSpeed:  1.5,
		},
		Projectile: ProjectileConfig{
			Width: 4,
			Speed: 10.0,
		},
		Particles: ParticleConfig{
			Enabled:          true,
			PopCount:         15,
			DeathCount:       20,
			CelebrationCount: 50,
			Lifetime:         30,
			Speed:            4.0,
			Gravity:          0.15,
			Damping:          0.98,
			DeathLift:        2,
			FallMargin:       50,
		},
		Effects: EffectsConfig{
			ScreenShake:    true,
			ShakeDuration:  10,
			ShakeIntensity: 5,
			PopShake:       3,
		},
		Scoring: ScoringConfig{
			Large:         100,
			Medium:        200,
			Small:         300,
			LevelComplete: 1000,
			TimeBonus:     10,
			ComboWindowMS: 2000,
			MaxCombo:      5,
		},
		Session: SessionConfig{
			InitialBubbles: 1,
			MaxLevel:       5,
			Lives:          3,
			LevelTime:      60,
		},
		Themes: []ThemeConfig{
			{Name: "Midnight Sky", Sky: "blue", Ground: "bright_blue", Accent: "bright_white"},
			{Name: "Crimson Sunset", Sky: "red", Ground: "magenta", Accent: "orange"},
			{Name: "Ocean Depths", Sky: "cyan", Ground: "blue", Accent: "bright_cyan"},
			{Name: "Aurora Borealis", Sky: "green", Ground: "magenta", Accent: "bright_green"},
			{Name: "Cosmic Void", Sky: "magenta", Ground: "gray", Accent: "bright_magenta"},
		},
	}
}

package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported together.
func (c BurstConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Stage.Width > 0 && c.Stage.Height > 0, "stage: dimensions must be positive, got %gx%g", c.Stage.Width, c.Stage.Height)
	check(c.Stage.GroundLevel > 0 && c.Stage.GroundLevel <= c.Stage.Height, "stage: ground_level %g must be within (0, %g]", c.Stage.GroundLevel, c.Stage.Height)

	check(c.Player.Width > 0 && c.Player.Width < c.Stage.Width, "player: width %g must be within (0, stage width)", c.Player.Width)
	check(c.Player.Height > 0 && c.Player.Height < c.Stage.GroundLevel, "player: height %g must be within (0, ground_level)", c.Player.Height)
	check(c.Player.Speed > 0, "player: speed must be positive")

	b := c.Bubbles
	check(b.Small > 0 && b.Small < b.Medium && b.Medium < b.Large, "bubbles: sizes must satisfy 0 < small < medium < large, got %g/%g/%g", b.Small, b.Medium, b.Large)
	check(b.Large < c.Stage.Width && b.Large < c.Stage.GroundLevel, "bubbles: large size %g does not fit the stage", b.Large)
	check(b.Gravity >= 0, "bubbles: gravity must not be negative")
	check(b.MinBounce >= 0 && b.ResetBounce >= b.MinBounce && b.MaxBounce >= b.ResetBounce,
		"bubbles: bounce speeds must satisfy 0 <= min <= reset <= max, got %g/%g/%g", b.MinBounce, b.ResetBounce, b.MaxBounce)

	check(c.Projectile.Speed > 0, "projectile: speed must be positive")

	p := c.Particles
	check(p.PopCount >= 0 && p.DeathCount >= 0 && p.CelebrationCount >= 0, "particles: counts must not be negative")
	check(p.Lifetime > 0, "particles: lifetime must be positive")
	check(p.Damping > 0 && p.Damping <= 1, "particles: damping %g must be within (0, 1]", p.Damping)

	check(c.Effects.ShakeDuration >= 0 && c.Effects.PopShake >= 0 && c.Effects.ShakeIntensity >= 0, "effects: shake values must not be negative")

	s := c.Scoring
	check(s.Large >= 0 && s.Medium >= 0 && s.Small >= 0 && s.LevelComplete >= 0 && s.TimeBonus >= 0, "scoring: points must not be negative")
	check(s.ComboWindowMS > 0, "scoring: combo_window_ms must be positive")
	check(s.MaxCombo >= 1, "scoring: max_combo must be at least 1")

	check(c.Session.InitialBubbles >= 1, "session: initial_bubbles must be at least 1")
	check(c.Session.MaxLevel >= 1, "session: max_level must be at least 1")
	check(c.Session.Lives >= 1, "session: lives must be at least 1")
	check(c.Session.LevelTime >= 1, "session: level_time must be at least 1")

	check(len(c.Themes) > 0, "themes: at least one theme is required")

	return errors.Join(errs...)
}

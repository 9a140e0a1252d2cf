package burst

import (
	"github.com/vovakirdan/bubble-burst/internal/config"
	"github.com/vovakirdan/bubble-burst/internal/core"
)

// Theme is the resolved palette for a level.
type Theme struct {
	Name   string
	Sky    core.Color
	Ground core.Color
	Accent core.Color
}

// ThemeFor returns the theme for a 1-based level. Levels past the last
// theme reuse the last one. Unknown color names fall back to the default.
func ThemeFor(themes []config.ThemeConfig, level int) Theme {
	if len(themes) == 0 {
		return Theme{Name: "Default"}
	}
	tc := themes[core.Clamp(level-1, 0, len(themes)-1)]
	return Theme{
		Name:   tc.Name,
		Sky:    themeColor(tc.Sky),
		Ground: themeColor(tc.Ground),
		Accent: themeColor(tc.Accent),
	}
}

func themeColor(name string) core.Color {
	c, ok := core.ParseColor(name)
	if !ok {
		return core.ColorDefault
	}
	return c
}

// LevelBubbles builds the opening bubble set for a level: one more large
// bubble per level, spaced across the stage with alternating directions.
func LevelBubbles(cfg config.BurstConfig, level int) []Bubble {
	n := cfg.Session.InitialBubbles + level - 1
	if n < 1 {
		n = 1
	}

	out := make([]Bubble, 0, n)
	for i := 0; i < n; i++ {
		x := 100 + 150*float64(i)
		if x > cfg.Stage.Width-150 {
			x = 100 + 200*float64(i%3)
		}
		vx := cfg.Bubbles.Speed
		if i%2 == 1 {
			vx = -vx
		}
		out = append(out, NewBubble(cfg.Bubbles, SizeLarge, core.Vec{X: x, Y: cfg.Bubbles.SpawnY}, vx))
	}
	return out
}

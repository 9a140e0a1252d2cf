package burst

import (
	"testing"

	"github.com/vovakirdan/bubble-burst/internal/config"
	"github.com/vovakirdan/bubble-burst/internal/core"
)

func TestLevelBubbles(t *testing.T) {
	cfg := config.DefaultBurstConfig()

	tests := []struct {
		level int
		wantX []float64
	}{
		{1, []float64{100}},
		{2, []float64{100, 250}},
		{4, []float64{100, 250, 400, 550}},
		{5, []float64{100, 250, 400, 550, 300}}, // Fifth bubble wraps
	}

	for _, tt := range tests {
		bubbles := LevelBubbles(cfg, tt.level)
		if len(bubbles) != len(tt.wantX) {
			t.Fatalf("level %d: got %d bubbles, want %d", tt.level, len(bubbles), len(tt.wantX))
		}
		for i, b := range bubbles {
			if b.Pos.X != tt.wantX[i] || b.Pos.Y != 100 {
				t.Errorf("level %d bubble %d at %+v, want (%v, 100)", tt.level, i, b.Pos, tt.wantX[i])
			}
			if b.Size != SizeLarge || !b.Active {
				t.Errorf("level %d bubble %d: size %v active %v", tt.level, i, b.Size, b.Active)
			}
			wantVX := 1.5
			if i%2 == 1 {
				wantVX = -1.5
			}
			if b.Vel.X != wantVX || b.Vel.Y != 0 {
				t.Errorf("level %d bubble %d velocity %+v, want (%v, 0)", tt.level, i, b.Vel, wantVX)
			}
		}
	}
}

func TestThemeFor(t *testing.T) {
	cfg := config.DefaultBurstConfig()

	tests := []struct {
		level int
		want  string
	}{
		{0, "Midnight Sky"},
		{1, "Midnight Sky"},
		{2, "Crimson Sunset"},
		{5, "Cosmic Void"},
		{9, "Cosmic Void"},
	}

	for _, tt := range tests {
		if got := ThemeFor(cfg.Themes, tt.level).Name; got != tt.want {
			t.Errorf("ThemeFor(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}

	theme := ThemeFor(cfg.Themes, 1)
	if theme.Sky != core.ColorBlue || theme.Accent != core.ColorBrightWhite {
		t.Errorf("Midnight Sky colors = %+v", theme)
	}

	unknown := ThemeFor([]config.ThemeConfig{{Name: "X", Sky: "no_such_color"}}, 1)
	if unknown.Sky != core.ColorDefault {
		t.Errorf("unknown color = %v, want default", unknown.Sky)
	}
	if got := ThemeFor(nil, 3).Name; got != "Default" {
		t.Errorf("empty theme list name = %q", got)
	}
}

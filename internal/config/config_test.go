package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := Parse(defaultBurstYAML, FormatYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBurstConfig()) {
		t.Errorf("embedded defaults/burst.yaml drifted from DefaultBurstConfig()\nyaml: %+v\ncode: %+v", cfg, DefaultBurstConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseYAMLOverlay(t *testing.T) {
	data := []byte(`
session:
  lives: 7
particles:
  enabled: false
`)
	cfg, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Session.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Session.Lives)
	}
	if cfg.Particles.Enabled {
		t.Error("Particles should be disabled")
	}
	// Untouched keys keep their defaults
	if cfg.Session.MaxLevel != 5 {
		t.Errorf("MaxLevel = %d, expected default 5", cfg.Session.MaxLevel)
	}
	if cfg.Bubbles.Large != 80 {
		t.Errorf("Large = %g, expected default 80", cfg.Bubbles.Large)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[session]
lives = 4
level_time = 30

[effects]
screen_shake = false

[[themes]]
name = "Only"
sky = "blue"
ground = "gray"
accent = "white"
`)
	cfg, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Session.Lives != 4 || cfg.Session.LevelTime != 30 {
		t.Errorf("Session = %+v, expected lives 4 and level_time 30", cfg.Session)
	}
	if cfg.Effects.ScreenShake {
		t.Error("Screen shake should be disabled")
	}
	if len(cfg.Themes) != 1 || cfg.Themes[0].Name != "Only" {
		t.Errorf("Themes = %+v, expected the single custom theme", cfg.Themes)
	}
}

func TestParsePartialThemeSameInBothFormats(t *testing.T) {
	tomlCfg, err := Parse([]byte("[[themes]]\nname = \"Mono\"\nsky = \"white\"\n"), FormatTOML)
	if err != nil {
		t.Fatalf("Parse(toml) failed: %v", err)
	}
	yamlCfg, err := Parse([]byte("themes:\n  - name: Mono\n    sky: white\n"), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(yaml) failed: %v", err)
	}

	want := []ThemeConfig{{Name: "Mono", Sky: "white"}}
	if !reflect.DeepEqual(tomlCfg.Themes, want) {
		t.Errorf("toml Themes = %+v, expected %+v", tomlCfg.Themes, want)
	}
	if !reflect.DeepEqual(yamlCfg.Themes, want) {
		t.Errorf("yaml Themes = %+v, expected %+v", yamlCfg.Themes, want)
	}
}

func TestParseWithoutThemesKeepsDefaults(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		cfg, err := Parse(nil, format)
		if err != nil {
			t.Fatalf("Parse(%s) failed: %v", format, err)
		}
		if !reflect.DeepEqual(cfg.Themes, DefaultBurstConfig().Themes) {
			t.Errorf("%s: Themes = %+v, expected the defaults", format, cfg.Themes)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("session: [unclosed"), FormatYAML); err == nil {
		t.Error("Expected YAML parse error")
	}
	if _, err := Parse([]byte("session = = 1"), FormatTOML); err == nil {
		t.Error("Expected TOML parse error")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"burst.yaml", FormatYAML},
		{"burst.yml", FormatYAML},
		{"burst.toml", FormatTOML},
		{"BURST.TOML", FormatTOML},
		{"burst", FormatYAML},
	}

	for _, tc := range tests {
		if got := FormatForPath(tc.path); got != tc.expected {
			t.Errorf("FormatForPath(%q) = %q, expected %q", tc.path, got, tc.expected)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(yamlPath, []byte("session:\n  max_level: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Session.MaxLevel != 2 {
		t.Errorf("MaxLevel = %d, expected 2", cfg.Session.MaxLevel)
	}

	tomlPath := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(tomlPath, []byte("[player]\nspeed = 9.5\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err = Load(tomlPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Speed != 9.5 {
		t.Errorf("Player speed = %g, expected 9.5", cfg.Player.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("session:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := Load(invalid)
	if err == nil {
		t.Fatal("Expected validation error for zero lives")
	}
	if !strings.Contains(err.Error(), "lives") {
		t.Errorf("Error should mention lives, got: %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultBurstConfig()
	cfg.Bubbles.Small = 60 // larger than medium
	cfg.Scoring.MaxCombo = 0
	cfg.Themes = nil

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation errors")
	}
	for _, want := range []string{"bubbles: sizes", "max_combo", "themes"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error should mention %q, got: %v", want, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		levelTime int
	}{
		{DifficultyEasy, 5, 90},
		{DifficultyNormal, 3, 60},
		{DifficultyHard, 2, 45},
		{"", 3, 60},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBurstConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Session.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Session.Lives, tc.lives)
			}
			if cfg.Session.LevelTime != tc.levelTime {
				t.Errorf("LevelTime = %d, expected %d", cfg.Session.LevelTime, tc.levelTime)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should be valid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("Unknown presets should map to the empty preset")
	}
}

func TestEncodeTOMLRoundTrip(t *testing.T) {
	want := DefaultBurstConfig()
	data, err := Encode(want, FormatTOML)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse() of encoded TOML failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TOML round trip changed the config\ngot:  %+v\nwant: %+v", got, want)
	}

	if _, err := Encode(want, Format("xml")); err == nil {
		t.Error("Expected error for unknown format")
	}
}

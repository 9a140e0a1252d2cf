package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from a file extension.
// Anything that is not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the game configuration.
// Search order: customPath -> ~/.burst/burst.yaml -> ~/.burst/burst.toml ->
// ./configs/burst.yaml -> embedded default.
// Files are overlaid on the defaults, so they only need the keys they change.
func Load(customPath string) (BurstConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BurstConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, FormatForPath(customPath))
		if err != nil {
			return BurstConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BurstConfig{}, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("burst.yaml"),
		userConfigPath("burst.toml"),
		filepath.Join("configs", "burst.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data, FormatForPath(path)); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultBurstYAML, FormatYAML)
	if err != nil {
		return DefaultBurstConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes data on top of DefaultBurstConfig.
// Scalars overlay the defaults one by one. A themes list replaces the
// default themes as a whole, so an entry only has the colors it names.
func Parse(data []byte, format Format) (BurstConfig, error) {
	cfg := DefaultBurstConfig()
	themes := cfg.Themes
	cfg.Themes = nil

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return BurstConfig{}, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return BurstConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	if cfg.Themes == nil {
		cfg.Themes = themes
	}
	return cfg, nil
}

// Encode serializes a configuration in the given format.
func Encode(cfg BurstConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: toml encode: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: yaml encode: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".burst", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BurstConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Session.LevelTime = 90
		cfg.Bubbles.Speed = 1.2
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Session.LevelTime = 45
		cfg.Bubbles.Speed = 1.8
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bubble-burst/internal/config"
)

// loadConfig resolves the effective game configuration from the config
// search path and the difficulty preset.
func loadConfig() (config.BurstConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	return cfg, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openLogWriter opens the log destination named by --log-file.
// The returned closer is always safe to call.
func openLogWriter(path string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch path {
	case "":
		return io.Discard, noop, nil
	case "-":
		return os.Stderr, noop, nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, noop, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, noop, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, f.Close, nil
}

// newLogger creates the session logger. Every entry carries a session ID so
// runs appended to the same file can be told apart.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "burst",
		Level:           level,
	})
	return logger.With("session", uuid.NewString()), nil
}

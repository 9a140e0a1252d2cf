package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDifficulty(t *testing.T) {
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })
	flagConfig = filepath.Join(t.TempDir(), "burst.yaml")
	if err := os.WriteFile(flagConfig, []byte("session:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	flagDifficulty = ""
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Session.Lives != 4 {
		t.Errorf("lives = %d, want 4 from file", cfg.Session.Lives)
	}

	flagDifficulty = "hard"
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Session.Lives != 2 {
		t.Errorf("lives = %d, want 2 from hard preset", cfg.Session.Lives)
	}

	flagDifficulty = "nightmare"
	if _, err := loadConfig(); err == nil || !strings.Contains(err.Error(), "nightmare") {
		t.Errorf("unknown difficulty error = %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/x.log", "/tmp/x.log"},
		{"~/.burst/burst.log", filepath.Join(home, ".burst", "burst.log")},
	}

	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenLogWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "burst.log")

	w, closeFn, err := openLogWriter(path)
	if err != nil {
		t.Fatalf("openLogWriter: %v", err)
	}

	t.Cleanup(func() { flagLogLevel = "info" })
	flagLogLevel = "debug"
	logger, err := newLogger(w)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "k", 1)
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("hello")) || !bytes.Contains(data, []byte("session=")) {
		t.Errorf("log file = %q, want entry with session field", data)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	t.Cleanup(func() { flagLogLevel = "info" })
	flagLogLevel = "loud"

	if _, err := newLogger(&bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown log level")
	}
}

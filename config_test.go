package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil, envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendTerminal || cfg.Players != 2 || cfg.TPS != 60 || cfg.Ticks != 600 || cfg.Mute {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	env := envMap(map[string]string{
		"ARENA_FRONTEND": "headless",
		"ARENA_PLAYERS":  "4",
		"ARENA_MUTE":     "true",
	})
	cfg, err := ParseConfig([]string{"-players", "3", "-ticks", "10"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendHeadless {
		t.Errorf("expected frontend from env, got %s", cfg.Frontend)
	}
	if cfg.Players != 3 {
		t.Errorf("flag should override env, got %d players", cfg.Players)
	}
	if cfg.Ticks != 10 || !cfg.Mute {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := ParseConfig([]string{"-frontend", "vr"}, envMap(nil)); !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("expected ErrUnknownFrontend, got %v", err)
	}
	if _, err := ParseConfig([]string{"-players", "0"}, envMap(nil)); err == nil {
		t.Error("expected error for zero players")
	}
	if _, err := ParseConfig(nil, envMap(map[string]string{"ARENA_TPS": "fast"})); err == nil {
		t.Error("expected error for a non-numeric env value")
	}
	if _, err := ParseConfig([]string{"-bogus"}, envMap(nil)); err == nil {
		t.Error("expected error for an unknown flag")
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ARENA_TEST_PLAYERS=5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("ARENA_TEST_PLAYERS") })
	if err := LoadEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("ARENA_TEST_PLAYERS"); got != "5" {
		t.Errorf("expected 5, got %q", got)
	}
}

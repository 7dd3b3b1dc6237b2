package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"

	"arena/game"
)

const (
	FrontendTerminal = "terminal"
	FrontendDesktop  = "desktop"
	FrontendHeadless = "headless"
)

// ErrUnknownFrontend is returned for a frontend name that is not supported
var ErrUnknownFrontend = errors.New("unknown frontend")

// Config holds the runtime settings
type Config struct {
	Frontend  string
	Players   int
	TPS       int
	Ticks     int
	TracePath string
	LogPath   string
	Mute      bool
}

// LoadEnv loads variables from a .env file. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ParseConfig reads flags from args, taking defaults from the environment
func ParseConfig(args []string, getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}
	envInt := func(key string, def int) (int, error) {
		v := getenv(key)
		if v == "" {
			return def, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("config: %s: %w", key, err)
		}
		return n, nil
	}

	players, err := envInt("ARENA_PLAYERS", 2)
	if err != nil {
		return Config{}, err
	}
	tps, err := envInt("ARENA_TPS", 60)
	if err != nil {
		return Config{}, err
	}
	ticks, err := envInt("ARENA_TICKS", 600)
	if err != nil {
		return Config{}, err
	}
	mute := false
	if v := getenv("ARENA_MUTE"); v != "" {
		if mute, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("config: ARENA_MUTE: %w", err)
		}
	}

	var cfg Config
	fset := flag.NewFlagSet("arena", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.StringVar(&cfg.Frontend, "frontend", env("ARENA_FRONTEND", FrontendTerminal), "terminal, desktop or headless")
	fset.IntVar(&cfg.Players, "players", players, "players spawned at startup")
	fset.IntVar(&cfg.TPS, "tps", tps, "frames per second for the terminal and headless drivers")
	fset.IntVar(&cfg.Ticks, "ticks", ticks, "headless run length in ticks")
	fset.StringVar(&cfg.TracePath, "trace", env("ARENA_TRACE", ""), "headless trace output path (- for stdout)")
	fset.StringVar(&cfg.LogPath, "log", env("ARENA_LOG", ""), "log file path")
	fset.BoolVar(&cfg.Mute, "mute", mute, "disable audio cues")
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the settings are usable
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendTerminal, FrontendDesktop, FrontendHeadless:
	default:
		return fmt.Errorf("config: %w: %q", ErrUnknownFrontend, c.Frontend)
	}
	if c.Players < 1 || c.Players > game.MaxPlayers {
		return fmt.Errorf("config: players must be between 1 and %d, got %d", game.MaxPlayers, c.Players)
	}
	if c.TPS < 1 {
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	if c.Frontend == FrontendHeadless && c.Ticks < 1 {
		return fmt.Errorf("config: ticks must be positive, got %d", c.Ticks)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"arena/audio"
	"arena/desktop"
	"arena/game"
	"arena/terminal"
)

func main() {
	if err := LoadEnv(".env"); err != nil {
		log.Printf("config: %v", err)
	}
	cfg, err := ParseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg Config) error {
	logFile, err := setupLog(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	world := game.NewWorldWithPlayers(cfg.Players)

	if !cfg.Mute && cfg.Frontend != FrontendHeadless {
		cues, err := audio.NewSpeaker()
		if err != nil {
			// Non-fatal, the arena plays fine without sound
			log.Printf("audio: %v", err)
		} else {
			world.Subscribe(cues.Notify)
			defer cues.Stop()
		}
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("arena %s starting with %s frontend, %d players", world.ID, cfg.Frontend, cfg.Players)
	switch cfg.Frontend {
	case FrontendDesktop:
		err = desktop.Run(world)
	case FrontendHeadless:
		err = runHeadless(ctx, cfg, world)
	default:
		err = terminal.Run(ctx, world, cfg.TPS)
	}
	log.Println("Shutting down...")
	return err
}

// setupLog keeps log output off the terminal while tcell owns it
func setupLog(cfg Config) (*os.File, error) {
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("log: open %s: %w", cfg.LogPath, err)
		}
		log.SetOutput(f)
		return f, nil
	}
	if cfg.Frontend == FrontendTerminal {
		log.SetOutput(io.Discard)
	}
	return nil, nil
}

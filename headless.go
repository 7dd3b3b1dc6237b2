package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"arena/game"
	"arena/trace"
)

// runHeadless plays scripted sparring for cfg.Ticks fixed steps as fast as
// possible, optionally recording a trace
func runHeadless(ctx context.Context, cfg Config, w *game.World) error {
	out, err := openTrace(cfg.TracePath)
	if err != nil {
		return err
	}
	rec := trace.NewRecorder(out)
	rec.World = w

	counts := make(map[game.EventKind]int)
	w.Subscribe(func(ev game.Event) { counts[ev.Kind]++ })

	loop := &game.Loop{
		World:    w,
		Clock:    game.FixedClock(1 / float64(cfg.TPS)),
		Input:    &game.ScriptPoller{World: w, Controllers: cfg.Players, Script: game.Sparring},
		Renderer: rec,
	}
	for i := 0; i < cfg.Ticks; i++ {
		if ctx.Err() != nil {
			break
		}
		loop.RunFrame()
	}
	if err := rec.Close(); err != nil {
		return err
	}

	log.Printf("headless: world %s ran %d ticks, %d frames recorded", w.ID, w.Tick(), rec.Frames())
	log.Printf("headless: fired %d, hits %d, intercepted %d, exited %d, respawns %d",
		counts[game.EventFired], counts[game.EventHit], counts[game.EventIntercepted],
		counts[game.EventExited], counts[game.EventRespawned])
	for _, p := range w.Players() {
		log.Printf("headless: player %d damage %s shots %d respawns %d", p.Controller, p.DamageLabel(), p.Shots, p.Respawns)
	}
	return nil
}

func openTrace(path string) (io.Writer, error) {
	switch path {
	case "":
		return io.Discard, nil
	case "-":
		return struct{ io.Writer }{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("headless: create trace: %w", err)
	}
	return f, nil
}

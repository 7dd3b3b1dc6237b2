package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"arena/game"
)

const helpLine = "P1: WASD move, IJKL aim  P2: arrows move, 8462 aim  q: quit"

// Run opens the terminal and plays until ctx is cancelled or a quit key is
// pressed
func Run(ctx context.Context, w *game.World, tps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	defer screen.Fini()
	return RunOn(ctx, screen, w, tps)
}

// RunOn plays on an initialized screen. Input events and frames are handled
// on the calling goroutine so the world has a single owner.
func RunOn(ctx context.Context, screen tcell.Screen, w *game.World, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	sink := NewSink(screen)
	keys := NewKeyboard()
	loop := &game.Loop{World: w, Clock: &game.WallClock{}, Input: keys, Renderer: sink}

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuit(ev) {
					return nil
				}
				keys.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
				sink.Resize()
			}
		case <-ticker.C:
			screen.Clear()
			loop.RunFrame()
			drawHelp(screen)
			screen.Show()
		}
	}
}

func drawHelp(screen tcell.Screen) {
	width, _ := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range []rune(helpLine) {
		if i >= width {
			return
		}
		screen.SetContent(i, 0, r, nil, style)
	}
}

package audio

import (
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"arena/game"
)

func TestToneLengthAndRange(t *testing.T) {
	s, ok := Tone(game.EventFired)
	if !ok {
		t.Fatal("expected a tone for fired events")
	}
	want := sampleRate.N(60 * time.Millisecond)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, more := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][1] < -1 || buf[i][1] > 1 {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i])
			}
		}
		total += n
		if !more {
			break
		}
	}
	if total != want {
		t.Errorf("expected %d samples, got %d", want, total)
	}
}

func TestToneSilentKinds(t *testing.T) {
	if _, ok := Tone(game.EventExited); ok {
		t.Error("exited events should be silent")
	}
}

type playRecorder struct {
	mu      sync.Mutex
	streams []beep.Streamer
}

func (p *playRecorder) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.streams = append(p.streams, s)
}

func (p *playRecorder) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.streams)
}

func TestCuesPlayEvents(t *testing.T) {
	rec := &playRecorder{}
	c := New(rec.play)
	c.Notify(game.Event{Kind: game.EventFired})
	c.Notify(game.Event{Kind: game.EventExited})
	c.Notify(game.Event{Kind: game.EventHit})
	c.Stop()

	if rec.len() != 2 {
		t.Errorf("expected 2 tones, got %d", rec.len())
	}
}

func TestCuesFromWorld(t *testing.T) {
	rec := &playRecorder{}
	c := New(rec.play)
	w := game.NewWorld()
	w.Subscribe(c.Notify)
	p := game.NewPlayer(0, 0, 0)
	p.Charge = 1
	w.Spawn(p)
	w.Step(0.01, game.StaticInput{0: {}}, nil)
	c.Stop()

	if rec.len() != 1 {
		t.Errorf("expected the fire cue, got %d tones", rec.len())
	}
}

func TestCuesStopIdempotent(t *testing.T) {
	c := New(func(beep.Streamer) {})
	c.Stop()
	c.Stop()
	c.Notify(game.Event{Kind: game.EventFired})
}

func TestCuesDropWhenFull(t *testing.T) {
	block := make(chan struct{})
	c := New(func(beep.Streamer) { <-block })
	for i := 0; i < 200; i++ {
		c.Notify(game.Event{Kind: game.EventFired})
	}
	if c.Dropped() == 0 {
		t.Error("expected events to be dropped while the player is blocked")
	}
	close(block)
	c.Stop()
}

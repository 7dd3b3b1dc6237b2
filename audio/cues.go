package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"arena/game"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq float64 // Hz
	dur  time.Duration
}

var tones = map[game.EventKind]tone{
	game.EventFired:       {660, 60 * time.Millisecond},
	game.EventHit:         {220, 120 * time.Millisecond},
	game.EventRespawned:   {110, 250 * time.Millisecond},
	game.EventIntercepted: {880, 40 * time.Millisecond},
}

// Tone returns the cue for an event kind, or false for silent kinds
func Tone(kind game.EventKind) (beep.Streamer, bool) {
	t, ok := tones[kind]
	if !ok {
		return nil, false
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		log.Printf("audio: tone %s: %v", kind, err)
		return nil, false
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.dur), sine),
		Base:     2,
		Volume:   -2,
	}, true
}

// Cues turns game events into short tones on a background goroutine
type Cues struct {
	events  chan game.Event
	stop    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
	play    func(beep.Streamer)
	closer  func()
	dropped atomic.Int64
}

// New starts a cue player that hands every tone to play
func New(play func(beep.Streamer)) *Cues {
	c := &Cues{
		events: make(chan game.Event, 64),
		stop:   make(chan struct{}),
		play:   play,
	}
	c.wg.Add(1)
	go c.run()
	return c
}

// NewSpeaker starts a cue player on the system audio device
func NewSpeaker() (*Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	c := New(func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	})
	c.closer = speaker.Close
	return c, nil
}

// Notify enqueues an event without blocking. Events are dropped when the
// queue is full or the player is stopped. It can be passed to World.Subscribe.
func (c *Cues) Notify(ev game.Event) {
	select {
	case <-c.stop:
		return
	default:
	}
	select {
	case c.events <- ev:
	default:
		c.dropped.Add(1)
	}
}

// Dropped returns how many events were discarded because the queue was full
func (c *Cues) Dropped() int64 {
	return c.dropped.Load()
}

// Stop plays out queued events and shuts the player down
func (c *Cues) Stop() {
	c.once.Do(func() {
		close(c.stop)
		c.wg.Wait()
		if c.closer != nil {
			c.closer()
		}
	})
}

func (c *Cues) run() {
	defer c.wg.Done()
	for {
		select {
		case ev := <-c.events:
			c.cue(ev)
		case <-c.stop:
			for {
				select {
				case ev := <-c.events:
					c.cue(ev)
				default:
					return
				}
			}
		}
	}
}

func (c *Cues) cue(ev game.Event) {
	if s, ok := Tone(ev.Kind); ok {
		c.play(s)
	}
}

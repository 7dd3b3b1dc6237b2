package game

import (
	"context"
	"sync"
	"time"
)

// Clock supplies the seconds elapsed since the previous call
type Clock interface {
	Elapsed() float64
}

// WallClock measures real time. The first call returns 0.
type WallClock struct {
	Now  func() time.Time
	last time.Time
}

// Elapsed implements Clock
func (c *WallClock) Elapsed() float64 {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	t := now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return sanitizeDelta(dt)
}

// FixedClock returns the same step every call
type FixedClock float64

// Elapsed implements Clock
func (c FixedClock) Elapsed() float64 {
	return sanitizeDelta(float64(c))
}

// Frame runs one frame: the arena ring, then one simulation step rendered
// into r. It returns the elapsed time that was simulated.
func Frame(w *World, clock Clock, in InputSource, r Renderer) float64 {
	if r == nil {
		r = Discard
	}
	dt := clock.Elapsed()
	r.BeginFrame()
	r.Circle(ShapeArena, NoController, 0, 0, ArenaRadius)
	w.Step(dt, in, r)
	r.EndFrame()
	return dt
}

// InputPoller refreshes controller readings once per frame
type InputPoller interface {
	Poll() InputSource
}

// Loop drives frames at a fixed rate until stopped
type Loop struct {
	World    *World
	Clock    Clock
	Input    InputPoller
	Renderer Renderer
	Rate     time.Duration

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

// NewLoop creates a loop running tps frames per second on wall time
func NewLoop(w *World, in InputPoller, r Renderer, tps int) *Loop {
	if tps <= 0 {
		tps = 60
	}
	return &Loop{
		World:    w,
		Clock:    &WallClock{},
		Input:    in,
		Renderer: r,
		Rate:     time.Second / time.Duration(tps),
		stop:     make(chan struct{}),
	}
}

// Run drives frames until ctx is cancelled or Stop is called. A loop left by
// cancellation can be run again; one left by Stop cannot.
func (l *Loop) Run(ctx context.Context) {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	if l.stop == nil {
		l.stop = make(chan struct{})
	}
	stop := l.stop
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	rate := l.Rate
	if rate <= 0 {
		rate = time.Second / 60
	}
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.RunFrame()
		case <-ctx.Done():
			return
		case <-stop:
			return
		}
	}
}

// RunFrame polls input and runs a single frame
func (l *Loop) RunFrame() float64 {
	if l.Clock == nil {
		l.Clock = &WallClock{}
	}
	var in InputSource
	if l.Input != nil {
		in = l.Input.Poll()
	}
	return Frame(l.World, l.Clock, in, l.Renderer)
}

// Stop terminates Run. Calling it more than once is safe.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop == nil {
		l.stop = make(chan struct{})
	}
	select {
	case <-l.stop:
	default:
		close(l.stop)
	}
}

package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"arena/game"
)

// grid is an in-memory Cells implementation
type grid struct {
	w, h  int
	cells map[[2]int]rune
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (g *grid) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	g.cells[[2]int{x, y}] = r
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) count(r rune) int {
	n := 0
	for _, c := range g.cells {
		if c == r {
			n++
		}
	}
	return n
}

func TestSinkCenter(t *testing.T) {
	s := NewSink(newGrid(81, 41))
	col, row := s.Cell(0, 0)
	if col != 40 || row != 20 {
		t.Errorf("expected origin at (40,20), got (%d,%d)", col, row)
	}
	// 41 rows fit the arena: 100 units span 20 rows, and columns are doubled
	col, row = s.Cell(100, 0)
	if col != 80 || row != 20 {
		t.Errorf("expected right edge at (80,20), got (%d,%d)", col, row)
	}
	col, row = s.Cell(0, -100)
	if col != 40 || row != 0 {
		t.Errorf("expected top edge at (40,0), got (%d,%d)", col, row)
	}
}

func TestSinkDrawsFrame(t *testing.T) {
	g := newGrid(81, 41)
	s := NewSink(g)
	w := game.NewWorld()
	p := game.NewPlayer(0, 0, 0)
	p.Damage = 7
	w.Spawn(p)
	w.Spawn(game.NewProjectile(1, 50, 0, 0, 0, 1))

	game.Frame(w, game.FixedClock(0.01), nil, s)

	if g.count('.') == 0 {
		t.Error("expected the arena ring")
	}
	if g.count('@') != 1 {
		t.Errorf("expected one player glyph, got %d", g.count('@'))
	}
	if g.count('*') != 1 {
		t.Errorf("expected one projectile glyph, got %d", g.count('*'))
	}
	// label "7" sits 5 units above the player: one row up at this scale
	if r := g.cells[[2]int{40, 19}]; r != '7' {
		t.Errorf("expected damage label at (40,19), got %q", r)
	}
}

func TestSinkClipsOffscreen(t *testing.T) {
	g := newGrid(10, 5)
	s := NewSink(g)
	s.Text(0, 0, 0, "a long label that overflows")
	s.Circle(game.ShapeProjectile, 0, 1000, 1000, 1)
	for k := range g.cells {
		if k[0] < 0 || k[1] < 0 || k[0] >= 10 || k[1] >= 5 {
			t.Fatalf("wrote outside the screen at %v", k)
		}
	}
}

func TestSinkResizeOnBeginFrame(t *testing.T) {
	g := newGrid(81, 41)
	s := NewSink(g)
	g.w, g.h = 161, 81
	s.BeginFrame()
	col, row := s.Cell(0, 0)
	if col != 80 || row != 40 {
		t.Errorf("expected recentered origin (80,40), got (%d,%d)", col, row)
	}
}

func TestStyleFor(t *testing.T) {
	if StyleFor(0) == StyleFor(1) {
		t.Error("controllers 0 and 1 should have different styles")
	}
	if StyleFor(0) != StyleFor(len(controllerColors)) {
		t.Error("colors should wrap around")
	}
}

func TestKeyboardPoll(t *testing.T) {
	now := time.Unix(0, 0)
	k := NewKeyboard()
	k.Now = func() time.Time { return now }

	if in := k.Poll(); len(in.(game.StaticInput)) != 0 {
		t.Error("no controller should be connected before a key press")
	}

	k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'I', tcell.ModNone))
	k.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))

	in := k.Poll()
	a, ok := in.Axes(0)
	if !ok {
		t.Fatal("controller 0 should be connected")
	}
	if a != (game.Axes{1, 0, 0, -1}) {
		t.Errorf("unexpected axes for controller 0: %v", a)
	}
	b, ok := in.Axes(1)
	if !ok || b != (game.Axes{-1, 0, 0, 0}) {
		t.Errorf("unexpected axes for controller 1: %v %v", b, ok)
	}

	now = now.Add(HoldWindow)
	a, ok = k.Poll().Axes(0)
	if !ok {
		t.Fatal("controller should stay connected after release")
	}
	if a != (game.Axes{}) {
		t.Errorf("axes should return to rest after the hold window, got %v", a)
	}
}

func TestKeyboardUnbound(t *testing.T) {
	k := NewKeyboard()
	if k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)) {
		t.Error("z has no binding")
	}
}

func TestIsQuit(t *testing.T) {
	if !IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
	if !IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if IsQuit(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Error("w should not quit")
	}
}

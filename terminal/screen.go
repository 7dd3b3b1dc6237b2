package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"arena/game"
)

// Cells is the subset of tcell.Screen the sink draws through
type Cells interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

var controllerColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorDodgerBlue,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
	tcell.ColorOrange,
	tcell.ColorWhite,
}

// StyleFor returns the style used for a controller's primitives
func StyleFor(controller int) tcell.Style {
	if controller < 0 {
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	return tcell.StyleDefault.Foreground(controllerColors[controller%len(controllerColors)])
}

// Sink draws arena primitives onto terminal cells. A cell is twice as tall
// as it is wide, so the horizontal scale is doubled to keep circles round.
type Sink struct {
	cells  Cells
	width  int
	height int
	scale  float64 // rows per arena unit
	body   [2]int  // cell of the last player drawn
}

// NewSink creates a sink over a screen
func NewSink(cells Cells) *Sink {
	s := &Sink{cells: cells}
	s.Resize()
	return s
}

// Resize refits the arena to the current screen size
func (s *Sink) Resize() {
	s.width, s.height = s.cells.Size()
	rows := float64(s.height-1) / 2
	cols := float64(s.width-1) / 4
	s.scale = math.Min(rows, cols) / game.ArenaRadius
}

// Cell maps an arena point to a screen cell
func (s *Sink) Cell(x, y float64) (int, int) {
	cx := float64(s.width / 2)
	cy := float64(s.height / 2)
	return int(math.Round(cx + x*s.scale*2)), int(math.Round(cy + y*s.scale))
}

func (s *Sink) set(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= s.width || row >= s.height {
		return
	}
	s.cells.SetContent(col, row, r, nil, style)
}

// BeginFrame implements game.Renderer. Clearing and presenting belong to the
// screen owner.
func (s *Sink) BeginFrame() {
	w, h := s.cells.Size()
	if w != s.width || h != s.height {
		s.Resize()
	}
}

// EndFrame implements game.Renderer
func (s *Sink) EndFrame() {}

// Circle implements game.DrawSink
func (s *Sink) Circle(shape game.Shape, controller int, x, y, r float64) {
	style := StyleFor(controller)
	switch shape {
	case game.ShapePlayer:
		col, row := s.Cell(x, y)
		s.body = [2]int{col, row}
		s.set(col, row, '@', style.Bold(true))
		s.outline(x, y, r, 'o', style)
	case game.ShapeChargeMarker:
		col, row := s.Cell(x, y)
		if s.body != ([2]int{col, row}) {
			s.set(col, row, '+', style)
		}
	case game.ShapeProjectile:
		col, row := s.Cell(x, y)
		s.set(col, row, '*', style)
	default:
		s.outline(x, y, r, '.', style)
	}
}

// outline traces a circle with enough samples to close it at this scale.
// Radii that fit inside a single cell are skipped.
func (s *Sink) outline(x, y, r float64, ch rune, style tcell.Style) {
	rows := r * s.scale
	if rows < 1 {
		return
	}
	steps := int(math.Ceil(2 * math.Pi * rows * 2))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col, row := s.Cell(x+r*math.Cos(a), y+r*math.Sin(a))
		s.set(col, row, ch, style)
	}
}

// Text implements game.DrawSink. Text is centered on the point.
func (s *Sink) Text(controller int, x, y float64, text string) {
	col, row := s.Cell(x, y)
	runes := []rune(text)
	col -= len(runes) / 2
	style := StyleFor(controller)
	for i, r := range runes {
		s.set(col+i, row, r, style)
	}
}

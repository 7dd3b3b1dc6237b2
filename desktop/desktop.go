package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arena/game"
	"arena/trace"
)

var (
	background = color.White
	arenaColor = color.Black
	palette    = []color.RGBA{
		{R: 0xe0, G: 0x20, B: 0x20, A: 0xff},
		{R: 0x20, G: 0x60, B: 0xe0, A: 0xff},
		{R: 0x20, G: 0xa0, B: 0x40, A: 0xff},
		{R: 0xc0, G: 0x90, B: 0x00, A: 0xff},
		{R: 0xa0, G: 0x20, B: 0xc0, A: 0xff},
		{R: 0x00, G: 0xa0, B: 0xa0, A: 0xff},
		{R: 0xe0, G: 0x70, B: 0x10, A: 0xff},
		{R: 0x50, G: 0x50, B: 0x50, A: 0xff},
	}
)

// debug font glyph size used to center labels
const glyphW, glyphH = 6, 16

// Game adapts a world to ebiten. Update steps the simulation into a draw
// list; Draw replays the last frame at the window's scale.
type Game struct {
	world *game.World
	pads  *Pads
	clock game.Clock
	list  trace.DrawList
}

// NewGame creates an ebiten game for a world
func NewGame(w *game.World) *Game {
	return &Game{
		world: w,
		pads:  &Pads{Keyboard: true},
		clock: &game.WallClock{},
		list:  trace.DrawList{World: w},
	}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	game.Frame(g.world, g.clock, g.pads.Poll(), &g.list)
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.list.Last().Replay(newView(screen))
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and plays until it is closed or Esc is pressed
func Run(w *game.World) error {
	ebiten.SetWindowSize(800, 800)
	ebiten.SetWindowTitle("arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(NewGame(w)); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// view draws arena coordinates onto a screen image, origin at the center
// and the arena radius fitted to the shorter side
type view struct {
	dst    *ebiten.Image
	cx, cy float64
	scale  float64
}

func newView(dst *ebiten.Image) *view {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	return &view{
		dst:   dst,
		cx:    w / 2,
		cy:    h / 2,
		scale: math.Min(w/2, h/2) / game.ArenaRadius,
	}
}

func (v *view) colorFor(controller int) color.Color {
	if controller < 0 {
		return arenaColor
	}
	return palette[controller%len(palette)]
}

// Circle implements game.DrawSink
func (v *view) Circle(_ game.Shape, controller int, x, y, r float64) {
	vector.StrokeCircle(
		v.dst,
		float32(v.cx+x*v.scale),
		float32(v.cy+y*v.scale),
		float32(r*v.scale),
		1,
		v.colorFor(controller),
		true,
	)
}

// Text implements game.DrawSink
func (v *view) Text(_ int, x, y float64, text string) {
	px := int(v.cx+x*v.scale) - len(text)*glyphW/2
	py := int(v.cy+y*v.scale) - glyphH/2
	ebitenutil.DebugPrintAt(v.dst, text, px, py)
}

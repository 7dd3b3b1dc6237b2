package desktop

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"arena/game"
)

// Pads maps connected gamepads to controller indices in id order. The
// keyboard drives the next free controller index.
type Pads struct {
	ids      []ebiten.GamepadID
	Keyboard bool
}

// Poll implements game.InputPoller. It must be called from ebiten's Update.
func (p *Pads) Poll() game.InputSource {
	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	sort.Slice(p.ids, func(i, j int) bool { return p.ids[i] < p.ids[j] })

	in := make(game.StaticInput, len(p.ids)+1)
	for i, id := range p.ids {
		in[i] = readPad(id)
	}
	if p.Keyboard {
		in[len(p.ids)] = readKeyboard()
	}
	return in
}

func readPad(id ebiten.GamepadID) game.Axes {
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		return game.Axes{
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
		}
	}
	// raw layouts usually put the sticks on the first four axes
	var a game.Axes
	n := ebiten.GamepadAxisCount(id)
	if n > 0 {
		a[0] = ebiten.GamepadAxisValue(id, 0)
	}
	if n > 1 {
		a[1] = ebiten.GamepadAxisValue(id, 1)
	}
	if n > 2 {
		a[2] = ebiten.GamepadAxisValue(id, 2)
	}
	if n > 3 {
		a[3] = ebiten.GamepadAxisValue(id, 3)
	}
	return a
}

func readKeyboard() game.Axes {
	return game.Axes{
		keyAxis(ebiten.KeyA, ebiten.KeyD),
		keyAxis(ebiten.KeyW, ebiten.KeyS),
		keyAxis(ebiten.KeyArrowLeft, ebiten.KeyArrowRight),
		keyAxis(ebiten.KeyArrowUp, ebiten.KeyArrowDown),
	}
}

func keyAxis(neg, pos ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	return v
}

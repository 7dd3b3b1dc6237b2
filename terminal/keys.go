package terminal

import (
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"arena/game"
)

// HoldWindow is how long a key press keeps its axis deflected. Key repeat
// refreshes it while the key is held down.
const HoldWindow = 150 * time.Millisecond

type binding struct {
	controller int
	axis       int
	value      float64
}

var runeBindings = map[rune]binding{
	'a': {0, game.AxisMoveX, -1},
	'd': {0, game.AxisMoveX, 1},
	'w': {0, game.AxisMoveY, -1},
	's': {0, game.AxisMoveY, 1},
	'j': {0, game.AxisAimX, -1},
	'l': {0, game.AxisAimX, 1},
	'i': {0, game.AxisAimY, -1},
	'k': {0, game.AxisAimY, 1},
	'4': {1, game.AxisAimX, -1},
	'6': {1, game.AxisAimX, 1},
	'8': {1, game.AxisAimY, -1},
	'2': {1, game.AxisAimY, 1},
}

var keyBindings = map[tcell.Key]binding{
	tcell.KeyLeft:  {1, game.AxisMoveX, -1},
	tcell.KeyRight: {1, game.AxisMoveX, 1},
	tcell.KeyUp:    {1, game.AxisMoveY, -1},
	tcell.KeyDown:  {1, game.AxisMoveY, 1},
}

type held struct {
	value float64
	until time.Time
}

// Keyboard turns terminal key presses into controller axes
type Keyboard struct {
	Now func() time.Time

	mu        sync.Mutex
	axes      map[int]*[4]held
	connected map[int]bool
}

// NewKeyboard creates an input source with no controllers connected
func NewKeyboard() *Keyboard {
	return &Keyboard{
		axes:      make(map[int]*[4]held),
		connected: make(map[int]bool),
	}
}

func (k *Keyboard) now() time.Time {
	if k.Now != nil {
		return k.Now()
	}
	return time.Now()
}

// HandleKey records a key press. It returns false for keys with no binding.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) bool {
	b, ok := keyBindings[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		b, ok = runeBindings[unicode.ToLower(ev.Rune())]
	}
	if !ok {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	slots, exists := k.axes[b.controller]
	if !exists {
		slots = &[4]held{}
		k.axes[b.controller] = slots
	}
	slots[b.axis] = held{value: b.value, until: k.now().Add(HoldWindow)}
	k.connected[b.controller] = true
	return true
}

// Poll implements game.InputPoller. Each poll snapshots the held axes so
// every entity in the tick reads the same values.
func (k *Keyboard) Poll() game.InputSource {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	in := make(game.StaticInput, len(k.connected))
	for c := range k.connected {
		var a game.Axes
		if slots := k.axes[c]; slots != nil {
			for i, h := range slots {
				if now.Before(h.until) {
					a[i] = h.value
				}
			}
		}
		in[c] = a
	}
	return in
}

// IsQuit reports whether a key event asks to leave
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

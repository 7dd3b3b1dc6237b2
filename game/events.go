package game

// EventKind identifies what happened during a tick
type EventKind uint8

const (
	EventFired       EventKind = iota + 1 // a player launched a projectile
	EventHit                              // a projectile struck an enemy player
	EventRespawned                        // a player left the arena and was reset
	EventExited                           // a projectile left the arena
	EventIntercepted                      // a projectile was destroyed by an enemy projectile
)

func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "fired"
	case EventHit:
		return "hit"
	case EventRespawned:
		return "respawned"
	case EventExited:
		return "exited"
	case EventIntercepted:
		return "intercepted"
	}
	return "unknown"
}

// Event describes one gameplay occurrence. Entity is the subject; Other is
// the counterpart when there is one (the projectile for a hit, the
// interceptor for an interception). Amount carries damage for hits and fires.
type Event struct {
	Kind       EventKind
	Tick       uint64
	Entity     EntityID
	Other      EntityID
	Controller int
	X, Y       float64
	Amount     float64
}

// Listener receives events synchronously from the simulation step. It must
// not block and must not mutate the world.
type Listener func(Event)

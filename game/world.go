package game

import (
	"log"

	"github.com/google/uuid"
)

// World is the registry of live entities for one arena. It is owned by a
// single goroutine; nothing in it is synchronized.
type World struct {
	ID        string
	entities  []Entity
	nextID    EntityID
	tick      uint64
	listeners []Listener
}

// NewWorld creates an empty arena
func NewWorld() *World {
	return &World{ID: uuid.NewString()}
}

// NewWorldWithPlayers creates an arena with n players, controller k spawning
// at (k*SpawnSpacing, k*SpawnSpacing)
func NewWorldWithPlayers(n int) *World {
	w := NewWorld()
	if n > MaxPlayers {
		n = MaxPlayers
	}
	for k := 0; k < n; k++ {
		w.Spawn(NewPlayer(k, float64(k)*SpawnSpacing, float64(k)*SpawnSpacing))
	}
	log.Printf("world %s: spawned %d players", w.ID, n)
	return w
}

// Tick returns the number of completed steps
func (w *World) Tick() uint64 {
	return w.tick
}

// Subscribe registers a listener for gameplay events
func (w *World) Subscribe(l Listener) {
	w.listeners = append(w.listeners, l)
}

func (w *World) emit(ev Event) {
	ev.Tick = w.tick
	for _, l := range w.listeners {
		l(ev)
	}
}

// Spawn registers an entity at the end of the registry and assigns its ID.
// Spawning an already registered entity returns its existing ID.
func (w *World) Spawn(e Entity) EntityID {
	if w.Contains(e) {
		return IDOf(e)
	}
	b := e.body()
	w.nextID++
	b.ID = w.nextID
	b.dead = false
	w.entities = append(w.entities, e)
	return b.ID
}

// Despawn removes an entity by ID. Removing an absent entity is a no-op and
// returns false.
func (w *World) Despawn(id EntityID) bool {
	for i, e := range w.entities {
		if IDOf(e) != id {
			continue
		}
		e.body().dead = true
		copy(w.entities[i:], w.entities[i+1:])
		w.entities[len(w.entities)-1] = nil
		w.entities = w.entities[:len(w.entities)-1]
		return true
	}
	return false
}

// Get returns the live entity with the given ID, or nil
func (w *World) Get(id EntityID) Entity {
	for _, e := range w.entities {
		if IDOf(e) == id {
			return e
		}
	}
	return nil
}

// Contains reports whether an entity is registered in this world
func (w *World) Contains(e Entity) bool {
	if e == nil || e.body().dead {
		return false
	}
	return w.Get(IDOf(e)) == e
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.entities)
}

// Snapshot returns a copy of the live registry in order. Spawns and despawns
// after the call do not change the returned slice.
func (w *World) Snapshot() []Entity {
	out := make([]Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Players returns the live players in registry order
func (w *World) Players() []*Player {
	var out []*Player
	for _, e := range w.entities {
		if p, ok := e.(*Player); ok {
			out = append(out, p)
		}
	}
	return out
}

// Projectiles returns the live projectiles in registry order
func (w *World) Projectiles() []*Projectile {
	var out []*Projectile
	for _, e := range w.entities {
		if p, ok := e.(*Projectile); ok {
			out = append(out, p)
		}
	}
	return out
}

// Player returns the live player for a controller, or nil
func (w *World) Player(controller int) *Player {
	for _, e := range w.entities {
		if p, ok := e.(*Player); ok && p.Controller == controller {
			return p
		}
	}
	return nil
}

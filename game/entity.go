package game

// EntityID is a stable handle assigned when an entity is spawned. IDs are
// never reused within a World.
type EntityID uint64

// Kind tags the entity variant
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// Body is the state shared by every entity variant
type Body struct {
	ID         EntityID
	Controller int
	X, Y       float64
	VX, VY     float64
	Radius     float64
	dead       bool
}

// Pos returns the body center
func (b *Body) Pos() (float64, float64) {
	return b.X, b.Y
}

// Alive reports whether the entity is still registered
func (b *Body) Alive() bool {
	return !b.dead
}

func (b *Body) body() *Body { return b }

// Entity is implemented only by *Player and *Projectile
type Entity interface {
	Kind() Kind
	Advance(dt float64)
	Render(sink DrawSink)
	body() *Body
}

// IDOf returns an entity's handle
func IDOf(e Entity) EntityID {
	return e.body().ID
}

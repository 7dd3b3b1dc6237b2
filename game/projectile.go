package game

// Projectile is a charged shot. Its damage is fixed at launch.
type Projectile struct {
	Body
	damage float64
}

// NewProjectile creates a projectile owned by a controller. Damage is derived
// from the launch speed once and never recomputed.
func NewProjectile(controller int, x, y, vx, vy, radius float64) *Projectile {
	return &Projectile{
		Body: Body{
			Controller: controller,
			X:          x,
			Y:          y,
			VX:         vx,
			VY:         vy,
			Radius:     radius,
		},
		damage: Dist(vx, vy) / SpeedPerDamage,
	}
}

// Kind implements Entity
func (p *Projectile) Kind() Kind { return KindProjectile }

// Damage returns the damage dealt on impact
func (p *Projectile) Damage() float64 {
	return p.damage
}

// Advance moves the projectile one tick
func (p *Projectile) Advance(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// OutOfBounds reports whether the projectile has left the arena
func (p *Projectile) OutOfBounds() bool {
	return OutsideArena(p.X, p.Y)
}

// Render implements Entity
func (p *Projectile) Render(sink DrawSink) {
	sink.Circle(ShapeProjectile, p.Controller, p.X, p.Y, p.Radius)
}

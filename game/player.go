package game

import (
	"math"
	"strconv"
)

// Player is a controller-driven combatant
type Player struct {
	Body
	Angle        float64 // aim angle in radians
	Charge       float64 // fraction of MaxCharge, in [0, 1]
	Damage       float64 // accumulated damage taken since the last respawn
	BulletRadius float64
	Respawns     int
	Shots        int
}

// NewPlayer creates a player for a controller at the given position
func NewPlayer(controller int, x, y float64) *Player {
	return &Player{
		Body: Body{
			Controller: controller,
			X:          x,
			Y:          y,
			Radius:     PlayerRadius,
		},
		BulletRadius: BulletRadius,
	}
}

// Kind implements Entity
func (p *Player) Kind() Kind { return KindPlayer }

// Steer applies one tick of controller input: deadzoned movement scaled down
// by charge, then aiming. Letting go of the aim stick after charging returns
// the projectile to spawn, or nil when the charge was too small to fire.
func (p *Player) Steer(axes Axes, dt float64) *Projectile {
	axes = axes.Clean()
	slow := (ChargeSlowdown - p.Charge) / ChargeSlowdown
	p.X += ApplyDeadzone(axes[AxisMoveX]) * MoveSpeed * dt * slow
	p.Y += ApplyDeadzone(axes[AxisMoveY]) * MoveSpeed * dt * slow

	if Dist(axes[AxisAimY], axes[AxisAimX]) > AimThreshold {
		p.Angle = math.Atan2(axes[AxisAimY], axes[AxisAimX])
		p.Charge = math.Min(p.Charge+dt, MaxCharge)
		return nil
	}
	if p.Charge <= 0 {
		return nil
	}

	var shot *Projectile
	if p.Charge > MinFireCharge {
		shot = NewProjectile(
			p.Controller,
			p.X,
			p.Y,
			math.Cos(p.Angle)*p.Charge*ShotSpeed,
			math.Sin(p.Angle)*p.Charge*ShotSpeed,
			p.BulletRadius,
		)
		p.Shots++
	}
	p.Charge = 0
	return shot
}

// Advance applies momentum, drag and the arena bound
func (p *Player) Advance(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.applyDrag()
	if OutsideArena(p.X, p.Y) {
		p.Respawn()
	}
}

// applyDrag sheds DragPerTick of speed, split across the axes by each axis's
// share of |vx|+|vy|. At or below DragPerTick the player stops dead.
// Both shares come from the pre-drag velocity; |vx+vy| would be zero
// whenever vx == -vy.
func (p *Player) applyDrag() {
	if Dist(p.VX, p.VY) <= DragPerTick {
		p.VX = 0
		p.VY = 0
		return
	}
	sum := math.Abs(p.VX) + math.Abs(p.VY)
	if sum == 0 {
		return
	}
	vx, vy := p.VX, p.VY
	p.VX -= DragPerTick * vx / sum
	p.VY -= DragPerTick * vy / sum
}

// Respawn returns the player to the arena center with no momentum or damage
func (p *Player) Respawn() {
	p.X = 0
	p.Y = 0
	p.VX = 0
	p.VY = 0
	p.Damage = 0
	p.Respawns++
}

// TakeHit absorbs a projectile: its damage is added first, then its velocity
// is applied as knockback scaled by the new damage total.
func (p *Player) TakeHit(proj *Projectile) {
	p.Damage += proj.Damage()
	scale := p.Damage / DamagePerKnockback
	p.VX += proj.VX * scale
	p.VY += proj.VY * scale
}

// MarkerPos returns the center of the charge marker
func (p *Player) MarkerPos() (float64, float64) {
	reach := p.Charge * (p.Radius - p.BulletRadius)
	return p.X + reach*math.Cos(p.Angle), p.Y + reach*math.Sin(p.Angle)
}

// DamageLabel formats accumulated damage the way it is displayed
func (p *Player) DamageLabel() string {
	return strconv.FormatFloat(math.Round(p.Damage), 'f', 0, 64)
}

// Render implements Entity
func (p *Player) Render(sink DrawSink) {
	sink.Circle(ShapePlayer, p.Controller, p.X, p.Y, p.Radius)
	mx, my := p.MarkerPos()
	sink.Circle(ShapeChargeMarker, p.Controller, mx, my, MarkerRadius)
	sink.Text(p.Controller, p.X, p.Y-LabelOffset, p.DamageLabel())
}

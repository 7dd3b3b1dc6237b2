package game

const (
	ArenaRadius        = 100.0 // arena units, centered on the origin
	Deadzone           = 0.2   // analog magnitude treated as zero
	MoveSpeed          = 40.0  // arena units/s at full stick, no charge
	ChargeSlowdown     = 1.2   // movement scales with (ChargeSlowdown - charge) / ChargeSlowdown
	AimThreshold       = 0.7   // aim stick magnitude that counts as aiming
	MinFireCharge      = 0.1   // releases at or below this charge fizzle
	MaxCharge          = 1.0
	ShotSpeed          = -400.0 // launch speed at full charge; negative fires away from the stick
	DragPerTick        = 10.0   // velocity shed per tick while above DragPerTick
	PlayerRadius       = 3.0
	BulletRadius       = 1.0
	SpeedPerDamage     = 10.0  // launch speed per point of projectile damage
	DamagePerKnockback = 100.0 // accumulated damage at which knockback equals projectile velocity
	MarkerRadius       = 1.0
	LabelOffset        = 5.0 // damage label sits this far above the player
	SpawnSpacing       = 10.0
	MaxPlayers         = 8
)

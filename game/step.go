package game

// Step runs one tick. Every entity alive at the start of the tick is advanced
// and rendered in registry order. Spawns and despawns take effect in the live
// registry immediately, so later entities see them; entities despawned before
// their turn are skipped, and entities spawned this tick wait for the next.
//
// A zero dt only renders: nothing reads input or moves.
func (w *World) Step(dt float64, in InputSource, sink DrawSink) {
	dt = sanitizeDelta(dt)
	if sink == nil {
		sink = Discard
	}
	if dt > 0 {
		w.tick++
	}

	for _, e := range w.Snapshot() {
		if !e.body().Alive() {
			continue
		}
		if dt > 0 {
			switch e := e.(type) {
			case *Player:
				w.stepPlayer(e, dt, in)
			case *Projectile:
				w.stepProjectile(e, dt)
			}
		}
		if e.body().Alive() {
			e.Render(sink)
		}
	}
}

func (w *World) stepPlayer(p *Player, dt float64, in InputSource) {
	if in != nil {
		if axes, ok := in.Axes(p.Controller); ok {
			if shot := p.Steer(axes, dt); shot != nil {
				w.Spawn(shot)
				w.emit(Event{
					Kind:       EventFired,
					Entity:     IDOf(shot),
					Other:      p.ID,
					Controller: p.Controller,
					X:          shot.X,
					Y:          shot.Y,
					Amount:     shot.Damage(),
				})
			}
		}
	}

	respawns := p.Respawns
	p.Advance(dt)
	if p.Respawns != respawns {
		w.emit(Event{Kind: EventRespawned, Entity: p.ID, Controller: p.Controller})
	}

	w.resolveHits(p)
}

// resolveHits applies every enemy projectile overlapping the player, in
// registry order, and removes each one that lands.
func (w *World) resolveHits(p *Player) {
	for _, proj := range w.Projectiles() {
		if proj.Controller == p.Controller || !EntitiesOverlap(p, proj) {
			continue
		}
		p.TakeHit(proj)
		w.Despawn(proj.ID)
		w.emit(Event{
			Kind:       EventHit,
			Entity:     p.ID,
			Other:      proj.ID,
			Controller: proj.Controller,
			X:          p.X,
			Y:          p.Y,
			Amount:     proj.Damage(),
		})
	}
}

func (w *World) stepProjectile(proj *Projectile, dt float64) {
	proj.Advance(dt)
	if proj.OutOfBounds() {
		w.Despawn(proj.ID)
		w.emit(Event{Kind: EventExited, Entity: proj.ID, Controller: proj.Controller, X: proj.X, Y: proj.Y})
		return
	}

	for _, other := range w.Projectiles() {
		if other == proj || other.Controller == proj.Controller || !EntitiesOverlap(proj, other) {
			continue
		}
		w.Despawn(proj.ID)
		w.emit(Event{
			Kind:       EventIntercepted,
			Entity:     proj.ID,
			Other:      other.ID,
			Controller: proj.Controller,
			X:          proj.X,
			Y:          proj.Y,
		})
		return
	}
}

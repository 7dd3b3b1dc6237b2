package game

import "math"

// Script produces controller axes for a given tick
type Script func(tick uint64, controller int) Axes

// ScriptPoller feeds scripted axes for a fixed set of controllers
type ScriptPoller struct {
	World       *World
	Controllers int
	Script      Script
}

// Poll implements InputPoller. Readings are for the tick about to run.
func (s *ScriptPoller) Poll() InputSource {
	in := make(StaticInput, s.Controllers)
	next := s.World.Tick() + 1
	for c := 0; c < s.Controllers; c++ {
		in[c] = s.Script(next, c)
	}
	return in
}

// Sparring circles each controller around the arena and fires a charged
// shot toward the center every two seconds at 60 ticks per second.
func Sparring(tick uint64, controller int) Axes {
	const period = 120
	phase := float64(tick)/60 + float64(controller)*math.Pi
	a := Axes{math.Cos(phase) * 0.6, math.Sin(phase) * 0.6}
	if (tick+uint64(controller)*period/2)%period < period*3/4 {
		// aim outward so the shot flies back across the arena
		a[AxisAimX] = math.Cos(phase)
		a[AxisAimY] = math.Sin(phase)
	}
	return a
}

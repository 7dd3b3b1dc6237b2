package game

import "math"

// Axis indices into Axes
const (
	AxisMoveX = 0
	AxisMoveY = 1
	AxisAimX  = 2
	AxisAimY  = 3
)

// Axes holds one controller's normalized analog values in [-1, 1]:
// two movement axes followed by two aim axes.
type Axes [4]float64

// InputSource supplies per-controller axes. ok is false when no device is
// connected at that controller index.
type InputSource interface {
	Axes(controller int) (axes Axes, ok bool)
}

// StaticInput is an InputSource backed by a fixed map. Frontends fill one per
// tick so every entity in that tick sees the same readings.
type StaticInput map[int]Axes

// Axes implements InputSource
func (s StaticInput) Axes(controller int) (Axes, bool) {
	a, ok := s[controller]
	return a, ok
}

// Clean clamps every axis to [-1, 1] and maps NaN to 0
func (a Axes) Clean() Axes {
	for i, v := range a {
		if math.IsNaN(v) {
			a[i] = 0
			continue
		}
		a[i] = Clamp(v, -1, 1)
	}
	return a
}

package game

import "math"

// ApplyDeadzone zeroes analog values whose magnitude is below Deadzone
func ApplyDeadzone(v float64) float64 {
	if math.IsNaN(v) || math.Abs(v) < Deadzone {
		return 0
	}
	return v
}

// Dist returns the length of the vector (dx, dy)
func Dist(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance returns the distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return Dist(x2-x1, y2-y1)
}

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// OutsideArena reports whether a point lies beyond the arena bound
func OutsideArena(x, y float64) bool {
	return Dist(x, y) > ArenaRadius
}

// sanitizeDelta turns negative or NaN elapsed times into 0
func sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}

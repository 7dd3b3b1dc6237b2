package game

// Overlaps reports whether two circles intersect. Touching circles do not
// overlap: the center distance must be strictly less than the radius sum.
func Overlaps(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// EntitiesOverlap reports whether the bodies of two entities intersect
func EntitiesOverlap(a, b Entity) bool {
	ba, bb := a.body(), b.body()
	ax, ay := ba.Pos()
	bx, by := bb.Pos()
	return Overlaps(ax, ay, ba.Radius, bx, by, bb.Radius)
}

package game

// Shape tells a draw sink what a circle represents so it can style it
type Shape uint8

const (
	ShapeArena Shape = iota
	ShapePlayer
	ShapeChargeMarker
	ShapeProjectile
)

// NoController tags primitives that belong to no controller (the arena ring)
const NoController = -1

func (s Shape) String() string {
	switch s {
	case ShapeArena:
		return "arena"
	case ShapePlayer:
		return "player"
	case ShapeChargeMarker:
		return "marker"
	case ShapeProjectile:
		return "projectile"
	}
	return "unknown"
}

// DrawSink consumes drawing primitives in arena coordinates. Circles are full
// outlines; the sink picks its own angular units for tracing them.
type DrawSink interface {
	Circle(shape Shape, controller int, x, y, radius float64)
	Text(controller int, x, y float64, text string)
}

// Renderer is a DrawSink with frame boundaries
type Renderer interface {
	DrawSink
	BeginFrame()
	EndFrame()
}

type nopSink struct{}

func (nopSink) Circle(Shape, int, float64, float64, float64) {}
func (nopSink) Text(int, float64, float64, string) {}
func (nopSink) BeginFrame() {}
func (nopSink) EndFrame() {}

// Discard is a Renderer that draws nothing
var Discard Renderer = nopSink{}

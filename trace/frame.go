package trace

import "arena/game"

// Circle is a recorded circle primitive
type Circle struct {
	Shape      game.Shape `msgpack:"s"`
	Controller int        `msgpack:"c"`
	X          float64    `msgpack:"x"`
	Y          float64    `msgpack:"y"`
	R          float64    `msgpack:"r"`
}

// Label is a recorded text primitive
type Label struct {
	Controller int     `msgpack:"c"`
	X          float64 `msgpack:"x"`
	Y          float64 `msgpack:"y"`
	Text       string  `msgpack:"t"`
}

// Frame is everything drawn between BeginFrame and EndFrame
type Frame struct {
	Seq     uint64   `msgpack:"n"`
	Tick    uint64   `msgpack:"tick"`
	Circles []Circle `msgpack:"c"`
	Labels  []Label  `msgpack:"l"`
}

// Replay draws a recorded frame onto a sink, circles first
func (f Frame) Replay(sink game.DrawSink) {
	for _, c := range f.Circles {
		sink.Circle(c.Shape, c.Controller, c.X, c.Y, c.R)
	}
	for _, l := range f.Labels {
		sink.Text(l.Controller, l.X, l.Y, l.Text)
	}
}

// DrawList is a game.Renderer that keeps the last completed frame in memory
type DrawList struct {
	World *game.World // optional; stamps frames with the world tick

	cur  Frame
	last Frame
	seq  uint64
}

// BeginFrame implements game.Renderer
func (d *DrawList) BeginFrame() {
	d.seq++
	d.cur = Frame{Seq: d.seq}
}

// Circle implements game.DrawSink
func (d *DrawList) Circle(shape game.Shape, controller int, x, y, r float64) {
	d.cur.Circles = append(d.cur.Circles, Circle{Shape: shape, Controller: controller, X: x, Y: y, R: r})
}

// Text implements game.DrawSink
func (d *DrawList) Text(controller int, x, y float64, text string) {
	d.cur.Labels = append(d.cur.Labels, Label{Controller: controller, X: x, Y: y, Text: text})
}

// EndFrame implements game.Renderer
func (d *DrawList) EndFrame() {
	if d.World != nil {
		d.cur.Tick = d.World.Tick()
	}
	d.last = d.cur
	d.cur = Frame{}
}

// Last returns the most recently completed frame
func (d *DrawList) Last() Frame {
	return d.last
}

// ABOUTME: PointerSensor abstracts drop-zone geometry down to two queries.
// ABOUTME: RectSensor is the axis-aligned implementation used by the demo layers and tests.
package engine

// PointerSensor answers whether the pointer is over a container's drop zone and
// how high that zone sits in the stacking order. All geometry stays outside the
// engine; drop resolution only ever sees these two answers.
type PointerSensor interface {
	PointerInside() bool
	LayerIndex() int
}

// RectSensor is a rectangular drop zone with a movable virtual pointer.
type RectSensor struct {
	X, Y  float64
	W, H  float64
	Layer int

	px, py float64
}

var _ PointerSensor = (*RectSensor)(nil)

// NewRectSensor creates a sensor covering the rectangle at (x, y) with the
// given size on the given layer. The pointer starts outside at the origin
// unless the rectangle contains it.
func NewRectSensor(x, y, w, h float64, layer int) *RectSensor {
	return &RectSensor{X: x, Y: y, W: w, H: h, Layer: layer}
}

// SetPointer moves the virtual pointer.
func (s *RectSensor) SetPointer(x, y float64) {
	s.px, s.py = x, y
}

// PointerInside reports whether the pointer is within the rectangle. The top
// and left edges are inclusive, bottom and right exclusive, so adjacent zones
// never both claim a point.
func (s *RectSensor) PointerInside() bool {
	return s.px >= s.X && s.px < s.X+s.W && s.py >= s.Y && s.py < s.Y+s.H
}

// LayerIndex reports the zone's stacking layer.
func (s *RectSensor) LayerIndex() int { return s.Layer }

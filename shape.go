package fotoprint

import "github.com/google/uuid"

// Shape is a drawing object placed on the canvas. Every variant renders
// itself and answers point-in-shape queries; the anchor returned by Position
// is variant specific (top-left for rectangles and pictures, centre for ovals
// and composites, baseline origin for text).
type Shape interface {
	ID() uuid.UUID
	Kind() Kind

	Draw(s Surface)
	HitTest(x, y float64) bool

	Position() Vec2
	SetPosition(x, y float64)

	Color() Color
	ChangeColor(c Color)

	Scale() float64
	ChangeScale(scale float64)

	// Rotation is stored for callers but never applied to geometry.
	Rotation() float64
	ChangeRotation(degrees float64)
}

// object holds the state every shape shares. Concrete shapes embed it and
// override the mutators they need to forward to children.
type object struct {
	id       uuid.UUID
	kind     Kind
	pos      Vec2
	color    Color
	scale    float64
	rotation float64
}

func newObject(kind Kind, x, y float64, c Color, scale float64) object {
	return object{
		id:    uuid.New(),
		kind:  kind,
		pos:   Vec2{x, y},
		color: c,
		scale: scale,
	}
}

func (o *object) ID() uuid.UUID            { return o.id }
func (o *object) Kind() Kind               { return o.kind }
func (o *object) Position() Vec2           { return o.pos }
func (o *object) SetPosition(x, y float64) { o.pos = Vec2{x, y} }
func (o *object) Color() Color             { return o.color }
func (o *object) ChangeColor(c Color)      { o.color = c }
func (o *object) Scale() float64           { return o.scale }
func (o *object) ChangeScale(s float64)    { o.scale = s }
func (o *object) Rotation() float64        { return o.rotation }

func (o *object) ChangeRotation(degrees float64) { o.rotation = degrees }

// sqDist returns the squared distance between two points.
func sqDist(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

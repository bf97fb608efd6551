package fotoprint

import (
	"math"

	"github.com/gogpu/gg"
)

// triangleTolerance is the slack, in square pixels, allowed when comparing
// sub-triangle areas against the whole. Points on an edge count as inside.
const triangleTolerance = 0.1

// --- Rect ---

// Rect is a filled axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	object
	w, h float64
}

// NewRect creates a rectangle of w×h unscaled pixels.
func NewRect(x, y, w, h float64, c Color, scale float64) *Rect {
	return &Rect{object: newObject(KindRect, x, y, c, scale), w: w, h: h}
}

// Size returns the unscaled width and height.
func (r *Rect) Size() (w, h float64) { return r.w, r.h }

// Bounds returns the scaled box the rectangle covers.
func (r *Rect) Bounds() Bounds {
	return Bounds{r.pos.X, r.pos.Y, r.w * r.scale, r.h * r.scale}
}

func (r *Rect) Draw(s Surface) {
	b := r.Bounds()
	s.FillRect(b.X, b.Y, b.Width, b.Height, r.color)
}

func (r *Rect) HitTest(x, y float64) bool {
	return r.Bounds().Contains(x, y)
}

// CloneAt returns an independent copy anchored at (x, y).
func (r *Rect) CloneAt(x, y float64) Shape {
	c := NewRect(x, y, r.w, r.h, r.color, r.scale)
	c.rotation = r.rotation
	return c
}

// --- Oval ---

// Oval is a filled ellipse anchored at its centre. hor and ver stretch a
// circle of radius r along each axis.
type Oval struct {
	object
	r        float64
	hor, ver float64
}

// NewOval creates an ellipse. hor == ver == 1 gives a circle.
func NewOval(x, y, r, hor, ver float64, c Color, scale float64) *Oval {
	return &Oval{object: newObject(KindOval, x, y, c, scale), r: r, hor: hor, ver: ver}
}

// Radius returns the unscaled radius.
func (o *Oval) Radius() float64 { return o.r }

// Stretch returns the horizontal and vertical stretch factors.
func (o *Oval) Stretch() (hor, ver float64) { return o.hor, o.ver }

func (o *Oval) Draw(s Surface) {
	r := o.r * o.scale
	s.FillEllipse(o.pos.X, o.pos.Y, r*math.Abs(o.hor), r*math.Abs(o.ver), o.color)
}

// HitTest maps the point into the unstretched frame and compares against the
// scaled radius.
func (o *Oval) HitTest(x, y float64) bool {
	ux := (x - o.pos.X) / o.hor
	uy := (y - o.pos.Y) / o.ver
	return sqDist(0, 0, ux, uy) <= o.r*o.r*o.scale*o.scale
}

// CloneAt returns an independent copy anchored at (x, y).
func (o *Oval) CloneAt(x, y float64) Shape {
	c := NewOval(x, y, o.r, o.hor, o.ver, o.color, o.scale)
	c.rotation = o.rotation
	return c
}

// --- Triangle ---

// Triangle is a right triangle whose right angle sits on the anchor. The
// other vertices are height below and base to the right; negative values
// flip the triangle to the other side.
type Triangle struct {
	object
	height, base float64
}

// NewTriangle creates a right triangle.
func NewTriangle(x, y, height, base float64, c Color, scale float64) *Triangle {
	return &Triangle{object: newObject(KindTriangle, x, y, c, scale), height: height, base: base}
}

// Legs returns the unscaled signed height and base.
func (t *Triangle) Legs() (height, base float64) { return t.height, t.base }

// Vertices returns the three scaled corners, right angle first.
func (t *Triangle) Vertices() [3]Vec2 {
	return [3]Vec2{
		t.pos,
		{t.pos.X, t.pos.Y + t.height*t.scale},
		{t.pos.X + t.base*t.scale, t.pos.Y},
	}
}

func (t *Triangle) Draw(s Surface) {
	v := t.Vertices()
	p := gg.NewPath()
	p.MoveTo(v[0].X, v[0].Y)
	p.LineTo(v[1].X, v[1].Y)
	p.LineTo(v[2].X, v[2].Y)
	p.Close()
	s.FillPath(p, t.color)
}

// HitTest uses the area method: the point is inside when the three triangles
// it forms with each edge add up to the whole.
func (t *Triangle) HitTest(x, y float64) bool {
	v := t.Vertices()
	total := triangleArea(v[0], v[1], v[2])
	p := Vec2{x, y}
	sum := triangleArea(p, v[1], v[2]) +
		triangleArea(v[0], p, v[2]) +
		triangleArea(v[0], v[1], p)
	return total+triangleTolerance >= sum && total-triangleTolerance <= sum
}

// CloneAt returns an independent copy anchored at (x, y).
func (t *Triangle) CloneAt(x, y float64) Shape {
	c := NewTriangle(x, y, t.height, t.base, t.color, t.scale)
	c.rotation = t.rotation
	return c
}

func triangleArea(a, b, c Vec2) float64 {
	return math.Abs((a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)) / 2)
}

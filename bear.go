package fotoprint

import (
	"math"

	"github.com/gogpu/gg"
)

// Bear is a bear face built from ovals, anchored at the centre of the face.
// Only the ears and face take the body colour; eyes, nose, and highlights
// keep their fixed colours.
type Bear struct {
	object
	r float64

	leftEar, leftEarCenter   *Oval
	rightEar, rightEarCenter *Oval
	face                     *Oval
	leftEye, leftEyeShine    *Oval
	rightEye, rightEyeShine  *Oval
	nose, noseShine          *Oval
}

// NewBear creates a bear face whose head has unscaled radius r.
func NewBear(x, y, r float64, c Color, scale float64) *Bear {
	b := &Bear{
		object:         newObject(KindBear, x, y, c, scale),
		r:              r,
		leftEar:        NewOval(0, 0, r/2, 1, 1, c, scale),
		leftEarCenter:  NewOval(0, 0, r/4.2, 1, 1, ColorBlack, scale),
		rightEar:       NewOval(0, 0, r/2, 1, 1, c, scale),
		rightEarCenter: NewOval(0, 0, r/4.2, 1, 1, ColorBlack, scale),
		face:           NewOval(0, 0, r, 1.2, 1, c, scale),
		leftEye:        NewOval(0, 0, r/7, 1, 1, ColorBlack, scale),
		leftEyeShine:   NewOval(0, 0, r/25, 1, 1, ColorWhite, scale),
		rightEye:       NewOval(0, 0, r/7, 1, 1, ColorBlack, scale),
		rightEyeShine:  NewOval(0, 0, r/25, 1, 1, ColorWhite, scale),
		nose:           NewOval(0, 0, r/5, 1.5, 1, ColorBlack, scale),
		noseShine:      NewOval(0, 0, r/18, 1, 1, ColorWhite, scale),
	}
	b.SetPosition(x, y)
	return b
}

// Radius returns the unscaled head radius.
func (b *Bear) Radius() float64 { return b.r }

// parts lists the children in drawing order.
func (b *Bear) parts() []*Oval {
	return []*Oval{
		b.leftEar, b.leftEarCenter,
		b.rightEar, b.rightEarCenter,
		b.face,
		b.leftEye, b.leftEyeShine,
		b.rightEye, b.rightEyeShine,
		b.nose, b.noseShine,
	}
}

func (b *Bear) SetPosition(x, y float64) {
	b.pos = Vec2{x, y}
	r := b.r * b.scale

	b.leftEar.SetPosition(x-r/1.2, y-r/1.4)
	b.leftEarCenter.SetPosition(x-r/1.2, y-r/1.4)
	b.rightEar.SetPosition(x+r/1.2, y-r/1.4)
	b.rightEarCenter.SetPosition(x+r/1.2, y-r/1.4)
	b.face.SetPosition(x, y)
	b.leftEye.SetPosition(x-r/2.5, y-r/4.9)
	b.leftEyeShine.SetPosition(x-r/2, y-r/3.9)
	b.rightEye.SetPosition(x+r/2.5, y-r/4.9)
	b.rightEyeShine.SetPosition(x+r/3, y-r/3.9)
	b.nose.SetPosition(x, y+r/10)
	b.noseShine.SetPosition(x-r/6, y+1)
}

func (b *Bear) ChangeScale(scale float64) {
	b.scale = scale
	for _, o := range b.parts() {
		o.ChangeScale(scale)
	}
	b.SetPosition(b.pos.X, b.pos.Y)
}

func (b *Bear) ChangeColor(c Color) {
	b.color = c
	b.leftEar.ChangeColor(c)
	b.rightEar.ChangeColor(c)
	b.face.ChangeColor(c)
}

func (b *Bear) Draw(s Surface) {
	for _, o := range b.parts() {
		o.Draw(s)
	}

	// Mouth: two half circles under the nose.
	r := b.r * b.scale
	mr := r / 4
	for _, cx := range []float64{b.pos.X - r/4.5, b.pos.X + r/4.5} {
		cy := b.pos.Y + r/4.5
		p := gg.NewPath()
		p.MoveTo(cx+mr, cy)
		arcTo(p, cx, cy, mr, 0, math.Pi, false)
		s.StrokePath(p, ColorBlack, 1)
	}
}

// HitTest only counts the ears and the face.
func (b *Bear) HitTest(x, y float64) bool {
	return b.leftEar.HitTest(x, y) || b.face.HitTest(x, y) || b.rightEar.HitTest(x, y)
}

// CloneAt returns an independent copy anchored at (x, y).
func (b *Bear) CloneAt(x, y float64) Shape {
	c := NewBear(x, y, b.r, b.color, b.scale)
	c.rotation = b.rotation
	return c
}

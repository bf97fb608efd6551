package fotoprint

import (
	"math"

	"github.com/gogpu/gg"
)

// heartAngle is where the side lines leave the lobes.
const heartAngle = 0.25 * math.Pi

// Heart is a filled heart anchored at the cleft between its two lobes. The
// lobes are circles of radius width/4 and the tip sits 0.7*width below the
// anchor.
type Heart struct {
	object
	h   float64
	drx float64
}

// NewHeart creates a heart of the given unscaled width.
func NewHeart(x, y, width float64, c Color, scale float64) *Heart {
	return &Heart{
		object: newObject(KindHeart, x, y, c, scale),
		h:      width * 0.7,
		drx:    width / 4,
	}
}

// Width returns the unscaled width.
func (h *Heart) Width() float64 { return h.drx * 4 }

func (h *Heart) Draw(s Surface) {
	r := h.drx * h.scale
	px, py := h.pos.X, h.pos.Y
	left := px - r
	right := px + r
	cx := right + r*math.Cos(heartAngle)
	cy := py + r*math.Sin(heartAngle)

	p := gg.NewPath()
	p.MoveTo(px, py)
	arcTo(p, left, py, r, 0, math.Pi-heartAngle, true)
	p.LineTo(px, py+h.h*h.scale)
	p.LineTo(cx, cy)
	arcTo(p, right, py, r, heartAngle, math.Pi, true)
	p.Close()
	s.FillPath(p, h.color)
}

// HitTest checks the bounding box, then the two lobes, then the wedge below
// the anchor bounded by the lines running into the tip.
func (h *Heart) HitTest(x, y float64) bool {
	r := h.drx * h.scale
	height := h.h * h.scale
	px, py := h.pos.X, h.pos.Y

	box := Bounds{px - 2*r, py - r, 4 * r, r + height}
	if !box.Contains(x, y) {
		return false
	}
	if sqDist(x, y, px-r, py) < r*r {
		return true
	}
	if sqDist(x, y, px+r, py) < r*r {
		return true
	}
	if y <= py {
		return false
	}

	tipX, tipY := px, py+height
	m := height / (2 * r)
	if x > px {
		m = -m
	}
	return y < m*(x-tipX)+tipY
}

// CloneAt returns an independent copy anchored at (x, y).
func (h *Heart) CloneAt(x, y float64) Shape {
	c := NewHeart(x, y, h.Width(), h.color, h.scale)
	c.rotation = h.rotation
	return c
}

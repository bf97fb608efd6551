package fotoprint

import (
	"math"

	"github.com/gogpu/gg"
)

// ghostHeadThreshold is the normalised ellipse value under which a point
// counts as inside the rounded head.
const ghostHeadThreshold = 1.1

// Ghost is a ghost anchored at the centre of its body. The rounded head is
// drawn directly as two quadratic halves; the wavy hem is six triangles.
type Ghost struct {
	object
	width, height float64

	hem [6]*Triangle

	leftEye, rightEye   *Oval
	leftIris, rightIris *Oval
}

// NewGhost creates a ghost of the given unscaled width. Its height is half
// the width.
func NewGhost(x, y, width float64, c Color, scale float64) *Ghost {
	height := width / 2
	th := height / 2
	g := &Ghost{
		object: newObject(KindGhost, x, y, c, scale),
		width:  width,
		height: height,
		hem: [6]*Triangle{
			NewTriangle(0, 0, th, width/10, c, scale),
			NewTriangle(0, 0, th, -2*width/10, c, scale),
			NewTriangle(0, 0, th, 2*width/10, c, scale),
			NewTriangle(0, 0, th, -width/10, c, scale),
			NewTriangle(0, 0, th, -2*width/10, c, scale),
			NewTriangle(0, 0, th, 2*width/10, c, scale),
		},
		leftEye:   NewOval(0, 0, width/8.5, 1, 1, ColorWhite, scale),
		rightEye:  NewOval(0, 0, width/8.5, 1, 1, ColorWhite, scale),
		leftIris:  NewOval(0, 0, width/23, 1, 1, ColorBlack, scale),
		rightIris: NewOval(0, 0, width/23, 1, 1, ColorBlack, scale),
	}
	g.SetPosition(x, y)
	return g
}

// Width returns the unscaled width.
func (g *Ghost) Width() float64 { return g.width }

func (g *Ghost) eyes() []*Oval {
	return []*Oval{g.leftEye, g.rightEye, g.leftIris, g.rightIris}
}

func (g *Ghost) SetPosition(x, y float64) {
	g.pos = Vec2{x, y}
	w := g.width * g.scale
	h := g.height * g.scale
	hemY := y + w/4.2

	g.hem[0].SetPosition(x-w/2, hemY)
	g.hem[1].SetPosition(x-w/2+3*w/10+0.3, hemY)
	g.hem[2].SetPosition(x-w/2+3*w/10, hemY)
	g.hem[3].SetPosition(x+w/2, hemY)
	g.hem[4].SetPosition(x+w/2-3*w/10, hemY)
	g.hem[5].SetPosition(x+w/2-3*w/10-0.6, hemY)

	g.leftEye.SetPosition(x-w/4, y+w/30)
	g.rightEye.SetPosition(x+w/4, y+w/30)
	g.leftIris.SetPosition(x-w/3.5, y+h/4.5)
	g.rightIris.SetPosition(x+w/4.6, y+h/4.5)
}

func (g *Ghost) ChangeScale(scale float64) {
	g.scale = scale
	for _, t := range g.hem {
		t.ChangeScale(scale)
	}
	for _, o := range g.eyes() {
		o.ChangeScale(scale)
	}
	g.SetPosition(g.pos.X, g.pos.Y)
}

// ChangeColor recolours the head and the hem. The eyes keep their colours.
func (g *Ghost) ChangeColor(c Color) {
	g.color = c
	for _, t := range g.hem {
		t.ChangeColor(c)
	}
}

func (g *Ghost) Draw(s Surface) {
	w := g.width * g.scale
	h := g.height * g.scale
	px, py := g.pos.X, g.pos.Y

	left := gg.NewPath()
	left.MoveTo(px-w/2, py+w/4.1)
	left.LineTo(px-w/2, py)
	left.QuadraticTo(px-w/2, py-h, px+0.5, py-h)
	left.LineTo(px+0.5, py+w/4)
	left.Close()
	s.FillPath(left, g.color)

	right := gg.NewPath()
	right.MoveTo(px+w/2, py+w/4.1)
	right.LineTo(px+w/2, py)
	right.QuadraticTo(px+w/2, py-h, px, py-h)
	right.LineTo(px, py+w/4)
	right.Close()
	s.FillPath(right, g.color)

	for _, t := range g.hem {
		t.Draw(s)
	}
	for _, o := range g.eyes() {
		o.Draw(s)
	}
}

// HitTest accepts the hem triangles, a wide band across the body, a narrow
// column up the middle, and the elliptical head.
func (g *Ghost) HitTest(x, y float64) bool {
	for _, t := range g.hem {
		if t.HitTest(x, y) {
			return true
		}
	}

	w := g.width * g.scale
	h := g.height * g.scale
	px, py := g.pos.X, g.pos.Y

	band := x >= px-w/2 && x <= px+w/2 &&
		y >= py+w/30-w/8 && y <= py+w/4.1
	if band {
		return true
	}

	headTop, headBottom := py-h, py-h/4.1
	column := x >= px-w/4+w/10 && x <= px+w/4-w/10 &&
		y >= headTop && y <= headBottom
	if column {
		return true
	}

	if y < headTop || y > headBottom {
		return false
	}
	a, b := w/2, h
	dx := math.Abs(x - px)
	dy := math.Abs(y - py)
	return dx*dx/(a*a)+dy*dy/(b*b) <= ghostHeadThreshold
}

// CloneAt returns an independent copy anchored at (x, y).
func (g *Ghost) CloneAt(x, y float64) Shape {
	c := NewGhost(x, y, g.width, g.color, g.scale)
	c.rotation = g.rotation
	return c
}

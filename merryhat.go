package fotoprint

// hatShift pulls every hat part left so the cone sits over the anchor.
const hatShift = 25

// hatFoldDarken is how much darker, in percent, the folded tip is drawn.
const hatFoldDarken = -20

// MerryHat is a christmas hat: a two-triangle cone with a folded tip and a
// bobble, over a cream brim with round ends.
type MerryHat struct {
	object
	size float64

	topFold             *Triangle
	topBall             *Oval
	cone, cone2         *Triangle
	brim                *Rect
	leftCuff, rightCuff *Oval
}

// NewMerryHat creates a hat of the given unscaled size.
func NewMerryHat(x, y, size float64, c Color, scale float64) *MerryHat {
	m := &MerryHat{
		object:    newObject(KindMerryHat, x, y, c, scale),
		size:      size,
		topFold:   NewTriangle(0, 0, 0.9-size/6, size/4+size/4, c.Adjust(hatFoldDarken), scale),
		topBall:   NewOval(0, 0, size/4/2, 1, 1, ColorCream, scale),
		cone:      NewTriangle(0, 0, -size/1.25, -size/3, c, scale),
		cone2:     NewTriangle(0, 0, -size/1.25, size/3, c, scale),
		brim:      NewRect(0, 0, size/1.5, size/5, ColorCream, scale),
		leftCuff:  NewOval(0, 0, size/5/2, 1, 1, ColorCream, scale),
		rightCuff: NewOval(0, 0, size/5/2, 1, 1, ColorCream, scale),
	}
	m.SetPosition(x, y)
	return m
}

// Size returns the unscaled size.
func (m *MerryHat) Size() float64 { return m.size }

func (m *MerryHat) parts() []Shape {
	return []Shape{m.topFold, m.topBall, m.cone, m.cone2, m.brim, m.leftCuff, m.rightCuff}
}

// SetPosition lays the parts out around (x, y). The vertical offset of the
// cone base does not follow the scale.
func (m *MerryHat) SetPosition(x, y float64) {
	m.pos = Vec2{x, y}
	s := m.size * m.scale
	base := y + m.size/4.2
	coneH := s / 1.25
	tipY := coneH/5 + base - coneH
	cx := x + s/2 - hatShift

	m.topFold.SetPosition(cx, tipY)
	m.topBall.SetPosition(cx+s/4+s/4, tipY)
	m.cone.SetPosition(cx, base)
	m.cone2.SetPosition(cx-1, base)

	brimH := s / 5
	brimX := cx - s/3
	m.brim.SetPosition(brimX, 0.8*brimH+base-brimH/2)
	m.leftCuff.SetPosition(brimX, 0.8*brimH+base)
	m.rightCuff.SetPosition(brimX+s/1.5, 0.8*brimH+base)
}

func (m *MerryHat) ChangeScale(scale float64) {
	m.scale = scale
	for _, p := range m.parts() {
		p.ChangeScale(scale)
	}
	m.SetPosition(m.pos.X, m.pos.Y)
}

// ChangeColor recolours the cone and darkens the folded tip to match.
func (m *MerryHat) ChangeColor(c Color) {
	m.color = c
	m.topFold.ChangeColor(c.Adjust(hatFoldDarken))
	m.cone.ChangeColor(c)
	m.cone2.ChangeColor(c)
}

func (m *MerryHat) Draw(s Surface) {
	for _, p := range m.parts() {
		p.Draw(s)
	}
}

func (m *MerryHat) HitTest(x, y float64) bool {
	for _, p := range m.parts() {
		if p.HitTest(x, y) {
			return true
		}
	}
	return false
}

// CloneAt returns an independent copy anchored at (x, y).
func (m *MerryHat) CloneAt(x, y float64) Shape {
	c := NewMerryHat(x, y, m.size, m.color, m.scale)
	c.rotation = m.rotation
	return c
}

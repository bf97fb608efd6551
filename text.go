package fotoprint

// Text is a single line of text anchored at the left end of its baseline.
// Its width is only known after it has been drawn once, since measuring
// needs a surface.
type Text struct {
	object
	content string
	height  float64
	width   float64
}

// NewText creates a text object. width is the last measured width in
// pixels; pass 0 for text that has not been drawn yet.
func NewText(content string, x, y, height, width float64, c Color, scale float64) *Text {
	return &Text{
		object:  newObject(KindText, x, y, c, scale),
		content: content,
		height:  height,
		width:   width,
	}
}

// Content returns the displayed string.
func (t *Text) Content() string { return t.content }

// Height returns the unscaled font height.
func (t *Text) Height() float64 { return t.height }

// Width returns the width measured by the last Draw.
func (t *Text) Width() float64 { return t.width }

func (t *Text) Draw(s Surface) {
	size := t.height * t.scale
	s.FillText(t.content, t.pos.X, t.pos.Y, size, t.color)
	t.width = s.MeasureText(t.content, size)
}

// HitTest covers the box from the baseline up one scaled font height.
func (t *Text) HitTest(x, y float64) bool {
	px, py := t.pos.X, t.pos.Y
	return x >= px && x <= px+t.width &&
		y <= py && y >= py-t.height*t.scale
}

// CloneAt returns an independent copy anchored at (x, y).
func (t *Text) CloneAt(x, y float64) Shape {
	c := NewText(t.content, x, y, t.height, t.width, t.color, t.scale)
	c.rotation = t.rotation
	return c
}

package fotoprint

import (
	"image"
	"strings"

	"github.com/gogpu/gg"
)

// recOp is one call recorded by recordingSurface.
type recOp struct {
	Op     string
	X, Y   float64
	W, H   float64
	Color  Color
	Text   string
	Points []Vec2
}

// recordingSurface records draw calls so tests can compare what shapes drew.
// Text measures 0.6 of the font size per byte.
type recordingSurface struct {
	ops []recOp
}

func (r *recordingSurface) Clear(c Color) {
	r.ops = append(r.ops, recOp{Op: "clear", Color: c})
}

func (r *recordingSurface) FillRect(x, y, w, h float64, c Color) {
	r.ops = append(r.ops, recOp{Op: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *recordingSurface) FillEllipse(cx, cy, rx, ry float64, c Color) {
	r.ops = append(r.ops, recOp{Op: "ellipse", X: cx, Y: cy, W: rx, H: ry, Color: c})
}

func (r *recordingSurface) FillPath(p *gg.Path, c Color) {
	r.ops = append(r.ops, recOp{Op: "fill", Color: c, Points: pathPoints(p)})
}

func (r *recordingSurface) StrokePath(p *gg.Path, c Color, width float64) {
	r.ops = append(r.ops, recOp{Op: "stroke", W: width, Color: c, Points: pathPoints(p)})
}

func (r *recordingSurface) FillText(s string, x, y, size float64, c Color) {
	r.ops = append(r.ops, recOp{Op: "text", X: x, Y: y, H: size, Color: c, Text: s})
}

func (r *recordingSurface) MeasureText(s string, size float64) float64 {
	return 0.6 * size * float64(len(s))
}

func (r *recordingSurface) DrawImage(_ image.Image, x, y, w, h float64) {
	r.ops = append(r.ops, recOp{Op: "image", X: x, Y: y, W: w, H: h})
}

// count returns how many recorded ops have the given name.
func (r *recordingSurface) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o.Op == op {
			n++
		}
	}
	return n
}

// summary lists op names in order, e.g. "clear,rect,ellipse".
func (r *recordingSurface) summary() string {
	names := make([]string, len(r.ops))
	for i, o := range r.ops {
		names[i] = o.Op
	}
	return strings.Join(names, ",")
}

// pathPoints lists every point p passes through, curve controls included.
func pathPoints(p *gg.Path) []Vec2 {
	var pts []Vec2
	p.Iterate(func(_ gg.PathVerb, c []float64) {
		for i := 0; i+1 < len(c); i += 2 {
			pts = append(pts, Vec2{c[i], c[i+1]})
		}
	})
	return pts
}

// pathVerbs lists the verbs of p in order.
func pathVerbs(p *gg.Path) []gg.PathVerb {
	return append([]gg.PathVerb(nil), p.Verbs()...)
}

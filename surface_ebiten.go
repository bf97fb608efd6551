package fotoprint

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

// ellipseSegments is how many line segments approximate a filled ellipse.
const ellipseSegments = 64

// white source pixel for solid fills (no sync.Once: drawing is single-threaded)
var whiteSubImage *ebiten.Image

func ensureWhiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenSurface draws onto an offscreen Ebitengine image. The app composes
// that image onto the screen each frame, which lets deferred picture draws
// land outside the Draw callback.
type EbitenSurface struct {
	canvas *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	images map[image.Image]*ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewEbitenSurface creates a w×h offscreen surface.
func NewEbitenSurface(w, h int) (*EbitenSurface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebiten surface font: %w", err)
	}
	return &EbitenSurface{
		canvas: ebiten.NewImage(w, h),
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
		images: make(map[image.Image]*ebiten.Image),
	}, nil
}

// Image returns the offscreen image to compose onto the screen.
func (s *EbitenSurface) Image() *ebiten.Image { return s.canvas }

// Pixels copies the canvas into an RGBA image.
func (s *EbitenSurface) Pixels() *image.RGBA {
	b := s.canvas.Bounds()
	img := image.NewRGBA(b)
	s.canvas.ReadPixels(img.Pix)
	return img
}

func (s *EbitenSurface) Clear(c Color) {
	s.canvas.Fill(c.RGBA())
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c Color) {
	vector.DrawFilledRect(s.canvas, float32(x), float32(y), float32(w), float32(h), c.RGBA(), true)
}

func (s *EbitenSurface) FillEllipse(cx, cy, rx, ry float64, c Color) {
	var p vector.Path
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x := float32(cx + rx*math.Cos(a))
		y := float32(cy + ry*math.Sin(a))
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	s.fill(&p, c)
}

func (s *EbitenSurface) FillPath(p *gg.Path, c Color) {
	if pathEmpty(p) {
		return
	}
	s.fill(toVectorPath(p), c)
}

func (s *EbitenSurface) StrokePath(p *gg.Path, c Color, width float64) {
	if pathEmpty(p) {
		return
	}
	vp := toVectorPath(p)
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.vs, s.is = vp.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], op)
	s.drawTriangles(c, ebiten.FillRuleFillAll)
}

func (s *EbitenSurface) fill(p *vector.Path, c Color) {
	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.drawTriangles(c, ebiten.FillRuleNonZero)
}

func (s *EbitenSurface) drawTriangles(c Color, rule ebiten.FillRule) {
	r, g, b, a := float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A)
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: rule, AntiAlias: true}
	s.canvas.DrawTriangles(s.vs, s.is, ensureWhiteImage(), op)
}

func toVectorPath(p *gg.Path) *vector.Path {
	var vp vector.Path
	p.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			vp.MoveTo(float32(c[0]), float32(c[1]))
		case gg.LineTo:
			vp.LineTo(float32(c[0]), float32(c[1]))
		case gg.QuadTo:
			vp.QuadTo(float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3]))
		case gg.CubicTo:
			vp.CubicTo(float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3]), float32(c[4]), float32(c[5]))
		case gg.Close:
			vp.Close()
		}
	})
	return &vp
}

func (s *EbitenSurface) face(size float64) *text.GoTextFace {
	f, ok := s.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: s.source, Size: size}
		s.faces[size] = f
	}
	return f
}

// FillText draws s with its baseline at y. text/v2 positions by the top of
// the line, so the ascent is subtracted.
func (s *EbitenSurface) FillText(str string, x, y, size float64, c Color) {
	f := s.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-f.Metrics().HAscent)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(s.canvas, str, f, op)
}

func (s *EbitenSurface) MeasureText(str string, size float64) float64 {
	w, _ := text.Measure(str, s.face(size), 0)
	return w
}

func (s *EbitenSurface) DrawImage(img image.Image, x, y, w, h float64) {
	ei, ok := s.images[img]
	if !ok {
		ei = ebiten.NewImageFromImage(img)
		s.images[img] = ei
	}
	b := ei.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	s.canvas.DrawImage(ei, op)
}

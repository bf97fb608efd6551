package fotoprint

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
)

// RasterSurface draws into an in-memory image with the gg software
// rasterizer. It needs no window, so it backs PNG export and tests that
// inspect pixels.
//
// gg reports fill and stroke failures as errors; the surface keeps the first
// one and Err returns it.
type RasterSurface struct {
	dc     *gg.Context
	font   *ggtext.FontSource
	faces  map[float64]ggtext.Face
	images map[image.Image]*gg.ImageBuf
	err    error
}

// NewRasterSurface creates a w×h transparent surface.
func NewRasterSurface(w, h int) (*RasterSurface, error) {
	src, err := ggtext.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster surface font: %w", err)
	}
	dc := gg.NewContext(w, h)
	dc.SetFillRule(gg.FillRuleNonZero)
	return &RasterSurface{
		dc:     dc,
		font:   src,
		faces:  make(map[float64]ggtext.Face),
		images: make(map[image.Image]*gg.ImageBuf),
	}, nil
}

// Image returns the rendered pixels.
func (r *RasterSurface) Image() image.Image { return r.dc.Image() }

// Err returns the first drawing error, if any.
func (r *RasterSurface) Err() error { return r.err }

// EncodePNG writes the surface as PNG. It fails with the first drawing error
// if one occurred.
func (r *RasterSurface) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.EncodePNG(w)
}

// Close releases the gg context.
func (r *RasterSurface) Close() error {
	return r.dc.Close()
}

func (r *RasterSurface) keep(err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("raster surface: %w", err)
	}
}

func (r *RasterSurface) setColor(c Color) {
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func (r *RasterSurface) Clear(c Color) {
	r.dc.ClearWithColor(gg.RGBA2(c.R, c.G, c.B, c.A))
}

func (r *RasterSurface) FillRect(x, y, w, h float64, c Color) {
	r.setColor(c)
	r.dc.DrawRectangle(x, y, w, h)
	r.keep(r.dc.Fill())
}

func (r *RasterSurface) FillEllipse(cx, cy, rx, ry float64, c Color) {
	r.setColor(c)
	r.dc.DrawEllipse(cx, cy, rx, ry)
	r.keep(r.dc.Fill())
}

func (r *RasterSurface) FillPath(p *gg.Path, c Color) {
	if pathEmpty(p) {
		return
	}
	r.setColor(c)
	r.keep(r.dc.FillPath(p))
}

func (r *RasterSurface) StrokePath(p *gg.Path, c Color, width float64) {
	if pathEmpty(p) {
		return
	}
	r.setColor(c)
	r.dc.SetLineWidth(width)
	r.keep(r.dc.StrokePath(p))
}

func (r *RasterSurface) face(size float64) ggtext.Face {
	f, ok := r.faces[size]
	if !ok {
		f = r.font.Face(size)
		r.faces[size] = f
	}
	return f
}

func (r *RasterSurface) FillText(s string, x, y, size float64, c Color) {
	r.setColor(c)
	r.dc.SetFont(r.face(size))
	r.dc.DrawString(s, x, y)
}

func (r *RasterSurface) MeasureText(s string, size float64) float64 {
	r.dc.SetFont(r.face(size))
	w, _ := r.dc.MeasureString(s)
	return w
}

func (r *RasterSurface) DrawImage(img image.Image, x, y, w, h float64) {
	buf, ok := r.images[img]
	if !ok {
		buf = gg.ImageBufFromImage(img)
		r.images[img] = buf
	}
	r.dc.DrawImageEx(buf, gg.DrawImageOptions{X: x, Y: y, DstWidth: w, DstHeight: h})
}

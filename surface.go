package fotoprint

import (
	"image"

	"github.com/gogpu/gg"
)

// Surface is the drawing target shapes render onto. It mirrors the subset of
// a 2D canvas context the editor needs. Implementations must treat Y as
// growing downward.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	// FillEllipse fills an axis-aligned ellipse centred on (cx, cy).
	FillEllipse(cx, cy, rx, ry float64, c Color)
	// FillPath fills p using the non-zero winding rule.
	FillPath(p *gg.Path, c Color)
	StrokePath(p *gg.Path, c Color, width float64)
	// FillText draws s with its baseline origin at (x, y) using a font of
	// the given pixel size.
	FillText(s string, x, y, size float64, c Color)
	// MeasureText returns the advance width of s at the given pixel size.
	MeasureText(s string, size float64) float64
	// DrawImage draws img stretched into the box (x, y, w, h).
	DrawImage(img image.Image, x, y, w, h float64)
}

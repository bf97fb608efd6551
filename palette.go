package fotoprint

import "fmt"

const (
	paletteCols = 3
	paletteRows = 2
	// PaletteSlots is the number of prototypes the palette can hold.
	PaletteSlots = paletteCols * paletteRows
)

// DefaultPaletteSpecs returns the six stock prototypes: rectangle, circle,
// and heart on the top row; bear, ghost, and hat below. Positions are
// relative to the top-left of each palette cell.
func DefaultPaletteSpecs() []ShapeSpec {
	return []ShapeSpec{
		{Kind: KindRect, X: 18, Y: 30, Width: 60 / 1.4, Height: 60 / 1.4},
		{Kind: KindOval, X: 40, Y: 60, Radius: 30 / 1.4},
		{Kind: KindHeart, X: 40, Y: 45, Width: 70 / 1.4},
		{Kind: KindBear, X: 40, Y: 65, Radius: 32 / 1.4},
		{Kind: KindGhost, X: 40, Y: 70, Width: 80 / 1.4},
		{Kind: KindMerryHat, X: 37, Y: 85, Size: 80 / 1.4},
	}
}

// Palette is the grid of prototypes new objects are cloned from. Clicking a
// cell selects its prototype and highlights it.
type Palette struct {
	specs          []ShapeSpec
	width, height  float64
	color          Color
	highlightColor Color

	protos    []Shape
	selected  int
	highlight int
	hlShape   Shape
}

// NewPalette lays out specs on a width×height panel in the given colour.
func NewPalette(specs []ShapeSpec, width, height float64, c, highlight Color) (*Palette, error) {
	if len(specs) > PaletteSlots {
		return nil, fmt.Errorf("palette: %d prototypes, at most %d fit", len(specs), PaletteSlots)
	}
	p := &Palette{
		specs:          specs,
		width:          width,
		height:         height,
		highlightColor: highlight,
		selected:       -1,
		highlight:      -1,
	}
	if err := p.Rebuild(c); err != nil {
		return nil, err
	}
	return p, nil
}

// Rebuild recreates every prototype in colour c, keeping the selection.
func (p *Palette) Rebuild(c Color) error {
	cw, ch := p.cellSize()
	protos := make([]Shape, len(p.specs))
	for i, sp := range p.specs {
		sp.X += float64(i%paletteCols) * cw
		sp.Y += float64(i/paletteCols) * ch
		sp.Color = c
		s, err := sp.Build()
		if err != nil {
			return fmt.Errorf("palette slot %d: %w", i, err)
		}
		protos[i] = s
	}
	p.protos = protos
	p.color = c
	p.refreshHighlight()
	return nil
}

// refreshHighlight rebuilds the recoloured copy drawn for the highlighted slot.
func (p *Palette) refreshHighlight() {
	p.hlShape = nil
	if p.highlight < 0 || p.highlight >= len(p.protos) {
		return
	}
	proto := p.protos[p.highlight]
	pos := proto.Position()
	hl, err := CloneShape(proto, pos.X, pos.Y)
	if err != nil {
		return
	}
	hl.ChangeColor(p.highlightColor)
	p.hlShape = hl
}

func (p *Palette) cellSize() (w, h float64) {
	return p.width / paletteCols, p.height / paletteRows
}

// Size returns the panel size.
func (p *Palette) Size() (w, h float64) { return p.width, p.height }

// Len returns the number of prototypes.
func (p *Palette) Len() int { return len(p.protos) }

// Prototype returns the prototype in slot i.
func (p *Palette) Prototype(i int) Shape { return p.protos[i] }

// Select selects and highlights slot i.
func (p *Palette) Select(i int) error {
	if i < 0 || i >= len(p.protos) {
		return fmt.Errorf("palette: slot %d out of range [0,%d)", i, len(p.protos))
	}
	p.selected = i
	p.highlight = i
	p.refreshHighlight()
	Logger().Debug("prototype selected", "slot", i, "kind", p.protos[i].Kind().String())
	return nil
}

// SelectAt maps a click on a w×h panel to a slot. The top half is the first
// row and the bottom half the second; a click exactly on the divide or
// outside the panel selects nothing.
func (p *Palette) SelectAt(x, y, w, h float64) bool {
	if x < 0 || x >= w || y < 0 || y > h {
		return false
	}
	half := h / paletteRows
	var row int
	switch {
	case y < half:
		row = 0
	case y > half:
		row = 1
	default:
		return false
	}
	col := int(x / (w / paletteCols))
	i := row*paletteCols + col
	if i >= len(p.protos) {
		return false
	}
	return p.Select(i) == nil
}

// Selected returns the selected prototype, or nil.
func (p *Palette) Selected() Shape {
	if p.selected < 0 {
		return nil
	}
	return p.protos[p.selected]
}

// SelectedIndex returns the selected slot, or -1.
func (p *Palette) SelectedIndex() int { return p.selected }

// Highlighted returns the highlighted slot, or -1.
func (p *Palette) Highlighted() int { return p.highlight }

// ClearHighlight removes the highlight but keeps the selection.
func (p *Palette) ClearHighlight() {
	p.highlight = -1
	p.hlShape = nil
}

// Draw clears s to white and draws every prototype. The highlighted one is
// drawn in the highlight colour.
func (p *Palette) Draw(s Surface) {
	s.Clear(ColorWhite)
	for i, proto := range p.protos {
		if i == p.highlight && p.hlShape != nil {
			p.hlShape.Draw(s)
			continue
		}
		proto.Draw(s)
	}
}

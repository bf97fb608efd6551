package fotoprint

import "fmt"

// Cloner is implemented by shapes that can be duplicated. The copy is
// independent of the original apart from shared read-only resources such as
// a picture's image.
type Cloner interface {
	CloneAt(x, y float64) Shape
}

// CloneShape duplicates s with its anchor at (x, y).
func CloneShape(s Shape, x, y float64) (Shape, error) {
	c, ok := s.(Cloner)
	if !ok {
		return nil, &UnclonableError{Kind: s.Kind()}
	}
	return c.CloneAt(x, y), nil
}

// ShapeSpec describes a shape by kind and parameters, for configuration
// files and the palette. Only the parameters the kind uses are read.
type ShapeSpec struct {
	Kind   Kind    `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	Hor    float64 `yaml:"hor,omitempty"`
	Ver    float64 `yaml:"ver,omitempty"`
	Base   float64 `yaml:"base,omitempty"`
	Size   float64 `yaml:"size,omitempty"`
	Text   string  `yaml:"text,omitempty"`
	Color  Color   `yaml:"color,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`
}

// Build creates the shape the spec describes. A zero Scale means 1, and zero
// stretch factors on an oval mean 1. Pictures need an image resource and
// cannot be built from a spec.
func (sp ShapeSpec) Build() (Shape, error) {
	scale := sp.Scale
	if scale == 0 {
		scale = 1
	}
	switch sp.Kind {
	case KindRect:
		return NewRect(sp.X, sp.Y, sp.Width, sp.Height, sp.Color, scale), nil
	case KindOval:
		hor, ver := sp.Hor, sp.Ver
		if hor == 0 {
			hor = 1
		}
		if ver == 0 {
			ver = 1
		}
		return NewOval(sp.X, sp.Y, sp.Radius, hor, ver, sp.Color, scale), nil
	case KindTriangle:
		return NewTriangle(sp.X, sp.Y, sp.Height, sp.Base, sp.Color, scale), nil
	case KindHeart:
		return NewHeart(sp.X, sp.Y, sp.Width, sp.Color, scale), nil
	case KindBear:
		return NewBear(sp.X, sp.Y, sp.Radius, sp.Color, scale), nil
	case KindGhost:
		return NewGhost(sp.X, sp.Y, sp.Width, sp.Color, scale), nil
	case KindMerryHat:
		return NewMerryHat(sp.X, sp.Y, sp.Size, sp.Color, scale), nil
	case KindText:
		return NewText(sp.Text, sp.X, sp.Y, sp.Height, 0, sp.Color, scale), nil
	case KindPicture:
		return nil, fmt.Errorf("build %s: needs an image resource: %w", sp.Kind, ErrUnknownKind)
	default:
		return nil, fmt.Errorf("build %s: %w", sp.Kind, ErrUnknownKind)
	}
}

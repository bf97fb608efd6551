package fotoprint

import "fmt"

// Vec2 is a 2D vector used for anchors, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Bounds is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Bounds struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Bounds) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Kind is the short type tag of a drawing object.
type Kind byte

const (
	KindRect     Kind = 'R' // axis-aligned rectangle anchored at its top-left
	KindOval     Kind = 'O' // circle or ellipse anchored at its centre
	KindTriangle Kind = 'T' // right triangle anchored at its right-angle vertex
	KindHeart    Kind = 'H' // heart anchored at the cleft between its lobes
	KindBear     Kind = 'B' // bear face composite
	KindGhost    Kind = 'G' // ghost composite
	KindMerryHat Kind = 'M' // christmas hat composite
	KindText     Kind = 'X' // text anchored at its baseline origin
	KindPicture  Kind = 'P' // external image anchored at its top-left
)

// String returns the lower-case kind name used in configuration files.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindOval:
		return "oval"
	case KindTriangle:
		return "triangle"
	case KindHeart:
		return "heart"
	case KindBear:
		return "bear"
	case KindGhost:
		return "ghost"
	case KindMerryHat:
		return "merryhat"
	case KindText:
		return "text"
	case KindPicture:
		return "picture"
	default:
		return "kind(" + string(rune(k)) + ")"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{
		KindRect, KindOval, KindTriangle, KindHeart,
		KindBear, KindGhost, KindMerryHat, KindText, KindPicture,
	} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts a kind name or its one-letter tag.
func (k *Kind) UnmarshalText(b []byte) error {
	s := string(b)
	if v, ok := ParseKind(s); ok {
		*k = v
		return nil
	}
	if len(s) == 1 {
		if v, ok := ParseKind(Kind(s[0]).String()); ok {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("parse kind %q: %w", s, ErrUnknownKind)
}

// SessionState is the coarse state of an editing session.
type SessionState uint8

const (
	StateIdle     SessionState = iota // nothing selected
	StateSelected                     // an object is being edited
	StateDragging                     // an object follows the pointer
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

const (
	// DefaultCapacity is the pool size used when none is configured.
	DefaultCapacity = 100
	// DefaultCloneOffset is how far a duplicated object is shifted from
	// its source on both axes.
	DefaultCloneOffset = 20.0
	// sliderDivisor converts a size slider value to a scale factor.
	sliderDivisor = 5.0
)

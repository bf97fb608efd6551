package fotoprint

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the pool and the editor.
var (
	// ErrPoolFull is returned when inserting into a pool at capacity.
	ErrPoolFull = errors.New("fotoprint: pool is full")

	// ErrPoolEmpty is returned when removing from an empty pool.
	ErrPoolEmpty = errors.New("fotoprint: pool is empty")

	// ErrNoSelection is returned by edits that need a selected object.
	ErrNoSelection = errors.New("fotoprint: no object selected")

	// ErrUnknownKind is returned when a shape spec names a kind that
	// cannot be built.
	ErrUnknownKind = errors.New("fotoprint: unknown shape kind")

	// ErrInvalidScale is returned for a negative or non-finite scale.
	ErrInvalidScale = errors.New("fotoprint: invalid scale")
)

// CapacityError reports a rejected insert. It matches ErrPoolFull with
// errors.Is.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("fotoprint: pool is full (capacity %d)", e.Capacity)
}

func (e *CapacityError) Is(target error) bool { return target == ErrPoolFull }

// UnclonableError is returned when duplicating a shape that does not
// implement Cloner.
type UnclonableError struct {
	Kind Kind
}

func (e *UnclonableError) Error() string {
	return fmt.Sprintf("fotoprint: %s cannot be cloned", e.Kind)
}

// ScaleError reports a rejected scale. It matches ErrInvalidScale with
// errors.Is.
type ScaleError struct {
	Scale float64
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("fotoprint: invalid scale %v", e.Scale)
}

func (e *ScaleError) Is(target error) bool { return target == ErrInvalidScale }

package fotoprint

import (
	"fmt"
	"iter"
	"slices"
)

// Pool is the ordered, bounded collection of objects on the canvas. Index 0
// is drawn first (bottom); the last index is drawn last (top).
type Pool struct {
	items []Shape
	cap   int
}

// NewPool creates an empty pool holding at most capacity objects. A
// non-positive capacity falls back to DefaultCapacity.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool{items: make([]Shape, 0, capacity), cap: capacity}
}

// Len returns the number of objects in the pool.
func (p *Pool) Len() int { return len(p.items) }

// Cap returns the maximum number of objects.
func (p *Pool) Cap() int { return p.cap }

// At returns the object at index i.
func (p *Pool) At(i int) Shape { return p.items[i] }

// Insert appends s on top. When the pool is full it is left unchanged and
// the returned error matches ErrPoolFull.
func (p *Pool) Insert(s Shape) error {
	if len(p.items) >= p.cap {
		Logger().Warn("pool full", "capacity", p.cap, "kind", s.Kind().String())
		return &CapacityError{Capacity: p.cap}
	}
	p.items = append(p.items, s)
	Logger().Debug("inserted", "kind", s.Kind().String(), "id", s.ID(), "len", len(p.items))
	return nil
}

// RemoveLast pops the topmost object.
func (p *Pool) RemoveLast() (Shape, error) {
	n := len(p.items)
	if n == 0 {
		Logger().Warn("remove from empty pool")
		return nil, ErrPoolEmpty
	}
	s := p.items[n-1]
	p.items[n-1] = nil
	p.items = p.items[:n-1]
	Logger().Debug("removed", "kind", s.Kind().String(), "id", s.ID(), "len", len(p.items))
	return s, nil
}

// Clear removes every object.
func (p *Pool) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}

// BottomToTop iterates in drawing order.
func (p *Pool) BottomToTop() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		for i, s := range p.items {
			if !yield(i, s) {
				return
			}
		}
	}
}

// TopToBottom iterates in hit-test order.
func (p *Pool) TopToBottom() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		for i := len(p.items) - 1; i >= 0; i-- {
			if !yield(i, p.items[i]) {
				return
			}
		}
	}
}

// TopmostAt returns the index and object of the topmost hit at (x, y), or
// (-1, nil) when nothing is there.
func (p *Pool) TopmostAt(x, y float64) (int, Shape) {
	for i, s := range p.TopToBottom() {
		if s.HitTest(x, y) {
			return i, s
		}
	}
	return -1, nil
}

// IndexOf returns the index of s, or -1 if the pool does not hold it.
func (p *Pool) IndexOf(s Shape) int {
	if s == nil {
		return -1
	}
	return slices.Index(p.items, s)
}

// PromoteToTop moves the object at index i to the top, keeping the relative
// order of the rest.
func (p *Pool) PromoteToTop(i int) {
	if i < 0 || i >= len(p.items) {
		panic(fmt.Sprintf("fotoprint: promote index %d out of range [0,%d)", i, len(p.items)))
	}
	s := p.items[i]
	p.items = append(slices.Delete(p.items, i, i+1), s)
}

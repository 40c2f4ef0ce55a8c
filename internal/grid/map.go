package grid

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfBounds is returned when a cropped window does not fit inside the
// source map.
var ErrOutOfBounds = errors.New("window out of bounds")

// Map stores one value per coordinate of a radial board as a dense slice,
// laid out in the family's canonical order.
//
// A Map is not safe for concurrent mutation.
type Map[C Coord[C], D any] struct {
	radius uint8
	family Family[C]
	data   []D
}

// New creates a map of the given radius with every cell set to init.
// Values are copied, so reference types (slices, maps, pointers) end up
// shared between cells; use NewWith for independent values.
func New[C Coord[C], D any](radius uint8, init D) *Map[C, D] {
	m := alloc[C, D](radius)
	for i := range m.data {
		m.data[i] = init
	}
	return m
}

// NewWith creates a map of the given radius, calling f once per coordinate
// in canonical order.
func NewWith[C Coord[C], D any](radius uint8, f func(C) D) *Map[C, D] {
	m := alloc[C, D](radius)
	i := 0
	for c := range m.family.Coords(radius) {
		m.data[i] = f(c)
		i++
	}
	return m
}

func alloc[C Coord[C], D any](radius uint8) *Map[C, D] {
	if radius > MaxRadius {
		panic(fmt.Sprintf("grid: radius %d exceeds maximum %d", radius, MaxRadius))
	}
	family := FamilyOf[C]()
	return &Map[C, D]{
		radius: radius,
		family: family,
		data:   make([]D, family.Area(radius)),
	}
}

// Radius returns the number of rings around the origin.
func (m *Map[C, D]) Radius() uint8 {
	return m.radius
}

// Topology returns the tiling family of the map.
func (m *Map[C, D]) Topology() Topology {
	return m.family.Topology()
}

// Len returns the number of cells.
func (m *Map[C, D]) Len() int {
	return len(m.data)
}

// Data exposes the backing slice in canonical order.
func (m *Map[C, D]) Data() []D {
	return m.data
}

// index resolves c to a slice position. The ring test admits the
// coordinate; the range test guards against a formula that disagrees.
func (m *Map[C, D]) index(c C) (int, bool) {
	if c.Ring() > int(m.radius) {
		return 0, false
	}
	i := m.family.Index(m.radius, c)
	if i < 0 || i >= len(m.data) {
		return 0, false
	}
	return i, true
}

func (m *Map[C, D]) mustIndex(c C) int {
	i, ok := m.index(c)
	if !ok {
		panic(fmt.Sprintf("grid: %v outside map of radius %d", c, m.radius))
	}
	return i
}

// Contains reports whether c is a cell of the map.
func (m *Map[C, D]) Contains(c C) bool {
	_, ok := m.index(c)
	return ok
}

// At returns the value at c. It panics if c is outside the map.
func (m *Map[C, D]) At(c C) D {
	return m.data[m.mustIndex(c)]
}

// Ptr returns a pointer to the value at c. It panics if c is outside the map.
func (m *Map[C, D]) Ptr(c C) *D {
	return &m.data[m.mustIndex(c)]
}

// Set stores v at c. It panics if c is outside the map.
func (m *Map[C, D]) Set(c C, v D) {
	m.data[m.mustIndex(c)] = v
}

// Get returns the value at c, or false if c is outside the map.
func (m *Map[C, D]) Get(c C) (D, bool) {
	i, ok := m.index(c)
	if !ok {
		var zero D
		return zero, false
	}
	return m.data[i], true
}

// GetPtr returns a pointer to the value at c, or nil if c is outside the map.
func (m *Map[C, D]) GetPtr(c C) *D {
	i, ok := m.index(c)
	if !ok {
		return nil
	}
	return &m.data[i]
}

// TrySet stores v at c if c is inside the map and reports whether it did.
func (m *Map[C, D]) TrySet(c C, v D) bool {
	i, ok := m.index(c)
	if ok {
		m.data[i] = v
	}
	return ok
}

// Fill sets every cell to v.
func (m *Map[C, D]) Fill(v D) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a copy with its own backing slice. Values are copied shallowly.
func (m *Map[C, D]) Clone() *Map[C, D] {
	return &Map[C, D]{
		radius: m.radius,
		family: m.family,
		data:   append([]D(nil), m.data...),
	}
}

// Coords yields every coordinate of the map in canonical order.
func (m *Map[C, D]) Coords() iter.Seq[C] {
	return m.family.Coords(m.radius)
}

// CoordsWithin yields the coordinates within radius r of the origin,
// clamped to the map's own radius, in canonical order for that radius.
func (m *Map[C, D]) CoordsWithin(r uint8) iter.Seq[C] {
	return m.family.Coords(min(r, m.radius))
}

// All yields every coordinate with its value in canonical order.
func (m *Map[C, D]) All() iter.Seq2[C, D] {
	return func(yield func(C, D) bool) {
		i := 0
		for c := range m.family.Coords(m.radius) {
			if !yield(c, m.data[i]) {
				return
			}
			i++
		}
	}
}

// Cells yields every coordinate with a pointer to its value, for in-place
// updates.
func (m *Map[C, D]) Cells() iter.Seq2[C, *D] {
	return func(yield func(C, *D) bool) {
		i := 0
		for c := range m.family.Coords(m.radius) {
			if !yield(c, &m.data[i]) {
				return
			}
			i++
		}
	}
}

// AllWithin is like All but limited to the cells within radius r.
func (m *Map[C, D]) AllWithin(r uint8) iter.Seq2[C, D] {
	return func(yield func(C, D) bool) {
		for c := range m.CoordsWithin(r) {
			if !yield(c, m.data[m.family.Index(m.radius, c)]) {
				return
			}
		}
	}
}

// CellsWithin is like Cells but limited to the cells within radius r.
func (m *Map[C, D]) CellsWithin(r uint8) iter.Seq2[C, *D] {
	return func(yield func(C, *D) bool) {
		for c := range m.CoordsWithin(r) {
			if !yield(c, &m.data[m.family.Index(m.radius, c)]) {
				return
			}
		}
	}
}

// RingMask visits the neighbors of c in rotational order and shifts in one
// bit per neighbor: set if the neighbor is on the map and pred holds for
// its value. The first neighbor ends up in the most significant used bit.
func (m *Map[C, D]) RingMask(c C, pred func(D) bool) uint8 {
	var mask uint8
	for k := 0; k < m.family.NeighborCount(); k++ {
		mask <<= 1
		if d, ok := m.Get(c.Neighbor(k)); ok && pred(d) {
			mask |= 1
		}
	}
	return mask
}

// Convert builds a map of the same radius whose cells are f applied to
// each cell of m, in canonical order.
func Convert[C Coord[C], D, T any](m *Map[C, D], f func(C, D) T) *Map[C, T] {
	out := &Map[C, T]{
		radius: m.radius,
		family: m.family,
		data:   make([]T, len(m.data)),
	}
	i := 0
	for c, d := range m.All() {
		out.data[i] = f(c, d)
		i++
	}
	return out
}

// ConvertTrim builds a map of the given radius from a window of m centered
// on offset. For every local coordinate of the new map, f receives the local
// coordinate, the translated source coordinate and the source value.
//
// The window must lie entirely inside m: ring(offset)+radius <= m.Radius().
// Otherwise an error wrapping ErrOutOfBounds is returned and f is never called.
func ConvertTrim[C Coord[C], D, T any](m *Map[C, D], radius uint8, offset C, f func(local, source C, d D) T) (*Map[C, T], error) {
	if offset.Ring()+int(radius) > int(m.radius) {
		return nil, fmt.Errorf("%w: radius %d at %v exceeds source radius %d",
			ErrOutOfBounds, radius, offset, m.radius)
	}

	out := alloc[C, T](radius)
	i := 0
	for local := range m.family.Coords(radius) {
		source := local.Add(offset)
		out.data[i] = f(local, source, m.At(source))
		i++
	}
	return out, nil
}

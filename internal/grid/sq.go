package grid

import (
	"fmt"
	"iter"
	"math"
)

// Sq is a position on a square board. Y is the row (negative rows are at
// the top); X runs left to right.
type Sq struct {
	X int8 `json:"x"`
	Y int8 `json:"y"`
}

// SqDirections are the four neighbor offsets, counter-clockwise from east.
var SqDirections = [4]Sq{
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
}

// Ring returns the Chebyshev distance from the origin.
func (c Sq) Ring() int {
	return max(abs(int(c.X)), abs(int(c.Y)))
}

func (c Sq) Add(o Sq) Sq {
	return Sq{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Sq) Sub(o Sq) Sq {
	return Sq{X: c.X - o.X, Y: c.Y - o.Y}
}

// Neighbor returns the adjacent cell in direction k (see SqDirections).
func (c Sq) Neighbor(k int) Sq {
	return c.Add(SqDirections[k])
}

// Neighbors returns the four edge-adjacent cells.
func (c Sq) Neighbors() [4]Sq {
	var result [4]Sq
	for i, dir := range SqDirections {
		result[i] = c.Add(dir)
	}
	return result
}

// RingAt yields the cells at Chebyshev distance exactly k from c, walking
// the square outline counter-clockwise from its south-east corner.
func (c Sq) RingAt(k int) iter.Seq[Sq] {
	return func(yield func(Sq) bool) {
		if k < 0 {
			return
		}
		if k == 0 {
			yield(c)
			return
		}
		cur := Sq{X: c.X + int8(k), Y: c.Y + int8(k)}
		// north along the east edge, then west, south, east
		for side := 1; side <= 4; side++ {
			dir := SqDirections[side%4]
			for step := 0; step < 2*k; step++ {
				if !yield(cur) {
					return
				}
				cur = cur.Add(dir)
			}
		}
	}
}

// Translation returns the cell center with unit spacing; y grows downward.
func (c Sq) Translation() (x, y float64) {
	return float64(c.X), float64(c.Y)
}

func (c Sq) Family() Family[Sq] {
	return SqFamily{}
}

func (c Sq) String() string {
	return fmt.Sprintf("Sq(%d,%d)", c.X, c.Y)
}

// SqFamily is the algebra of square boards.
type SqFamily struct{}

func (SqFamily) Topology() Topology { return TopologySq }

// Area is the side squared, side = 2r+1.
func (SqFamily) Area(radius uint8) int {
	side := 2*int(radius) + 1
	return side * side
}

func (SqFamily) Index(radius uint8, c Sq) int {
	r := int(radius)
	return (int(c.Y)+r)*(2*r+1) + int(c.X) + r
}

func (SqFamily) Coords(radius uint8) iter.Seq[Sq] {
	return func(yield func(Sq) bool) {
		r := int(radius)
		for y := -r; y <= r; y++ {
			for x := -r; x <= r; x++ {
				if !yield(Sq{X: int8(x), Y: int8(y)}) {
					return
				}
			}
		}
	}
}

func (SqFamily) RowLen(radius uint8, row int) int {
	if abs(row) > int(radius) {
		return 0
	}
	return 2*int(radius) + 1
}

// RowIndent is always zero; square rows are aligned.
func (SqFamily) RowIndent(int) int { return 0 }

func (SqFamily) NeighborCount() int { return len(SqDirections) }

func (SqFamily) FromScreen(x, y float64) Sq {
	return Sq{X: clampComponent(math.Round(x)), Y: clampComponent(math.Round(y))}
}

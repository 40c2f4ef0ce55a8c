package grid

import (
	"fmt"
	"iter"
	"math"
)

// Hex is a position on a hexagonal board in axial coordinates.
// R is the row (negative rows are at the top); Q runs left to right.
// The third cube coordinate s is derived: s = -q - r.
type Hex struct {
	Q int8 `json:"q"`
	R int8 `json:"r"`
}

// HexDirections are the six neighbor offsets, counter-clockwise from east.
var HexDirections = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

var sqrt3 = math.Sqrt(3.0)

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -int(h.Q) - int(h.R)
}

// Ring returns the hex distance from the origin: max(|q|, |r|, |s|).
func (h Hex) Ring() int {
	return max(abs(int(h.Q)), abs(int(h.R)), abs(h.S()))
}

func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

func (h Hex) Sub(o Hex) Hex {
	return Hex{Q: h.Q - o.Q, R: h.R - o.R}
}

// Neighbor returns the adjacent hex in direction k (see HexDirections).
func (h Hex) Neighbor(k int) Hex {
	return h.Add(HexDirections[k])
}

// Neighbors returns the six adjacent hex coordinates.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range HexDirections {
		result[i] = h.Add(dir)
	}
	return result
}

// RingAt yields the hexes exactly k steps away from h, walking
// counter-clockwise from the south-west corner. k == 0 yields h itself.
func (h Hex) RingAt(k int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		if k < 0 {
			return
		}
		if k == 0 {
			yield(h)
			return
		}
		cur := Hex{
			Q: h.Q + HexDirections[4].Q*int8(k),
			R: h.R + HexDirections[4].R*int8(k),
		}
		for side := 0; side < 6; side++ {
			for step := 0; step < k; step++ {
				if !yield(cur) {
					return
				}
				cur = cur.Neighbor(side)
			}
		}
	}
}

// Translation converts the hex to layout space with unit spacing between
// neighboring centers. y grows downward, matching row order.
func (h Hex) Translation() (x, y float64) {
	return float64(h.Q) + float64(h.R)*0.5, float64(h.R) * sqrt3 / 2.0
}

func (h Hex) Family() Family[Hex] {
	return HexFamily{}
}

func (h Hex) String() string {
	return fmt.Sprintf("Hex(%d,%d)", h.Q, h.R)
}

// HexFamily is the algebra of hexagonal boards.
type HexFamily struct{}

func (HexFamily) Topology() Topology { return TopologyHex }

// Area is the centered hexagonal number 3r(r+1)+1.
func (HexFamily) Area(radius uint8) int {
	r := int(radius)
	return 3*r*(r+1) + 1
}

// Index counts the cells in all rows above c, then c's offset within its row.
// Rows above the middle grow by one cell each; rows below shrink by one.
func (HexFamily) Index(radius uint8, c Hex) int {
	r := int(radius)
	q, row := int(c.Q), int(c.R)
	if row <= 0 {
		j := row + r
		return j*(r+1) + j*(j-1)/2 + q + r + row
	}
	mid := r*(r+1) + r*(r-1)/2
	return mid + row*(2*r+1) - row*(row-1)/2 + q + r
}

func (HexFamily) Coords(radius uint8) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		r := int(radius)
		for row := -r; row <= r; row++ {
			for q := max(-r, -r-row); q <= min(r, r-row); q++ {
				if !yield(Hex{Q: int8(q), R: int8(row)}) {
					return
				}
			}
		}
	}
}

func (HexFamily) RowLen(radius uint8, row int) int {
	if abs(row) > int(radius) {
		return 0
	}
	return 2*int(radius) + 1 - abs(row)
}

func (HexFamily) RowIndent(row int) int {
	return abs(row)
}

func (HexFamily) NeighborCount() int { return len(HexDirections) }

// FromScreen inverts Translation and rounds to the nearest hex in cube space.
func (HexFamily) FromScreen(x, y float64) Hex {
	rf := y * 2.0 / sqrt3
	qf := x - rf*0.5
	sf := -qf - rf

	q, r, s := math.Round(qf), math.Round(rf), math.Round(sf)
	dq, dr, ds := math.Abs(q-qf), math.Abs(r-rf), math.Abs(s-sf)

	// Fix up whichever component drifted furthest so q + r + s == 0.
	if dq > dr && dq > ds {
		q = -r - s
	} else if dr > ds {
		r = -q - s
	}

	return Hex{Q: clampComponent(q), R: clampComponent(r)}
}

// Package grid provides the coordinate algebra for bounded radial boards
// (hexagonal and square tilings) and the compact dense map stored over them.
//
// A board of radius r holds every coordinate whose ring (distance from the
// origin) is at most r. Each tiling family fixes the ring metric, the cell
// count for a radius and the canonical row-major order used to address cells.
package grid

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"
)

// MaxRadius is the largest radius a map may have.
const MaxRadius = 127

// maxComponent bounds coordinate components produced by screen picking.
const maxComponent = 127

// Topology identifies a tiling family.
type Topology uint8

const (
	TopologyHex Topology = iota // Hexagonal, six neighbors
	TopologySq                  // Square, four neighbors
)

// ErrUnknownTopology is returned when a topology name cannot be parsed.
var ErrUnknownTopology = errors.New("unknown topology")

// String returns the short name of the topology.
func (t Topology) String() string {
	switch t {
	case TopologyHex:
		return "hex"
	case TopologySq:
		return "sq"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

// ParseTopology accepts "hex"/"hexagon" and "sq"/"square", case-insensitively.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex", "hexagon", "hexagonal":
		return TopologyHex, nil
	case "sq", "square":
		return TopologySq, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
}

// Coord is implemented by the coordinate type of each tiling family.
// C is the implementing type itself.
type Coord[C any] interface {
	comparable
	fmt.Stringer

	// Ring returns the distance from the origin.
	Ring() int
	// Add translates the coordinate by another.
	Add(C) C
	// Sub returns the offset from other to the receiver.
	Sub(C) C
	// Neighbor returns the k-th adjacent cell in the family's rotational
	// order. k must be in [0, NeighborCount()).
	Neighbor(k int) C
	// Translation returns the layout position of the cell center.
	Translation() (x, y float64)
	// Family returns the stateless algebra for this coordinate type.
	Family() Family[C]
}

// Family is the per-tiling algebra. Implementations are zero-size and
// stateless.
type Family[C any] interface {
	Topology() Topology

	// Area returns the number of coordinates with ring <= radius.
	Area(radius uint8) int
	// Index maps an in-bounds coordinate to its position in canonical
	// order. The result is meaningless for coordinates outside radius.
	Index(radius uint8, c C) int
	// Coords yields every coordinate within radius in canonical order.
	Coords(radius uint8) iter.Seq[C]

	// RowLen returns the number of cells in the given row. Rows are
	// numbered -radius..radius from top to bottom.
	RowLen(radius uint8, row int) int
	// RowIndent returns the leading padding of a row, in half cells.
	RowIndent(row int) int

	// NeighborCount is the fixed size of every neighbor set.
	NeighborCount() int

	// FromScreen returns the coordinate nearest to a layout point,
	// clamped to the addressable coordinate range.
	FromScreen(x, y float64) C
}

// Distance returns the number of steps between two coordinates.
func Distance[C Coord[C]](a, b C) int {
	return a.Sub(b).Ring()
}

// FamilyOf returns the algebra for coordinate type C.
func FamilyOf[C Coord[C]]() Family[C] {
	var zero C
	return zero.Family()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// clampComponent converts an already rounded value to a coordinate component.
func clampComponent(v float64) int8 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxComponent:
		return maxComponent
	case v < -maxComponent:
		return -maxComponent
	}
	return int8(v)
}

// Package world builds game boards on top of the grid package: tile kinds,
// noise-driven generation and the neighbor queries renderers need.
package world

import (
	"fmt"

	"github.com/talgya/hexboard/internal/grid"
)

// TileKind is the terrain of a single board cell.
type TileKind uint8

const (
	TileWater     TileKind = iota // Impassable, blends with water neighbors
	TileCoast                     // Land touching water
	TileRegular                   // Plain land
	TileFertile                   // Farmland
	TileForest                    // Woods
	TileMountain                  // Impassable high ground
	TileDestroyed                 // Ruined land
)

// AllKinds lists every tile kind in declaration order.
var AllKinds = []TileKind{
	TileWater,
	TileCoast,
	TileRegular,
	TileFertile,
	TileForest,
	TileMountain,
	TileDestroyed,
}

// String returns a human-readable name for a tile kind.
func (k TileKind) String() string {
	switch k {
	case TileWater:
		return "Water"
	case TileCoast:
		return "Coast"
	case TileRegular:
		return "Regular"
	case TileFertile:
		return "Fertile"
	case TileForest:
		return "Forest"
	case TileMountain:
		return "Mountain"
	case TileDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Glyph is the byte used for the tile in ASCII dumps.
func (k TileKind) Glyph() byte {
	switch k {
	case TileWater:
		return '~'
	case TileCoast:
		return ','
	case TileRegular:
		return '.'
	case TileFertile:
		return '"'
	case TileForest:
		return 'T'
	case TileMountain:
		return '^'
	case TileDestroyed:
		return 'x'
	default:
		return '?'
	}
}

// Passable reports whether units can stand on the tile.
func (k TileKind) Passable() bool {
	return k != TileWater && k != TileMountain
}

// Descriptor identifies the shape of a board.
type Descriptor struct {
	Topology grid.Topology `json:"topology"`
	Radius   uint8         `json:"radius"`
}

func (d Descriptor) String() string {
	return fmt.Sprintf("Board(%s, radius=%d)", d.Topology, d.Radius)
}

// Describe returns the descriptor of an existing board.
func Describe[C grid.Coord[C]](m *grid.Map[C, TileKind]) Descriptor {
	return Descriptor{Topology: m.Topology(), Radius: m.Radius()}
}

// Counts returns a summary of tile kind distribution.
func Counts[C grid.Coord[C]](m *grid.Map[C, TileKind]) map[TileKind]int {
	counts := make(map[TileKind]int)
	for _, k := range m.All() {
		counts[k]++
	}
	return counts
}

func isWater(k TileKind) bool {
	return k == TileWater
}

// WaterMask returns the ring mask of water neighbors around c, first
// neighbor in the most significant bit. Renderers pick blended water
// sprites from it.
func WaterMask[C grid.Coord[C]](m *grid.Map[C, TileKind], c C) uint8 {
	return m.RingMask(c, isWater)
}

// MarkCoast converts regular land touching water into coast and returns
// how many tiles changed. Off-board neighbors do not count as water.
func MarkCoast[C grid.Coord[C]](m *grid.Map[C, TileKind]) int {
	n := 0
	for c, k := range m.Cells() {
		if *k != TileRegular {
			continue
		}
		if m.RingMask(c, isWater) != 0 {
			*k = TileCoast
			n++
		}
	}
	return n
}

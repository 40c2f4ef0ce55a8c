// Board generation using layered simplex noise.
// Samples elevation and moisture at each cell center, then derives tile kinds.
package world

import (
	"log/slog"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexboard/internal/grid"
)

// GenConfig holds board generation parameters.
type GenConfig struct {
	Radius        uint8   // Board radius (rings around the center)
	Seed          int64   // Random seed (0 = random)
	SeaLevel      float64 // Elevation threshold for water (0.0–1.0)
	MountainLevel float64 // Elevation threshold for mountains (0.0–1.0)
	ForestLevel   float64 // Moisture threshold for forest (0.0–1.0)
	FertileLevel  float64 // Moisture threshold for farmland (0.0–1.0)
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:        22,
		Seed:          0,
		SeaLevel:      0.25,
		MountainLevel: 0.72,
		ForestLevel:   0.62,
		FertileLevel:  0.52,
	}
}

// SmallTestConfig returns a tiny board for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Radius:        5,
		Seed:          42,
		SeaLevel:      0.30,
		MountainLevel: 0.75,
		ForestLevel:   0.62,
		FertileLevel:  0.52,
	}
}

// Generate creates a complete board for coordinate family C.
// Cells are produced in canonical order, so a fixed non-zero seed always
// yields the same board.
func Generate[C grid.Coord[C]](cfg GenConfig) *grid.Map[C, TileKind] {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Independent noise generators per layer.
	elevNoise := opensimplex.NewNormalized(seed)
	moistNoise := opensimplex.NewNormalized(seed + 1)

	// Euclidean extent of the board in layout units.
	extent := float64(cfg.Radius)
	if extent == 0 {
		extent = 1
	}

	m := grid.NewWith(cfg.Radius, func(c C) TileKind {
		x, y := c.Translation()

		elev := octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)
		moist := octaveNoise(moistNoise, x, y, 3, 0.06, 0.5)

		// Continental shaping: reduce elevation near edges to create a water border.
		distFromCenter := math.Hypot(x, y) / extent
		edgeFalloff := 1.0 - math.Pow(distFromCenter, 3.5)
		if edgeFalloff < 0 {
			edgeFalloff = 0
		}
		elev *= edgeFalloff

		return deriveKind(elev, moist, cfg)
	})

	coast := MarkCoast(m)

	slog.Debug("board generated",
		"topology", m.Topology(),
		"radius", cfg.Radius,
		"seed", seed,
		"tiles", m.Len(),
		"coast", coast,
	)
	return m
}

// deriveKind determines the tile kind from environmental parameters.
func deriveKind(elev, moist float64, cfg GenConfig) TileKind {
	if elev < cfg.SeaLevel {
		return TileWater
	}
	if elev > cfg.MountainLevel {
		return TileMountain
	}
	if moist > cfg.ForestLevel {
		return TileForest
	}
	if moist > cfg.FertileLevel {
		return TileFertile
	}
	return TileRegular
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

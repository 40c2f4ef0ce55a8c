package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/talgya/hexboard/internal/grid"
	"github.com/talgya/hexboard/internal/world"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Board   BoardConfig   `toml:"board"`
	Logging LoggingConfig `toml:"logging"`
}

type BoardConfig struct {
	Topology      string  `toml:"topology"`       // "hex" or "sq"
	Radius        int     `toml:"radius"`         // rings around the center, 0-127
	Seed          int64   `toml:"seed"`           // 0 picks a random seed
	SeaLevel      float64 `toml:"sea_level"`      // elevation below which tiles are water
	MountainLevel float64 `toml:"mountain_level"` // elevation above which tiles are mountains
	ForestLevel   float64 `toml:"forest_level"`   // moisture above which tiles are forest
	FertileLevel  float64 `toml:"fertile_level"`  // moisture above which tiles are farmland
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "text"
}

// Load reads a TOML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults mirrors world.DefaultGenConfig on a hexagonal board.
func Defaults() *Config {
	gen := world.DefaultGenConfig()
	return &Config{
		Board: BoardConfig{
			Topology:      grid.TopologyHex.String(),
			Radius:        int(gen.Radius),
			Seed:          gen.Seed,
			SeaLevel:      gen.SeaLevel,
			MountainLevel: gen.MountainLevel,
			ForestLevel:   gen.ForestLevel,
			FertileLevel:  gen.FertileLevel,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks ranges that would otherwise panic or misbehave at generation time.
func (c *Config) Validate() error {
	if _, err := grid.ParseTopology(c.Board.Topology); err != nil {
		return fmt.Errorf("%w: board.topology: %w", ErrInvalid, err)
	}
	if c.Board.Radius < 0 || c.Board.Radius > grid.MaxRadius {
		return fmt.Errorf("%w: board.radius %d outside 0..%d", ErrInvalid, c.Board.Radius, grid.MaxRadius)
	}
	if c.Board.SeaLevel > c.Board.MountainLevel {
		return fmt.Errorf("%w: board.sea_level %.2f above mountain_level %.2f",
			ErrInvalid, c.Board.SeaLevel, c.Board.MountainLevel)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// TopologyValue returns the parsed board topology. Call after Validate.
func (b BoardConfig) TopologyValue() grid.Topology {
	t, _ := grid.ParseTopology(b.Topology)
	return t
}

// GenConfig converts the board section into generation parameters.
func (b BoardConfig) GenConfig() world.GenConfig {
	return world.GenConfig{
		Radius:        uint8(b.Radius),
		Seed:          b.Seed,
		SeaLevel:      b.SeaLevel,
		MountainLevel: b.MountainLevel,
		ForestLevel:   b.ForestLevel,
		FertileLevel:  b.FertileLevel,
	}
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

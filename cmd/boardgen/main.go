// Command boardgen generates a game board and prints it as ASCII art.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/talgya/hexboard/internal/config"
	"github.com/talgya/hexboard/internal/grid"
	"github.com/talgya/hexboard/internal/world"
)

// flags holds command-line overrides; zero values leave the config alone.
type flags struct {
	Config   string
	Topology string
	Radius   int
	Seed     int64
}

func (f *flags) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", os.Getenv("BOARDGEN_CONFIG"), "path to TOML config")
	fs.StringVar(&f.Topology, "topology", "", "board topology: hex or sq")
	fs.IntVar(&f.Radius, "radius", -1, "board radius (0-127)")
	fs.Int64Var(&f.Seed, "seed", 0, "generation seed (0 keeps config value)")
}

func main() {
	var f flags
	f.bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(f.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "boardgen:", err)
		os.Exit(1)
	}
	if f.Topology != "" {
		cfg.Board.Topology = f.Topology
	}
	if f.Radius >= 0 {
		cfg.Board.Radius = f.Radius
	}
	if f.Seed != 0 {
		cfg.Board.Seed = f.Seed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "boardgen:", err)
		os.Exit(1)
	}

	setupLogging(cfg.Logging)

	gen := cfg.Board.GenConfig()
	desc := world.Descriptor{Topology: cfg.Board.TopologyValue(), Radius: gen.Radius}
	slog.Info("generating board", "board", desc, "seed", gen.Seed)

	switch desc.Topology {
	case grid.TopologyHex:
		err = run[grid.Hex](gen, os.Stdout)
	case grid.TopologySq:
		err = run[grid.Sq](gen, os.Stdout)
	default:
		err = fmt.Errorf("%w: %v", grid.ErrUnknownTopology, desc.Topology)
	}
	if err != nil {
		slog.Error("board generation failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(lc config.LoggingConfig) {
	level, _ := lc.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(lc.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// run generates a board for family C, logs its makeup and writes the art to w.
func run[C grid.Coord[C]](gen world.GenConfig, w io.Writer) error {
	m := world.Generate[C](gen)

	counts := world.Counts(m)
	for _, kind := range world.AllKinds {
		if n := counts[kind]; n > 0 {
			slog.Info("tiles", "kind", kind, "count", n)
		}
	}
	slog.Info("board ready", "board", world.Describe(m), "tiles", m.Len())

	if err := m.WriteASCII(w, func(_ C, k world.TileKind) byte { return k.Glyph() }); err != nil {
		return fmt.Errorf("write ascii: %w", err)
	}
	return nil
}

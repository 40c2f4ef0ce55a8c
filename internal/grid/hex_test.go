package grid

import (
	"math"
	"testing"
)

func TestHexAreaMatchesCoords(t *testing.T) {
	var fam HexFamily
	for r := 0; r <= MaxRadius; r++ {
		radius := uint8(r)
		n := 0
		for c := range fam.Coords(radius) {
			if got := fam.Index(radius, c); got != n {
				t.Fatalf("radius %d: Index(%v) = %d, want %d", r, c, got, n)
			}
			if c.Ring() > r {
				t.Fatalf("radius %d: %v has ring %d", r, c, c.Ring())
			}
			n++
		}
		if n != fam.Area(radius) {
			t.Fatalf("radius %d: enumerated %d coords, Area = %d", r, n, fam.Area(radius))
		}
	}
}

func TestHexAreaValues(t *testing.T) {
	var fam HexFamily
	tests := []struct {
		radius uint8
		want   int
	}{
		{0, 1},
		{1, 7},
		{2, 19},
		{3, 37},
		{127, 48769},
	}
	for _, tt := range tests {
		if got := fam.Area(tt.radius); got != tt.want {
			t.Errorf("Area(%d) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestHexCoordsWithinRadiusExactly(t *testing.T) {
	var fam HexFamily
	const radius = 4
	seen := make(map[Hex]bool)
	for c := range fam.Coords(radius) {
		if seen[c] {
			t.Fatalf("%v enumerated twice", c)
		}
		seen[c] = true
	}
	for q := -6; q <= 6; q++ {
		for r := -6; r <= 6; r++ {
			c := Hex{Q: int8(q), R: int8(r)}
			if inside := c.Ring() <= radius; inside != seen[c] {
				t.Fatalf("%v: ring %d, enumerated=%v", c, c.Ring(), seen[c])
			}
		}
	}
}

func TestHexCoordsRowOrder(t *testing.T) {
	var fam HexFamily
	var got []Hex
	for c := range fam.Coords(1) {
		got = append(got, c)
	}
	want := []Hex{
		{0, -1}, {1, -1},
		{-1, 0}, {0, 0}, {1, 0},
		{-1, 1}, {0, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("coord %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHexRing(t *testing.T) {
	tests := []struct {
		c    Hex
		want int
	}{
		{Hex{0, 0}, 0},
		{Hex{1, 0}, 1},
		{Hex{1, -1}, 1},
		{Hex{2, -1}, 2},
		{Hex{1, 1}, 2},
		{Hex{-3, 3}, 3},
		{Hex{-128, -128}, 256},
	}
	for _, tt := range tests {
		if got := tt.c.Ring(); got != tt.want {
			t.Errorf("%v.Ring() = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestHexNeighbors(t *testing.T) {
	c := Hex{Q: 2, R: -1}
	ns := c.Neighbors()
	if len(ns) != 6 {
		t.Fatalf("got %d neighbors, want 6", len(ns))
	}
	seen := make(map[Hex]bool)
	for k, n := range ns {
		if n != c.Neighbor(k) {
			t.Fatalf("Neighbors()[%d] = %v, Neighbor(%d) = %v", k, n, k, c.Neighbor(k))
		}
		if d := Distance(n, c); d != 1 {
			t.Fatalf("neighbor %v at distance %d", n, d)
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Fatalf("neighbors not distinct: %v", ns)
	}
	if (HexFamily{}).NeighborCount() != 6 {
		t.Fatal("hex neighbor count must be 6")
	}
}

func TestHexRingAt(t *testing.T) {
	center := Hex{Q: 0, R: 1}
	for k := 0; k <= 4; k++ {
		n := 0
		seen := make(map[Hex]bool)
		for c := range center.RingAt(k) {
			if d := Distance(c, center); d != k {
				t.Fatalf("RingAt(%d) yielded %v at distance %d", k, c, d)
			}
			seen[c] = true
			n++
		}
		want := 6 * k
		if k == 0 {
			want = 1
		}
		if n != want || len(seen) != want {
			t.Fatalf("RingAt(%d): %d cells (%d distinct), want %d", k, n, len(seen), want)
		}
	}
}

func TestHexRowLayout(t *testing.T) {
	var fam HexFamily
	const radius = 3
	total := 0
	for row := -radius; row <= radius; row++ {
		total += fam.RowLen(radius, row)
		if fam.RowIndent(row) != abs(row) {
			t.Fatalf("RowIndent(%d) = %d", row, fam.RowIndent(row))
		}
	}
	if total != fam.Area(radius) {
		t.Fatalf("row lengths sum to %d, want %d", total, fam.Area(radius))
	}
	if fam.RowLen(radius, 4) != 0 {
		t.Fatal("rows outside the radius must be empty")
	}
}

func TestHexFromScreen(t *testing.T) {
	var fam HexFamily
	for c := range fam.Coords(5) {
		x, y := c.Translation()
		if got := fam.FromScreen(x, y); got != c {
			t.Fatalf("FromScreen(Translation(%v)) = %v", c, got)
		}
		// Nudges well inside the cell still resolve to it.
		if got := fam.FromScreen(x+0.2, y-0.2); got != c {
			t.Fatalf("FromScreen near %v = %v", c, got)
		}
	}

	far := fam.FromScreen(1e6, -1e6)
	if far.Q != 127 || far.R != -127 {
		t.Fatalf("FromScreen far away = %v, want clamped components", far)
	}
	if got := fam.FromScreen(math.NaN(), 0); got != (Hex{}) {
		t.Fatalf("FromScreen(NaN) = %v", got)
	}
}

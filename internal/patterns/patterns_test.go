package patterns

import (
	"testing"

	"github.com/san-kum/lifelab/internal/life"
)

func TestByName(t *testing.T) {
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"glider", "Glider", true},
		{"GLIDER", "Glider", true},
		{"R-Pentomino", "R-pentomino", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		p, ok := ByName(tt.query)
		if ok != tt.ok {
			t.Errorf("ByName(%q): ok = %v, want %v", tt.query, ok, tt.ok)
			continue
		}
		if ok && p.Name != tt.want {
			t.Errorf("ByName(%q) = %q, want %q", tt.query, p.Name, tt.want)
		}
	}
}

func TestAllHaveValidBounds(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("expected 10 library patterns, got %d", len(all))
	}
	for _, p := range all {
		if len(p.Cells) == 0 {
			t.Errorf("%s: no cells", p.Name)
		}
		for _, c := range p.Cells {
			if c.DX < 0 || c.DX >= p.Width || c.DY < 0 || c.DY >= p.Height {
				t.Errorf("%s: offset (%d,%d) outside %dx%d box", p.Name, c.DX, c.DY, p.Width, p.Height)
			}
		}
	}
}

func TestPlaceSetsOffsets(t *testing.T) {
	g := life.NewGrid(20, 20, life.Wrap)
	p, _ := ByName("blinker")
	p.Place(g, 5, 5)

	if g.CountAlive() != 3 {
		t.Fatalf("expected 3 live cells, got %d", g.CountAlive())
	}
	for _, c := range p.Cells {
		if !g.Get(5+c.DX, 5+c.DY) {
			t.Errorf("offset (%d,%d) not set", c.DX, c.DY)
		}
	}
}

func TestPlaceClearsBoundingBox(t *testing.T) {
	g := life.NewGrid(20, 20, life.Wrap)
	// Fill the placement area with junk first.
	for y := 4; y < 10; y++ {
		for x := 4; x < 10; x++ {
			g.Set(x, y, true)
		}
	}

	p, _ := ByName("glider")
	p.Place(g, 5, 5)

	// Inside the 3x3 box only the glider cells survive.
	if g.Get(5, 5) {
		t.Error("box corner should have been cleared")
	}
	if !g.Get(6, 5) {
		t.Error("glider cell missing")
	}
	// Junk outside the box is untouched.
	if !g.Get(4, 4) {
		t.Error("cell outside bounding box should be untouched")
	}
}

func TestPlaceTruncatesAtEdge(t *testing.T) {
	g := life.NewGrid(10, 10, life.Fixed)
	p, _ := ByName("glider") // 3x3, placed so only part fits

	p.Place(g, 8, 8)

	// Only in-bounds offsets land; no panic, no wrap-around.
	if g.CountAlive() >= len(p.Cells) {
		t.Errorf("expected truncated placement, got %d cells", g.CountAlive())
	}
	for _, c := range p.Cells {
		x, y := 8+c.DX, 8+c.DY
		if x < 10 && y < 10 && !g.Get(x, y) {
			t.Errorf("in-bounds offset (%d,%d) should be set", x, y)
		}
	}
}

// Package patterns provides the library of named Game of Life seed
// patterns and their placement onto a board.
package patterns

import (
	"sort"
	"strings"

	"github.com/san-kum/lifelab/internal/life"
)

// Offset is a live cell position relative to a pattern's anchor.
type Offset struct {
	DX, DY int
}

// Pattern is a named set of live-cell offsets within a bounding box.
type Pattern struct {
	Name        string
	Description string
	Width       int
	Height      int
	Cells       []Offset
}

// Place writes the pattern onto the grid anchored at (x, y). The full
// bounding box is cleared first, so prior content is evicted rather than
// merged; cells falling outside the board are skipped silently.
func (p *Pattern) Place(g *life.Grid, x, y int) {
	for dy := 0; dy < p.Height; dy++ {
		for dx := 0; dx < p.Width; dx++ {
			g.Set(x+dx, y+dy, false)
		}
	}
	for _, c := range p.Cells {
		g.Set(x+c.DX, y+c.DY, true)
	}
}

var library = map[string]Pattern{
	"glider": {
		Name:        "Glider",
		Description: "The smallest, most common spaceship",
		Width:       3,
		Height:      3,
		Cells:       []Offset{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	"blinker": {
		Name:        "Blinker",
		Description: "The smallest oscillator with period 2",
		Width:       3,
		Height:      3,
		Cells:       []Offset{{1, 0}, {1, 1}, {1, 2}},
	},
	"toad": {
		Name:        "Toad",
		Description: "A period 2 oscillator",
		Width:       4,
		Height:      2,
		Cells:       []Offset{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
	"beacon": {
		Name:        "Beacon",
		Description: "A period 2 oscillator",
		Width:       4,
		Height:      4,
		Cells:       []Offset{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
	},
	"pulsar": {
		Name:        "Pulsar",
		Description: "A period 3 oscillator",
		Width:       13,
		Height:      13,
		Cells: []Offset{
			{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
			{0, 2}, {5, 2}, {7, 2}, {12, 2},
			{0, 3}, {5, 3}, {7, 3}, {12, 3},
			{0, 4}, {5, 4}, {7, 4}, {12, 4},
			{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
			{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
			{0, 8}, {5, 8}, {7, 8}, {12, 8},
			{0, 9}, {5, 9}, {7, 9}, {12, 9},
			{0, 10}, {5, 10}, {7, 10}, {12, 10},
			{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
		},
	},
	"glider gun": {
		Name:        "Glider Gun",
		Description: "Gosper's Glider Gun - produces gliders periodically",
		Width:       36,
		Height:      9,
		Cells: []Offset{
			{24, 0},
			{22, 1}, {24, 1},
			{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
			{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
			{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
			{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
			{10, 6}, {16, 6}, {24, 6},
			{11, 7}, {15, 7},
			{12, 8}, {13, 8},
		},
	},
	"lwss": {
		Name:        "LWSS",
		Description: "Lightweight Spaceship - moves across the grid",
		Width:       5,
		Height:      4,
		Cells: []Offset{
			{1, 0}, {4, 0},
			{0, 1},
			{0, 2}, {4, 2},
			{0, 3}, {1, 3}, {2, 3}, {3, 3},
		},
	},
	"r-pentomino": {
		Name:        "R-pentomino",
		Description: "A methuselah that evolves for many generations",
		Width:       3,
		Height:      3,
		Cells:       []Offset{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	"diehard": {
		Name:        "Diehard",
		Description: "A methuselah that vanishes after 130 generations",
		Width:       8,
		Height:      3,
		Cells:       []Offset{{6, 0}, {0, 1}, {1, 1}, {1, 2}, {5, 2}, {6, 2}, {7, 2}},
	},
	"acorn": {
		Name:        "Acorn",
		Description: "A methuselah that evolves for thousands of generations",
		Width:       7,
		Height:      3,
		Cells:       []Offset{{1, 0}, {3, 1}, {0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2}},
	},
}

// All returns every library pattern, sorted by name.
func All() []Pattern {
	out := make([]Pattern, 0, len(library))
	for _, p := range library {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByName looks a pattern up case-insensitively. The second return reports
// whether the name was known.
func ByName(name string) (Pattern, bool) {
	p, ok := library[strings.ToLower(name)]
	return p, ok
}

// Names returns the lookup keys, sorted, for error messages and listings.
func Names() []string {
	out := make([]string, 0, len(library))
	for k := range library {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

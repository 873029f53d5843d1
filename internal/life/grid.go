package life

import (
	"encoding/binary"
	"hash/fnv"
	"math/bits"
	"math/rand"
)

const wordBits = 64

// Grid is a bit-packed Game of Life board. Each 64-bit word holds 64 cells;
// bit x%64 of word y*stride+x/64 encodes cell (x, y). Dimensions and the
// boundary policy are fixed at construction.
type Grid struct {
	width    int
	height   int
	stride   int // words per row
	cells    []uint64
	boundary Boundary
}

// NewGrid returns an all-dead board of the given dimensions.
func NewGrid(width, height int, boundary Boundary) *Grid {
	stride := (width + wordBits - 1) / wordBits
	return &Grid{
		width:    width,
		height:   height,
		stride:   stride,
		cells:    make([]uint64, stride*height),
		boundary: boundary,
	}
}

// Dimensions returns the board width and height.
func (g *Grid) Dimensions() (int, int) { return g.width, g.height }

// Boundary returns the boundary policy the board was built with.
func (g *Grid) Boundary() Boundary { return g.boundary }

// Get reports whether cell (x, y) is alive. Out-of-range coordinates are
// dead, never an error; pattern placement near the edges relies on this.
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y*g.stride+x/wordBits]&(1<<(x%wordBits)) != 0
}

// Set writes the state of cell (x, y). Out-of-range coordinates are a
// silent no-op.
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	idx := y*g.stride + x/wordBits
	mask := uint64(1) << (x % wordBits)
	if alive {
		g.cells[idx] |= mask
	} else {
		g.cells[idx] &^= mask
	}
}

// Toggle flips cell (x, y). Out-of-range coordinates are a silent no-op.
func (g *Grid) Toggle(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.stride+x/wordBits] ^= 1 << (x % wordBits)
}

// CountNeighbors counts live cells in the Moore neighborhood of (x, y).
// Under Wrap each of the 8 offsets contributes through toroidal wrapping;
// under Fixed, offsets landing outside the board are skipped, so edge and
// corner cells have fewer candidate neighbors.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.boundary == Wrap {
				nx = ((nx % g.width) + g.width) % g.width
				ny = ((ny % g.height) + g.height) % g.height
			} else if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
				continue
			}
			if g.Get(nx, ny) {
				count++
			}
		}
	}
	return count
}

// Update advances the board one generation under the standard rule: a live
// cell survives with 2 or 3 live neighbors, a dead cell is born with exactly
// 3. The successor is built into a fresh buffer from the frozen current
// state (rows are processed in parallel) and swapped in at the end, so no
// transition ever observes an already-updated neighbor.
func (g *Grid) Update() {
	next := make([]uint64, len(g.cells))

	parallelRows(g.height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < g.width; x++ {
				n := g.CountNeighbors(x, y)
				if n == 3 || (n == 2 && g.Get(x, y)) {
					next[y*g.stride+x/wordBits] |= 1 << (x % wordBits)
				}
			}
		}
	})

	g.cells = next
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Randomize sets each cell alive independently with probability density,
// using a deterministic source for the given seed.
func (g *Grid) Randomize(density float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.Set(x, y, rng.Float64() < density)
		}
	}
}

// CountAlive returns the live-cell population via popcount over the packed
// words.
func (g *Grid) CountAlive() int {
	total := 0
	for _, w := range g.cells {
		total += bits.OnesCount64(w)
	}
	return total
}

// Hash returns a deterministic FNV-1a fingerprint of the full cell state.
// It is not cryptographic; the analyzer uses it for cycle detection and
// accepts the (small) collision risk.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, w := range g.cells {
		binary.LittleEndian.PutUint64(buf[:], w)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Clone returns an independent copy of the board.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]uint64, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

package analysis

import (
	"math"
	"time"

	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/patterns"
)

const (
	// spaceshipWindow is how many trailing generations must hold a constant
	// population before motion detection is attempted.
	spaceshipWindow = 10
	// maxSpaceshipPeriod bounds the candidate translation periods.
	maxSpaceshipPeriod = 10
	// explosionCheckAfter delays the growth test past the early transient.
	explosionCheckAfter = 50
	// explosionRateThreshold is the minimum cells/generation counted as
	// explosive growth.
	explosionRateThreshold = 0.1
)

// Analyzer drives a board through successive generations from a seed
// placement and classifies the emergent behavior. Each AnalyzePattern call
// owns an independent board, so analyzers may be shared across goroutines.
type Analyzer struct {
	maxGenerations int
	width, height  int
	boundary       life.Boundary
}

// New returns an analyzer running boards of the given size and boundary for
// at most maxGenerations steps per pattern.
func New(maxGenerations, width, height int, boundary life.Boundary) *Analyzer {
	return &Analyzer{
		maxGenerations: maxGenerations,
		width:          width,
		height:         height,
		boundary:       boundary,
	}
}

type point struct {
	x, y int
}

// AnalyzePattern seeds a fresh board with the pattern at (x, y), runs it
// forward, and returns the collected statistics. Classification stops at the
// first terminal decision: extinction, a repeated state (still life or
// oscillator), detected translation, or sustained growth. If the generation
// budget runs out the classification stays Unknown.
//
// State repetition is detected through the grid fingerprint, so a hash
// collision between distinct states can, in principle, report a false cycle.
func (a *Analyzer) AnalyzePattern(p patterns.Pattern, x, y int) *Stats {
	start := time.Now()

	grid := life.NewGrid(a.width, a.height, a.boundary)
	p.Place(grid, x, y)

	initial := grid.CountAlive()
	stats := newStats(p.Name, initial)

	// An all-dead seed is already extinct; nothing to simulate.
	if initial == 0 {
		stats.Classification = Extinct{GenerationsToExtinction: 0}
		stats.FinalBoard = grid
		stats.Duration = time.Since(start)
		return stats
	}

	seen := map[uint64]int{grid.Hash(): 0}
	centers := []point{a.centroid(grid)}

	for gen := 1; gen <= a.maxGenerations; gen++ {
		grid.Update()

		pop := grid.CountAlive()
		stats.PopulationHistory = append(stats.PopulationHistory, pop)
		if pop > stats.MaxPopulation {
			stats.MaxPopulation = pop
			stats.GenerationOfMax = gen
		}
		centers = append(centers, a.centroid(grid))

		if pop == 0 {
			stats.Classification = Extinct{GenerationsToExtinction: gen}
			break
		}

		h := grid.Hash()
		if prev, ok := seen[h]; ok {
			period := gen - prev
			if period == 1 {
				stats.Classification = Stable{
					GenerationsToStabilize: gen - 1,
					FinalPopulation:        pop,
				}
			} else {
				stats.Classification = Stable{
					GenerationsToStabilize: prev,
					OscillatorPeriod:       period,
					FinalPopulation:        pop,
				}
			}
			break
		}

		if len(centers) > spaceshipWindow {
			if ship, ok := detectSpaceship(centers, stats.PopulationHistory); ok {
				stats.Classification = ship
				break
			}
		}

		if gen > explosionCheckAfter && pop > initial*2 {
			rate := float64(pop-initial) / float64(gen)
			if rate > explosionRateThreshold {
				stats.Classification = Exploding{AverageGrowthRate: rate}
				break
			}
		}

		seen[h] = gen
	}

	stats.GenerationsAnalyzed = len(stats.PopulationHistory) - 1
	stats.FinalPopulation = stats.PopulationHistory[len(stats.PopulationHistory)-1]
	stats.FinalBoard = grid
	stats.Duration = time.Since(start)

	if _, ok := stats.Classification.(Stable); ok {
		stats.StableFormations = identifyFormations(grid)
	}

	return stats
}

// Placement pairs a pattern with its seed position for comparison runs.
type Placement struct {
	Pattern patterns.Pattern
	X, Y    int
}

// ComparePatterns analyzes each placement in turn on its own board.
func (a *Analyzer) ComparePatterns(placements []Placement) []*Stats {
	out := make([]*Stats, len(placements))
	for i, pl := range placements {
		out[i] = a.AnalyzePattern(pl.Pattern, pl.X, pl.Y)
	}
	return out
}

// centroid returns the integer-averaged position of all live cells, or the
// board center when the board is empty.
func (a *Analyzer) centroid(g *life.Grid) point {
	sumX, sumY, n := 0, 0, 0
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			if g.Get(x, y) {
				sumX += x
				sumY += y
				n++
			}
		}
	}
	if n == 0 {
		return point{a.width / 2, a.height / 2}
	}
	return point{sumX / n, sumY / n}
}

// detectSpaceship looks for cyclic translation of the centroid. The
// population must have been constant over the trailing window (spaceships
// preserve cell count); then the smallest period whose sampled centroid
// displacements all agree wins.
func detectSpaceship(centers []point, populations []int) (Spaceship, bool) {
	if len(centers) < spaceshipWindow {
		return Spaceship{}, false
	}

	recent := populations[len(populations)-spaceshipWindow:]
	for i := 1; i < len(recent); i++ {
		if recent[i] != recent[0] {
			return Spaceship{}, false
		}
	}

	for period := 2; period <= maxSpaceshipPeriod; period++ {
		if len(centers) <= period*2 {
			continue
		}

		var displacements []point
		for i := 0; (i+1)*period < len(centers); i++ {
			p1 := centers[i*period]
			p2 := centers[(i+1)*period]
			displacements = append(displacements, point{p2.x - p1.x, p2.y - p1.y})
		}
		if len(displacements) == 0 {
			continue
		}

		consistent := true
		for _, d := range displacements[1:] {
			if d != displacements[0] {
				consistent = false
				break
			}
		}
		if !consistent {
			continue
		}

		d := displacements[0]
		distance := math.Sqrt(float64(d.x*d.x + d.y*d.y))
		return Spaceship{
			Period: period,
			DX:     d.x,
			DY:     d.y,
			Speed:  distance / float64(period),
		}, true
	}

	return Spaceship{}, false
}

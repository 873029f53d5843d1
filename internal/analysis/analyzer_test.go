package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/patterns"
)

func mustPattern(t *testing.T, name string) patterns.Pattern {
	t.Helper()
	p, ok := patterns.ByName(name)
	if !ok {
		t.Fatalf("library pattern %q missing", name)
	}
	return p
}

func TestAnalyzeEmptySeed(t *testing.T) {
	a := New(100, 30, 30, life.Wrap)
	empty := patterns.Pattern{Name: "Empty", Width: 2, Height: 2}

	stats := a.AnalyzePattern(empty, 5, 5)

	ext, ok := stats.Classification.(Extinct)
	if !ok {
		t.Fatalf("expected Extinct, got %T", stats.Classification)
	}
	if ext.GenerationsToExtinction != 0 {
		t.Errorf("empty seed should be extinct at 0, got %d", ext.GenerationsToExtinction)
	}
	if stats.GenerationsAnalyzed != 0 {
		t.Errorf("expected 0 generations analyzed, got %d", stats.GenerationsAnalyzed)
	}
	if stats.FinalPopulation != 0 || stats.InitialPopulation != 0 {
		t.Error("populations should be zero")
	}
}

func TestAnalyzeBlockStillLife(t *testing.T) {
	a := New(100, 20, 20, life.Wrap)
	block := patterns.Pattern{
		Name:   "Block",
		Width:  2,
		Height: 2,
		Cells:  []patterns.Offset{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 0, DY: 1}, {DX: 1, DY: 1}},
	}

	stats := a.AnalyzePattern(block, 8, 8)

	st, ok := stats.Classification.(Stable)
	if !ok {
		t.Fatalf("expected Stable, got %T", stats.Classification)
	}
	if st.OscillatorPeriod != 0 {
		t.Errorf("block is a still life, got period %d", st.OscillatorPeriod)
	}
	if st.GenerationsToStabilize != 0 {
		t.Errorf("block is stable from the start, got %d", st.GenerationsToStabilize)
	}
	if st.FinalPopulation != 4 {
		t.Errorf("expected final population 4, got %d", st.FinalPopulation)
	}
	if stats.StableFormations[FormationBlock] != 1 {
		t.Errorf("expected 1 block formation, got %d", stats.StableFormations[FormationBlock])
	}
}

func TestAnalyzeBlinkerOscillator(t *testing.T) {
	a := New(100, 20, 20, life.Wrap)
	stats := a.AnalyzePattern(mustPattern(t, "blinker"), 8, 8)

	st, ok := stats.Classification.(Stable)
	if !ok {
		t.Fatalf("expected Stable, got %T", stats.Classification)
	}
	if st.OscillatorPeriod != 2 {
		t.Errorf("blinker period should be 2, got %d", st.OscillatorPeriod)
	}
	if st.GenerationsToStabilize != 0 {
		t.Errorf("blinker oscillates from generation 0, got %d", st.GenerationsToStabilize)
	}
	if st.FinalPopulation != 3 {
		t.Errorf("expected final population 3, got %d", st.FinalPopulation)
	}
}

func TestBlinkerFormationDetected(t *testing.T) {
	// A horizontal triple settles as an oscillator whose recorded final
	// board is the horizontal phase, which the formation scan recognizes.
	a := New(100, 20, 20, life.Wrap)
	row := patterns.Pattern{
		Name:   "Row",
		Width:  3,
		Height: 1,
		Cells:  []patterns.Offset{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 2, DY: 0}},
	}

	stats := a.AnalyzePattern(row, 8, 8)

	if _, ok := stats.Classification.(Stable); !ok {
		t.Fatalf("expected Stable, got %T", stats.Classification)
	}
	if stats.StableFormations[FormationBlinker] != 1 {
		t.Errorf("expected 1 blinker formation, got %d", stats.StableFormations[FormationBlinker])
	}
}

func TestAnalyzeGliderSpaceship(t *testing.T) {
	a := New(200, 50, 50, life.Wrap)
	stats := a.AnalyzePattern(mustPattern(t, "glider"), 20, 20)

	ship, ok := stats.Classification.(Spaceship)
	if !ok {
		t.Fatalf("expected Spaceship, got %T (%s)", stats.Classification, stats.Classification.Label())
	}
	if ship.Period != 4 {
		t.Errorf("glider period should be 4, got %d", ship.Period)
	}
	if ship.DX == 0 || ship.DY == 0 {
		t.Errorf("glider moves diagonally, got displacement (%d, %d)", ship.DX, ship.DY)
	}
	wantSpeed := math.Sqrt(float64(ship.DX*ship.DX+ship.DY*ship.DY)) / float64(ship.Period)
	if math.Abs(ship.Speed-wantSpeed) > 1e-9 {
		t.Errorf("speed %f inconsistent with displacement/period %f", ship.Speed, wantSpeed)
	}
}

func TestAnalyzeDiehardExtinct(t *testing.T) {
	a := New(400, 120, 120, life.Wrap)
	stats := a.AnalyzePattern(mustPattern(t, "diehard"), 56, 58)

	ext, ok := stats.Classification.(Extinct)
	if !ok {
		t.Fatalf("expected Extinct, got %T (%s)", stats.Classification, stats.Classification.Label())
	}
	if ext.GenerationsToExtinction != 130 {
		t.Errorf("diehard dies at generation 130, got %d", ext.GenerationsToExtinction)
	}
	if stats.FinalPopulation != 0 {
		t.Errorf("final population should be 0, got %d", stats.FinalPopulation)
	}
}

func TestAnalyzeUnknownWithinBudget(t *testing.T) {
	// The R-pentomino churns for far longer than this budget allows.
	a := New(20, 60, 60, life.Wrap)
	stats := a.AnalyzePattern(mustPattern(t, "r-pentomino"), 28, 28)

	if _, ok := stats.Classification.(Unknown); !ok {
		t.Fatalf("expected Unknown, got %T (%s)", stats.Classification, stats.Classification.Label())
	}
	if stats.GenerationsAnalyzed != 20 {
		t.Errorf("expected full 20-generation budget used, got %d", stats.GenerationsAnalyzed)
	}
}

func TestMaxPopulationBookkeeping(t *testing.T) {
	a := New(80, 60, 60, life.Wrap)
	stats := a.AnalyzePattern(mustPattern(t, "r-pentomino"), 28, 28)

	if len(stats.PopulationHistory) != stats.GenerationsAnalyzed+1 {
		t.Fatalf("history length %d does not match %d generations analyzed",
			len(stats.PopulationHistory), stats.GenerationsAnalyzed)
	}

	wantMax, wantGen := stats.PopulationHistory[0], 0
	for gen, pop := range stats.PopulationHistory {
		if pop > wantMax {
			wantMax, wantGen = pop, gen
		}
	}
	if stats.MaxPopulation != wantMax {
		t.Errorf("max population %d, want %d", stats.MaxPopulation, wantMax)
	}
	if stats.GenerationOfMax != wantGen {
		t.Errorf("generation of max %d, want first occurrence %d", stats.GenerationOfMax, wantGen)
	}
	if stats.FinalPopulation != stats.PopulationHistory[len(stats.PopulationHistory)-1] {
		t.Error("final population should be the last history entry")
	}
}

func TestComparePatterns(t *testing.T) {
	a := New(100, 40, 40, life.Wrap)
	stats := a.ComparePatterns([]Placement{
		{Pattern: mustPattern(t, "blinker"), X: 18, Y: 18},
		{Pattern: mustPattern(t, "glider"), X: 15, Y: 15},
	})

	if len(stats) != 2 {
		t.Fatalf("expected 2 results, got %d", len(stats))
	}
	if stats[0].Name != "Blinker" || stats[1].Name != "Glider" {
		t.Errorf("result order should follow input order: %s, %s", stats[0].Name, stats[1].Name)
	}
	if stats[0].Classification.Label() != "Oscillator (p=2)" {
		t.Errorf("blinker label: %s", stats[0].Classification.Label())
	}
	if stats[1].Classification.Label() != "Spaceship" {
		t.Errorf("glider label: %s", stats[1].Classification.Label())
	}
}

func TestDetectSpaceshipSynthetic(t *testing.T) {
	constPop := make([]int, 15)
	for i := range constPop {
		constPop[i] = 5
	}

	t.Run("linear motion period 2", func(t *testing.T) {
		centers := make([]point, 15)
		for i := range centers {
			centers[i] = point{10 + i/2, 20} // one cell right every 2 generations
		}
		ship, ok := detectSpaceship(centers, constPop)
		if !ok {
			t.Fatal("expected detection")
		}
		if ship.Period != 2 || ship.DX != 1 || ship.DY != 0 {
			t.Errorf("got period %d displacement (%d,%d)", ship.Period, ship.DX, ship.DY)
		}
	})

	t.Run("rejects unstable population", func(t *testing.T) {
		centers := make([]point, 15)
		for i := range centers {
			centers[i] = point{10 + i/2, 20}
		}
		pops := make([]int, 15)
		for i := range pops {
			pops[i] = 5 + i%2
		}
		if _, ok := detectSpaceship(centers, pops); ok {
			t.Error("changing population must not classify as spaceship")
		}
	})

	t.Run("rejects accelerating centroid", func(t *testing.T) {
		centers := make([]point, 15)
		for i := range centers {
			centers[i] = point{i * i, 20} // displacement grows every sample
		}
		if _, ok := detectSpaceship(centers, constPop); ok {
			t.Error("inconsistent displacements must not classify as spaceship")
		}
	})
}

package analysis

import (
	"fmt"
	"time"

	"github.com/san-kum/lifelab/internal/life"
)

// Classification is the closed set of long-run behaviors the analyzer can
// assign to a pattern. Variants are small value structs; Emitter holds
// another Classification through the interface, which gives the recursive
// case its indirection.
type Classification interface {
	// Label is the short form used in comparison tables.
	Label() string
	// Describe is the full classification text used in reports.
	Describe() string
}

// Extinct marks a pattern whose population reached zero.
type Extinct struct {
	GenerationsToExtinction int
}

func (e Extinct) Label() string { return "Extinct" }
func (e Extinct) Describe() string {
	return fmt.Sprintf("Extinct (died out after %d generations)", e.GenerationsToExtinction)
}

// Stable marks a pattern that settled into a still life or oscillator.
// OscillatorPeriod 0 means a still life (period 1).
type Stable struct {
	GenerationsToStabilize int
	OscillatorPeriod       int
	FinalPopulation        int
}

func (s Stable) Label() string {
	if s.OscillatorPeriod > 0 {
		return fmt.Sprintf("Oscillator (p=%d)", s.OscillatorPeriod)
	}
	return "Still Life"
}

func (s Stable) Describe() string {
	if s.OscillatorPeriod > 0 {
		return fmt.Sprintf("Oscillator with period %d (stabilized after %d generations)\nFinal stable population: %d",
			s.OscillatorPeriod, s.GenerationsToStabilize, s.FinalPopulation)
	}
	return fmt.Sprintf("Still life (stabilized after %d generations)\nFinal stable population: %d",
		s.GenerationsToStabilize, s.FinalPopulation)
}

// Exploding marks sustained growth beyond the analysis thresholds.
type Exploding struct {
	AverageGrowthRate float64
}

func (e Exploding) Label() string { return "Exploding" }
func (e Exploding) Describe() string {
	return fmt.Sprintf("Exploding pattern (average growth rate: %.2f cells/generation)", e.AverageGrowthRate)
}

// Spaceship marks a pattern translating by a fixed displacement each period.
type Spaceship struct {
	Period int
	DX, DY int
	Speed  float64 // cells per generation
}

func (s Spaceship) Label() string { return "Spaceship" }
func (s Spaceship) Describe() string {
	return fmt.Sprintf("Spaceship with period %d and displacement (%d, %d)\nSpeed: %.2f cells/generation",
		s.Period, s.DX, s.DY, s.Speed)
}

// Emitter marks a pattern that periodically produces another classifiable
// pattern. The analyzer never assigns it on its own; it exists for callers
// that classify composites (a glider gun emitting Spaceships, say).
type Emitter struct {
	Period  int
	Emitted Classification
}

func (e Emitter) Label() string { return "Emitter" }
func (e Emitter) Describe() string {
	emitted := "Unknown"
	if e.Emitted != nil {
		emitted = e.Emitted.Label()
	}
	return fmt.Sprintf("Pattern emitter with period %d\nEmits: %s", e.Period, emitted)
}

// Unknown is the classification when the generation budget runs out.
type Unknown struct{}

func (Unknown) Label() string    { return "Unknown" }
func (Unknown) Describe() string { return "Unknown pattern type" }

// Stats collects everything observed while analyzing one pattern.
type Stats struct {
	Name                string
	InitialPopulation   int
	MaxPopulation       int
	GenerationOfMax     int
	FinalPopulation     int
	GenerationsAnalyzed int
	Classification      Classification
	StableFormations    map[string]int
	PopulationHistory   []int
	Duration            time.Duration
	// FinalBoard is the board as it stood when analysis stopped; consumers
	// use it for snapshots and post-hoc inspection.
	FinalBoard *life.Grid
}

func newStats(name string, initialPopulation int) *Stats {
	return &Stats{
		Name:              name,
		InitialPopulation: initialPopulation,
		MaxPopulation:     initialPopulation,
		FinalPopulation:   initialPopulation,
		Classification:    Unknown{},
		StableFormations:  make(map[string]int),
		PopulationHistory: []int{initialPopulation},
	}
}

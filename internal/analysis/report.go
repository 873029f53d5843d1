package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"text/tabwriter"
)

// histogramLimit is the largest history rendered generation-by-generation;
// longer runs get quartile key points instead.
const histogramLimit = 100

// Report renders a deterministic multi-line summary of the stats. All text
// is a pure function of the Stats value.
func Report(s *Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pattern Analysis: %s\n", s.Name)
	fmt.Fprintf(&b, "====================%s\n\n", strings.Repeat("=", len(s.Name)))

	fmt.Fprintf(&b, "Initial population: %d\n", s.InitialPopulation)
	fmt.Fprintf(&b, "Final population: %d\n", s.FinalPopulation)
	fmt.Fprintf(&b, "Maximum population: %d (generation %d)\n", s.MaxPopulation, s.GenerationOfMax)
	fmt.Fprintf(&b, "Generations analyzed: %d\n", s.GenerationsAnalyzed)
	fmt.Fprintf(&b, "Analysis duration: %v\n\n", s.Duration)

	fmt.Fprintf(&b, "Pattern classification: %s\n", s.Classification.Describe())

	if len(s.StableFormations) > 0 {
		b.WriteString("\nStable formations detected:\n")
		names := make([]string, 0, len(s.StableFormations))
		for name := range s.StableFormations {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  - %d x %s\n", s.StableFormations[name], name)
		}
	}

	if len(s.PopulationHistory) <= histogramLimit {
		writeHistogram(&b, s)
	} else {
		writeKeyPoints(&b, s)
	}

	return b.String()
}

func writeHistogram(b *strings.Builder, s *Stats) {
	b.WriteString("\nPopulation history:\n")

	maxPop := 1
	for _, pop := range s.PopulationHistory {
		if pop > maxPop {
			maxPop = pop
		}
	}
	scale := 40.0 / float64(maxPop)

	for gen, pop := range s.PopulationHistory {
		bar := int(math.Round(float64(pop) * scale))
		fmt.Fprintf(b, "%4d: %5d %s\n", gen, pop, strings.Repeat("#", bar))
	}
}

func writeKeyPoints(b *strings.Builder, s *Stats) {
	b.WriteString("\nPopulation key points:\n")

	fmt.Fprintf(b, "Generation %4d: %d\n", 0, s.PopulationHistory[0])
	fmt.Fprintf(b, "Generation %4d: %d (maximum)\n", s.GenerationOfMax, s.MaxPopulation)

	step := s.GenerationsAnalyzed / 4
	for i := 1; i < 4; i++ {
		gen := i * step
		if gen < len(s.PopulationHistory) {
			fmt.Fprintf(b, "Generation %4d: %d\n", gen, s.PopulationHistory[gen])
		}
	}

	fmt.Fprintf(b, "Generation %4d: %d\n", s.GenerationsAnalyzed, s.FinalPopulation)
}

// CompareReport renders a comparison table over several analysis results,
// followed by a growth-rate section when any pattern exploded.
func CompareReport(stats []*Stats) string {
	if len(stats) == 0 {
		return "No patterns to compare."
	}

	var b strings.Builder
	b.WriteString("Pattern Comparison Report\n")
	b.WriteString("========================\n\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATTERN\tINIT. POP.\tMAX. POP.\tFINAL POP.\tCLASSIFICATION")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
			s.Name, s.InitialPopulation, s.MaxPopulation, s.FinalPopulation, s.Classification.Label())
	}
	w.Flush()

	var exploding []*Stats
	for _, s := range stats {
		if _, ok := s.Classification.(Exploding); ok {
			exploding = append(exploding, s)
		}
	}
	if len(exploding) > 0 {
		b.WriteString("\nGrowth Rate Comparison:\n")
		b.WriteString("----------------------\n")
		for _, s := range exploding {
			rate := s.Classification.(Exploding).AverageGrowthRate
			fmt.Fprintf(&b, "%-20s: %.2f cells/generation\n", s.Name, rate)
		}
	}

	return b.String()
}

// Package storage persists analysis runs under a data directory, one
// subdirectory per run: metadata.json, population.csv, and final.grid
// (the board snapshot in the binary grid format).
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/lifelab/internal/analysis"
	"github.com/san-kum/lifelab/internal/life"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
	boardFile      = "final.grid"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the queryable summary of one stored analysis run.
type RunMetadata struct {
	ID                  string         `json:"id"`
	Pattern             string         `json:"pattern"`
	Timestamp           time.Time      `json:"timestamp"`
	Width               int            `json:"width"`
	Height              int            `json:"height"`
	Boundary            string         `json:"boundary"`
	Classification      string         `json:"classification"`
	InitialPopulation   int            `json:"initial_population"`
	FinalPopulation     int            `json:"final_population"`
	MaxPopulation       int            `json:"max_population"`
	GenerationOfMax     int            `json:"generation_of_max"`
	GenerationsAnalyzed int            `json:"generations_analyzed"`
	StableFormations    map[string]int `json:"stable_formations,omitempty"`
	DurationSeconds     float64        `json:"duration_seconds"`
}

// Save writes one analysis run and returns its id. The board snapshot is
// written when the stats carry a final board.
func (s *Store) Save(stats *analysis.Stats) (string, error) {
	runID := fmt.Sprintf("%s_%s", slug(stats.Name), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:                  runID,
		Pattern:             stats.Name,
		Timestamp:           time.Now(),
		Classification:      stats.Classification.Label(),
		InitialPopulation:   stats.InitialPopulation,
		FinalPopulation:     stats.FinalPopulation,
		MaxPopulation:       stats.MaxPopulation,
		GenerationOfMax:     stats.GenerationOfMax,
		GenerationsAnalyzed: stats.GenerationsAnalyzed,
		StableFormations:    stats.StableFormations,
		DurationSeconds:     stats.Duration.Seconds(),
	}
	if stats.FinalBoard != nil {
		meta.Width, meta.Height = stats.FinalBoard.Dimensions()
		meta.Boundary = stats.FinalBoard.Boundary().String()
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, populationFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"generation", "population"}); err != nil {
		return "", err
	}
	for gen, pop := range stats.PopulationHistory {
		if err := w.Write([]string{strconv.Itoa(gen), strconv.Itoa(pop)}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	if stats.FinalBoard != nil {
		if err := stats.FinalBoard.SaveToFile(filepath.Join(runDir, boardFile)); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip unreadable runs rather than failing the listing
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Load reads a run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: corrupt metadata for %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadHistory reads a run's per-generation population counts.
func (s *Store) LoadHistory(runID string) ([]int, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var history []int
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("storage: malformed population row %d in %s", i, runID)
		}
		pop, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("storage: malformed population row %d in %s: %w", i, runID, err)
		}
		history = append(history, pop)
	}
	return history, nil
}

// LoadBoard reconstructs a run's final board snapshot.
func (s *Store) LoadBoard(runID string) (*life.Grid, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	if meta.Width == 0 || meta.Height == 0 {
		return nil, fmt.Errorf("storage: run %s has no board snapshot", runID)
	}
	g := life.NewGrid(meta.Width, meta.Height, life.BoundaryFromString(meta.Boundary))
	if err := g.LoadFromFile(filepath.Join(s.baseDir, runID, boardFile)); err != nil {
		return nil, err
	}
	return g, nil
}

func slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

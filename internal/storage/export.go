package storage

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the full JSON export of one stored run.
type ExportData struct {
	RunMetadata
	PopulationHistory []int `json:"population_history"`
}

// ExportJSON writes a run's metadata and population history as indented
// JSON to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	history, err := s.LoadHistory(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, PopulationHistory: history})
}

// ExportJSONStdout is ExportJSON to standard output.
func (s *Store) ExportJSONStdout(runID string) error {
	return s.ExportJSON(os.Stdout, runID)
}

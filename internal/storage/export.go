package storage

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the JSON shape of an exported run: metadata plus the
// raw trajectory rows from the CSV.
type ExportData struct {
	Meta       RunMetadata `json:"meta"`
	Times      []float64   `json:"times"`
	Trajectory [][]float64 `json:"trajectory"`
}

// ExportJSON writes a recorded run as a single JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	rows, times, err := s.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Meta:       *meta,
		Times:      times,
		Trajectory: rows,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile is ExportJSON to a file path.
func (s *Store) ExportJSONFile(runID, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ExportJSON(runID, file)
}

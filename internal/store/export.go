package store

import (
	"encoding/json"
	"io"
)

// ExportData is the flat JSON form of a recorded run, for external
// analysis tooling.
type ExportData struct {
	Meta   RunMetadata `json:"meta"`
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// ExportJSON writes the full run (metadata plus trajectory) to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	states, times, err := s.LoadStates(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{
		Meta:   *meta,
		Times:  times,
		States: states,
	})
}

package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/spinwheel/internal/sim"
)

type ExportData struct {
	ID       string             `json:"id"`
	Label    string             `json:"label"`
	Governor string             `json:"governor"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Steps    int                `json:"steps"`
	Columns  []string           `json:"columns"`
	Times    []float64          `json:"times"`
	States   [][]float64        `json:"states"`
	Metrics  map[string]float64 `json:"metrics"`
}

func buildExport(meta *RunMetadata, states [][]float64, times []float64) ExportData {
	return ExportData{
		ID:       meta.ID,
		Label:    meta.Label,
		Governor: meta.Governor,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Steps:    len(times),
		Columns:  sim.Columns,
		Times:    times,
		States:   states,
		Metrics:  meta.Metrics,
	}
}

func writeJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes a full run export to path.
func ExportJSON(path string, meta *RunMetadata, states [][]float64, times []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeJSON(file, buildExport(meta, states, times))
}

// ExportJSONStdout writes a full run export to stdout.
func ExportJSONStdout(meta *RunMetadata, states [][]float64, times []float64) error {
	return writeJSON(os.Stdout, buildExport(meta, states, times))
}

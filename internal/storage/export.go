package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
)

type ExportData struct {
	ID         string             `json:"id"`
	Amplitude  float64            `json:"amplitude"`
	Wavelength float64            `json:"wavelength"`
	WaterDepth float64            `json:"water_depth"`
	Gravity    float64            `json:"gravity"`
	Omega      float64            `json:"omega"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	Elevations [][]float64        `json:"elevations"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSONStdout dumps a stored run as indented JSON.
func ExportJSONStdout(meta *RunMetadata, series [][]float64, times []float64) error {
	data := ExportData{
		ID:         meta.ID,
		Amplitude:  meta.Amplitude,
		Wavelength: meta.Wavelength,
		WaterDepth: meta.WaterDepth,
		Gravity:    meta.Gravity,
		Omega:      meta.Omega,
		Dt:         meta.Dt,
		Duration:   meta.Duration,
		Steps:      len(times),
		Times:      times,
		Elevations: series,
		Metrics:    meta.Metrics,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSVStdout dumps a stored run's probe series as CSV.
func ExportCSVStdout(series [][]float64, times []float64) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if len(series) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := range series[0] {
		header = append(header, "eta"+strconv.Itoa(i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range series {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range series[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/davidAlgis/airywaves/internal/sim"
	"github.com/davidAlgis/airywaves/internal/wave"
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

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Amplitude  float64            `json:"amplitude"`
	Wavelength float64            `json:"wavelength"`
	WaterDepth float64            `json:"water_depth"`
	Gravity    float64            `json:"gravity"`
	Omega      float64            `json:"omega"`
	Period     float64            `json:"period"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes one run directory: metadata.json plus probes.csv holding
// the recorded elevation time series.
func (s *Store) Save(p wave.Parameters, dt, duration float64, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("wave_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Amplitude:  p.Amplitude,
		Wavelength: p.Wavelength,
		WaterDepth: p.Depth,
		Gravity:    p.Gravity,
		Omega:      p.Omega(),
		Period:     p.Period(),
		Dt:         dt,
		Duration:   duration,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "probes.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for i := 0; i < sim.ProbeCount; i++ {
		header = append(header, fmt.Sprintf("eta%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.Probes {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, val := range result.Probes[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads the probe elevations back: one row per step, one
// column per probe.
func (s *Store) LoadSeries(runID string) ([][]float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "probes.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	series := make([][]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		times = append(times, t)
		series = append(series, row)
	}

	return series, times, nil
}

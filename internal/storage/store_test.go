package storage

import (
	"testing"

	"github.com/davidAlgis/airywaves/internal/sim"
	"github.com/davidAlgis/airywaves/internal/wave"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p, err := wave.NewParameters(1.0, 10.0, 50.0, 9.81)
	if err != nil {
		t.Fatalf("params failed: %v", err)
	}

	result := &sim.Result{
		Times:   []float64{0, 0.1, 0.2},
		Probes:  [][]float64{{1, 0, -1, 0}, {0.9, 0.1, -0.9, -0.1}, {0.8, 0.2, -0.8, -0.2}},
		Metrics: map[string]float64{"peak_elevation": 1.0},
		Steps:   3,
	}

	runID, err := st.Save(p, 0.1, 10.0, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Wavelength != 10.0 {
		t.Errorf("expected wavelength 10.0, got %f", meta.Wavelength)
	}
	if meta.Omega <= 0 {
		t.Error("expected positive omega in metadata")
	}
	if meta.Metrics["peak_elevation"] != 1.0 {
		t.Errorf("expected metric 1.0, got %f", meta.Metrics["peak_elevation"])
	}

	series, times, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(series) != 3 || len(times) != 3 {
		t.Fatalf("expected 3 rows, got %d/%d", len(series), len(times))
	}
	if len(series[0]) != sim.ProbeCount {
		t.Errorf("expected %d probes, got %d", sim.ProbeCount, len(series[0]))
	}
	if series[1][0] != 0.9 {
		t.Errorf("expected 0.9, got %f", series[1][0])
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

package metrics

import (
	"math"
	"testing"

	"github.com/davidAlgis/airywaves/internal/sim"
)

func TestPeakElevation(t *testing.T) {
	m := NewPeakElevation()

	m.Observe(sim.Frame{Surface: []float64{0.2, -0.9, 0.5}})
	m.Observe(sim.Frame{Surface: []float64{0.1, 0.3}})

	if m.Value() != 0.9 {
		t.Errorf("expected peak 0.9, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero peak after reset")
	}
}

func TestMaxParticleSpeed(t *testing.T) {
	m := NewMaxParticleSpeed()

	m.Observe(sim.Frame{Vectors: []sim.Vector{{U: 3, W: 4}, {U: 1, W: 0}}})

	if math.Abs(m.Value()-5) > 1e-12 {
		t.Errorf("expected max speed 5, got %f", m.Value())
	}
}

func TestSignificantHeight(t *testing.T) {
	m := NewSignificantHeight()

	// Sample a full period of a unit cosine; Hs should approach 4/sqrt(2).
	n := 1000
	for i := 0; i < n; i++ {
		eta := math.Cos(2 * math.Pi * float64(i) / float64(n))
		m.Observe(sim.Frame{Surface: []float64{eta}})
	}

	expected := 4 / math.Sqrt2
	if math.Abs(m.Value()-expected) > 0.01 {
		t.Errorf("expected Hs ~%f, got %f", expected, m.Value())
	}
}

func TestSignificantHeightEmpty(t *testing.T) {
	m := NewSignificantHeight()
	if m.Value() != 0 {
		t.Error("expected zero Hs with no samples")
	}
}

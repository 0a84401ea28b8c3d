package analysis

import (
	"math"
	"testing"
)

func TestDominantFrequency(t *testing.T) {
	// 2 Hz cosine sampled at 100 Hz for 512 samples.
	freq, dt := 2.0, 0.01
	data := make([]float64, 512)
	for i := range data {
		data[i] = math.Cos(2 * math.Pi * freq * float64(i) * dt)
	}

	got := DominantFrequency(data, dt)
	// Bin resolution is 1/(512*0.01) ~ 0.195 Hz.
	if math.Abs(got-freq) > 0.2 {
		t.Errorf("expected ~%f Hz, got %f", freq, got)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if f := DominantFrequency(nil, 0.01); f != 0 {
		t.Errorf("expected 0 for empty series, got %f", f)
	}
	if f := DominantFrequency([]float64{1, 2}, 0); f != 0 {
		t.Errorf("expected 0 for zero dt, got %f", f)
	}
}

func TestPowerSpectrumDC(t *testing.T) {
	data := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	ps := PowerSpectrum(data)

	if len(ps) != 4 {
		t.Fatalf("expected 4 bins, got %d", len(ps))
	}
	for i := 1; i < len(ps); i++ {
		if ps[i] > 1e-9 {
			t.Errorf("expected no power in bin %d, got %f", i, ps[i])
		}
	}
}

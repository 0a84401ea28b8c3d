package metrics

import (
	"math"

	"github.com/davidAlgis/airywaves/internal/sim"
)

// PeakElevation tracks the largest |eta| seen over a run. For a single
// linear component it converges to the amplitude.
type PeakElevation struct {
	peak float64
}

func NewPeakElevation() *PeakElevation { return &PeakElevation{} }

func (p *PeakElevation) Name() string { return "peak_elevation" }

func (p *PeakElevation) Observe(f sim.Frame) {
	for _, eta := range f.Surface {
		if a := math.Abs(eta); a > p.peak {
			p.peak = a
		}
	}
}

func (p *PeakElevation) Value() float64 { return p.peak }
func (p *PeakElevation) Reset()         { p.peak = 0 }

// MaxParticleSpeed tracks the largest velocity magnitude over the emitted
// field.
type MaxParticleSpeed struct {
	max float64
}

func NewMaxParticleSpeed() *MaxParticleSpeed { return &MaxParticleSpeed{} }

func (m *MaxParticleSpeed) Name() string { return "max_particle_speed" }

func (m *MaxParticleSpeed) Observe(f sim.Frame) {
	for _, v := range f.Vectors {
		if s := math.Hypot(v.U, v.W); s > m.max {
			m.max = s
		}
	}
}

func (m *MaxParticleSpeed) Value() float64 { return m.max }
func (m *MaxParticleSpeed) Reset()         { m.max = 0 }

// SignificantHeight estimates Hs = 4*sqrt(m0) from the variance of the
// elevation at the first surface sample. For a pure cosine of amplitude a
// this tends to 4*a/sqrt(2).
type SignificantHeight struct {
	sum, sumSq float64
	samples    int
}

func NewSignificantHeight() *SignificantHeight { return &SignificantHeight{} }

func (s *SignificantHeight) Name() string { return "significant_height" }

func (s *SignificantHeight) Observe(f sim.Frame) {
	if len(f.Surface) == 0 {
		return
	}
	eta := f.Surface[0]
	s.sum += eta
	s.sumSq += eta * eta
	s.samples++
}

func (s *SignificantHeight) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	mean := s.sum / float64(s.samples)
	variance := s.sumSq/float64(s.samples) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return 4 * math.Sqrt(variance)
}

func (s *SignificantHeight) Reset() {
	s.sum, s.sumSq = 0, 0
	s.samples = 0
}

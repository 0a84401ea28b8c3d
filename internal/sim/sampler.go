package sim

import "github.com/davidAlgis/airywaves/internal/wave"

// Vector is one velocity sample of the field.
type Vector struct {
	X, Z float64
	U, W float64
}

// Frame is the complete snapshot at one instant: surface elevation at
// every grid x and the velocity field at every submerged lattice point.
// A frame depends only on the wave parameters and t, never on the
// previous frame.
type Frame struct {
	Time    float64
	Surface []float64
	Vectors []Vector
}

// Sampler binds immutable wave parameters to a fixed grid and produces
// frames on demand.
type Sampler struct {
	params wave.Parameters
	grid   *Grid
}

func NewSampler(p wave.Parameters, grid *Grid) *Sampler {
	return &Sampler{params: p, grid: grid}
}

func (s *Sampler) Params() wave.Parameters { return s.params }
func (s *Sampler) Grid() *Grid             { return s.grid }

// Sample evaluates the full grid at time t and returns a fresh frame.
// Lattice points above the instantaneous free surface yield no vector,
// matching the drawn field of arrows ending at the waterline.
func (s *Sampler) Sample(t float64) Frame {
	f := Frame{
		Time:    t,
		Surface: make([]float64, len(s.grid.SurfaceX)),
		Vectors: make([]Vector, 0, len(s.grid.ArrowX)*len(s.grid.ArrowZ)),
	}

	for i, x := range s.grid.SurfaceX {
		f.Surface[i] = s.params.SurfaceElevation(x, t)
	}

	for _, x := range s.grid.ArrowX {
		eta := s.params.SurfaceElevation(x, t)
		for _, z := range s.grid.ArrowZ {
			if z > eta {
				continue
			}
			u, w := s.params.ParticleVelocity(x, z, t)
			f.Vectors = append(f.Vectors, Vector{X: x, Z: z, U: u, W: w})
		}
	}

	return f
}

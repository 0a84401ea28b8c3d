package wave

import (
	"fmt"
	"math"
)

// Seawater density used for energy density, kg/m^3.
const rho = 1025.0

// Parameters holds the physical description of a single Airy wave
// component. Values are validated once at construction and never
// mutated afterwards.
type Parameters struct {
	Amplitude  float64
	Wavelength float64
	Depth      float64
	Gravity    float64
}

// NewParameters validates and builds wave parameters. Every field must be
// strictly positive; anything else fails with ErrInvalidParameter before
// any grid or window is built.
func NewParameters(amplitude, wavelength, depth, gravity float64) (Parameters, error) {
	switch {
	case amplitude <= 0:
		return Parameters{}, fmt.Errorf("%w: amplitude %g", ErrInvalidParameter, amplitude)
	case wavelength <= 0:
		return Parameters{}, fmt.Errorf("%w: wavelength %g", ErrInvalidParameter, wavelength)
	case depth <= 0:
		return Parameters{}, fmt.Errorf("%w: water depth %g", ErrInvalidParameter, depth)
	case gravity <= 0:
		return Parameters{}, fmt.Errorf("%w: gravity %g", ErrInvalidParameter, gravity)
	}
	return Parameters{
		Amplitude:  amplitude,
		Wavelength: wavelength,
		Depth:      depth,
		Gravity:    gravity,
	}, nil
}

// Dispersion solves the linear dispersion relation omega = sqrt(g*k*tanh(k*h)).
// Closed form, no iteration; real and non-negative for k, h, g > 0.
func Dispersion(k, h, g float64) float64 {
	return math.Sqrt(g * k * math.Tanh(k*h))
}

// Wavenumber returns k = 2*pi/wavelength.
func (p Parameters) Wavenumber() float64 {
	return 2 * math.Pi / p.Wavelength
}

// Omega returns the angular frequency from the dispersion relation.
func (p Parameters) Omega() float64 {
	return Dispersion(p.Wavenumber(), p.Depth, p.Gravity)
}

// Period returns T = 2*pi/omega.
func (p Parameters) Period() float64 {
	return 2 * math.Pi / p.Omega()
}

// PhaseSpeed returns c = omega/k.
func (p Parameters) PhaseSpeed() float64 {
	return p.Omega() / p.Wavenumber()
}

// GroupSpeed returns cg = c/2 * (1 + 2kh/sinh(2kh)).
func (p Parameters) GroupSpeed() float64 {
	kh := p.Wavenumber() * p.Depth
	return p.PhaseSpeed() / 2 * (1 + 2*kh/math.Sinh(2*kh))
}

// DeepWater reports whether k*h exceeds pi, the usual deep-water cutoff
// where tanh(k*h) is within a fraction of a percent of 1.
func (p Parameters) DeepWater() bool {
	return p.Wavenumber()*p.Depth > math.Pi
}

// Steepness returns k*a. Linear theory assumes this stays small.
func (p Parameters) Steepness() float64 {
	return p.Wavenumber() * p.Amplitude
}

// EnergyDensity returns the mean energy per unit surface area,
// E = 0.5*rho*g*a^2.
func (p Parameters) EnergyDensity() float64 {
	return 0.5 * rho * p.Gravity * p.Amplitude * p.Amplitude
}

// SurfaceElevation returns eta(x, t) = a*cos(k*x - omega*t).
func (p Parameters) SurfaceElevation(x, t float64) float64 {
	return p.Amplitude * math.Cos(p.Wavenumber()*x-p.Omega()*t)
}

// ParticleVelocity returns the horizontal and vertical water velocity at
// depth z (z = 0 at the still-water line, negative downward).
//
// Points above the instantaneous free surface are in air and return (0, 0).
// Points below the seabed are clamped to z = -h; the hyperbolic terms stay
// finite there but the flow is meaningless past the bed.
func (p Parameters) ParticleVelocity(x, z, t float64) (u, w float64) {
	eta := p.SurfaceElevation(x, t)
	if z > eta {
		return 0, 0
	}
	if z < -p.Depth {
		z = -p.Depth
	}
	k := p.Wavenumber()
	omega := p.Omega()
	phase := k*x - omega*t
	scale := p.Amplitude * omega / math.Sinh(k*p.Depth)
	u = scale * math.Cosh(k*(z+p.Depth)) * math.Cos(phase)
	w = scale * math.Sinh(k*(z+p.Depth)) * math.Sin(phase)
	return u, w
}

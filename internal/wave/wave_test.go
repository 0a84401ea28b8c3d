package wave_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/davidAlgis/airywaves/internal/wave"
)

var _ = Describe("Parameters", func() {
	It("rejects non-positive amplitude", func() {
		_, err := wave.NewParameters(0, 10, 50, 9.81)
		Expect(err).To(MatchError(wave.ErrInvalidParameter))
	})

	It("rejects non-positive wavelength", func() {
		_, err := wave.NewParameters(1, -1, 50, 9.81)
		Expect(err).To(MatchError(wave.ErrInvalidParameter))
	})

	It("rejects negative water depth before anything else is built", func() {
		_, err := wave.NewParameters(1, 10, -5, 9.81)
		Expect(err).To(MatchError(wave.ErrInvalidParameter))
	})

	It("rejects non-positive gravity", func() {
		_, err := wave.NewParameters(1, 10, 50, 0)
		Expect(err).To(MatchError(wave.ErrInvalidParameter))
	})

	It("accepts the default configuration", func() {
		p, err := wave.NewParameters(1.0, 10.0, 50.0, 9.81)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Wavenumber()).To(BeNumerically("~", 2*math.Pi/10, 1e-12))
	})
})

var _ = Describe("Dispersion", func() {
	It("is positive for positive arguments", func() {
		for _, k := range []float64{0.01, 0.1, 1, 10} {
			Expect(wave.Dispersion(k, 50, 9.81)).To(BeNumerically(">", 0))
		}
	})

	It("is monotonically increasing in k", func() {
		prev := 0.0
		for k := 0.05; k < 5; k += 0.05 {
			omega := wave.Dispersion(k, 50, 9.81)
			Expect(omega).To(BeNumerically(">", prev))
			prev = omega
		}
	})

	It("matches the deep-water scenario", func() {
		// a=1, lambda=10, h=50, g=9.81: k*h ~ 31.4, tanh ~ 1.
		p, _ := wave.NewParameters(1.0, 10.0, 50.0, 9.81)
		Expect(p.Wavenumber()).To(BeNumerically("~", 0.6283, 1e-4))
		Expect(p.Omega()).To(BeNumerically("~", 2.484, 1e-3))
		Expect(p.Period()).To(BeNumerically("~", 2.53, 1e-2))
		Expect(p.DeepWater()).To(BeTrue())
	})

	It("approaches sqrt(g*h)*k in shallow water", func() {
		k, h, g := 0.01, 2.0, 9.81
		Expect(wave.Dispersion(k, h, g)).To(BeNumerically("~", k*math.Sqrt(g*h), 1e-4))
	})
})

var _ = Describe("SurfaceElevation", func() {
	var p wave.Parameters

	BeforeEach(func() {
		var err error
		p, err = wave.NewParameters(2.0, 10.0, 50.0, 9.81)
		Expect(err).NotTo(HaveOccurred())
	})

	It("reduces to a static cosine at t=0", func() {
		k := p.Wavenumber()
		for _, x := range []float64{0, 1.3, 5, 17.2} {
			Expect(p.SurfaceElevation(x, 0)).To(BeNumerically("~", 2.0*math.Cos(k*x), 1e-12))
		}
	})

	It("peaks at the amplitude at the origin", func() {
		Expect(p.SurfaceElevation(0, 0)).To(BeNumerically("~", 2.0, 1e-12))
	})

	It("is periodic in x with period lambda", func() {
		for _, x := range []float64{0, 2.7, 9.9} {
			Expect(p.SurfaceElevation(x+10.0, 1.5)).To(BeNumerically("~", p.SurfaceElevation(x, 1.5), 1e-9))
		}
	})

	It("is periodic in t with period 2*pi/omega", func() {
		T := p.Period()
		for _, t := range []float64{0, 0.4, 3.3} {
			Expect(p.SurfaceElevation(4.2, t+T)).To(BeNumerically("~", p.SurfaceElevation(4.2, t), 1e-9))
		}
	})
})

var _ = Describe("ParticleVelocity", func() {
	var p wave.Parameters

	BeforeEach(func() {
		var err error
		p, err = wave.NewParameters(1.0, 10.0, 50.0, 9.81)
		Expect(err).NotTo(HaveOccurred())
	})

	It("matches the linear profile at the still-water line", func() {
		k, omega, h := p.Wavenumber(), p.Omega(), p.Depth
		u, w := p.ParticleVelocity(0, 0, 0)
		Expect(u).To(BeNumerically("~", omega*math.Cosh(k*h)/math.Sinh(k*h), 1e-9))
		Expect(w).To(BeNumerically("~", 0, 1e-9))
	})

	It("agrees with the a*g*k/omega form of the horizontal velocity", func() {
		// Equivalent via omega^2 = g*k*tanh(k*h).
		k, omega, g := p.Wavenumber(), p.Omega(), p.Gravity
		u, _ := p.ParticleVelocity(0, 0, 0)
		Expect(u).To(BeNumerically("~", g*k/omega, 1e-9))
	})

	It("returns zero above the free surface", func() {
		eta := p.SurfaceElevation(0, 0)
		u, w := p.ParticleVelocity(0, eta+0.1, 0)
		Expect(u).To(BeZero())
		Expect(w).To(BeZero())
	})

	It("clamps samples below the seabed to the bed value", func() {
		uBed, wBed := p.ParticleVelocity(3, -p.Depth, 1)
		uBelow, wBelow := p.ParticleVelocity(3, -p.Depth-20, 1)
		Expect(uBelow).To(Equal(uBed))
		Expect(wBelow).To(Equal(wBed))
	})

	It("decays with depth", func() {
		u0, _ := p.ParticleVelocity(0, 0, 0)
		u5, _ := p.ParticleVelocity(0, -5, 0)
		u20, _ := p.ParticleVelocity(0, -20, 0)
		Expect(math.Abs(u5)).To(BeNumerically("<", math.Abs(u0)))
		Expect(math.Abs(u20)).To(BeNumerically("<", math.Abs(u5)))
	})
})

var _ = Describe("Derived quantities", func() {
	It("halves the phase speed in deep water", func() {
		p, _ := wave.NewParameters(1.0, 10.0, 500.0, 9.81)
		Expect(p.GroupSpeed()).To(BeNumerically("~", p.PhaseSpeed()/2, 1e-3))
	})

	It("computes steepness as k*a", func() {
		p, _ := wave.NewParameters(0.5, 10.0, 50.0, 9.81)
		Expect(p.Steepness()).To(BeNumerically("~", 0.5*2*math.Pi/10, 1e-12))
	})
})

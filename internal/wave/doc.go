// Package wave evaluates linear (Airy) wave kinematics in closed form.
//
// The free surface is eta(x,t) = a*cos(k*x - omega*t) with the angular
// frequency fixed by the dispersion relation omega = sqrt(g*k*tanh(k*h)).
// Particle velocities below the surface follow the standard linear-theory
// profile:
//
//	u = a*omega * cosh(k*(z+h))/sinh(k*h) * cos(k*x - omega*t)
//	w = a*omega * sinh(k*(z+h))/sinh(k*h) * sin(k*x - omega*t)
//
// Everything here is a pure function of [Parameters] and time; the package
// holds no mutable state and is safe for concurrent use.
package wave

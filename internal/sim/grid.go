package sim

import "github.com/davidAlgis/airywaves/internal/wave"

const (
	// Number of x samples along the surface curve.
	surfaceSamples = 200
	// Vertical headroom above the crest line, in meters.
	topMargin = 1.0
)

// Grid holds the fixed sample positions for one run: an ordered sequence
// of x positions for the surface curve and an (x, z) lattice for the
// velocity field. Built once from the wave parameters, never mutated.
type Grid struct {
	XMin, XMax float64
	YTop, YBot float64
	SurfaceX   []float64
	ArrowX     []float64
	ArrowZ     []float64
}

// NewGrid builds the spatial grid for the given parameters. The horizontal
// domain spans two wavelengths; the vertical domain runs from the seabed
// to one margin above the crest. Arrow rows use a p^2 mapping so they
// cluster near the free surface where the velocity profile changes fastest.
func NewGrid(p wave.Parameters, gridX, gridY int) *Grid {
	if gridX < 2 {
		gridX = 2
	}
	if gridY < 2 {
		gridY = 2
	}

	g := &Grid{
		XMin: 0,
		XMax: 2 * p.Wavelength,
		YTop: p.Amplitude + topMargin,
		YBot: -p.Depth,
	}

	g.SurfaceX = make([]float64, surfaceSamples)
	dx := (g.XMax - g.XMin) / float64(surfaceSamples-1)
	for i := range g.SurfaceX {
		g.SurfaceX[i] = g.XMin + float64(i)*dx
	}

	g.ArrowX = make([]float64, gridX)
	for i := range g.ArrowX {
		g.ArrowX[i] = g.XMin + float64(i)*(g.XMax-g.XMin)/float64(gridX-1)
	}

	g.ArrowZ = make([]float64, gridY)
	for j := range g.ArrowZ {
		frac := float64(j) / float64(gridY-1)
		g.ArrowZ[j] = g.YTop - (g.YTop-g.YBot)*frac*frac
	}

	return g
}

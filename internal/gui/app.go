// Package gui opens a raylib window showing the wave: blue free-surface
// line over a sky background with red velocity arrows beneath, the same
// picture the terminal view approximates in braille.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/davidAlgis/airywaves/internal/sim"
	"github.com/davidAlgis/airywaves/internal/wave"
)

var (
	colSky     = rl.NewColor(135, 206, 250, 255)
	colSurface = rl.NewColor(0, 0, 255, 255)
	colArrow   = rl.NewColor(255, 0, 0, 255)
	colText    = rl.NewColor(20, 40, 80, 255)
)

// Options carries the window and animation settings.
type Options struct {
	Width      int
	Height     int
	ArrowScale float64
	FPS        int
	Dt         float64
	Duration   float64 // 0 runs until the window is closed
}

type app struct {
	params  wave.Parameters
	sampler *sim.Sampler
	clock   *sim.Clock
	opts    Options

	scaleX float64
	scaleY float64
}

// toScreen converts simulation coordinates (meters, y up) to window
// pixels (y down).
func (a *app) toScreen(x, y float64) (int32, int32) {
	g := a.sampler.Grid()
	sx := (x - g.XMin) * a.scaleX
	sy := (g.YTop - y) * a.scaleY
	return int32(sx), int32(sy)
}

func (a *app) drawFrame(f sim.Frame) {
	rl.ClearBackground(colSky)

	g := a.sampler.Grid()
	prevX, prevY := a.toScreen(g.SurfaceX[0], f.Surface[0])
	for i := 1; i < len(g.SurfaceX); i++ {
		x, y := a.toScreen(g.SurfaceX[i], f.Surface[i])
		rl.DrawLineEx(rl.NewVector2(float32(prevX), float32(prevY)), rl.NewVector2(float32(x), float32(y)), 2, colSurface)
		prevX, prevY = x, y
	}

	for _, v := range f.Vectors {
		x0, y0 := a.toScreen(v.X, v.Z)
		x1, y1 := a.toScreen(v.X+v.U*a.opts.ArrowScale, v.Z+v.W*a.opts.ArrowScale)
		rl.DrawLineEx(rl.NewVector2(float32(x0), float32(y0)), rl.NewVector2(float32(x1), float32(y1)), 2, colArrow)
		rl.DrawCircle(x1, y1, 3, colArrow)
	}

	rl.DrawText(fmt.Sprintf("t = %.2f s", float32(f.Time)), 10, 10, 20, colText)
	rl.DrawText(fmt.Sprintf("T = %.2f s  c = %.2f m/s", float32(a.params.Period()), float32(a.params.PhaseSpeed())), 10, 34, 20, colText)
}

// Run opens the window and drives the frame loop until the duration is
// exhausted or the window is closed. The window is always released on
// exit.
func Run(p wave.Parameters, sampler *sim.Sampler, opts Options) {
	rl.InitWindow(int32(opts.Width), int32(opts.Height), "Airy Waves Simulation")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))

	g := sampler.Grid()
	a := &app{
		params:  p,
		sampler: sampler,
		clock:   sim.NewClock(opts.Dt),
		opts:    opts,
		scaleX:  float64(opts.Width) / (g.XMax - g.XMin),
		scaleY:  float64(opts.Height) / (g.YTop - g.YBot),
	}

	for !rl.WindowShouldClose() {
		frame := a.sampler.Sample(a.clock.Now)

		rl.BeginDrawing()
		a.drawFrame(frame)
		rl.EndDrawing()

		a.clock.Advance()
		if a.clock.Expired(opts.Duration) {
			break
		}
	}
}

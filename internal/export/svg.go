// Package export renders a single frame as a standalone SVG snapshot.
package export

import (
	"fmt"
	"strings"

	"github.com/davidAlgis/airywaves/internal/sim"
)

// FrameToSVG renders one frame in the plot's visual language: sky
// background, blue free-surface polyline, red velocity arrows with dot
// tips. Width and height are in pixels; arrowScale converts m/s to
// meters of arrow length.
func FrameToSVG(f sim.Frame, g *sim.Grid, width, height int, arrowScale float64) string {
	scaleX := float64(width) / (g.XMax - g.XMin)
	scaleY := float64(height) / (g.YTop - g.YBot)

	toScreen := func(x, y float64) (float64, float64) {
		return (x - g.XMin) * scaleX, (g.YTop - y) * scaleY
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#87cefa"/>
`, width, height, width, height))

	sb.WriteString(`<polyline fill="none" stroke="#0000ff" stroke-width="2" points="`)
	for i, x := range g.SurfaceX {
		sx, sy := toScreen(x, f.Surface[i])
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", sx, sy))
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(`<g stroke="#ff0000" stroke-width="2" fill="#ff0000">` + "\n")
	for _, v := range f.Vectors {
		x0, y0 := toScreen(v.X, v.Z)
		x1, y1 := toScreen(v.X+v.U*arrowScale, v.Z+v.W*arrowScale)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<circle cx="%.1f" cy="%.1f" r="3"/>
`, x0, y0, x1, y1, x1, y1))
	}
	sb.WriteString("</g>\n</svg>\n")

	return sb.String()
}

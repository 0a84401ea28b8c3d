package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/davidAlgis/airywaves/internal/metrics"
	"github.com/davidAlgis/airywaves/internal/sim"
	"github.com/davidAlgis/airywaves/internal/wave"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// viewport maps simulation coordinates (meters, y up) to canvas
// sub-pixels (y down). The vertical extent zooms to the near-surface
// band: at the default 50 m depth the seabed is far outside any
// terminal-sized view, and all arrow rows cluster near the surface
// anyway.
type viewport struct {
	xMin, xMax float64
	yTop, yBot float64
	scaleX     float64
	scaleY     float64
}

func newViewport(g *sim.Grid, a float64) viewport {
	depth := 10 * a
	if g.YTop-g.YBot < depth {
		depth = g.YTop - g.YBot
	}
	v := viewport{
		xMin: g.XMin,
		xMax: g.XMax,
		yTop: g.YTop,
		yBot: g.YTop - depth,
	}
	v.scaleX = float64(width*2) / (v.xMax - v.xMin)
	v.scaleY = float64(height*4) / (v.yTop - v.yBot)
	return v
}

func (v viewport) toScreen(x, y float64) (int, int) {
	return int((x - v.xMin) * v.scaleX), int((v.yTop - y) * v.scaleY)
}

// Model is the live terminal view: it owns the simulation clock and
// recomputes the frame from scratch on every tick.
type Model struct {
	params     wave.Parameters
	sampler    *sim.Sampler
	clock      *sim.Clock
	duration   float64
	fps        int
	arrowScale float64

	canvas    *Canvas
	view      viewport
	frame     sim.Frame
	probeHist []float64
	peak      *metrics.PeakElevation
	sigHeight *metrics.SignificantHeight
	running   bool
}

func NewModel(p wave.Parameters, sampler *sim.Sampler, dt, duration float64, fps int, arrowScale float64) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		params:     p,
		sampler:    sampler,
		clock:      sim.NewClock(dt),
		duration:   duration,
		fps:        fps,
		arrowScale: arrowScale,
		canvas:     NewCanvas(width, height),
		view:       newViewport(sampler.Grid(), p.Amplitude),
		frame:      sampler.Sample(0),
		probeHist:  make([]float64, 0, historyCapacity),
		peak:       metrics.NewPeakElevation(),
		sigHeight:  metrics.NewSignificantHeight(),
		running:    true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances the simulation clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.step()
			if m.clock.Expired(m.duration) {
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// step recomputes the frame for the current clock time and advances it.
func (m *Model) step() {
	m.frame = m.sampler.Sample(m.clock.Now)
	m.peak.Observe(m.frame)
	m.sigHeight.Observe(m.frame)

	m.probeHist = append(m.probeHist, m.params.SurfaceElevation(0, m.clock.Now))
	if len(m.probeHist) > historyCapacity {
		m.probeHist = m.probeHist[1:]
	}

	m.clock.Advance()
}

func (m *Model) reset() {
	m.clock.Reset()
	m.probeHist = m.probeHist[:0]
	m.peak.Reset()
	m.sigHeight.Reset()
	m.frame = m.sampler.Sample(0)
}

// draw renders the current frame: free-surface polyline, waterline, and
// velocity arrows.
func (m *Model) draw() {
	m.canvas.Clear()

	grid := m.sampler.Grid()
	prevX, prevY := 0, 0
	for i, x := range grid.SurfaceX {
		sx, sy := m.view.toScreen(x, m.frame.Surface[i])
		if i > 0 {
			m.canvas.DrawLine(prevX, prevY, sx, sy)
		}
		prevX, prevY = sx, sy
	}

	for _, vec := range m.frame.Vectors {
		tailX, tailY := m.view.toScreen(vec.X, vec.Z)
		headX, headY := m.view.toScreen(vec.X+vec.U*m.arrowScale, vec.Z+vec.W*m.arrowScale)
		m.canvas.DrawArrow(tailX, tailY, headX, headY)
	}
}

// View renders the TUI layout: canvas panel plus a stats sidebar.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("AIRY WAVES") + "\n")
	s.WriteString(status + "\n\n")

	if len(m.probeHist) > 1 {
		chart := asciigraph.Plot(m.probeHist, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("eta(0, t)"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	regime := "shallow/intermediate"
	if m.params.DeepWater() {
		regime = "deep water"
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.clock.Now)) + "\n")
	if m.duration > 0 {
		s.WriteString(labelStyle.Render("Duration") + valueStyle.Render(fmt.Sprintf("%.1fs", m.duration)) + "\n")
	}
	s.WriteString(labelStyle.Render("Omega") + valueStyle.Render(fmt.Sprintf("%.4f rad/s", m.params.Omega())) + "\n")
	s.WriteString(labelStyle.Render("Period") + valueStyle.Render(fmt.Sprintf("%.2fs", m.params.Period())) + "\n")
	s.WriteString(labelStyle.Render("Phase speed") + valueStyle.Render(fmt.Sprintf("%.2f m/s", m.params.PhaseSpeed())) + "\n")
	s.WriteString(labelStyle.Render("Group speed") + valueStyle.Render(fmt.Sprintf("%.2f m/s", m.params.GroupSpeed())) + "\n")
	s.WriteString(labelStyle.Render("Regime") + valueStyle.Render(regime) + "\n")
	s.WriteString(labelStyle.Render("Steepness") + valueStyle.Render(fmt.Sprintf("%.4f", m.params.Steepness())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.1f J/m2", m.params.EnergyDensity())) + "\n")
	s.WriteString(labelStyle.Render("Peak eta") + valueStyle.Render(fmt.Sprintf("%.3f m", m.peak.Value())) + "\n")
	s.WriteString(labelStyle.Render("Hs estimate") + valueStyle.Render(fmt.Sprintf("%.3f m", m.sigHeight.Value())) + "\n")
	s.WriteString(labelStyle.Render("Arrows") + valueStyle.Render(fmt.Sprintf("%d", len(m.frame.Vectors))) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

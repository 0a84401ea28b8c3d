package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/davidAlgis/airywaves/internal/analysis"
	"github.com/davidAlgis/airywaves/internal/config"
	"github.com/davidAlgis/airywaves/internal/export"
	"github.com/davidAlgis/airywaves/internal/gui"
	"github.com/davidAlgis/airywaves/internal/metrics"
	"github.com/davidAlgis/airywaves/internal/sim"
	"github.com/davidAlgis/airywaves/internal/storage"
	"github.com/davidAlgis/airywaves/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	amplitude  float64
	wavelength float64
	waterDepth float64
	gravity    float64
	dt         float64
	duration   float64
	winWidth   int
	winHeight  int
	arrowScale float64
	gridX      int
	gridY      int
	fps        int

	// snapshot options
	snapTime float64
	snapOut  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "airywaves",
		Short: "1D Airy wave animator",
		RunE:  runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".airywaves", "data directory for stored runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "named preset configuration")
	pf.Float64Var(&amplitude, "amplitude", config.DefaultAmplitude, "wave amplitude (m)")
	pf.Float64Var(&wavelength, "wavelength", config.DefaultWavelength, "wavelength (m)")
	pf.Float64Var(&waterDepth, "water_depth", config.DefaultWaterDepth, "water depth (m)")
	pf.Float64Var(&gravity, "gravity", config.DefaultGravity, "gravitational acceleration (m/s^2)")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "simulation timestep (s)")
	pf.Float64Var(&duration, "duration", config.DefaultDuration, "simulation duration (s), 0 for infinite")
	pf.IntVar(&winWidth, "width", config.DefaultWidth, "window width in pixels")
	pf.IntVar(&winHeight, "height", config.DefaultHeight, "window height in pixels")
	pf.Float64Var(&arrowScale, "arrow_scale", config.DefaultArrowScale, "scaling factor for velocity arrows")
	pf.IntVar(&gridX, "grid_x", config.DefaultGridX, "velocity grid points in x")
	pf.IntVar(&gridY, "grid_y", config.DefaultGridY, "velocity grid points in y")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the wave in the terminal",
		RunE:  runLive,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate the wave in a window",
		RunE:  runGUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and store probe elevations",
		RunE:  runHeadless,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored probe elevations",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectral check of a stored run against the dispersion relation",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&snapTime, "time", 0, "simulated time of the frame (s)")
	snapshotCmd.Flags().StringVar(&snapOut, "out", "wave.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s a=%.2g lambda=%.2g h=%.2g\n", name, p.Amplitude, p.Wavelength, p.WaterDepth)
			}
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "print derived wave quantities",
		RunE:  printInfo,
	}

	rootCmd.AddCommand(liveCmd, guiCmd, runCmd, listCmd, plotCmd, analyzeCmd,
		exportCSVCmd, exportJSONCmd, snapshotCmd, presetsCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file, and explicit flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("amplitude") {
		cfg.Amplitude = amplitude
	}
	if flags.Changed("wavelength") {
		cfg.Wavelength = wavelength
	}
	if flags.Changed("water_depth") {
		cfg.WaterDepth = waterDepth
	}
	if flags.Changed("gravity") {
		cfg.Gravity = gravity
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("duration") {
		cfg.Duration = duration
	}
	if flags.Changed("width") {
		cfg.Width = winWidth
	}
	if flags.Changed("height") {
		cfg.Height = winHeight
	}
	if flags.Changed("arrow_scale") {
		cfg.ArrowScale = arrowScale
	}
	if flags.Changed("grid_x") {
		cfg.GridX = gridX
	}
	if flags.Changed("grid_y") {
		cfg.GridY = gridY
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}

	return cfg, nil
}

// buildSampler validates the parameters and fixes the spatial grid.
// Validation failures surface here, before any window or store exists.
func buildSampler(cmd *cobra.Command) (*config.Config, *sim.Sampler, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	p, err := cfg.Params()
	if err != nil {
		return nil, nil, err
	}
	grid := sim.NewGrid(p, cfg.GridX, cfg.GridY)
	return cfg, sim.NewSampler(p, grid), nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, sampler, err := buildSampler(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(sampler.Params(), sampler, cfg.Dt, cfg.Duration, cfg.FPS, cfg.ArrowScale)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, sampler, err := buildSampler(cmd)
	if err != nil {
		return err
	}

	gui.Run(sampler.Params(), sampler, gui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ArrowScale: cfg.ArrowScale,
		FPS:        cfg.FPS,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
	})
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, sampler, err := buildSampler(cmd)
	if err != nil {
		return err
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive for headless runs, got %g", cfg.Duration)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	driver := sim.NewDriver(sampler)
	driver.AddMetric(metrics.NewPeakElevation())
	driver.AddMetric(metrics.NewMaxParticleSpeed())
	driver.AddMetric(metrics.NewSignificantHeight())

	fmt.Println("running wave simulation...")
	result, err := driver.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration}, nil)
	if err != nil {
		return err
	}

	runID, err := st.Save(sampler.Params(), cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tAMPLITUDE\tWAVELENGTH\tDEPTH\tOMEGA\tDURATION")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.4f\t%.2fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Amplitude,
			run.Wavelength,
			run.WaterDepth,
			run.Omega,
			run.Duration,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	series, _, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(series))

	captions := []string{"eta at x=0", "eta at x=lambda/4", "eta at x=lambda/2", "eta at x=3*lambda/4"}

	for col := 0; col < len(series[0]); col++ {
		data := make([]float64, len(series))
		for i := range series {
			data[i] = series[i][col]
		}

		caption := fmt.Sprintf("eta%d vs time", col)
		if col < len(captions) {
			caption = captions[col]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	series, _, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series) == 0 || len(series[0]) == 0 {
		return fmt.Errorf("no data")
	}

	data := make([]float64, len(series))
	for i := range series {
		data[i] = series[i][0]
	}

	ps := analysis.PowerSpectrum(data)
	plotData := ps
	if len(ps) > 4 {
		plotData = ps[:len(ps)/4]
	}

	fmt.Printf("spectral check: %s\n\n", meta.ID)
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum, eta(0, t)"),
	)
	fmt.Println(graph)
	fmt.Println()

	measured := analysis.DominantFrequency(data, meta.Dt)
	expected := meta.Omega / (2 * math.Pi)

	fmt.Printf("measured frequency:  %.4f hz\n", measured)
	fmt.Printf("dispersion predicts: %.4f hz\n", expected)
	if expected > 0 {
		fmt.Printf("relative error:      %.2f%%\n", 100*math.Abs(measured-expected)/expected)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	series, times, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSVStdout(series, times)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, times, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, series, times)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, sampler, err := buildSampler(cmd)
	if err != nil {
		return err
	}

	frame := sampler.Sample(snapTime)
	svg := export.FrameToSVG(frame, sampler.Grid(), cfg.Width, cfg.Height, cfg.ArrowScale)

	if err := os.WriteFile(snapOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (t=%.2fs)\n", snapOut, snapTime)
	return nil
}

func printInfo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}

	regime := "shallow/intermediate"
	if p.DeepWater() {
		regime = "deep water"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "wavenumber k\t%.4f rad/m\n", p.Wavenumber())
	fmt.Fprintf(w, "omega\t%.4f rad/s\n", p.Omega())
	fmt.Fprintf(w, "period T\t%.4f s\n", p.Period())
	fmt.Fprintf(w, "phase speed\t%.4f m/s\n", p.PhaseSpeed())
	fmt.Fprintf(w, "group speed\t%.4f m/s\n", p.GroupSpeed())
	fmt.Fprintf(w, "k*h\t%.4f (%s)\n", p.Wavenumber()*p.Depth, regime)
	fmt.Fprintf(w, "steepness k*a\t%.4f\n", p.Steepness())
	fmt.Fprintf(w, "energy density\t%.1f J/m^2\n", p.EnergyDensity())
	return w.Flush()
}

package sim

import (
	"context"
	"fmt"
)

// Metric observes frames during a run and reduces them to one number.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Config controls a headless run.
type Config struct {
	Dt       float64
	Duration float64 // 0 means run until the callback or context stops it
}

// Result is the recorded output of a run: probe elevations at x = 0,
// lambda/4, lambda/2 and 3*lambda/4 per step, plus final metric values.
type Result struct {
	Times   []float64
	Probes  [][]float64
	Metrics map[string]float64
	Steps   int
}

// ProbeCount is the number of elevation probes recorded per step.
const ProbeCount = 4

// Driver owns the simulation clock and runs the tick loop: sample the
// full grid, hand the frame out, advance time. The per-tick computation
// never fails; the loop ends on duration exhaustion, context
// cancellation, or the callback returning false.
type Driver struct {
	sampler *Sampler
	metrics []Metric
}

func NewDriver(sampler *Sampler) *Driver {
	return &Driver{sampler: sampler}
}

func (d *Driver) AddMetric(m Metric) { d.metrics = append(d.metrics, m) }

func (d *Driver) validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration < 0 {
		return fmt.Errorf("duration must be >= 0, got %f", cfg.Duration)
	}
	return nil
}

// Run executes the loop. The callback receives every frame; returning
// false stops the run cleanly. A nil callback records without rendering.
func (d *Driver) Run(ctx context.Context, cfg Config, fn func(Frame) bool) (*Result, error) {
	if err := d.validate(cfg); err != nil {
		return nil, err
	}

	for _, m := range d.metrics {
		m.Reset()
	}

	capacity := 0
	if cfg.Duration > 0 {
		capacity = int(cfg.Duration/cfg.Dt) + 1
	}
	result := &Result{
		Times:   make([]float64, 0, capacity),
		Probes:  make([][]float64, 0, capacity),
		Metrics: make(map[string]float64),
	}

	p := d.sampler.Params()
	probeX := [ProbeCount]float64{0, p.Wavelength / 4, p.Wavelength / 2, 3 * p.Wavelength / 4}

	clock := NewClock(cfg.Dt)
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame := d.sampler.Sample(clock.Now)

		if fn != nil && !fn(frame) {
			break
		}

		for _, m := range d.metrics {
			m.Observe(frame)
		}

		row := make([]float64, ProbeCount)
		for i, x := range probeX {
			row[i] = p.SurfaceElevation(x, clock.Now)
		}
		result.Times = append(result.Times, clock.Now)
		result.Probes = append(result.Probes, row)
		result.Steps++

		clock.Advance()
		if clock.Expired(cfg.Duration) {
			break
		}
	}

	for _, m := range d.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidAlgis/airywaves/internal/wave"
)

const (
	DefaultAmplitude  = 1.0
	DefaultWavelength = 10.0
	DefaultWaterDepth = 50.0
	DefaultGravity    = 9.81
	DefaultDt         = 0.1
	DefaultDuration   = 10.0
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultArrowScale = 0.5
	DefaultGridX      = 20
	DefaultGridY      = 10
	DefaultFPS        = 60
)

// Config mirrors the CLI surface. Duration 0 means run until externally
// closed.
type Config struct {
	Amplitude  float64 `yaml:"amplitude"`
	Wavelength float64 `yaml:"wavelength"`
	WaterDepth float64 `yaml:"water_depth"`
	Gravity    float64 `yaml:"gravity"`
	Dt         float64 `yaml:"dt"`
	Duration   float64 `yaml:"duration"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	ArrowScale float64 `yaml:"arrow_scale"`
	GridX      int     `yaml:"grid_x"`
	GridY      int     `yaml:"grid_y"`
	FPS        int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Amplitude:  DefaultAmplitude,
		Wavelength: DefaultWavelength,
		WaterDepth: DefaultWaterDepth,
		Gravity:    DefaultGravity,
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		ArrowScale: DefaultArrowScale,
		GridX:      DefaultGridX,
		GridY:      DefaultGridY,
		FPS:        DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params validates the physical fields and builds the immutable wave
// parameters. This is the single fail-fast gate of the program.
func (c *Config) Params() (wave.Parameters, error) {
	return wave.NewParameters(c.Amplitude, c.Wavelength, c.WaterDepth, c.Gravity)
}

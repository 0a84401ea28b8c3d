package config

import "sort"

// Presets are named starting points for common wave regimes. Values not
// set here keep their defaults.
var Presets = map[string]*Config{
	"default": {
		Amplitude: 1.0, Wavelength: 10.0, WaterDepth: 50.0,
	},
	"deep": {
		Amplitude: 1.5, Wavelength: 20.0, WaterDepth: 500.0,
	},
	"shallow": {
		Amplitude: 0.4, Wavelength: 25.0, WaterDepth: 2.0,
	},
	"swell": {
		Amplitude: 1.2, Wavelength: 80.0, WaterDepth: 60.0, Dt: 0.2,
	},
	"chop": {
		Amplitude: 0.3, Wavelength: 4.0, WaterDepth: 30.0, Dt: 0.05,
	},
}

// GetPreset returns a full config with the named preset's wave fields
// applied over the defaults, or nil if the name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Amplitude = p.Amplitude
	cfg.Wavelength = p.Wavelength
	cfg.WaterDepth = p.WaterDepth
	if p.Gravity != 0 {
		cfg.Gravity = p.Gravity
	}
	if p.Dt != 0 {
		cfg.Dt = p.Dt
	}
	if p.Duration != 0 {
		cfg.Duration = p.Duration
	}
	return cfg
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

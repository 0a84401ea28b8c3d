package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/davidAlgis/airywaves/internal/wave"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Amplitude != 1.0 {
		t.Errorf("expected amplitude 1.0, got %f", cfg.Amplitude)
	}
	if cfg.Wavelength != 10.0 {
		t.Errorf("expected wavelength 10.0, got %f", cfg.Wavelength)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
}

func TestParams(t *testing.T) {
	cfg := DefaultConfig()
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("params failed: %v", err)
	}
	if p.Depth != 50.0 {
		t.Errorf("expected depth 50.0, got %f", p.Depth)
	}
}

func TestParamsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WaterDepth = -5

	_, err := cfg.Params()
	if err == nil {
		t.Fatal("expected error for negative water depth")
	}
	if !errors.Is(err, wave.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("shallow")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.WaterDepth != 2.0 {
		t.Errorf("expected depth 2.0, got %f", cfg.WaterDepth)
	}
	// Unset preset fields keep defaults.
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.yaml")

	cfg := DefaultConfig()
	cfg.Wavelength = 42.0
	cfg.GridX = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Wavelength != 42.0 {
		t.Errorf("expected wavelength 42.0, got %f", loaded.Wavelength)
	}
	if loaded.GridX != 7 {
		t.Errorf("expected grid_x 7, got %d", loaded.GridX)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Window.Width != 850 || cfg.Window.Height != 600 {
		t.Errorf("expected 850x600 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.X != 100 || cfg.Window.Y != 100 {
		t.Errorf("expected window at (100, 100), got (%d, %d)", cfg.Window.X, cfg.Window.Y)
	}
	if cfg.Derived.TickDuration != 30*time.Millisecond {
		t.Errorf("expected 30ms tick, got %s", cfg.Derived.TickDuration)
	}
	if len(cfg.Entities) != 4 {
		t.Fatalf("expected 4 entities, got %d", len(cfg.Entities))
	}

	car, ok := cfg.Entity(KindCar)
	if !ok {
		t.Fatal("expected car entity")
	}
	if car.Velocity != 6 || car.WrapMax != 850 || car.WrapMin != -120 {
		t.Errorf("unexpected car entity %+v", car)
	}

	birds, ok := cfg.Entity(KindBirds)
	if !ok || birds.Oscillator == nil {
		t.Fatal("expected birds with an oscillator")
	}
	if birds.Oscillator.Amplitude != 50 || birds.Oscillator.Frequency != 2 {
		t.Errorf("unexpected bird oscillator %+v", *birds.Oscillator)
	}
}

func TestLoadMergesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("clock:\n  tick_ms: 16\ncar:\n  max_speed: 20\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading override: %v", err)
	}

	if cfg.Clock.TickMS != 16 {
		t.Errorf("expected tick_ms 16, got %d", cfg.Clock.TickMS)
	}
	if cfg.Car.MaxSpeed != 20 {
		t.Errorf("expected max_speed 20, got %f", cfg.Car.MaxSpeed)
	}
	// Untouched fields keep their defaults
	if cfg.Car.MinSpeed != 1 || cfg.Car.CruiseSpeed != 6 {
		t.Errorf("expected default min/cruise speed, got %f/%f", cfg.Car.MinSpeed, cfg.Car.CruiseSpeed)
	}
	if cfg.Window.Title != "Realistic Scene Animation" {
		t.Errorf("expected default title, got %q", cfg.Window.Title)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tick", "clock:\n  tick_ms: 0\n"},
		{"inverted speed bounds", "car:\n  min_speed: 10\n  max_speed: 2\n"},
		{"unknown kind", "entities:\n  - kind: train\n    wrap_min: 0\n    wrap_max: 10\n"},
		{"missing car", "entities:\n  - kind: ship\n    wrap_min: 0\n    wrap_max: 10\n"},
		{"empty wrap range", "entities:\n  - kind: car\n    wrap_min: 10\n    wrap_max: 10\n"},
		{"degenerate extent", "projection:\n  primary:\n    left: 5\n    right: 5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Car.CruiseSpeed = 7

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if loaded.Car.CruiseSpeed != 7 {
		t.Errorf("expected cruise speed 7 after roundtrip, got %f", loaded.Car.CruiseSpeed)
	}
	if len(loaded.Entities) != len(cfg.Entities) {
		t.Errorf("expected %d entities, got %d", len(cfg.Entities), len(loaded.Entities))
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}

package simconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if cfg.TickRate != 60 || cfg.TickCount != 600 {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 0\ntick_count: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickRate != 60 {
		t.Errorf("Expected tick rate clamped to 60, got %d", cfg.TickRate)
	}
	if cfg.TickCount != 0 {
		t.Errorf("Expected tick count clamped to 0, got %d", cfg.TickCount)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := Config{
		TickRate:  120,
		TickCount: 50,
		Gravity:   &[3]float32{0, 0, -5},
		LogEvents: true,
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.TickRate != 120 || loaded.TickCount != 50 || !loaded.LogEvents {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}
	if loaded.Gravity == nil || loaded.Gravity[2] != -5 {
		t.Error("Gravity did not survive the round trip")
	}
}

func TestTickDuration(t *testing.T) {
	cfg := Config{TickRate: 120}
	if d := cfg.TickDuration(); d != 1.0/120 {
		t.Errorf("Expected 1/120, got %f", d)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Physics.Gravity != 308 {
		t.Errorf("expected gravity 308, got %f", cfg.Physics.Gravity)
	}
	if cfg.Physics.Fuel != 1200 {
		t.Errorf("expected fuel 1200, got %f", cfg.Physics.Fuel)
	}
	if cfg.Run.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Display.FPS <= 0 {
		t.Error("fps should be positive")
	}
}

func TestRocketPhysics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.Gravity = 50
	cfg.Physics.Thrust = 80

	phys := cfg.RocketPhysics()
	if phys.Gravity != 50 {
		t.Errorf("expected gravity 50, got %f", phys.Gravity)
	}
	if phys.InitialThrust != 80 {
		t.Errorf("expected thrust 80, got %f", phys.InitialThrust)
	}
	if phys.Lift != 0.7 || phys.Steer != 0.3 {
		t.Errorf("unexpected gains: lift=%f steer=%f", phys.Lift, phys.Steer)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lunar")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Physics.Gravity != 50 {
		t.Errorf("expected gravity 50, got %f", cfg.Physics.Gravity)
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
		t.Fatal("expected presets")
	}

	found := false
	for _, name := range presets {
		if name == "classic" {
			found = true
		}
	}
	if !found {
		t.Error("expected classic among presets")
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyrocket.yaml")
	data := []byte("physics:\n  gravity: 99\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Physics.Gravity != 99 {
		t.Errorf("expected gravity 99, got %f", cfg.Physics.Gravity)
	}
	if cfg.Physics.Lift != 0.7 {
		t.Errorf("expected untouched lift 0.7, got %f", cfg.Physics.Lift)
	}
	if cfg.Display.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %s", cfg.Display.Theme)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("no-such-file.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "dark" {
		t.Errorf("expected theme dark, got %s", cfg.UI.Theme)
	}
	if cfg.Motion.ReducedMotion {
		t.Errorf("expected reduced motion off by default")
	}
	if cfg.Snapshot.CellWidth != 8 || cfg.Snapshot.CellHeight != 16 {
		t.Errorf("expected 8x16 cells, got %dx%d", cfg.Snapshot.CellWidth, cfg.Snapshot.CellHeight)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.UI.Theme != "dark" {
		t.Errorf("expected default theme, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	t.Cleanup(func() { SetReducedMotion(false) })

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[ui]
theme = "light"

[motion]
reduced_motion = true

[snapshot]
cell_width = 4
cell_height = 9
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "light" {
		t.Errorf("expected theme light, got %s", cfg.UI.Theme)
	}
	if !cfg.Motion.ReducedMotion {
		t.Errorf("expected reduced motion on")
	}
	if cfg.Snapshot.CellWidth != 4 || cfg.Snapshot.CellHeight != 9 {
		t.Errorf("expected 4x9 cells, got %dx%d", cfg.Snapshot.CellWidth, cfg.Snapshot.CellHeight)
	}

	// Loading publishes the accessibility preference process-wide.
	if !ReducedMotion() {
		t.Errorf("expected reduced motion published after load")
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("not [valid toml"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Cleanup(func() { SetReducedMotion(false) })

	t.Setenv("SHEEN_THEME", "light")
	t.Setenv("SHEEN_REDUCED_MOTION", "yes")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "light" {
		t.Errorf("expected env theme override, got %s", cfg.UI.Theme)
	}
	if !cfg.Motion.ReducedMotion {
		t.Errorf("expected env reduced motion override")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(*Config) {}, false},
		{"light passes", func(c *Config) { c.UI.Theme = "light" }, false},
		{"unknown theme fails", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"zero cell width fails", func(c *Config) { c.Snapshot.CellWidth = 0 }, true},
		{"negative cell height fails", func(c *Config) { c.Snapshot.CellHeight = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReducedMotionToggle(t *testing.T) {
	t.Cleanup(func() { SetReducedMotion(false) })

	SetReducedMotion(true)
	if !ReducedMotion() {
		t.Fatalf("expected reduced motion on")
	}
	SetReducedMotion(false)
	if ReducedMotion() {
		t.Fatalf("expected reduced motion off")
	}
}

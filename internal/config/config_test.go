package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CHECKLIST_CONFIG", "CHECKLIST_DATA_DIR", "CHECKLIST_BACKEND", "CHECKLIST_LOG_LEVEL", "CHECKLIST_LOG_FILE", "CHECKLIST_THEME"} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != BackendFile {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.Window.X != 50 || cfg.Window.HiddenX != -250 || cfg.Window.Width != 300 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
data_dir = "` + filepath.ToSlash(dir) + `/data"
backend = "SQLite"
log_level = "debug"
theme = "neon"

[window]
x = 10
hidden_x = -90
y = 5
width = 120
height = 400
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHECKLIST_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != BackendSQLite {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, env should win", cfg.LogLevel)
	}
	if cfg.Theme != "neon" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.Window.HiddenX != -90 || cfg.Window.Height != 400 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.SQLitePath() != filepath.Join(dir, "data", "checklist.db") {
		t.Errorf("SQLitePath = %q", cfg.SQLitePath())
	}
	if cfg.Path != path {
		t.Errorf("Path = %q", cfg.Path)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `backend: memory
theme: mono
window:
  x: 20
  hidden_x: -100
  y: 0
  width: 200
  height: 300
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != BackendMemory || cfg.Theme != "mono" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Window.X != 20 || cfg.Window.HiddenX != -100 || cfg.Window.Width != 200 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, unset keys keep defaults", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"memory backend", func(c *Config) { c.Backend = "memory" }, false},
		{"bad backend", func(c *Config) { c.Backend = "redis" }, true},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogPath(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/tmp/cl"
	if cfg.LogPath() != filepath.Join("/tmp/cl", "checklist.log") {
		t.Errorf("LogPath = %q", cfg.LogPath())
	}
	cfg.LogFile = "/var/log/x.log"
	if cfg.LogPath() != "/var/log/x.log" {
		t.Errorf("LogPath = %q", cfg.LogPath())
	}
}

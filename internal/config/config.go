// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/checklist/internal/host"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	DefaultBackend   = BackendFile
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultTheme     = "classic"
	configFileName   = "config.toml"
	appDirName       = "checklist"
)

// Config holds the full configuration for the widget.
type Config struct {
	// Storage
	DataDir string `toml:"data_dir" yaml:"data_dir"`
	Backend string `toml:"backend" yaml:"backend"` // file, sqlite or memory

	// Logging
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"` // text, json or logfmt
	LogFile   string `toml:"log_file" yaml:"log_file"`

	// Look
	Theme string `toml:"theme" yaml:"theme"` // classic, neon or mono

	// Host window geometry
	Window host.Geometry `toml:"window" yaml:"window"`

	// Path the config was read from, if any (computed)
	Path string `toml:"-" yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:   defaultDataDir(),
		Backend:   DefaultBackend,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Theme:     DefaultTheme,
		Window:    host.DefaultGeometry(),
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return "." + appDirName
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	if v := os.Getenv("CHECKLIST_CONFIG"); v != "" {
		return v
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName, configFileName)
	}
	return ""
}

// Load reads defaults, then the TOML file at path (or DefaultPath), then
// environment overrides. A missing default file is not an error; a
// missing explicit file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := decodeFile(expandHome(path), cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		} else {
			cfg.Path = path
		}
	}

	loadFromEnv(cfg)
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.LogFile = expandHome(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeFile reads TOML, or YAML when the file ends in .yaml or .yml.
func decodeFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.DecodeFile(path, cfg)
		return err
	}
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("CHECKLIST_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CHECKLIST_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("CHECKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CHECKLIST_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("CHECKLIST_THEME"); v != "" {
		cfg.Theme = v
	}
}

// Validate checks enumerated values and window geometry.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Backend) {
	case BackendFile, BackendSQLite, BackendMemory:
		c.Backend = strings.ToLower(c.Backend)
	default:
		return fmt.Errorf("config: unknown backend %q (want file, sqlite or memory)", c.Backend)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// LogPath is where the interactive UI writes its log.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, "checklist.log")
}

// SQLitePath is the database file for the sqlite backend.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "checklist.db")
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const appName = "workspaces"

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "WORKSPACES_CONFIG"

// Backends understood by the picker.
const (
	BackendBubbletea = "bubbletea"
	BackendTcell     = "tcell"
)

// Config represents the application configuration
type Config struct {
	Picker PickerSettings `toml:"picker"`
	Paths  PathSettings   `toml:"paths"`
}

// PickerSettings tunes the interactive picker.
type PickerSettings struct {
	Backend        string `toml:"backend"`
	ConfirmGuardMS int    `toml:"confirm_guard_ms"`
	MaxDistance    int    `toml:"max_distance"`
	Prompt         string `toml:"prompt"`
	HighlightColor string `toml:"highlight_color"`
}

// PathSettings locates the files the tool reads and writes. Empty values are
// filled in by Resolve.
type PathSettings struct {
	Database   string `toml:"database"`
	ResultFile string `toml:"result_file"`
	LogFile    string `toml:"log_file"`
}

// ConfirmGuard is the startup window during which confirm keys are ignored.
func (p PickerSettings) ConfirmGuard() time.Duration {
	return time.Duration(p.ConfirmGuardMS) * time.Millisecond
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Picker: PickerSettings{
			Backend:        BackendBubbletea,
			ConfirmGuardMS: 500,
			MaxDistance:    0,
			Prompt:         "> ",
			HighlightColor: "205",
		},
	}
}

// Dir returns the directory holding the config file and, by default, the
// result file.
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName)
}

// DataDir returns the directory holding the database by default.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Dir()
	}
	return filepath.Join(home, ".local", "share", appName)
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the configuration at path, or DefaultPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg.Resolve()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Resolve()
	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects settings the picker cannot honour.
func (c *Config) Validate() error {
	switch c.Picker.Backend {
	case BackendBubbletea, BackendTcell:
	default:
		return fmt.Errorf("unknown picker backend %q", c.Picker.Backend)
	}
	if c.Picker.ConfirmGuardMS < 0 {
		return fmt.Errorf("confirm_guard_ms must not be negative")
	}
	if c.Picker.MaxDistance < 0 {
		return fmt.Errorf("max_distance must not be negative")
	}
	return nil
}

// Resolve fills empty paths with their defaults.
func (c *Config) Resolve() {
	if c.Paths.Database == "" {
		c.Paths.Database = filepath.Join(DataDir(), appName+".db")
	}
	if c.Paths.ResultFile == "" {
		c.Paths.ResultFile = filepath.Join(Dir(), "result.txt")
	}
}

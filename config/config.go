// Package config loads and saves the chronos YAML configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "chronos"
	configFileName = "config.yaml"
	notesFileName  = "chronos_notes.json"

	defaultCadenceMS = 16
)

type Config struct {
	Notes  NotesConfig  `yaml:"notes"`
	Clock  ClockConfig  `yaml:"clock"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

type NotesConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

type ClockConfig struct {
	Multiplier float64 `yaml:"multiplier"`
}

type RenderConfig struct {
	CadenceMS int `yaml:"cadence_ms"`
	// Workers bounds the shader worker pool; 0 uses one worker per CPU.
	Workers int `yaml:"workers"`
}

type LogConfig struct {
	File string `yaml:"file"`
}

// GetConfigDir returns the per-user chronos directory.
func GetConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = filepath.Join(home, ".config")
		} else {
			base = "."
		}
	}
	return filepath.Join(base, configDirName)
}

// DefaultConfigPath is where the config file lives unless --config says otherwise.
func DefaultConfigPath() string {
	return filepath.Join(GetConfigDir(), configFileName)
}

// DefaultNotesPath is the default note store location.
func DefaultNotesPath() string {
	return filepath.Join(GetConfigDir(), notesFileName)
}

func DefaultConfig() *Config {
	return &Config{
		Notes: NotesConfig{
			Path: DefaultNotesPath(),
		},
		Clock: ClockConfig{
			Multiplier: 1.0,
		},
		Render: RenderConfig{
			CadenceMS: defaultCadenceMS,
		},
	}
}

// Cadence returns the logic tick interval.
func (c *Config) Cadence() time.Duration {
	return time.Duration(c.Render.CadenceMS) * time.Millisecond
}

// Validate rejects values the clock cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Notes.Path == "" {
		errs = append(errs, errors.New("notes.path must not be empty"))
	}
	if m := c.Clock.Multiplier; m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		errs = append(errs, fmt.Errorf("clock.multiplier must be a finite value >= 0, got %v", m))
	}
	if c.Render.CadenceMS <= 0 {
		errs = append(errs, fmt.Errorf("render.cadence_ms must be > 0, got %d", c.Render.CadenceMS))
	}
	if c.Render.Workers < 0 {
		errs = append(errs, fmt.Errorf("render.workers must be >= 0, got %d", c.Render.Workers))
	}
	return errors.Join(errs...)
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating the directory when needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

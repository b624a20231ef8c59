// Package config loads sup's settings from ~/.sup/config.yml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/saravenpi/sup/internal/responder"
)

// DefaultProfileBreakpoint is the terminal width, in columns, at or below
// which the profile panel is closed.
const DefaultProfileBreakpoint = 100

type Config struct {
	Responder ResponderConfig `yaml:"responder"`
	Layout    LayoutConfig    `yaml:"layout"`
	Seed      SeedConfig      `yaml:"seed"`
	Log       LogConfig       `yaml:"log"`
}

type ResponderConfig struct {
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
	Replies  []string      `yaml:"replies,omitempty"`
}

type LayoutConfig struct {
	ProfileBreakpoint int `yaml:"profile_breakpoint"`
}

// SeedConfig points at a YAML file with the chats to start from. Empty means
// the built-in demo data.
type SeedConfig struct {
	Path string `yaml:"path,omitempty"`
}

type LogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// GetConfigDir returns the path to sup's home directory (~/.sup).
func GetConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".sup")
}

// DefaultPath returns ~/.sup/config.yml.
func DefaultPath() string {
	return filepath.Join(GetConfigDir(), "config.yml")
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Responder: ResponderConfig{
			MinDelay: responder.DefaultMinDelay,
			MaxDelay: responder.DefaultMaxDelay,
			Replies:  append([]string(nil), responder.DefaultReplies...),
		},
		Layout: LayoutConfig{ProfileBreakpoint: DefaultProfileBreakpoint},
	}
}

// Load reads the config at path. A missing file yields the defaults; keys
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(cfg.Responder.Replies) == 0 {
		cfg.Responder.Replies = append([]string(nil), responder.DefaultReplies...)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Responder.MinDelay <= 0 {
		return fmt.Errorf("responder.min_delay must be positive, got %s", c.Responder.MinDelay)
	}
	if c.Responder.MaxDelay <= c.Responder.MinDelay {
		return fmt.Errorf("responder.max_delay (%s) must exceed min_delay (%s)", c.Responder.MaxDelay, c.Responder.MinDelay)
	}
	if c.Layout.ProfileBreakpoint <= 0 {
		return fmt.Errorf("layout.profile_breakpoint must be positive, got %d", c.Layout.ProfileBreakpoint)
	}
	return nil
}

// LogPath returns where debug logs are written.
func (c Config) LogPath() string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(GetConfigDir(), "sup.log")
}

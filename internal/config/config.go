// Package config provides YAML-based configuration for snake90: where the
// high score lives, how the board is drawn, logging, and the SSH server.
package config

import (
	"fmt"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// StorageConfig selects the high score backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`    // Empty = backend default under ~/.snake90
}

// DisplayConfig holds presentation settings. None of them affect gameplay.
type DisplayConfig struct {
	Skin int `yaml:"skin"` // 1 classic, 2 ice, 3 gold
	FPS  int `yaml:"fps"`  // Redraw rate, independent of tick speed
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used by interactive play; empty disables logging there
}

// SSHConfig configures `snake90 serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the configuration for values the program cannot use.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("config: unknown storage backend %q (want file or sqlite)", c.Storage.Backend)
	}
	if c.Display.Skin < 1 || c.Display.Skin > 3 {
		return fmt.Errorf("config: skin must be 1, 2 or 3, got %d", c.Display.Skin)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.Display.FPS)
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: idle_timeout must not be negative")
	}
	return nil
}

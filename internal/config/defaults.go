package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake90.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, matching defaults/snake90.yaml.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: "file",
			Path:    "",
		},
		Display: DisplayConfig{
			Skin: 1,
			FPS:  30,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake90/snake90.log",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     "",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake90/internal/config"
	"github.com/vovakirdan/snake90/internal/core"
	"github.com/vovakirdan/snake90/internal/platform/tui"
	"github.com/vovakirdan/snake90/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadSettings loads the config file and applies global flags that were set
// explicitly on the command line.
func loadSettings(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Storage.Backend = flagBackend
	}
	if flags.Changed("store") {
		cfg.Storage.Path = flagStore
	}
	if flags.Changed("skin") {
		cfg.Display.Skin = flagSkin
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	return cfg
}

// runtimeConfig builds the per-game display settings.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     cfg.Display.FPS,
		Seed:    flagSeed,
		Skin:    core.Skin(cfg.Display.Skin),
	}
}

// openStore opens the configured backend. The sqlite backend doubles as the
// game history recorder.
func openStore(cfg config.Config) (storage.Backend, tui.Recorder, error) {
	backend, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	return backend, recorderFor(backend), nil
}

// recorderFor returns the history recorder behind backend, if it has one.
func recorderFor(backend storage.Backend) tui.Recorder {
	if m, ok := backend.(*storage.Monotonic); ok {
		backend = m.Inner()
	}
	if rec, ok := backend.(tui.Recorder); ok {
		return rec
	}
	return nil
}

// newLogger creates a structured logger at the configured level.
func newLogger(w io.Writer, prefix, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLogFile opens the log file for appending. If path is empty or cannot be
// opened, logs are discarded: the alt screen owns the terminal during play.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	//nolint:errcheck // Best-effort close on exit
	return f, func() { f.Close() }
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake90/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Steer (no reversing into yourself)
  P/Esc            - Pause / resume
  R                - Restart (any time)
  1/2/3            - Skin: classic, ice, gold
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

The terminal needs at least 50x28 cells.

Examples:
  snake90 play
  snake90 play --skin 3 --seed 42
  snake90 play --backend sqlite --store ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(cmd)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logOut, closeLog := openLogFile(cfg.Log.File)
	defer closeLog()
	logger := newLogger(logOut, "snake90", cfg.Log.Level)

	store, recorder, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high score store: %v\n", err)
		// Continue without storage - game still works
		logger.Warn("playing without persistence", "error", err)
	}

	runErr := tui.Run(tui.Options{
		Config:   runtimeConfig(cfg, width, height),
		Store:    store,
		Recorder: recorder,
		Logger:   logger,
	})

	// Close store before potential exit
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close store", "error", err)
		}
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

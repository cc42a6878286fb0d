package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake90/internal/bot"
	"github.com/vovakirdan/snake90/internal/core"
	"github.com/vovakirdan/snake90/internal/game"
	"github.com/vovakirdan/snake90/internal/loop"
)

var (
	flagTicks    int
	flagRealtime bool
	flagDuration time.Duration
	flagPersist  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot without a terminal",
	Long: `Play a game with the built-in greedy autopilot and print a summary.

By default the simulation fast-forwards a fixed number of ticks. With
--realtime it runs on the wall clock at the real level speeds until
--duration elapses or Ctrl+C is pressed.

The high score is only touched with --persist.

Examples:
  snake90 sim --ticks 10000 --seed 7
  snake90 sim --realtime --duration 30s --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 2000, "Ticks to simulate in fast-forward mode")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run on the wall clock")
	simCmd.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "How long to run with --realtime")
	simCmd.Flags().BoolVar(&flagPersist, "persist", false, "Load and save the configured high score")
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(cmd)
	logger := newLogger(os.Stderr, "snake90-sim", cfg.Log.Level)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gameCfg := game.Config{
		Seed:   seed,
		Logger: logger,
		Skin:   core.Skin(cfg.Display.Skin),
	}

	if flagPersist {
		store, _, err := openStore(cfg)
		if err != nil {
			fail("opening high score store: %v", err)
		}
		defer store.Close()
		gameCfg.Store = store
	}

	var snap game.Snapshot
	if flagRealtime {
		snap = simRealtime(gameCfg)
	} else {
		snap = simFastForward(gameCfg, flagTicks)
	}

	printSummary(os.Stdout, seed, snap)
}

// simFastForward drives the game directly, as fast as possible.
func simFastForward(cfg game.Config, ticks int) game.Snapshot {
	g := game.New(cfg)
	for range ticks {
		if a := bot.Next(g.Snapshot()); a != core.ActionNone {
			g.HandleInput(a)
		}
		if res := g.Tick(); res.HitHazard {
			break
		}
	}
	return g.Snapshot()
}

// simRealtime runs the game on a real ticker until the duration elapses or
// the process is interrupted.
func simRealtime(cfg game.Config) game.Snapshot {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	snap, err := loop.Run(ctx, loop.Options{
		Game:           cfg,
		Autopilot:      bot.Next,
		ExitOnGameOver: true,
		Logger:         cfg.Logger,
	})
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		fail("simulation: %v", err)
	}
	return snap
}

func printSummary(w io.Writer, seed int64, s game.Snapshot) {
	fmt.Fprintf(w, "Seed:       %d\n", seed)
	fmt.Fprintf(w, "Moves:      %d\n", s.Ticks)
	fmt.Fprintf(w, "Length:     %d\n", len(s.Snake))
	fmt.Fprintf(w, "Score:      %d\n", s.Score)
	fmt.Fprintf(w, "High score: %d\n", s.HighScore)
	fmt.Fprintf(w, "Level:      %d (%v per move)\n", s.Level, s.Interval)
	fmt.Fprintf(w, "State:      %s\n", s.State)
}

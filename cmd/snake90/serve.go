package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake90/internal/config"
	"github.com/vovakirdan/snake90/internal/core"
	"github.com/vovakirdan/snake90/internal/game"
	"github.com/vovakirdan/snake90/internal/platform/tui"
	"github.com/vovakirdan/snake90/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake90 SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. All sessions share one high score:
it only ever goes up, no matter how many players finish at once.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake90/host_key

Examples:
  snake90 serve                           # Listen on :23234 with auto-generated key
  snake90 serve --ssh :2222               # Listen on port 2222
  snake90 serve --host-key ./my_host_key  # Use specific host key
  snake90 serve --backend sqlite          # Keep a game history too

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

// sshServerConfig maps the loaded settings onto the server defaults. An empty
// address keeps the default listener; a zero idle timeout disables it.
func sshServerConfig(cfg config.Config) tui.SSHServerConfig {
	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.HostKeyPath = config.ExpandHome(cfg.SSH.HostKey)
	srvCfg.IdleTimeout = cfg.SSH.IdleTimeout
	srvCfg.FPS = cfg.Display.FPS
	srvCfg.Skin = core.Skin(cfg.Display.Skin)
	if cfg.SSH.Address != "" {
		srvCfg.Address = cfg.SSH.Address
	}
	return srvCfg
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(cmd)
	logger := newLogger(os.Stderr, "snake90-ssh", cfg.Log.Level)

	srvCfg := sshServerConfig(cfg)
	if cmd.Flags().Changed("ssh") {
		srvCfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		srvCfg.HostKeyPath = config.ExpandHome(flagHostKey)
	}
	if cmd.Flags().Changed("idle-timeout") {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	var (
		store    game.HighScoreStore
		recorder tui.Recorder
	)
	backend, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		// Continue without storage - sessions still work
		logger.Warn("could not open high score store", "error", err)
	} else {
		shared := storage.NewMonotonic(backend)
		defer func() {
			if err := shared.Close(); err != nil {
				logger.Warn("could not close store", "error", err)
			}
		}()
		store, recorder = shared, recorderFor(shared)
	}

	server, err := tui.NewSSHServer(srvCfg, store, recorder, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting snake90 SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fail("%v", err)
	}
}

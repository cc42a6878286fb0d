// snake90 is a retro snake game for the terminal.
//
// Usage:
//
//	snake90                  - Play (same as `snake90 play`)
//	snake90 play             - Play in this terminal
//	snake90 serve            - Start SSH server for remote play
//	snake90 scores           - Show the high score and game history
//	snake90 sim              - Run the autopilot headless
//
// Global flags:
//
//	--config <path>   - Config file (default: ~/.snake90/config.yaml)
//	--backend <name>  - High score backend: file or sqlite
//	--store <path>    - Backend location
//	--skin <1|2|3>    - Starting skin
//	--fps <rate>      - Redraw rate
//	--seed <value>    - RNG seed for reproducible food and hazard placement
//	--log-level <lvl> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagBackend  string
	flagStore    string
	flagSkin     int
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake90",
	Short: "snake90 - a retro snake game for your terminal",
	Long: `snake90 is a snake game on a fixed 24x24 board. Eat food to grow and
score, avoid the single hazard, and keep up as the game speeds up every
50 points. There are no walls: the only thing that can end a run is the hazard.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - Show the high score and game history
  sim      - Run the autopilot without a terminal

Examples:
  snake90
  snake90 --skin 2
  snake90 --backend sqlite
  snake90 serve --ssh :2222
  snake90 scores --limit 20
  snake90 sim --ticks 5000`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "High score backend: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "High score file or database path")
	rootCmd.PersistentFlags().IntVar(&flagSkin, "skin", 0, "Starting skin: 1 classic, 2 ice, 3 gold")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

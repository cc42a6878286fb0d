package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake90/internal/platform/tui"
	"github.com/vovakirdan/snake90/internal/storage"
)

var (
	flagLimit  int
	flagReset  bool
	flagBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and game history",
	Long: `Display the persisted high score.

With the sqlite backend every finished game is recorded, so this also lists
the best games and a short summary of the history.

Examples:
  snake90 scores
  snake90 scores --backend sqlite --limit 20
  snake90 scores --backend sqlite --browse
  snake90 scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to list (sqlite backend)")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the high score and history")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the history interactively (sqlite backend)")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(cmd)

	backend, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		fail("opening high score store: %v", err)
	}
	defer backend.Close()

	if flagReset {
		if err := backend.Reset(); err != nil {
			fail("resetting high score: %v", err)
		}
		fmt.Println("High score cleared.")
		return
	}

	history, hasHistory := backend.(tui.History)

	if flagBrowse {
		if !hasHistory {
			fail("--browse needs the sqlite backend")
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(history, width, height); err != nil {
			fail("running scoreboard: %v", err)
		}
		return
	}

	if err := printScores(os.Stdout, backend, history, flagLimit); err != nil {
		fail("%v", err)
	}
}

// printScores writes the high score and, if history is not nil, the top games
// and aggregate stats.
func printScores(w io.Writer, backend storage.Backend, history tui.History, limit int) error {
	best, err := backend.Load()
	if err != nil {
		return fmt.Errorf("reading high score: %w", err)
	}

	fmt.Fprintf(w, "High Score: %d\n", best)
	if history == nil {
		return nil
	}
	fmt.Fprintln(w)

	games, err := history.TopGames(limit)
	if err != nil {
		return fmt.Errorf("retrieving games: %w", err)
	}
	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake90 --backend sqlite' to start the history!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Moves", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, g := range games {
		fmt.Fprintf(w, "  %-4d  %-6d  %-5d  %-6d  %s\n",
			i+1, g.Score, g.Level, g.Ticks, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := history.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.BestScore, stats.AvgScore)
	return nil
}

// Package bot is a greedy autopilot used by the headless simulator.
//
// Each tick it looks at the three headings the snake may legally take (the
// reverse is never considered), drops the one that would enter the hazard, and
// picks the one whose next cell is closest to the food. Leaving the board is
// legal for the game but the bot steers back toward the food anyway, since
// food only ever spawns on the board.
package bot

import (
	"github.com/vovakirdan/snake90/internal/core"
	"github.com/vovakirdan/snake90/internal/game"
)

// candidateOrder breaks ties between equally good turns.
var candidateOrder = []core.Direction{core.DirUp, core.DirRight, core.DirDown, core.DirLeft}

// Next returns the action to apply before the next tick, or ActionNone when
// the current heading is already the best choice or the game is not running.
func Next(s game.Snapshot) core.Action {
	if s.State != game.StateRunning || len(s.Snake) == 0 {
		return core.ActionNone
	}

	best := Choose(s)
	if best == s.Direction {
		return core.ActionNone
	}
	return core.MoveAction(best)
}

// Choose returns the heading the autopilot wants for the next move. Keeping
// the current heading wins ties only while it closes in on the food; otherwise
// a turn is preferred so the snake never runs away from food behind it.
func Choose(s game.Snapshot) core.Direction {
	head := s.Head()
	current := s.Direction

	candidates := make([]core.Direction, 0, 3)
	for _, d := range candidateOrder {
		if d != current && d != current.Opposite() {
			candidates = append(candidates, d)
		}
	}
	if score(s, head.Add(current.Delta())) < distance(head, s.Food) {
		candidates = append([]core.Direction{current}, candidates...)
	} else {
		candidates = append(candidates, current)
	}

	best := candidates[0]
	bestScore := score(s, head.Add(best.Delta()))
	for _, d := range candidates[1:] {
		if sc := score(s, head.Add(d.Delta())); sc < bestScore {
			best, bestScore = d, sc
		}
	}
	return best
}

// hazardPenalty outweighs any distance on a 24x24 board.
const hazardPenalty = 1 << 20

// score rates a next cell; lower is better.
func score(s game.Snapshot, next core.Point) int {
	if next == s.Hazard {
		return hazardPenalty
	}
	return distance(next, s.Food)
}

func distance(a, b core.Point) int {
	return core.Abs(a.X-b.X) + core.Abs(a.Y-b.Y)
}

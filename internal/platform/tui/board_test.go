package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/snake90/internal/core"
	"github.com/vovakirdan/snake90/internal/game"
)

func baseSnapshot() game.Snapshot {
	return game.Snapshot{
		Snake:     []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Direction: core.DirRight,
		Food:      core.Pt(10, 10),
		Hazard:    core.Pt(20, 2),
		Score:     30,
		HighScore: 120,
		Level:     1,
		Skin:      core.SkinClassic,
		State:     game.StateRunning,
	}
}

// screenPos returns the left terminal column and row of a game cell.
func screenPos(p core.Point) (int, int) {
	return playLeft + p.X*cellWidth, playTop + p.Y
}

func TestDrawBoardLayout(t *testing.T) {
	scr := NewBoardScreen()
	s := baseSnapshot()
	DrawBoard(scr, s)

	if scr.Width() != 50 || scr.Height() != 27 {
		t.Fatalf("board screen is %dx%d, want 50x27", scr.Width(), scr.Height())
	}
	if hud := scr.Row(0); !strings.Contains(hud, "Score: 30  High: 120  Level: 1") {
		t.Errorf("HUD = %q", hud)
	}
	if !strings.Contains(scr.Row(0), "classic") {
		t.Error("HUD should name the skin")
	}
	if scr.Get(0, boardTop) != '┌' || scr.Get(BoardWidth-1, BoardHeight-1) != '┘' {
		t.Error("board border missing")
	}

	x, y := screenPos(s.Snake[0])
	if scr.Get(x, y) != segmentHead || scr.Get(x+1, y) != segmentHead {
		t.Error("head not drawn at its cell")
	}
	x, y = screenPos(s.Snake[2])
	if scr.Get(x, y) != segmentBody {
		t.Error("tail not drawn at its cell")
	}
	x, y = screenPos(s.Food)
	if scr.Get(x, y) != '(' || scr.GetCell(x, y).Color != foodColor {
		t.Error("food not drawn in red")
	}
	x, y = screenPos(s.Hazard)
	if scr.Get(x, y) != 'X' || scr.GetCell(x, y).Color != hazardColor {
		t.Error("hazard not drawn in magenta")
	}
}

func TestDrawBoardClipsOffBoardSegments(t *testing.T) {
	scr := NewBoardScreen()
	s := baseSnapshot()
	s.Snake = []core.Point{{X: -1, Y: 5}, {X: 0, Y: 5}, {X: game.Cols, Y: 3}, {X: 3, Y: -2}, {X: 3, Y: game.Rows}}
	DrawBoard(scr, s)

	if scr.Get(0, playTop+5) != '│' {
		t.Error("off-board head overwrote the left border")
	}
	if scr.Get(BoardWidth-1, playTop+3) != '│' {
		t.Error("off-board segment overwrote the right border")
	}
	if scr.Get(playLeft+3*cellWidth, boardTop) != '─' {
		t.Error("off-board segment overwrote the top border")
	}
	if scr.Get(playLeft+3*cellWidth, BoardHeight-1) != '─' {
		t.Error("off-board segment overwrote the bottom border")
	}
	x, y := screenPos(core.Pt(0, 5))
	if scr.Get(x, y) != segmentBody {
		t.Error("on-board segment missing")
	}
}

func TestDrawBoardOverlays(t *testing.T) {
	tests := []struct {
		state game.State
		want  string
		hint  string
	}{
		{game.StatePaused, "PAUSED", "Press P to continue"},
		{game.StateGameOver, "GAME OVER", "Press R to restart"},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			scr := NewBoardScreen()
			s := baseSnapshot()
			s.State = tt.state
			DrawBoard(scr, s)

			for _, text := range []string{tt.want, tt.hint} {
				col, ok := findText(scr, text)
				if !ok {
					t.Errorf("overlay %q missing", text)
					continue
				}
				if want := (BoardWidth - len(text)) / 2; col != want {
					t.Errorf("%q starts at column %d, expected %d", text, col, want)
				}
			}
		})
	}

	scr := NewBoardScreen()
	DrawBoard(scr, baseSnapshot())
	if strings.Contains(scr.String(), "PAUSED") || strings.Contains(scr.String(), "GAME OVER") {
		t.Error("running board should have no overlay")
	}
}

func TestDrawBoardSkins(t *testing.T) {
	tests := []struct {
		skin core.Skin
		head core.Color
		body core.Color
	}{
		{core.SkinClassic, core.ColorBrightGreen, core.ColorGreen},
		{core.SkinIce, core.ColorBrightCyan, core.ColorCyan},
		{core.SkinGold, core.ColorBrightYellow, core.ColorYellow},
		{core.Skin(9), core.ColorBrightGreen, core.ColorGreen},
	}

	for _, tt := range tests {
		t.Run(tt.skin.String(), func(t *testing.T) {
			scr := NewBoardScreen()
			s := baseSnapshot()
			s.Skin = tt.skin
			DrawBoard(scr, s)

			x, y := screenPos(s.Snake[0])
			if got := scr.GetCell(x, y).Color; got != tt.head {
				t.Errorf("head color = %v, want %v", got, tt.head)
			}
			x, y = screenPos(s.Snake[1])
			if got := scr.GetCell(x, y).Color; got != tt.body {
				t.Errorf("body color = %v, want %v", got, tt.body)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawText(0, 0, "abc", core.ColorRed)
	scr.DrawText(3, 0, "def", core.ColorDefault)

	out := RenderScreen(scr)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "abc") || !strings.Contains(out, "def") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

// findText returns the column of the first row holding text.
func findText(scr *core.Screen, text string) (int, bool) {
	for y := range scr.Height() {
		row := scr.Row(y)
		if i := strings.Index(row, text); i >= 0 {
			return utf8.RuneCountInString(row[:i]), true
		}
	}
	return 0, false
}

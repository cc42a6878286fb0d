package tui

import (
	"fmt"

	"github.com/vovakirdan/snake90/internal/core"
	"github.com/vovakirdan/snake90/internal/game"
)

// Board layout. Each game cell is two terminal columns wide so the board
// looks square in most fonts.
const (
	cellWidth = 2
	hudHeight = 1

	// BoardWidth and BoardHeight cover the HUD and the bordered board.
	BoardWidth  = game.Cols*cellWidth + 2
	BoardHeight = hudHeight + game.Rows + 2

	// MinWidth and MinHeight add one line for the help footer.
	MinWidth  = BoardWidth
	MinHeight = BoardHeight + 1

	boardTop = hudHeight
	playTop  = boardTop + 1
	playLeft = 1
)

const (
	segmentHead = '█'
	segmentBody = '▓'

	borderColor  = core.ColorGray
	foodColor    = core.ColorRed
	hazardColor  = core.ColorMagenta
	hudColor     = core.ColorWhite
	overlayColor = core.ColorBrightYellow
	hintColor    = core.ColorGray
)

// NewBoardScreen returns a screen sized for DrawBoard.
func NewBoardScreen() *core.Screen {
	return core.NewScreen(BoardWidth, BoardHeight)
}

// DrawBoard renders a snapshot into dst: HUD on top, then the bordered board
// with food, hazard and snake, then a pause or game over overlay.
// Segments that have left the board are not drawn.
func DrawBoard(dst *core.Screen, s game.Snapshot) {
	dst.Clear()

	drawHUD(dst, s)
	dst.DrawBox(core.NewRect(0, boardTop, BoardWidth, game.Rows+2), borderColor)

	drawCell(dst, s.Food, '(', ')', foodColor)
	drawCell(dst, s.Hazard, 'X', 'X', hazardColor)

	style := styleForSkin(s.Skin)
	// Tail first so the head is drawn on top where the snake overlaps itself.
	for i := len(s.Snake) - 1; i >= 1; i-- {
		drawCell(dst, s.Snake[i], segmentBody, segmentBody, style.Body)
	}
	if len(s.Snake) > 0 {
		drawCell(dst, s.Snake[0], segmentHead, segmentHead, style.Head)
	}

	switch {
	case s.GameOver():
		drawOverlay(dst, "GAME OVER", "Press R to restart")
	case s.Paused():
		drawOverlay(dst, "PAUSED", "Press P to continue")
	}
}

func drawHUD(dst *core.Screen, s game.Snapshot) {
	left := fmt.Sprintf(" Score: %d  High: %d  Level: %d", s.Score, s.HighScore, s.Level)
	dst.DrawText(0, 0, left, hudColor)

	right := s.Skin.String() + " "
	dst.DrawText(dst.Width()-len(right), 0, right, styleForSkin(s.Skin).Head)
}

// playfield is the board in cell coordinates.
var playfield = core.NewRect(0, 0, game.Cols, game.Rows)

// drawCell paints one game cell. Off-board cells are clipped.
func drawCell(dst *core.Screen, p core.Point, left, right rune, c core.Color) {
	if !playfield.Contains(p) {
		return
	}
	x := playLeft + p.X*cellWidth
	y := playTop + p.Y
	dst.SetColored(x, y, left, c)
	dst.SetColored(x+1, y, right, c)
}

// drawOverlay draws a centered message box over the board.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := playTop + (game.Rows-boxH)/2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, borderColor)

	dst.DrawTextCentered(boxY+1, line1, overlayColor)
	dst.DrawTextCentered(boxY+3, line2, hintColor)
}

// tooSmallView is shown instead of the board when the terminal cannot fit it.
func tooSmallView(width, height int) string {
	return fmt.Sprintf("Window too small\n\nNeed %dx%d, have %dx%d.\nResize to continue, q to quit.",
		MinWidth, MinHeight, width, height)
}

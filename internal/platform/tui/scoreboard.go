package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake90/internal/storage"
)

// historyLimit is how many games the browser loads.
const historyLimit = 100

// History is the read side of the score history.
type History interface {
	TopGames(limit int) ([]storage.GameRecord, error)
	Stats() (*storage.Stats, error)
}

// SortOrder selects how the browser lists games.
type SortOrder int

const (
	SortByScore SortOrder = iota
	SortByDate
)

func (o SortOrder) String() string {
	if o == SortByDate {
		return "newest first"
	}
	return "best first"
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardNoticeStyle = boardDimStyle.Italic(true).Padding(2, 4)
)

var historyColumns = []table.Column{
	{Title: "Rank", Width: 6},
	{Title: "Score", Width: 8},
	{Title: "Level", Width: 6},
	{Title: "Moves", Width: 8},
	{Title: "Date", Width: 14},
}

// chrome is the number of lines around the table: title, stats, frame, help.
const chrome = 9

type historyKeys struct {
	table.KeyMap
	Sort key.Binding
	Quit key.Binding
}

func (k historyKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.LineUp, k.LineDown, k.Sort, k.Quit}
}

func (k historyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LineUp, k.LineDown, k.PageUp, k.PageDown},
		{k.GotoTop, k.GotoBottom},
		{k.Sort, k.Quit},
	}
}

func newHistoryKeys() historyKeys {
	return historyKeys{
		KeyMap: table.DefaultKeyMap(),
		Sort: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "sort"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// rankedGame pairs a game with its position in the score ranking so the rank
// survives re-sorting by date.
type rankedGame struct {
	rank int
	storage.GameRecord
}

// ScoreboardModel browses the recorded games.
type ScoreboardModel struct {
	games    []rankedGame
	stats    *storage.Stats
	loadErr  error
	order    SortOrder
	table    table.Model
	help     help.Model
	keys     historyKeys
	width    int
	quitting bool
}

// NewScoreboardModel loads the history and builds the browser. A nil history
// shows as empty.
func NewScoreboardModel(history History, width, height int) ScoreboardModel {
	keys := newHistoryKeys()
	m := ScoreboardModel{
		keys:  keys,
		help:  help.New(),
		width: width,
		table: table.New(
			table.WithColumns(historyColumns),
			table.WithFocused(true),
			table.WithHeight(max(height-chrome, 3)),
			table.WithKeyMap(keys.KeyMap),
			table.WithStyles(historyTableStyles()),
		),
	}
	m.help.Width = width
	if history != nil {
		m.games, m.stats, m.loadErr = loadHistory(history)
	}
	m.refresh()
	return m
}

func historyTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

func loadHistory(h History) ([]rankedGame, *storage.Stats, error) {
	records, err := h.TopGames(historyLimit)
	if err != nil {
		return nil, nil, err
	}
	games := make([]rankedGame, len(records))
	for i, r := range records {
		games[i] = rankedGame{rank: i + 1, GameRecord: r}
	}
	stats, err := h.Stats()
	return games, stats, err
}

// Order reports the current sort order.
func (m ScoreboardModel) Order() SortOrder { return m.order }

// refresh sorts the games for the current order and refills the table.
func (m *ScoreboardModel) refresh() {
	switch m.order {
	case SortByDate:
		slices.SortStableFunc(m.games, func(a, b rankedGame) int {
			if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(b.ID, a.ID)
		})
	default:
		slices.SortStableFunc(m.games, func(a, b rankedGame) int {
			return cmp.Compare(a.rank, b.rank)
		})
	}

	rows := make([]table.Row, 0, len(m.games))
	for _, g := range m.games {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(g.rank),
			strconv.Itoa(g.Score),
			strconv.Itoa(g.Level),
			strconv.FormatInt(g.Ticks, 10),
			g.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Sort):
			m.order = 1 - m.order
			m.refresh()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-chrome, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("SNAKE90 HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.GamesCount > 0 {
		fmt.Fprintf(&b, "%s\n\n", boardDimStyle.Render(fmt.Sprintf(
			" %d games  best %d  avg %.1f  last played %s  (%s)",
			m.stats.GamesCount, m.stats.BestScore, m.stats.AvgScore,
			m.stats.LastPlayed.Format("Jan 02 15:04"), m.order)))
	}

	var body string
	switch {
	case m.loadErr != nil:
		body = boardNoticeStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.games) == 0:
		body = boardNoticeStyle.Render("No games recorded yet.\nPlay a game to set a high score!")
	default:
		body = m.table.View()
	}
	b.WriteString(boardFrameStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsQuitting reports whether the user closed the browser.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

func centerText(text string, width int) string {
	if n := lipgloss.Width(text); n < width {
		return strings.Repeat(" ", (width-n)/2) + text
	}
	return text
}

// RunScoreboard shows the history browser until the user quits.
func RunScoreboard(history History, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(history, width, height), tea.WithAltScreen()).Run()
	return err
}

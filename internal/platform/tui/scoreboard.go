package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nebula-defender/internal/storage"
)

const maxRuns = 100

// scoreboardTabs are the difficulty filters; "" shows every run.
var scoreboardTabs = []string{"", "easy", "normal", "hard"}

func tabTitle(difficulty string) string {
	if difficulty == "" {
		return "all"
	}
	return difficulty
}

type scoreboardKeys struct {
	up, down, next, prev, quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.next, k.prev, k.quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var boardKeys = scoreboardKeys{
	up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "difficulty")),
	prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "back")),
	quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Lipgloss colors: 229 cream, 57 violet, 240-245 grays.
var (
	boardTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTab     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardTabOn   = boardTab.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardStats   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardHelp    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
	boardEmpty   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardColumns = []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 9},
		{Title: "Wave", Width: 5},
		{Title: "Kills", Width: 6},
		{Title: "Boss", Width: 5},
		{Title: "Time", Width: 7},
		{Title: "Mode", Width: 7},
		{Title: "Date", Width: 13},
	}
)

// RunSource is the part of storage.Store the scoreboard reads.
type RunSource interface {
	TopRuns(difficulty string, limit int) ([]storage.Run, error)
	Stats(difficulty string) (storage.Stats, error)
}

// ScoreboardModel browses the run history one difficulty at a time.
type ScoreboardModel struct {
	source   RunSource
	tab      int
	runs     []storage.Run
	stats    storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel opens on difficulty ("" for every run).
func NewScoreboardModel(source RunSource, difficulty string, width, height int) ScoreboardModel {
	m := ScoreboardModel{source: source, help: help.New(), width: width, height: height}
	for i, d := range scoreboardTabs {
		if d == difficulty {
			m.tab = i
		}
	}
	m.table = newRunTable(height)
	m.load()
	return m
}

func newRunTable(height int) table.Model {
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true)
	st.Selected = st.Selected.Bold(false).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	return table.New(
		table.WithColumns(boardColumns),
		table.WithFocused(true),
		table.WithHeight(max(3, height-10)),
		table.WithStyles(st),
	)
}

// load reads the runs and stats for the current tab.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.loadErr = nil, storage.Stats{}, nil
	if m.source != nil {
		difficulty := scoreboardTabs[m.tab]
		m.runs, m.loadErr = m.source.TopRuns(difficulty, maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.source.Stats(difficulty)
		}
	}
	m.updateTableRows()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Wave),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.BossKills),
			formatDuration(r.Duration),
			r.Difficulty,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, boardKeys.next):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, boardKeys.prev):
			m.switchTab(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, msg.Height-10))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchTab(step int) {
	n := len(scoreboardTabs)
	m.tab = ((m.tab+step)%n + n) % n
	m.load()
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	tabs := make([]string, len(scoreboardTabs))
	for i, d := range scoreboardTabs {
		style := boardTab
		if i == m.tab {
			style = boardTabOn
		}
		tabs[i] = style.Render(tabTitle(d))
	}

	var body string
	switch {
	case m.loadErr != nil:
		body = boardErr.Render("Cannot read run history:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		body = boardEmpty.Render("No runs recorded yet.\nPlay a game to set a high score!")
	default:
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardTitle.Render(centerText("NEBULA DEFENDER - RUN HISTORY", m.width)),
		"",
		centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width),
		"",
		boardBox.Render(body),
		boardStats.Render(statsLine(m.stats)),
		boardHelp.Render(m.help.View(boardKeys)),
	)
}

func statsLine(st storage.Stats) string {
	if st.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  best %d  avg %.0f  best wave %d  kills %d  bosses %d  played %s",
		st.Runs, st.BestScore, st.AverageScore, st.BestWave, st.TotalKills, st.TotalBosses, formatDuration(st.TotalPlayTime))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard shows the run history until the user quits.
func RunScoreboard(source RunSource, difficulty string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, difficulty, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

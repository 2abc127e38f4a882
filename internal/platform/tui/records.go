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

	"github.com/vovakirdan/flower-quest/internal/storage"
)

const maxRecords = 100

// RecordSource reads completion records.
type RecordSource interface {
	Fastest(goal, limit int) ([]storage.Completion, error)
	PlayerCompletions(player string, limit int) ([]storage.Completion, error)
}

// recordsView selects which records the table lists.
type recordsView int

const (
	viewFastest recordsView = iota
	viewMine
)

func (v recordsView) title() string {
	if v == viewMine {
		return "MY QUESTS"
	}
	return "FASTEST QUESTS"
}

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Switch, k.Quit}}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "fastest/mine"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for browsing completion records.
type RecordsModel struct {
	source   RecordSource
	player   string
	goal     int
	view     recordsView
	records  []storage.Completion
	err      error
	table    table.Model
	help     help.Model
	keys     RecordsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRecordsModel creates a records browser. Fastest records are limited
// to goal; a goal of 0 or less lists every goal.
func NewRecordsModel(source RecordSource, player string, goal, width, height int) RecordsModel {
	m := RecordsModel{
		source: source,
		player: player,
		goal:   goal,
		help:   help.New(),
		keys:   DefaultRecordsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Time", Width: 10},
		{Title: "Flowers", Width: 9},
		{Title: "Jumps", Width: 7},
		{Title: "Date", Width: 14},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 4 - used; spare > 0 {
		columns[1].Width += min(spare, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("162")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the records of the active view.
func (m *RecordsModel) load() {
	m.records, m.err = nil, nil
	if m.source != nil {
		if m.view == viewMine {
			m.records, m.err = m.source.PlayerCompletions(m.player, maxRecords)
		} else {
			m.records, m.err = m.source.Fastest(m.goal, maxRecords)
		}
	}
	m.table.SetRows(recordRows(m.records))
	m.table.GotoTop()
}

// recordRows formats completions as table rows.
func recordRows(records []storage.Completion) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			FormatDuration(r.Duration),
			fmt.Sprintf("%d/%d", r.Flowers, r.Goal),
			fmt.Sprintf("%d", r.Jumps),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// FormatDuration renders a playing time as m:ss.t.
func FormatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", minutes, seconds)
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewFastest {
				m.view = viewMine
			} else {
				m.view = viewFastest
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(recordRows(m.records))
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("213")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(m.view.title()))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load records:\n" + m.err.Error())
	case len(m.records) == 0:
		return emptyStyle.Render("No quests completed yet.\nBring the flowers home to set a record!")
	}
	return m.table.View()
}

// RunRecords runs the records browser on the local terminal.
func RunRecords(source RecordSource, player string, goal, width, height int) error {
	p := tea.NewProgram(
		NewRecordsModel(source, player, goal, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// RenderRecords renders completion records as a static table, for
// output that is not a terminal.
func RenderRecords(records []storage.Completion) string {
	if len(records) == 0 {
		return "No quests completed yet."
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 16},
			{Title: "Time", Width: 10},
			{Title: "Flowers", Width: 9},
			{Title: "Jumps", Width: 7},
			{Title: "Date", Width: 14},
		}),
		table.WithRows(recordRows(records)),
		table.WithHeight(len(records)+1),
	)
	s := table.DefaultStyles()
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t.View()
}

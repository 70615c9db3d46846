package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vibeware/microware/internal/registry"
	"github.com/vibeware/microware/internal/storage"
)

const maxSessions = 100

// historyTab selects which dataset the table shows.
type historyTab int

const (
	tabSessions historyTab = iota
	tabRounds
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns the default bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sessions/rounds"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for past sessions and per-round
// win rates.
type HistoryModel struct {
	store     *storage.Store
	tab       historyTab
	sessions  []storage.SessionRecord
	stats     map[string]storage.RoundStats
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates the history screen and loads its data.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.load()
	m.table = m.createTable()
	m.fillRows()
	return m
}

func (m *HistoryModel) load() {
	if m.store == nil {
		return
	}
	if sessions, err := m.store.TopSessions(maxSessions); err == nil {
		m.sessions = sessions
	}
	if stats, err := m.store.AllRoundStats(); err == nil {
		m.stats = stats
	}
}

func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabSessions {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Won", Width: 5},
			{Title: "Played", Width: 7},
			{Title: "Speed", Width: 6},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "Round", Width: 14},
			{Title: "Played", Width: 7},
			{Title: "Won", Width: 5},
			{Title: "Win rate", Width: 9},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

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
	t.SetStyles(s)

	return t
}

func (m *HistoryModel) fillRows() {
	var rows []table.Row

	if m.tab == tabSessions {
		rows = make([]table.Row, len(m.sessions))
		for i, s := range m.sessions {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				fmt.Sprintf("%d", s.RoundsWon),
				fmt.Sprintf("%d", s.RoundsPlayed),
				fmt.Sprintf("x%.1f", s.MaxSpeed),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		// Keep registry order so unseen rounds still show up with zeros.
		ids := registry.IDs()
		sort.Strings(ids)
		for _, id := range ids {
			st := m.stats[id]
			rows = append(rows, table.Row{
				id,
				fmt.Sprintf("%d", st.Plays),
				fmt.Sprintf("%d", st.Wins),
				fmt.Sprintf("%.0f%%", st.WinRate()*100),
			})
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			if m.tab == tabSessions {
				m.tab = tabRounds
			} else {
				m.tab = tabSessions
			}
			m.table = m.createTable()
			m.fillRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.fillRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "BEST SESSIONS"
	if m.tab == tabRounds {
		title = "ROUND WIN RATES"
	}
	b.WriteString("\n")
	b.WriteString(centerText(overStyle.Render(title), m.width))
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// WantsMenu reports whether the player backed out rather than quit.
func (m HistoryModel) WantsMenu() bool { return m.goingBack }

// RunHistory shows the history screen. Returns true when the player
// wants the menu back.
func RunHistory(store *storage.Store, width, height int) (bool, error) {
	p := tea.NewProgram(NewHistoryModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.WantsMenu(), nil
}

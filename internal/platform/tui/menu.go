package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

// rushItemID marks the menu entry that starts a full rush session.
const rushItemID = "__rush__"

// MenuItem is one selectable entry: the rush mode or a practice round.
type MenuItem struct {
	ID       string
	Title    string
	Practice bool
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem
	openHistory bool
}

// NewMenuModel creates the menu from the registered round catalog.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	rounds := registry.List()
	items := make([]MenuItem, 0, len(rounds)+1)

	items = append(items, MenuItem{ID: rushItemID, Title: "RUSH MODE"})
	for _, r := range rounds {
		items = append(items, MenuItem{ID: r.ID, Title: r.Title, Practice: true})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(promptStyle.Render("M I C R O W A R E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Pick a mode, or a round to practice"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		title := item.Title
		if item.Practice {
			title = fmt.Sprintf("practice: %s", title)
		}
		line := cursor + title
		if i == m.cursor {
			line = winStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")

		// Blank line after the rush entry to set it apart.
		if i == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem { return m.selected }

// IsQuitting reports whether the player asked to leave.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsHistory reports whether the player opened the history screen.
func (m MenuModel) WantsHistory() bool { return m.openHistory }

// Config returns the runtime config, which tracks terminal resizes.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText centers text within the given width, measuring display
// width so styled strings line up too.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult is what running the menu produced.
type MenuResult struct {
	RoundID      string // empty for rush mode
	Practice     bool
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		if m.Selected().Practice {
			result.RoundID = m.Selected().ID
			result.Practice = true
		}
	default:
		result.Quit = true
	}

	return result, nil
}

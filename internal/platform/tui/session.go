package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vibeware/microware/internal/audio"
	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/session"
	"github.com/vibeware/microware/internal/storage"
)

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	winStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	newBestStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// SessionModel is the Bubble Tea model for a rush session. It drives the
// Runner tick by tick, renders whatever the current controller phase asks
// for, and saves the session when the lives run out.
type SessionModel struct {
	runner *session.Runner
	store  *storage.Store
	screen *core.Screen
	cfg    core.RuntimeConfig
	km     *KeyMapper
	player string

	inputFrame core.InputFrame
	results    []storage.RoundResult
	startedAt  time.Time
	maxSpeed   float64
	prevBest   int

	practice bool // losses don't end the session, nothing is saved
	saved    bool
	newBest  bool
	quitting bool
	backing  bool // return to menu instead of exiting the program
	err      error
}

// NewSessionModel creates a rush session over the given round catalog.
func NewSessionModel(catalog []string, store *storage.Store, rules session.Rules, cfg core.RuntimeConfig, cue audio.Cue, player string) SessionModel {
	prevBest := 0
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			prevBest = hs
		}
	}
	return SessionModel{
		runner:     session.NewRunner(rules, cfg, cue, catalog),
		store:      store,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		cfg:        cfg,
		km:         NewKeyMapper(),
		player:     player,
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
		maxSpeed:   1.0,
		prevBest:   prevBest,
	}
}

// NewPracticeModel creates a single-round practice session. The round
// repeats until the player backs out; nothing is recorded.
func NewPracticeModel(roundID string, rules session.Rules, cfg core.RuntimeConfig, cue audio.Cue) SessionModel {
	m := NewSessionModel([]string{roundID}, nil, rules, cfg, cue, "")
	m.practice = true
	return m
}

// Init starts the tick loop.
func (m SessionModel) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and advances the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if cur := m.runner.Current(); cur != nil && !cur.Done() {
			cur.Abort()
		}
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.runner.Over() {
			m.backing = true
			return m, tea.Quit
		}
		if cur := m.runner.Current(); cur != nil && !cur.Done() {
			cur.Abort()
		}
		if m.practice {
			m.backing = true
			return m, tea.Quit
		}
		return m, nil
	case "enter", " ":
		if m.runner.Over() {
			m.backing = true
			return m, tea.Quit
		}
	}

	m.km.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

func (m SessionModel) handleTick() (tea.Model, tea.Cmd) {
	if m.err != nil {
		return m, tea.Quit
	}

	if m.runner.Over() && !m.practice {
		m.saveOnce()
		// Stay on the game-over screen until the player leaves.
		return m, tickCmd(m.cfg.TickRate)
	}

	cur := m.runner.Current()
	if cur == nil || cur.Done() {
		if cur != nil {
			m.recordResult(cur)
		}
		if m.runner.Over() && !m.practice {
			m.saveOnce()
			return m, tickCmd(m.cfg.TickRate)
		}
		next, err := m.runner.Next()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		cur = next
	}

	cur.Tick(m.inputFrame)
	if s := m.runner.State().Speed; s > m.maxSpeed {
		m.maxSpeed = s
	}
	m.inputFrame.Clear()

	return m, tickCmd(m.cfg.TickRate)
}

func (m *SessionModel) recordResult(c *session.Controller) {
	if m.practice {
		return
	}
	m.results = append(m.results, storage.RoundResult{
		RoundID: m.runner.CurrentID(),
		Won:     c.Won(),
	})
}

func (m *SessionModel) saveOnce() {
	if m.saved || m.practice || m.store == nil {
		return
	}
	m.saved = true

	st := m.runner.State()
	m.newBest = st.Score > m.prevBest && st.Score > 0

	rec := storage.SessionRecord{
		Player:       m.player,
		Score:        st.Score,
		RoundsWon:    st.RoundsWon,
		RoundsPlayed: st.RoundsPlayed,
		MaxSpeed:     m.maxSpeed,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
	}
	//nolint:errcheck // Best-effort save, the game-over screen shows regardless
	m.store.SaveSession(rec, m.results)
}

// View renders the current controller phase.
func (m SessionModel) View() string {
	if m.quitting || m.backing {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("session error: %v\n", m.err)
	}

	if m.runner.Over() && !m.practice {
		return m.viewGameOver()
	}

	cur := m.runner.Current()
	if cur == nil {
		return ""
	}

	switch cur.Phase() {
	case session.PhasePrompt:
		return m.viewPrompt(cur)
	case session.PhaseResolved:
		return m.viewResolved(cur)
	case session.PhaseEnding:
		return m.viewEnding(cur)
	default:
		return m.viewActive(cur)
	}
}

// viewActive renders the round into the screen buffer and overlays the
// HUD row and the countdown bar.
func (m SessionModel) viewActive(c *session.Controller) string {
	c.Round().Render(m.screen)
	m.drawHUD()
	m.drawCountdown(c.Countdown())
	return RenderScreen(m.screen)
}

func (m SessionModel) drawHUD() {
	st := m.runner.State()

	hearts := strings.Repeat("♥", st.Lives)
	m.screen.DrawTextColored(1, 0, hearts, core.ColorBrightRed)

	score := fmt.Sprintf("SCORE %d", st.Score)
	m.screen.DrawTextColored(m.screen.Width()-len(score)-1, 0, score, core.ColorBrightWhite)

	if st.Speed > 1.0 {
		speed := fmt.Sprintf("x%.1f", st.Speed)
		m.screen.DrawTextColored(m.screen.Width()/2-len(speed)/2, 0, speed, core.ColorOrange)
	}
}

func (m SessionModel) drawCountdown(frac float64) {
	y := m.screen.Height() - 1
	width := m.screen.Width() - 2
	filled := int(frac * float64(width))

	c := core.ColorBrightGreen
	if frac < 0.25 {
		c = core.ColorBrightRed
	} else if frac < 0.5 {
		c = core.ColorBrightYellow
	}
	m.screen.DrawHLine(1, y, width, '░', core.ColorGray)
	m.screen.DrawHLine(1, y, filled, '█', c)
}

func (m SessionModel) viewPrompt(c *session.Controller) string {
	r := c.Round()
	var b strings.Builder

	midY := m.cfg.ScreenH / 2
	for i := 0; i < midY-2; i++ {
		b.WriteString("\n")
	}
	b.WriteString(centerText(promptStyle.Render(r.Prompt()), m.cfg.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(r.Controls()), m.cfg.ScreenW))
	b.WriteString("\n")
	return b.String()
}

func (m SessionModel) viewResolved(c *session.Controller) string {
	var b strings.Builder

	midY := m.cfg.ScreenH / 2
	for i := 0; i < midY-1; i++ {
		b.WriteString("\n")
	}
	if c.Won() {
		b.WriteString(centerText(winStyle.Render("★ NICE! ★"), m.cfg.ScreenW))
	} else {
		b.WriteString(centerText(failStyle.Render("✖ MISS ✖"), m.cfg.ScreenW))
	}
	b.WriteString("\n")
	return b.String()
}

// viewEnding shows the updated progression between rounds.
func (m SessionModel) viewEnding(c *session.Controller) string {
	st := m.runner.State()
	var b strings.Builder

	midY := m.cfg.ScreenH / 2
	for i := 0; i < midY-3; i++ {
		b.WriteString("\n")
	}
	hearts := strings.Repeat("♥ ", st.Lives)
	if hearts == "" {
		hearts = "—"
	}
	b.WriteString(centerText(failStyle.Render(strings.TrimSpace(hearts)), m.cfg.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("SCORE %d", st.Score), m.cfg.ScreenW))
	b.WriteString("\n\n")
	if st.Speed > 1.0 {
		b.WriteString(centerText(newBestStyle.Render(fmt.Sprintf("SPEED x%.1f", st.Speed)), m.cfg.ScreenW))
		b.WriteString("\n")
	}
	return b.String()
}

func (m SessionModel) viewGameOver() string {
	st := m.runner.State()
	var b strings.Builder

	midY := m.cfg.ScreenH / 2
	for i := 0; i < midY-5; i++ {
		b.WriteString("\n")
	}
	b.WriteString(centerText(overStyle.Render("G A M E   O V E R"), m.cfg.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Final score: %d", st.Score), m.cfg.ScreenW))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Rounds: %d won / %d played", st.RoundsWon, st.RoundsPlayed), m.cfg.ScreenW))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Top speed: x%.1f", m.maxSpeed), m.cfg.ScreenW))
	b.WriteString("\n\n")
	if m.newBest {
		b.WriteString(centerText(newBestStyle.Render("NEW HIGH SCORE!"), m.cfg.ScreenW))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(dimStyle.Render("Enter: back to menu  |  Q: quit"), m.cfg.ScreenW))
	b.WriteString("\n")
	return b.String()
}

// WantsMenu reports whether the player asked to return to the menu
// rather than leave the program.
func (m SessionModel) WantsMenu() bool { return m.backing }

// Err returns the error that aborted the session, if any.
func (m SessionModel) Err() error { return m.err }

// Config returns the runtime config, which tracks terminal resizes.
func (m SessionModel) Config() core.RuntimeConfig { return m.cfg }

// RunSession plays one rush session in the local terminal. Returns true
// when the player wants the menu back rather than the shell.
func RunSession(catalog []string, store *storage.Store, rules session.Rules, cfg core.RuntimeConfig, cue audio.Cue, player string) (bool, error) {
	model := NewSessionModel(catalog, store, rules, cfg, cue, player)
	return runSessionProgram(model)
}

// RunPractice plays a single round on repeat until the player backs out.
func RunPractice(roundID string, rules session.Rules, cfg core.RuntimeConfig, cue audio.Cue) (bool, error) {
	return runSessionProgram(NewPracticeModel(roundID, rules, cfg, cue))
}

func runSessionProgram(model SessionModel) (bool, error) {
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(SessionModel)
	if !ok {
		return false, nil
	}
	if m.Err() != nil {
		return false, m.Err()
	}
	return m.WantsMenu(), nil
}

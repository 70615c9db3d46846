package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vibeware/microware/internal/audio"
	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
	"github.com/vibeware/microware/internal/session"
	"github.com/vibeware/microware/internal/storage"
)

// SSHServerConfig holds configuration for the remote-play server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file. If empty, a key is
	// auto-generated at ~/.microware/host_key.
	HostKeyPath string

	// DBPath is the path to the sessions database.
	DBPath string

	// Rules is the rush ruleset served to every connection.
	Rules session.Rules

	// IdleTimeout closes idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.microware/sessions.db",
		Rules:       session.DefaultRules(),
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server so the rush can be played remotely.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates an SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "microware-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "error", err)
		// Remote play still works, scores just aren't kept.
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".microware", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program per SSH connection.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewAppModel(s.store, s.config.Rules, cfg, sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// AppModel is the top-level model used for SSH connections: it composes
// menu, rush session and history into one program so the remote player
// never gets dropped back to their shell between screens.
type AppModel struct {
	store    *storage.Store
	rules    session.Rules
	config   core.RuntimeConfig
	username string

	menu     MenuModel
	sess     *SessionModel
	history  *HistoryModel
	quitting bool
}

// NewAppModel creates the composed model starting at the menu.
func NewAppModel(store *storage.Store, rules session.Rules, cfg core.RuntimeConfig, username string) AppModel {
	return AppModel{
		store:    store,
		rules:    rules,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the composed model.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to whichever screen is active.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.sess != nil:
		return m.updateSession(msg)
	case m.history != nil:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		h := NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.history = &h
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()
		m.config.Seed = time.Now().UnixNano()

		var sess SessionModel
		if selected.Practice {
			sess = NewPracticeModel(selected.ID, m.rules, m.config, audio.Null{})
		} else {
			sess = NewSessionModel(registry.IDs(), m.store, m.rules, m.config, audio.Null{}, m.username)
		}
		m.sess = &sess
		return m, m.sess.Init()
	}

	return m, cmd
}

func (m AppModel) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.sess.Update(msg)
	if sess, ok := newModel.(SessionModel); ok {
		m.sess = &sess
	}

	if m.sess.WantsMenu() || errors.Is(m.sess.Err(), session.ErrNoRounds) {
		m.sess = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.sess.quitting || m.sess.Err() != nil {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if h, ok := newModel.(HistoryModel); ok {
		m.history = &h
	}

	if m.history.WantsMenu() {
		m.history = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.history.quitting {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders whichever screen is active.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.sess != nil:
		return m.sess.View()
	case m.history != nil:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

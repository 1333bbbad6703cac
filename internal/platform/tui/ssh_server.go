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

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/storage"
)

// shutdownGrace bounds how long open games get to close on shutdown.
const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address      string        // host:port, e.g. ":23234"
	HostKeyPath  string        // Generated under ~/.sneaky when empty
	DBPath       string        // Results database shared by all players
	IdleTimeout  time.Duration // Idle connections are dropped after this
	Game         config.Config // Board and rules for every session
	TickInterval time.Duration // Overrides Game.Timing when positive
}

// DefaultSSHServerConfig returns the settings used by "sneaky serve".
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.sneaky/results.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
	}
}

// SSHServer hands every SSH connection its own game.
// Players share nothing but the results ledger.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares a server; nothing listens until ListenAndServe.
// A nil logger logs to stderr. If the results database cannot be opened
// the server still runs, without recording results.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "sneaky-ssh",
		})
	}

	s := &SSHServer{config: cfg, logger: logger}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("results will not be recorded", "db", cfg.DBPath, "error", err)
	} else {
		s.store = store
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		s.closeStore()
		return nil, err
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// Listed outermost last: sessions are logged around the game.
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.logSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("ssh server: %w", err)
	}
	return s, nil
}

// hostKeyPath returns where the host key lives, creating its directory.
// wish generates the key on first start.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh server: locating host key: %w", err)
		}
		path = filepath.Join(home, ".sneaky", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh server: host key directory: %w", err)
	}
	return path, nil
}

// runtimeFor builds the per-session settings for an SSH user.
func (s *SSHServer) runtimeFor(user string, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: s.config.TickInterval,
		Seed:         time.Now().UnixNano(),
		PlayerName:   user,
	}
}

// newSession builds the game for one connection. Connections without a
// terminal get no game.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("rejected session without a terminal", "user", sess.User())
		return nil, nil
	}

	rt := s.runtimeFor(sess.User(), pty.Window.Width, pty.Window.Height)
	model := NewModel(s.config.Game, rt, s.store, nil)
	model.logger = s.logger.With("session", model.SessionID(), "user", sess.User())

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// logSessions records when players connect and leave.
func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		started := time.Now()
		s.logger.Info("player connected", "user", sess.User(), "remote", sess.RemoteAddr().String())

		next(sess)

		s.logger.Info("player left",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(started).Round(time.Second),
		)
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("listening", "address", s.config.Address)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	failed := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case sig := <-stop:
		s.logger.Info("stopping", "signal", sig.String())
		return s.Shutdown()
	case err := <-failed:
		s.closeStore()
		return fmt.Errorf("ssh server: %w", err)
	}
}

// Shutdown closes the listener, waits up to shutdownGrace for open games
// and closes the results database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

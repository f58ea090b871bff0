package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/nebula-defender/internal/config"
	"github.com/vovakirdan/nebula-defender/internal/core"
	"github.com/vovakirdan/nebula-defender/internal/engine"
	"github.com/vovakirdan/nebula-defender/internal/settings"
	"github.com/vovakirdan/nebula-defender/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.nebula/host_key, generated on first start.
	HostKeyPath string

	DBPath      string
	IdleTimeout time.Duration

	// MaxSessions caps concurrent players; 0 means unlimited.
	MaxSessions int

	Game       config.Config
	Difficulty string
	TickRate   int

	Logger *log.Logger
}

// DefaultSSHServerConfig returns the settings used by `nebula serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.nebula/nebula.db",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 32,
		Game:        config.Default(),
		Difficulty:  string(config.DifficultyNormal),
		TickRate:    30,
	}
}

// SSHServer gives every SSH session its own engine. Sessions share the run
// history database and nothing else.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer prepares the host key and the shared store. A database that
// cannot be opened only disables run history.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "nebula-ssh",
		})
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, logger: cfg.Logger}
	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		s.logger.Warn("run history disabled", "db", cfg.DBPath, "err", err)
		s.store = nil
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.admit,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	return s, nil
}

func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot locate home directory: %w", err)
		}
		path = filepath.Join(home, ".nebula", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// Sessions reports how many players are connected.
func (s *SSHServer) Sessions() int {
	return int(s.active.Load())
}

// admit enforces MaxSessions and logs the session lifetime.
func (s *SSHServer) admit(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		if limit := s.cfg.MaxSessions; limit > 0 && int(n) > limit {
			l.Warn("session rejected", "active", n-1, "limit", limit)
			wish.Fatalln(sess, "nebula: server full, try again later")
			return
		}

		start := time.Now()
		l.Info("session started", "active", n)
		next(sess)
		l.Info("session ended", "played", time.Since(start).Round(time.Second))
	}
}

func (s *SSHServer) newSessionEngine(user string) *engine.Engine {
	opts := engine.Options{
		Config: s.cfg.Game,
		Seed:   time.Now().UnixNano(),
		Audio:  core.NopAudio{},
		Logger: s.logger.With("user", user),
	}
	if s.store != nil {
		keeper := storage.NewKeeper(s.store, s.cfg.Difficulty, opts.Logger)
		opts.Scores = keeper
		opts.Runs = keeper
	}
	return engine.New(opts)
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "nebula: a terminal is required (ssh -t)")
		return nil, nil
	}

	m := NewModel(ModelOptions{
		Engine: s.newSessionEngine(sess.User()),
		Saver:  settings.NewStore(nil),
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.cfg.TickRate,
		},
		Logger: s.logger,
	})
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

// ListenAndServe blocks until ctx is cancelled or the listener fails, then
// shuts the server down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.cfg.Address, "difficulty", s.cfg.Difficulty)

	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down", "sessions", s.Sessions())
		return s.Shutdown()
	case err := <-errCh:
		s.closeStore()
		if err != nil {
			return fmt.Errorf("tui: SSH server: %w", err)
		}
		return nil
	}
}

// Shutdown waits up to shutdownGrace for sessions to drain.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing run history", "err", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}

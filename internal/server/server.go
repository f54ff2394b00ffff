// Package server serves independent game sessions over SSH.
package server

import (
	"context"
	"errors"
	"net"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/verte-zerg/hitzone/internal/config"
	"github.com/verte-zerg/hitzone/internal/model"
	"github.com/verte-zerg/hitzone/internal/sound"
	"github.com/verte-zerg/hitzone/internal/tui"
)

// Server wraps a wish SSH server where every connection plays its own game.
type Server struct {
	defaults model.GameSettings
	logger   *log.Logger
	srv      *ssh.Server
	active   atomic.Int64
}

// New builds a server listening on the configured address.
func New(cfg config.ServerConfig, defaults model.GameSettings, logger *log.Logger) (*Server, error) {
	s := &Server{defaults: defaults, logger: logger}
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithMiddleware(
			bm.Middleware(s.handler),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
	}
	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}
	srv, err := wish.NewServer(opts...)
	if err != nil {
		return nil, err
	}
	s.srv = srv
	return s, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// ListenAndServe blocks until the server stops. A clean shutdown returns nil.
func (s *Server) ListenAndServe() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for sessions until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Active returns the number of connected players.
func (s *Server) Active() int64 {
	return s.active.Load()
}

func (s *Server) handler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
	session, err := tui.NewSession(s.defaults, sound.Nop{}, bm.MakeRenderer(sess), logger)
	if err != nil {
		logger.Error("failed to start session", "err", err)
		wish.Fatalln(sess, "failed to start game session")
		return nil, nil
	}
	n := s.active.Add(1)
	logger.Info("session started", "active", n)
	go func() {
		<-sess.Context().Done()
		if err := session.Close(); err != nil {
			logger.Warn("failed to close session", "err", err)
		}
		logger.Info("session ended", "active", s.active.Add(-1))
	}()
	return session.Model, []tea.ProgramOption{tea.WithAltScreen()}
}

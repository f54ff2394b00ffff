package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/verte-zerg/hitzone/internal/game"
	"github.com/verte-zerg/hitzone/internal/model"
	"github.com/verte-zerg/hitzone/internal/settings"
	"github.com/verte-zerg/hitzone/internal/sound"
	"github.com/verte-zerg/hitzone/internal/stats"
	"github.com/verte-zerg/hitzone/internal/store"
)

// Session owns every collaborator of one player's UI.
type Session struct {
	Model   *Model
	Game    *game.Store
	results *store.Store
}

// NewSession wires fresh settings, game and results stores around a UI model.
// Styles render through r, which should describe the player's terminal.
func NewSession(initial model.GameSettings, player sound.Player, r *lipgloss.Renderer, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	results, err := store.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open results log: %w", err)
	}
	st := settings.NewStore(initial)
	g := game.NewStore(st, game.WithLogger(logger))
	m := NewModel(Deps{
		Settings: st,
		Game:     g,
		Results:  results,
		Player:   player,
		Logger:   logger,
		Renderer: r,
	})
	return &Session{Model: m, Game: g, results: results}, nil
}

// Close cancels any pending countdown and drops the results log.
func (s *Session) Close() error {
	s.Game.Reset()
	return s.results.Close()
}

// Report summarizes every game finished in this session.
func (s *Session) Report(ctx context.Context) (stats.Report, error) {
	return stats.BuildReport(ctx, s.results, 0)
}

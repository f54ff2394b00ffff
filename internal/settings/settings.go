// Package settings holds the session's game settings.
package settings

import (
	"sync"

	"github.com/verte-zerg/hitzone/internal/model"
)

// DefaultSpeed is the animation speed multiplier used when nothing else is configured.
const DefaultSpeed = 1.0

// DefaultCountHits is the number of successful hits needed to win.
const DefaultCountHits = 6

// Defaults returns the initial settings record.
func Defaults() model.GameSettings {
	return model.GameSettings{
		Speed:      DefaultSpeed,
		Difficulty: model.DifficultyNormal,
		CountHits:  DefaultCountHits,
	}
}

// Store owns the settings of one session.
type Store struct {
	mu       sync.RWMutex
	settings model.GameSettings
}

// NewStore returns a store seeded with initial.
func NewStore(initial model.GameSettings) *Store {
	return &Store{settings: initial}
}

// Get returns a snapshot of the current settings.
func (s *Store) Get() model.GameSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Replace overwrites the full settings record. Values are not validated.
func (s *Store) Replace(next model.GameSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = next
}

// SetDifficulty replaces only the difficulty.
func (s *Store) SetDifficulty(level model.Difficulty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Difficulty = level
}

// Package game implements the hit-zone game state machine.
package game

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/verte-zerg/hitzone/internal/generator"
	"github.com/verte-zerg/hitzone/internal/model"
)

// InitialCountdown is the number of seconds counted down before play.
const InitialCountdown = 3

// ErrInvalidTransition is returned when an action is not allowed from the current phase.
var ErrInvalidTransition = errors.New("invalid transition")

var initialState = model.GameState{
	CurrentHitRange: InitialHitRange,
	Countdown:       InitialCountdown,
}

// InitialState returns a fresh copy of the initial game state.
func InitialState() model.GameState {
	return initialState
}

// SettingsSource provides the settings the game reads when evaluating hits.
type SettingsSource interface {
	Get() model.GameSettings
}

// Option configures a Store.
type Option func(*Store)

// WithScheduler sets the scheduler used for the countdown.
func WithScheduler(s Scheduler) Option {
	return func(st *Store) { st.sched = s }
}

// WithGenerator sets the source of hit-zone centres.
func WithGenerator(g *generator.Generator) Option {
	return func(st *Store) { st.gen = g }
}

// WithClock sets the clock used for round timestamps.
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(st *Store) { st.logger = l }
}

// Store owns the authoritative state of one game session.
type Store struct {
	mu       sync.Mutex
	state    model.GameState
	settings SettingsSource

	sched  Scheduler
	gen    *generator.Generator
	now    func() time.Time
	logger *log.Logger

	stopCountdown func()
	countdownGen  uint64

	changes chan struct{}
}

// NewStore returns a store in the initial state.
func NewStore(settings SettingsSource, opts ...Option) *Store {
	s := &Store{
		state:    InitialState(),
		settings: settings,
		changes:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sched == nil {
		s.sched = TickerScheduler{}
	}
	if s.gen == nil {
		s.gen = generator.New()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Changes delivers a signal after state changes. Signals are coalesced.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

// StartGame marks the session started and begins the countdown.
// Calling it while a countdown is pending does not schedule a second timer.
func (s *Store) StartGame() {
	s.mu.Lock()
	s.state.IsStarted = true
	if s.stopCountdown == nil && s.state.Countdown > 0 {
		s.countdownGen++
		gen := s.countdownGen
		s.stopCountdown = s.sched.Every(CountdownPeriod, func() { s.tick(gen) })
		s.logger.Debug("countdown started", "countdown", s.state.Countdown)
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.countdownGen || s.stopCountdown == nil {
		s.mu.Unlock()
		return
	}
	if s.state.Countdown > 0 {
		s.state.Countdown--
	}
	if s.state.Countdown <= 0 {
		s.cancelCountdownLocked()
		s.logger.Debug("countdown finished")
	}
	s.mu.Unlock()
	s.notify()
}

// BeginRound starts the first round: hits and pointer are cleared and a new zone is drawn.
func (s *Store) BeginRound() error {
	s.mu.Lock()
	if s.state.Terminal() {
		err := invalid("begin round", s.state)
		s.mu.Unlock()
		return err
	}
	s.state.SuccessfulHits = 0
	s.state.PointerAngle = 0
	s.state.IsRotating = true
	s.state.CurrentHitRange = InitialHitRange
	s.state.CenterRange = s.gen.Center()
	s.state.LastTimestamp = s.now()
	s.logger.Debug("round started", "center", s.state.CenterRange)
	s.mu.Unlock()
	s.notify()
	return nil
}

// RegisterHit counts a successful hit and shrinks the zone for the configured difficulty.
func (s *Store) RegisterHit() error {
	difficulty := s.settings.Get().Difficulty
	s.mu.Lock()
	if !s.roundActiveLocked() {
		err := invalid("register hit", s.state)
		s.mu.Unlock()
		return err
	}
	s.state.SuccessfulHits++
	s.state.CurrentHitRange = HitRange(s.state.SuccessfulHits, difficulty)
	s.logger.Debug("hit", "hits", s.state.SuccessfulHits, "range", s.state.CurrentHitRange)
	s.mu.Unlock()
	s.notify()
	return nil
}

// NextRound draws a new zone and restarts the pointer clock.
func (s *Store) NextRound() error {
	s.mu.Lock()
	if !s.roundActiveLocked() {
		err := invalid("next round", s.state)
		s.mu.Unlock()
		return err
	}
	s.state.CenterRange = s.gen.Center()
	s.state.IsRotating = true
	s.state.LastTimestamp = s.now()
	s.mu.Unlock()
	s.notify()
	return nil
}

// Win ends the session as won.
func (s *Store) Win() error {
	return s.finish("win", func(st *model.GameState) { st.IsWin = true })
}

// Lose ends the session as lost.
func (s *Store) Lose() error {
	return s.finish("lose", func(st *model.GameState) { st.IsLoose = true })
}

func (s *Store) finish(action string, mark func(*model.GameState)) error {
	s.mu.Lock()
	if s.state.Terminal() {
		err := invalid(action, s.state)
		s.mu.Unlock()
		return err
	}
	mark(&s.state)
	s.state.IsRotating = false
	s.logger.Debug("game over", "outcome", action, "hits", s.state.SuccessfulHits)
	s.mu.Unlock()
	s.notify()
	return nil
}

// CheckWin reports whether the configured hit count has been reached.
func (s *Store) CheckWin() bool {
	target := s.settings.Get().CountHits
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SuccessfulHits >= target
}

// SetPointerAngle records the pointer position computed by the frame driver.
func (s *Store) SetPointerAngle(angle float64) {
	s.mu.Lock()
	s.state.PointerAngle = angle
	s.mu.Unlock()
}

// SetOverHitZone records whether the pointer currently overlaps the zone.
func (s *Store) SetOverHitZone(over bool) {
	s.mu.Lock()
	s.state.IsOverHitZone = over
	s.mu.Unlock()
}

// Reset cancels any pending countdown and restores the initial state.
func (s *Store) Reset() {
	s.mu.Lock()
	s.cancelCountdownLocked()
	s.state = InitialState()
	s.mu.Unlock()
	s.notify()
}

// CountdownPending reports whether a countdown timer is scheduled.
func (s *Store) CountdownPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopCountdown != nil
}

func (s *Store) roundActiveLocked() bool {
	return s.state.IsRotating && !s.state.Terminal()
}

func (s *Store) cancelCountdownLocked() {
	if s.stopCountdown == nil {
		return
	}
	s.stopCountdown()
	s.stopCountdown = nil
	s.countdownGen++
}

func (s *Store) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func invalid(action string, st model.GameState) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, action, PhaseOf(st))
}

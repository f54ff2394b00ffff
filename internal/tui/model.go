// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/verte-zerg/hitzone/internal/game"
	"github.com/verte-zerg/hitzone/internal/model"
	"github.com/verte-zerg/hitzone/internal/router"
	"github.com/verte-zerg/hitzone/internal/settings"
	"github.com/verte-zerg/hitzone/internal/sound"
	"github.com/verte-zerg/hitzone/internal/stats"
)

const frameInterval = time.Second / 60

const recentResults = 5

// ResultLog records finished games and reads them back for the summary.
type ResultLog interface {
	stats.ResultSource
	InsertResult(ctx context.Context, r model.RoundResult) (string, error)
}

// Deps are the collaborators of one UI session.
type Deps struct {
	Settings *settings.Store
	Game     *game.Store
	Results  ResultLog
	Player   sound.Player
	Logger   *log.Logger
	Now      func() time.Time
	// Renderer binds styles to the player's terminal. Nil uses the process default.
	Renderer *lipgloss.Renderer
}

type changedMsg struct{}

type frameMsg time.Time

// Model implements the Bubble Tea game UI.
type Model struct {
	settings *settings.Store
	game     *game.Store
	results  ResultLog
	player   sound.Player
	logger   *log.Logger
	now      func() time.Time

	history  *router.History
	help     help.Model
	renderer *lipgloss.Renderer
	styles   styles

	width  int
	height int

	menuIndex     int
	settingsIndex int

	framing       bool
	lastCountdown int
	startedAt     time.Time
	report        stats.Report
	hasReport     bool
	errMsg        string
}

// NewModel constructs a game UI positioned on the menu page.
func NewModel(deps Deps) *Model {
	m := &Model{
		settings: deps.Settings,
		game:     deps.Game,
		results:  deps.Results,
		player:   deps.Player,
		logger:   deps.Logger,
		now:      deps.Now,
		history:  router.NewHistory(),
		renderer: deps.Renderer,
	}
	if m.renderer == nil {
		m.renderer = lipgloss.DefaultRenderer()
	}
	m.styles = newStyles(m.renderer)
	m.help = newHelp(m.renderer)
	if m.player == nil {
		m.player = sound.Nop{}
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return waitForChange(m.game.Changes())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case changedMsg:
		return m, tea.Batch(waitForChange(m.game.Changes()), m.onGameChanged())
	case frameMsg:
		return m, m.onFrame()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.currentPage() {
		case router.GameCenter:
			return m, m.updatePlay(msg)
		case router.Settings:
			return m, m.updateSettings(msg)
		default:
			return m, m.updateMenu(msg)
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	route := m.history.Current()
	var body string
	var bindings pageKeys
	switch route.Name {
	case router.GameCenter:
		body, bindings = m.viewPlay()
	case router.Settings:
		body, bindings = m.viewSettings()
	default:
		body, bindings = m.viewMenu()
	}
	header := m.styles.title.Render("hitzone") + " " + m.styles.path.Render(route.Path)
	if m.errMsg != "" {
		body += "\n\n" + m.styles.err.Render(m.errMsg)
	}
	footer := m.help.View(bindings)
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, body, footer}, "\n\n")
	}
	if m.height < 5 {
		return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	headerLine := m.renderer.Place(m.width, 1, lipgloss.Center, lipgloss.Center, header)
	content := m.renderer.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, body)
	footerLine := m.renderer.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return headerLine + "\n" + content + "\n" + footerLine
}

func (m *Model) navigate(path string) tea.Cmd {
	from := m.history.Current()
	to, ok := m.history.Push(path)
	if !ok {
		m.logger.Warn("unknown route", "path", path)
		return nil
	}
	m.logger.Debug("navigate", "from", from.Path, "to", to.Path)
	if to.Name == router.GameCenter {
		return m.startGame()
	}
	return nil
}

func (m *Model) back() tea.Cmd {
	if m.currentPage() == router.GameCenter {
		m.game.Reset()
	}
	to := m.history.Back()
	m.logger.Debug("navigate back", "to", to.Path)
	m.errMsg = ""
	return nil
}

func (m *Model) startGame() tea.Cmd {
	m.game.Reset()
	m.hasReport = false
	m.report = stats.Report{}
	m.errMsg = ""
	m.lastCountdown = game.InitialCountdown
	m.game.StartGame()
	return m.startFrames()
}

func (m *Model) startFrames() tea.Cmd {
	if m.framing {
		return nil
	}
	m.framing = true
	return frameTick()
}

func (m *Model) onFrame() tea.Cmd {
	if m.currentPage() != router.GameCenter {
		m.framing = false
		return nil
	}
	st := m.game.State()
	if st.IsRotating {
		angle := game.PointerAngleAt(st.LastTimestamp, m.now(), m.settings.Get().Speed)
		m.game.SetPointerAngle(angle)
		m.game.SetOverHitZone(game.InHitZone(angle, st.CenterRange, st.CurrentHitRange))
	}
	return frameTick()
}

func (m *Model) onGameChanged() tea.Cmd {
	if m.currentPage() != router.GameCenter {
		return nil
	}
	st := m.game.State()
	if st.IsStarted && st.Countdown < m.lastCountdown {
		m.lastCountdown = st.Countdown
		m.player.Play(sound.CueTick)
	}
	if game.PhaseOf(st) == game.PhaseReady {
		if err := m.game.BeginRound(); err != nil {
			m.fail("failed to begin round", err)
			return nil
		}
		m.startedAt = m.now()
	}
	return nil
}

// handleHit evaluates the pointer position at the moment the player pressed the key.
func (m *Model) handleHit() {
	st := m.game.State()
	if !st.IsRotating {
		return
	}
	angle := game.PointerAngleAt(st.LastTimestamp, m.now(), m.settings.Get().Speed)
	m.game.SetPointerAngle(angle)
	if !game.InHitZone(angle, st.CenterRange, st.CurrentHitRange) {
		if err := m.game.Lose(); err != nil {
			m.fail("failed to end game", err)
			return
		}
		m.player.Play(sound.CueMiss)
		m.finish(model.OutcomeLose)
		return
	}
	if err := m.game.RegisterHit(); err != nil {
		m.fail("failed to register hit", err)
		return
	}
	if m.game.CheckWin() {
		if err := m.game.Win(); err != nil {
			m.fail("failed to end game", err)
			return
		}
		m.player.Play(sound.CueWin)
		m.finish(model.OutcomeWin)
		return
	}
	if err := m.game.NextRound(); err != nil {
		m.fail("failed to start next round", err)
		return
	}
	m.player.Play(sound.CueHit)
}

func (m *Model) finish(outcome model.Outcome) {
	st := m.game.State()
	cfg := m.settings.Get()
	m.logger.Info("game finished", "outcome", outcome, "hits", st.SuccessfulHits, "target", cfg.CountHits, "difficulty", cfg.Difficulty)
	if m.results == nil {
		return
	}
	result := model.RoundResult{
		Outcome:    outcome,
		Difficulty: cfg.Difficulty,
		Hits:       st.SuccessfulHits,
		TargetHits: cfg.CountHits,
		FinalRange: st.CurrentHitRange,
		StartedAt:  m.startedAt,
		EndedAt:    m.now(),
	}
	ctx := context.Background()
	if _, err := m.results.InsertResult(ctx, result); err != nil {
		m.fail("failed to save result", err)
		return
	}
	report, err := stats.BuildReport(ctx, m.results, recentResults)
	if err != nil {
		m.fail("failed to load results", err)
		return
	}
	m.report = report
	m.hasReport = true
}

func (m *Model) fail(what string, err error) {
	m.logger.Error(what, "err", err)
	m.errMsg = fmt.Sprintf("%s: %v", what, err)
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return changedMsg{}
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

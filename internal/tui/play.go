package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/hitzone/internal/game"
	"github.com/verte-zerg/hitzone/internal/stats"
)

func (m *Model) updatePlay(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Back) {
		return m.back()
	}
	st := m.game.State()
	if st.Terminal() {
		switch {
		case key.Matches(msg, keys.Retry):
			return m.startGame()
		case key.Matches(msg, keys.Quit):
			return tea.Quit
		}
		return nil
	}
	if key.Matches(msg, keys.Hit) {
		m.handleHit()
	}
	return nil
}

func (m *Model) viewPlay() (string, pageKeys) {
	st := m.game.State()
	cfg := m.settings.Get()
	var b strings.Builder
	switch game.PhaseOf(st) {
	case game.PhaseIdle, game.PhaseCountdown:
		b.WriteString(m.styles.muted.Render("Get ready"))
		b.WriteString("\n")
		b.WriteString(m.styles.countdown.Render(fmt.Sprintf("%d", st.Countdown)))
		return b.String(), pageKeys{keys.Back}
	case game.PhaseReady:
		b.WriteString(m.styles.countdown.Render("Go!"))
		return b.String(), pageKeys{keys.Back}
	case game.PhaseRotating:
		b.WriteString(fmt.Sprintf("Hits %d/%d · zone %.1f°", st.SuccessfulHits, cfg.CountHits, st.CurrentHitRange))
		b.WriteString("\n\n")
		b.WriteString(renderDial(m.styles, st, m.width))
		return b.String(), pageKeys{keys.Hit, keys.Back}
	}

	if st.IsWin {
		b.WriteString(m.styles.win.Render(fmt.Sprintf("You win! %d/%d hits", st.SuccessfulHits, cfg.CountHits)))
	} else {
		b.WriteString(m.styles.lose.Render(fmt.Sprintf("Missed at %.0f° · %d/%d hits", st.PointerAngle, st.SuccessfulHits, cfg.CountHits)))
	}
	b.WriteString("\n\n")
	b.WriteString(renderDial(m.styles, st, m.width))
	if m.hasReport {
		b.WriteString("\n\n")
		b.WriteString(m.styles.muted.Render(stats.SummaryLine(m.report.Summary, m.now())))
		b.WriteString("\n\n")
		b.WriteString(strings.Join(stats.ResultLines(m.report.Recent, stats.FirstRecentGame(m.report)), "\n"))
	}
	return b.String(), pageKeys{keys.Retry, keys.Back, keys.Quit}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/hitzone/internal/model"
)

const (
	settingDifficulty = iota
	settingHits
	settingSpeed
	settingCount
)

const (
	minHits   = 1
	maxHits   = 99
	speedStep = 0.25
	minSpeed  = 0.25
	maxSpeed  = 4.0
)

func (m *Model) updateSettings(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Back):
		return m.back()
	case key.Matches(msg, keys.Up):
		m.settingsIndex = (m.settingsIndex + settingCount - 1) % settingCount
	case key.Matches(msg, keys.Down):
		m.settingsIndex = (m.settingsIndex + 1) % settingCount
	case key.Matches(msg, keys.Left):
		m.adjustSetting(-1)
	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Enter):
		m.adjustSetting(1)
	}
	return nil
}

func (m *Model) adjustSetting(delta int) {
	cur := m.settings.Get()
	switch m.settingsIndex {
	case settingDifficulty:
		next := model.DifficultyHard
		if cur.Difficulty == model.DifficultyHard {
			next = model.DifficultyNormal
		}
		m.settings.SetDifficulty(next)
	case settingHits:
		cur.CountHits = clampInt(cur.CountHits+delta, minHits, maxHits)
		m.settings.Replace(cur)
	case settingSpeed:
		cur.Speed = clampFloat(cur.Speed+float64(delta)*speedStep, minSpeed, maxSpeed)
		m.settings.Replace(cur)
	}
	m.logger.Debug("settings changed", "settings", fmt.Sprintf("%+v", m.settings.Get()))
}

func (m *Model) viewSettings() (string, pageKeys) {
	cfg := m.settings.Get()
	rows := []struct {
		label string
		value string
	}{
		{"Difficulty", string(cfg.Difficulty)},
		{"Target hits", fmt.Sprintf("%d", cfg.CountHits)},
		{"Speed", fmt.Sprintf("%.2fx", cfg.Speed)},
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Settings"))
	b.WriteString("\n\n")
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%-12s ‹ %s ›", row.label, row.value)
		if i == m.settingsIndex {
			b.WriteString(m.styles.selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.muted.Render("  " + line))
		}
	}
	return b.String(), pageKeys{keys.Up, keys.Down, keys.Left, keys.Right, keys.Back}
}

func describeSettings(d model.Difficulty, hits int, speed float64) string {
	return fmt.Sprintf("%s · %d hits to win · %.2fx speed", d, hits, speed)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

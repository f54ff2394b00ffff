package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/hitzone/internal/router"
)

type menuItem struct {
	label string
	path  string
}

var menuItems = []menuItem{
	{label: "Play", path: "/game"},
	{label: "Settings", path: "/settings"},
	{label: "Quit"},
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Up):
		m.menuIndex = (m.menuIndex + len(menuItems) - 1) % len(menuItems)
	case key.Matches(msg, keys.Down):
		m.menuIndex = (m.menuIndex + 1) % len(menuItems)
	case key.Matches(msg, keys.Enter):
		item := menuItems[m.menuIndex]
		if item.path == "" {
			return tea.Quit
		}
		return m.navigate(item.path)
	}
	return nil
}

func (m *Model) viewMenu() (string, pageKeys) {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Stop the pointer inside the zone."))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == m.menuIndex {
			b.WriteString(m.styles.selected.Render("> " + item.label))
		} else {
			b.WriteString(m.styles.muted.Render("  " + item.label))
		}
	}
	cfg := m.settings.Get()
	b.WriteString("\n\n")
	b.WriteString(m.styles.muted.Render(describeSettings(cfg.Difficulty, cfg.CountHits, cfg.Speed)))
	return b.String(), pageKeys{keys.Up, keys.Down, keys.Enter, keys.Quit}
}

// currentPage is the name of the active route.
func (m *Model) currentPage() router.Name {
	return m.history.Current().Name
}

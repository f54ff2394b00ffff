package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// styles are bound to one renderer so each terminal gets its own color profile.
type styles struct {
	title      lipgloss.Style
	path       lipgloss.Style
	muted      lipgloss.Style
	selected   lipgloss.Style
	track      lipgloss.Style
	zone       lipgloss.Style
	pointer    lipgloss.Style
	pointerHot lipgloss.Style
	win        lipgloss.Style
	lose       lipgloss.Style
	countdown  lipgloss.Style
	err        lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:      r.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		path:       r.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		muted:      r.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		selected:   r.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		track:      r.NewStyle().Foreground(lipgloss.Color("#4A4A4A")),
		zone:       r.NewStyle().Foreground(lipgloss.Color("#52C41A")),
		pointer:    r.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
		pointerHot: r.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true),
		win:        r.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true),
		lose:       r.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		countdown:  r.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A")),
		err:        r.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
	}
}

func newHelp(r *lipgloss.Renderer) help.Model {
	h := help.New()
	keyStyle := r.NewStyle().Foreground(lipgloss.Color("#909090"))
	descStyle := r.NewStyle().Foreground(lipgloss.Color("#626262"))
	sepStyle := r.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	h.Styles = help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
	return h
}

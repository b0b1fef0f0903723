package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/shoplist/internal/ui"
)

// styles is the Lip Gloss palette for one theme.
type styles struct {
	title    lipgloss.Style
	success  lipgloss.Style
	pending  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	errorMsg lipgloss.Style

	selected lipgloss.Style
	done     lipgloss.Style
	help     lipgloss.Style
	heading  lipgloss.Style
	border   lipgloss.Style

	sym ui.Theme
}

// newStyles builds the palette for theme. noColor drops the renderer to
// plain ASCII, which also covers the list and picker's own styles.
func newStyles(theme string, noColor bool) styles {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	ui.SetTheme(theme)
	t := ui.Current()

	s := styles{
		title:    lipgloss.NewStyle().Bold(true),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:     lipgloss.NewStyle().Faint(true),
		heading:  lipgloss.NewStyle().Bold(true).Underline(true),

		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),

		sym: t,
	}

	switch t.Name {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("13"))
		s.accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.heading = s.heading.Foreground(lipgloss.Color("14"))
		s.border = s.border.BorderForeground(lipgloss.Color("13"))
	case "mono":
		plain := lipgloss.NewStyle()
		s.success, s.pending, s.accent, s.errorMsg = plain, plain, plain, plain.Bold(true)
		s.border = s.border.Border(lipgloss.NormalBorder()).UnsetBorderForeground()
	}
	return s
}

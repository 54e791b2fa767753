package ui

import (
	"github.com/charmbracelet/lipgloss"

	"safar/internal/config"
)

// Styling lives in one place so colors and layout tweaks are easy to reason
// about. Styles are rebuilt whenever the theme or text size changes.

var (
	appStyle = lipgloss.NewStyle().
		Margin(1, 2)

	headerStyle         lipgloss.Style
	titleStyle          lipgloss.Style
	helpStyle           lipgloss.Style
	lineStyle           lipgloss.Style
	optionStyle         lipgloss.Style
	selectedOptionStyle lipgloss.Style
	onlineStyle         lipgloss.Style
	offlineStyle        lipgloss.Style
	themeNameStyle      lipgloss.Style
	panelStyle          lipgloss.Style
	overlayStyle        lipgloss.Style
	overlayTitleStyle   lipgloss.Style
	footerStyle         lipgloss.Style
)

func applyThemeStyles(cfg config.Config) {
	theme := config.GetTheme(cfg.Theme)

	// Text size 1..3 maps to horizontal padding; a terminal cannot scale
	// glyphs, so bigger sizes get more breathing room instead.
	pad := cfg.TextSize

	headerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.HeaderFG)).
		Bold(true).
		PaddingBottom(1)

	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.HeaderFG)).
		Bold(true).
		Padding(0, pad)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.HelpFG))

	lineStyle = lipgloss.NewStyle().
		Padding(0, pad)

	optionStyle = lipgloss.NewStyle().
		Padding(0, pad)

	selectedOptionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SelectedFG)).
		Background(lipgloss.Color(theme.SelectedBG)).
		Bold(true).
		Padding(0, pad)

	onlineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusPositive))

	offlineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusNegative))

	themeNameStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.PanelBorder)).
		Padding(0, 1)

	overlayStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Background(lipgloss.Color(theme.OverlayBG)).
		Foreground(lipgloss.Color(theme.OverlayFG)).
		Padding(1, 2).
		Margin(1)

	overlayTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)

	footerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.HelpFG)).
		PaddingTop(1)
}

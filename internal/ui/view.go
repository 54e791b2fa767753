package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"safar/internal/nav"
)

func (m Model) View() string {
	if m.termWidth == 0 {
		return "Initializing..."
	}

	header := headerStyle.Render("SAFAR " + m.spinner.View())
	body := m.renderScreen()
	footer := m.renderFooter()

	content := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if overlays := m.renderOverlays(); overlays != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, overlays)
	}

	return appStyle.Render(
		lipgloss.Place(m.termWidth, m.termHeight,
			lipgloss.Center, lipgloss.Center,
			content,
		),
	)
}

// localizedTitle prefers the message catalog for the screens it covers and
// falls back to the dispatcher's English title for the rest.
func (m Model) localizedTitle() string {
	ids := map[nav.Screen]string{
		nav.ScreenHome:           "title.home",
		nav.ScreenDropoff:        "title.ride",
		nav.ScreenDeliveryHome:   "title.delivery",
		nav.ScreenRentalsHome:    "title.rentals",
		nav.ScreenShopsHome:      "title.shops",
		nav.ScreenHistory:        "title.history",
		nav.ScreenSettings:       "title.settings",
		nav.ScreenSOS:            "title.sos",
		nav.ScreenSearchingRides: "status.searching",
	}
	if id, ok := ids[m.res.Screen]; ok {
		return m.tr.T(id)
	}
	return m.res.Props.Title
}

func (m Model) renderScreen() string {
	p := m.res.Props
	parts := []string{titleStyle.Render(m.localizedTitle())}

	for _, line := range p.Lines {
		parts = append(parts, lineStyle.Render(line))
	}

	if p.Contact != nil {
		parts = append(parts, lineStyle.Render(
			fmt.Sprintf("%s %s  %s", p.Contact.Avatar, p.Contact.Name, p.Contact.Phone)))
	}

	if m.res.Screen == nav.ScreenDeliveryMap {
		parts = append(parts, panelStyle.Render(m.mapView.Render()))
	}

	parts = append(parts, m.renderList()...)

	if p.Editing {
		parts = append(parts, lineStyle.Render(m.input.View()))
	}

	if m.onPickupScreen() {
		parts = append(parts, m.renderPanel())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderList draws the selectable options with the cursor highlight.
func (m Model) renderList() []string {
	items := m.res.Props.Options
	var out []string
	for i, item := range items {
		if i == m.cursor {
			out = append(out, selectedOptionStyle.Render("▸ "+item))
			continue
		}
		out = append(out, optionStyle.Render("  "+item))
	}
	return out
}

// renderPanel draws the draggable pickup sheet. Above half height it reveals
// the recent locations, which join the selectable list.
func (m Model) renderPanel() string {
	var b strings.Builder
	fmt.Fprintf(&b, "── pickup panel %d%% ──", m.panel.HeightPct())
	if m.panel.ShowRecents() {
		base := len(m.res.Props.Options)
		for i, recent := range m.res.Props.Recents {
			b.WriteString("\n")
			if base+i == m.cursor {
				b.WriteString(selectedOptionStyle.Render("▸ " + recent))
				continue
			}
			b.WriteString(optionStyle.Render("  " + recent))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("drag up (→) to show recent locations"))
	}
	return panelStyle.Render(b.String())
}

func (m Model) renderFooter() string {
	sep := helpStyle.Render(" | ")
	netText := "NET: " + m.traffic
	statusText := "STATUS: " + m.onlineStatus
	themeText := "THEME: " + themeNameStyle.Render(m.Config.Theme)
	langText := "LANG: " + themeNameStyle.Render(m.tr.Language())

	bar := lipgloss.JoinHorizontal(lipgloss.Left, netText, sep, statusText, sep, themeText, sep, langText)
	help := helpStyle.Render(m.helpText())

	return footerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, bar, help))
}

func (m Model) helpText() string {
	if m.app.Overlays.AnyVisible() {
		return "↑/↓: Select, Enter: Confirm, Esc: Close"
	}
	if m.res.Props.Editing {
		return "Type, Enter: Submit, Esc: Back"
	}
	hints := m.tr.T("hint.confirm") + ", " + m.tr.T("hint.back")
	switch m.res.Screen {
	case nav.ScreenDeliveryMap:
		return "Arrows: Move pin, " + hints
	case nav.ScreenHome:
		return "↑/↓: Select, " + hints + ", b: Quick book, v: Voice, x: SOS"
	case nav.ScreenSelectVehicle, nav.ScreenShopOrder:
		return "↑/↓: Select, " + hints + ", f: Fare, p: Payment, d: Breakdown"
	case nav.ScreenRentalsConfirm:
		return hints + ", f: Fare, p: Payment"
	case nav.ScreenSearchingRides:
		return hints + ", o: Offers, e: Keep searching"
	case nav.ScreenRentalsHome:
		return "↑/↓: Vehicle, ←/→: Hours, " + hints
	case nav.ScreenDeliveryFare:
		return "Digits: Fare, ↑/↓: Payment, " + hints
	default:
		return "↑/↓: Select, " + hints + ", c: Call, m: Chat, x: SOS"
	}
}

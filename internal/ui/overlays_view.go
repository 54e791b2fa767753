package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"safar/internal/overlay"
	"safar/internal/trip"
)

// renderOverlays draws every visible overlay in stacking order, bottom first,
// so the topmost (the one receiving input) paints last.
func (m Model) renderOverlays() string {
	stack := m.app.Overlays.Stacked()
	if len(stack) == 0 {
		return ""
	}

	var boxes []string
	for _, k := range stack {
		boxes = append(boxes, overlayStyle.Render(m.renderOverlay(k)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, boxes...)
}

func (m Model) renderOverlay(k overlay.Kind) string {
	top, _ := m.app.Overlays.Top()
	active := k == top

	switch k {
	case overlay.QuickBook:
		var b strings.Builder
		b.WriteString(overlayTitleStyle.Render("Quick book"))
		for i, route := range trip.SavedRoutes() {
			b.WriteString("\n")
			if active && i == m.cursor {
				b.WriteString(selectedOptionStyle.Render("▸ " + route.Label))
				continue
			}
			b.WriteString(optionStyle.Render("  " + route.Label))
		}
		return b.String()

	case overlay.CancelConfirm:
		return overlayTitleStyle.Render("Cancel booking?") + "\n" +
			optionStyle.Render("y: yes, cancel   n: keep it")

	case overlay.FareDialog:
		return overlayTitleStyle.Render("Offer your fare") + "\n" +
			optionStyle.Render(fmt.Sprintf("Rs %s_", m.input.Value()))

	case overlay.PaymentModal:
		var b strings.Builder
		b.WriteString(overlayTitleStyle.Render("Pay with"))
		for i, method := range paymentMethods() {
			b.WriteString("\n")
			if active && i == m.cursor {
				b.WriteString(selectedOptionStyle.Render("▸ " + method))
				continue
			}
			b.WriteString(optionStyle.Render("  " + method))
		}
		return b.String()

	case overlay.FareBreakdown:
		fare := m.app.Ride.Fare
		base := fare * 70 / 100
		distance := fare * 20 / 100
		service := fare - base - distance
		return overlayTitleStyle.Render("Fare breakdown") + "\n" +
			optionStyle.Render(fmt.Sprintf("Base       Rs %d", base)) + "\n" +
			optionStyle.Render(fmt.Sprintf("Distance   Rs %d", distance)) + "\n" +
			optionStyle.Render(fmt.Sprintf("Service    Rs %d", service)) + "\n" +
			optionStyle.Render(fmt.Sprintf("Total      Rs %d", fare))

	case overlay.RideOffers:
		var b strings.Builder
		b.WriteString(overlayTitleStyle.Render("Captains nearby"))
		for i, offer := range trip.RideOffers() {
			line := fmt.Sprintf("%s · %s · Rs %d · %s", offer.Driver, offer.Vehicle, offer.Fare, offer.ETA)
			b.WriteString("\n")
			if active && i == m.cursor {
				b.WriteString(selectedOptionStyle.Render("▸ " + line))
				continue
			}
			b.WriteString(optionStyle.Render("  " + line))
		}
		return b.String()

	case overlay.VoiceActivation:
		return overlayTitleStyle.Render("Listening "+m.spinner.View()) + "\n" +
			optionStyle.Render("Say a destination, or press Esc")
	}

	return ""
}

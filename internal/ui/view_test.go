package ui

import (
	"strings"
	"testing"

	"safar/internal/dispatch"
	"safar/internal/nav"
)

func TestView_RendersLocalizedHomeTitle(t *testing.T) {
	m := newTestModel(t, true)
	out := m.View()
	if !strings.Contains(out, "Where to?") {
		t.Error("home view missing the localized title")
	}

	m.tr.SetLanguage("ur")
	out = m.View()
	if !strings.Contains(out, "کہاں جانا ہے؟") {
		t.Error("urdu view missing the translated title")
	}
}

func TestView_RendersOptionsWithCursor(t *testing.T) {
	m := newTestModel(t, true)
	out := m.View()
	if !strings.Contains(out, "▸ Ride") {
		t.Error("cursor marker missing from the first option")
	}
	if !strings.Contains(out, "Settings") {
		t.Error("option list incomplete")
	}
}

func TestView_OverlayPaintsOnTop(t *testing.T) {
	m := newTestModel(t, true)
	m = press(t, m, "b")
	out := m.View()
	if !strings.Contains(out, "Quick book") {
		t.Error("quick-book sheet not rendered")
	}
	if !strings.Contains(out, "Home → Office") {
		t.Error("saved routes missing from the sheet")
	}
}

func TestView_MapScreenShowsGrid(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenDeliveryMap)
	out := m.View()
	if !strings.Contains(out, "✜") {
		t.Error("map cursor missing")
	}
}

func TestView_ContactShownOnTransient(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenRideConfirmed)
	m.res.Fire(dispatch.EvCall, nil)
	m.res = m.app.Dispatch()

	out := m.View()
	if !strings.Contains(out, "Ahmed Khan") {
		t.Error("call screen missing the driver contact")
	}
}

func TestView_UninitializedTerminal(t *testing.T) {
	m := newTestModel(t, true)
	m.termWidth = 0
	if m.View() != "Initializing..." {
		t.Error("zero-width terminal must show the init placeholder")
	}
}

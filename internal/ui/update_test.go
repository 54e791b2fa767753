package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"safar/internal/config"
	"safar/internal/dispatch"
	"safar/internal/i18n"
	"safar/internal/nav"
	"safar/internal/overlay"
	"safar/internal/trip"
)

func newTestModel(t *testing.T, authed bool) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	applyThemeStyles(cfg)

	prefs := config.LoadPrefs(t.TempDir())
	if authed {
		prefs.Set(config.PrefAuthenticated, "true")
	}

	app := dispatch.NewApp(prefs)
	m := Model{
		app:        app,
		Config:     cfg,
		tr:         i18n.New("en"),
		spinner:    spinner.New(),
		input:      textinput.New(),
		panel:      NewPanel(),
		mapView:    NewMapView(),
		termWidth:  100,
		termHeight: 40,
	}
	m.res = app.Dispatch()
	m.syncInput()
	return m
}

// goTo parks the model on a screen and re-dispatches, for tests that start
// mid-flow.
func (m *Model) goTo(s nav.Screen) {
	m.app.Nav.GoTo(s)
	m.res = m.app.Dispatch()
	m.syncInput()
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestUpdate_HomeEnterOpensRideFlow(t *testing.T) {
	m := newTestModel(t, true)
	m = press(t, m, "enter")
	if m.res.Screen != nav.ScreenDropoff {
		t.Errorf("first home option must open the ride flow, got %s", m.res.Screen)
	}
}

func TestUpdate_QuickBookKeyOpensSheet(t *testing.T) {
	m := newTestModel(t, true)
	m = press(t, m, "b")
	if !m.app.Overlays.Visible(overlay.QuickBook) {
		t.Fatal("quick-book key did not open the sheet")
	}
	if m.res.Screen != nav.ScreenHome {
		t.Errorf("opening the sheet moved the screen to %s", m.res.Screen)
	}

	// Esc closes it, still without leaving home.
	m = press(t, m, "esc")
	if m.app.Overlays.Visible(overlay.QuickBook) {
		t.Error("esc did not close the sheet")
	}
	if m.res.Screen != nav.ScreenHome {
		t.Errorf("closing the sheet moved the screen to %s", m.res.Screen)
	}
}

func TestUpdate_SearchTimerAdvances(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenSearchingRides)
	_ = m.scheduleSearchTimer()

	next, _ := m.Update(searchDoneMsg{id: m.searchTimerID})
	m = next.(Model)
	if m.res.Screen != nav.ScreenRideConfirmed {
		t.Errorf("search timer must confirm the ride, got %s", m.res.Screen)
	}
}

func TestUpdate_StaleTimerIgnored(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenSearchingRides)
	_ = m.scheduleSearchTimer()

	next, _ := m.Update(searchDoneMsg{id: m.searchTimerID + 1})
	m = next.(Model)
	if m.res.Screen != nav.ScreenSearchingRides {
		t.Errorf("stale timer id must be dropped, got %s", m.res.Screen)
	}
}

func TestUpdate_OTPAutoSubmit(t *testing.T) {
	m := newTestModel(t, false)
	m.goTo(nav.ScreenOTPVerification)
	m.input.SetValue("4821")
	_ = m.scheduleOTPTimer()

	next, _ := m.Update(otpAutoSubmitMsg{id: m.otpTimerID})
	m = next.(Model)
	if !m.app.Auth.Authenticated {
		t.Error("auto-submit did not verify the code")
	}
	if m.res.Screen != nav.ScreenHome {
		t.Errorf("verification must land on home, got %s", m.res.Screen)
	}
}

func TestUpdate_RatingKeyThenTimerGoesHome(t *testing.T) {
	m := newTestModel(t, true)
	m.app.Ride.DropoffLabel = "Saddar"
	m.goTo(nav.ScreenRideCompleted)

	m = press(t, m, "5")
	if m.app.Ride.Rating != 5 {
		t.Fatalf("rating key not applied: %d", m.app.Ride.Rating)
	}

	next, _ := m.Update(ratingDoneMsg{id: m.ratingTimerID})
	m = next.(Model)
	if m.res.Screen != nav.ScreenHome {
		t.Errorf("rated trip must return home, got %s", m.res.Screen)
	}
	if m.app.History.Len() != 1 {
		t.Errorf("trip not recorded, history len %d", m.app.History.Len())
	}
}

func TestUpdate_PanelDragRevealsRecents(t *testing.T) {
	m := newTestModel(t, true)
	m.app.Ride.DropoffLabel = "Saddar"
	m.goTo(nav.ScreenRidePickupSelect)

	if m.panel.ShowRecents() {
		t.Fatal("panel must start collapsed")
	}
	m = press(t, m, "right", "right")
	if !m.panel.ShowRecents() {
		t.Fatalf("two drags must raise past half height, at %d%%", m.panel.HeightPct())
	}

	// Recents join the selectable list once revealed.
	want := len(m.res.Props.Options) + len(m.res.Props.Recents)
	if got := len(m.selectable()); got != want {
		t.Errorf("selectable list has %d entries, want %d", got, want)
	}
}

func TestUpdate_MapEnterSetsDestination(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenDeliveryMap)

	m = press(t, m, "enter")
	if m.app.Delivery.Destination == "" {
		t.Error("map click did not set a destination label")
	}
	if m.res.Screen != nav.ScreenDeliveryFare {
		t.Errorf("confirmed pin must open the fare screen, got %s", m.res.Screen)
	}
}

func TestUpdate_FareDialogDigitsConfirm(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenSelectVehicle)
	m.res.Fire(dispatch.EvOpenFareDialog, nil)
	m.res = m.app.Dispatch()

	m = press(t, m, "3", "5", "0", "enter")
	if m.app.Ride.Fare != 350 {
		t.Errorf("fare dialog did not apply the amount: %d", m.app.Ride.Fare)
	}
	if m.app.Overlays.Visible(overlay.FareDialog) {
		t.Error("confirm did not close the dialog")
	}
}

func TestUpdate_LoginSubmitViaInput(t *testing.T) {
	m := newTestModel(t, false)
	m.goTo(nav.ScreenLogin)
	if !m.res.Props.Editing {
		t.Fatal("login screen must want text input")
	}

	m.input.SetValue("0300-5551234")
	m = press(t, m, "enter")
	if m.res.Screen != nav.ScreenOTPVerification {
		t.Errorf("phone submit must reach OTP, got %s", m.res.Screen)
	}
}

func TestUpdate_OffersKeyOpensAndSelects(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenSearchingRides)

	m = press(t, m, "o")
	if !m.app.Overlays.Visible(overlay.RideOffers) {
		t.Fatal("offers key did not open the overlay")
	}

	m = press(t, m, "down", "enter")
	if m.res.Screen != nav.ScreenRideConfirmed {
		t.Errorf("offer selection must confirm the ride, got %s", m.res.Screen)
	}
	if m.app.Ride.Fare == 0 {
		t.Error("selected offer fare not applied")
	}
}

func TestUpdate_ExtendSearchKey(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenSearchingRides)
	m = press(t, m, "e")
	if m.res.Screen != nav.ScreenRideExtended {
		t.Errorf("extend key must reach the extended-search screen, got %s", m.res.Screen)
	}
}

func TestUpdate_PaymentModalKey(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenSelectVehicle)

	m = press(t, m, "p")
	if !m.app.Overlays.Visible(overlay.PaymentModal) {
		t.Fatal("payment key did not open the modal")
	}

	m = press(t, m, "down", "enter")
	if m.app.Ride.PaymentMethod != paymentMethods()[1] {
		t.Errorf("payment not applied: %s", m.app.Ride.PaymentMethod)
	}
	if m.app.Overlays.Visible(overlay.PaymentModal) {
		t.Error("selection did not close the modal")
	}
}

func TestUpdate_FareBreakdownKey(t *testing.T) {
	m := newTestModel(t, true)
	selected := trip.Catalog()[0]
	m.app.Shops.Selected = &selected
	m.goTo(nav.ScreenShopOrder)

	m = press(t, m, "d")
	if !m.app.Overlays.Visible(overlay.FareBreakdown) {
		t.Fatal("breakdown key did not open the overlay")
	}
	m = press(t, m, "esc")
	if m.app.Overlays.Visible(overlay.FareBreakdown) {
		t.Error("esc did not close the breakdown")
	}
}

func TestUpdate_RentalHoursKeys(t *testing.T) {
	m := newTestModel(t, true)
	m.goTo(nav.ScreenRentalsHome)

	m = press(t, m, "right", "right")
	if m.app.Rentals.Hours != 3 {
		t.Errorf("hours after two increments = %d, want 3", m.app.Rentals.Hours)
	}
	m = press(t, m, "left")
	if m.app.Rentals.Hours != 2 {
		t.Errorf("hours after decrement = %d, want 2", m.app.Rentals.Hours)
	}

	// The dispatcher clamps at one hour.
	m = press(t, m, "left", "left", "left")
	if m.app.Rentals.Hours != 1 {
		t.Errorf("hours must not drop below 1, got %d", m.app.Rentals.Hours)
	}
}

func TestUpdate_DeliveryFareDigits(t *testing.T) {
	m := newTestModel(t, true)
	m.app.Delivery.Destination = "Saddar"
	m.goTo(nav.ScreenDeliveryFare)

	m = press(t, m, "2", "0", "0", "enter")
	if m.app.Delivery.Fare != 200 {
		t.Errorf("typed fare not applied: %d", m.app.Delivery.Fare)
	}
	if m.app.Delivery.PaymentOption == "" {
		t.Error("payment option not applied on confirm")
	}
	if m.res.Screen != nav.ScreenDeliverySuccess {
		t.Errorf("confirm must place the booking, got %s", m.res.Screen)
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := newTestModel(t, true)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if !m.Quitting {
		t.Error("ctrl+c must set Quitting")
	}
	if cmd == nil {
		t.Error("ctrl+c must return the quit command")
	}
}

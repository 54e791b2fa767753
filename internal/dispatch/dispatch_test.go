package dispatch

import (
	"testing"

	"safar/internal/config"
	"safar/internal/nav"
	"safar/internal/overlay"
	"safar/internal/trip"
)

// newTestApp builds an authenticated app parked on home, with prefs backed
// by a temp dir.
func newTestApp(t *testing.T) *App {
	t.Helper()
	prefs := config.LoadPrefs(t.TempDir())
	prefs.Set(config.PrefAuthenticated, "true")
	return NewApp(prefs)
}

func newGuestApp(t *testing.T) *App {
	t.Helper()
	return NewApp(config.LoadPrefs(t.TempDir()))
}

// Every shop-order-family screen must silently redirect to shopsHome when no
// shop is selected, yielding no props for the requested screen.
func TestDispatch_MissingShopRedirects(t *testing.T) {
	family := []nav.Screen{
		nav.ScreenShopOrder,
		nav.ScreenShopOrderConfirmed,
		nav.ScreenShopOrderInProgress,
		nav.ScreenShopOrderCompleted,
	}
	for _, screen := range family {
		a := newTestApp(t)
		a.Shops.Selected = nil
		a.Nav.GoTo(screen)

		res := a.Dispatch()

		if a.Nav.Current() != nav.ScreenShopsHome {
			t.Errorf("%s: navigator not redirected, at %s", screen, a.Nav.Current())
		}
		if res.Screen != nav.ScreenShopsHome {
			t.Errorf("%s: rendered %s instead of shopsHome", screen, res.Screen)
		}
	}
}

// While unauthenticated, every screen outside the guest set renders login,
// and the requested screen id is left untouched in the navigator.
func TestDispatch_AuthGateSubstitutesLogin(t *testing.T) {
	guest := map[nav.Screen]bool{
		nav.ScreenSplash:             true,
		nav.ScreenLogin:              true,
		nav.ScreenSignup:             true,
		nav.ScreenOTPVerification:    true,
		nav.ScreenOnboarding:         true,
		nav.ScreenOnboardingTutorial: true,
		nav.ScreenCallBykea:          true,
	}
	for _, screen := range nav.All() {
		if guest[screen] {
			continue
		}
		a := newGuestApp(t)
		a.Nav.GoTo(screen)

		res := a.Dispatch()

		if res.Screen != nav.ScreenLogin {
			t.Errorf("%s: unauthenticated dispatch rendered %s, want login", screen, res.Screen)
		}
		if a.Nav.Current() != screen {
			t.Errorf("%s: gate mutated the stored screen to %s", screen, a.Nav.Current())
		}
	}
}

func TestDispatch_CallBykeaReachableAsGuest(t *testing.T) {
	a := newGuestApp(t)
	a.Nav.GoTo(nav.ScreenCallBykea)
	res := a.Dispatch()
	if res.Screen != nav.ScreenCallBykea {
		t.Errorf("helpline must be reachable without a session, got %s", res.Screen)
	}
}

// Pickup one-shot: changing pickup from the vehicle screen lands back on the
// vehicle screen and clears the success target; a later cancel must fall
// back to the previous slot, never the stale target.
func TestDispatch_PickupOneShotContext(t *testing.T) {
	a := newTestApp(t)
	a.Ride.DropoffLabel = "Saddar"
	a.Nav.GoTo(nav.ScreenSelectVehicle)

	if ok := a.Dispatch().Fire(EvChangePickup, nil); !ok {
		t.Fatal("selectVehicle does not expose changePickup")
	}
	if a.Nav.Current() != nav.ScreenRidePickupSelect {
		t.Fatalf("expected ridePickupSelect, got %s", a.Nav.Current())
	}

	a.Dispatch().Fire(EvApplyPickup, "Clifton Block 2")
	if a.Nav.Current() != nav.ScreenSelectVehicle {
		t.Errorf("pickup apply must land on the success target, got %s", a.Nav.Current())
	}
	if a.Ride.Pickup != "Clifton Block 2" {
		t.Errorf("pickup not applied: %s", a.Ride.Pickup)
	}

	// Re-enter without fresh context and cancel: the stale success target
	// must be gone.
	a.Nav.GoTo(nav.ScreenRidePickupSelect)
	a.Dispatch().Fire(EvBack, nil)
	if a.Nav.Current() != nav.ScreenSelectVehicle {
		t.Errorf("cancel must fall back to previous screen, got %s", a.Nav.Current())
	}
	if _, ok := a.Nav.ConsumePickupSuccess(); ok {
		t.Error("pickup success target leaked past its consumption")
	}
}

// Opening any overlay never changes the screen; closing any overlay except
// rideOffers never changes the screen.
func TestDispatch_OverlayScreenIndependence(t *testing.T) {
	kinds := []overlay.Kind{
		overlay.QuickBook, overlay.CancelConfirm, overlay.FareDialog,
		overlay.PaymentModal, overlay.FareBreakdown, overlay.RideOffers,
		overlay.VoiceActivation,
	}
	a := newTestApp(t)
	for _, k := range kinds {
		before := a.Nav.Current()
		a.Overlays.Open(k)
		if a.Nav.Current() != before {
			t.Errorf("opening %s changed screen to %s", k, a.Nav.Current())
		}
	}
	for _, k := range kinds {
		if k == overlay.RideOffers {
			continue
		}
		before := a.Nav.Current()
		a.Overlays.Close(k)
		if a.Nav.Current() != before {
			t.Errorf("closing %s changed screen to %s", k, a.Nav.Current())
		}
	}
}

// rideOffers is the one overlay whose close paths are coupled to a screen
// transition: selecting an offer goes to rideConfirmed, dismissing goes back
// to selectVehicle, and both close the overlay.
func TestDispatch_RideOffersCoupling(t *testing.T) {
	a := newTestApp(t)
	a.Nav.GoTo(nav.ScreenSearchingRides)
	a.Dispatch().Fire(EvShowOffers, nil)
	if !a.Overlays.Visible(overlay.RideOffers) {
		t.Fatal("offers overlay not opened")
	}

	a.Dispatch().Fire(EvOfferSelect, 1)
	if a.Overlays.Visible(overlay.RideOffers) {
		t.Error("offer selection must close the overlay")
	}
	if a.Nav.Current() != nav.ScreenRideConfirmed {
		t.Errorf("offer selection must land on rideConfirmed, got %s", a.Nav.Current())
	}
	if a.Ride.Fare != trip.RideOffers()[1].Fare {
		t.Errorf("selected offer fare not applied: %d", a.Ride.Fare)
	}

	// Close path.
	a.Nav.GoTo(nav.ScreenSearchingRides)
	a.Dispatch().Fire(EvShowOffers, nil)
	a.Dispatch().Fire(EvOffersClose, nil)
	if a.Overlays.Visible(overlay.RideOffers) {
		t.Error("close button must close the overlay")
	}
	if a.Nav.Current() != nav.ScreenSelectVehicle {
		t.Errorf("close button must land on selectVehicle, got %s", a.Nav.Current())
	}
}

// The shared fare dialog resolves its target at confirm time: a shop order
// edits the shop fare and nothing else; every other screen edits the generic
// ride fare.
func TestDispatch_FareDialogTargeting(t *testing.T) {
	a := newTestApp(t)
	shop := trip.Catalog()[0]
	a.Shops.Selected = &shop
	a.Nav.GoTo(nav.ScreenShopOrder)
	a.Dispatch().Fire(EvOpenFareDialog, nil)
	a.Dispatch().Fire(EvFareConfirm, 450)

	if a.Shops.Fare != 450 {
		t.Errorf("shop fare not set: %d", a.Shops.Fare)
	}
	if a.Ride.Fare != 0 {
		t.Errorf("ride fare must stay untouched on shopOrder, got %d", a.Ride.Fare)
	}

	// Rentals reuse the dialog but write through the generic field.
	a.Nav.GoTo(nav.ScreenRentalsConfirm)
	a.Dispatch().Fire(EvOpenFareDialog, nil)
	a.Dispatch().Fire(EvFareConfirm, 900)

	if a.Ride.Fare != 900 {
		t.Errorf("generic fare not set from rentals: %d", a.Ride.Fare)
	}
	if a.Shops.Fare != 450 {
		t.Errorf("shop fare must stay untouched off shopOrder, got %d", a.Shops.Fare)
	}
}

func TestDispatch_PaymentModalTargeting(t *testing.T) {
	a := newTestApp(t)
	shop := trip.Catalog()[2]
	a.Shops.Selected = &shop
	a.Nav.GoTo(nav.ScreenShopOrder)
	a.Dispatch().Fire(EvOpenPaymentModal, nil)
	a.Dispatch().Fire(EvPaymentSelect, trip.PayWallet)

	if a.Shops.PaymentMethod != trip.PayWallet {
		t.Errorf("shop payment not set: %s", a.Shops.PaymentMethod)
	}
	if a.Ride.PaymentMethod != trip.PayCash {
		t.Errorf("ride payment must stay untouched, got %s", a.Ride.PaymentMethod)
	}
}

// Full login path: splash → login → OTP → home, with the session flag
// persisted as the literal "true".
func TestDispatch_LoginEndToEnd(t *testing.T) {
	a := newGuestApp(t)
	if a.Nav.Current() != nav.ScreenSplash {
		t.Fatalf("guest app must start on splash, got %s", a.Nav.Current())
	}

	a.Dispatch().Fire(EvAdvance, nil)
	if a.Nav.Current() != nav.ScreenLogin {
		t.Fatalf("splash must advance to login, got %s", a.Nav.Current())
	}

	a.Dispatch().Fire(EvSubmitPhone, "0300-5551234")
	if a.Nav.Current() != nav.ScreenOTPVerification {
		t.Fatalf("phone submit must reach OTP, got %s", a.Nav.Current())
	}

	a.Dispatch().Fire(EvSubmitOTP, "4821")
	if !a.Auth.Authenticated {
		t.Error("OTP verification did not authenticate")
	}
	if a.Prefs.Get(config.PrefAuthenticated) != "true" {
		t.Errorf("auth flag not persisted: %q", a.Prefs.Get(config.PrefAuthenticated))
	}
	if a.Nav.Current() != nav.ScreenHome {
		t.Errorf("login must land on home, got %s", a.Nav.Current())
	}
}

func TestDispatch_SignupLandsOnOnboarding(t *testing.T) {
	a := newGuestApp(t)
	a.Nav.GoTo(nav.ScreenSignup)
	a.Dispatch().Fire(EvSubmitPhone, SignupForm{Name: "Zara", Phone: "0311-0001111"})
	a.Dispatch().Fire(EvSubmitOTP, "0000")
	if a.Nav.Current() != nav.ScreenOnboarding {
		t.Errorf("signup verification must land on onboarding, got %s", a.Nav.Current())
	}
}

// Quick-book: opening keeps the screen on home; confirming a route swaps the
// sheet for the fare dialog, still without leaving home.
func TestDispatch_QuickBookFlow(t *testing.T) {
	a := newTestApp(t)

	a.Dispatch().Fire(EvOpenQuickBook, nil)
	if !a.Overlays.Visible(overlay.QuickBook) {
		t.Fatal("quick-book sheet not opened")
	}
	if a.Nav.Current() != nav.ScreenHome {
		t.Fatalf("opening quick-book moved the screen to %s", a.Nav.Current())
	}

	a.Dispatch().Fire(EvQuickBookConfirm, 0)
	if a.Overlays.Visible(overlay.QuickBook) {
		t.Error("confirming a route must close the sheet")
	}
	if !a.Overlays.Visible(overlay.FareDialog) {
		t.Error("confirming a route must open the fare dialog")
	}
	if a.Nav.Current() != nav.ScreenHome {
		t.Errorf("screen must stay home, got %s", a.Nav.Current())
	}

	route := trip.SavedRoutes()[0]
	if a.Ride.Pickup != route.Pickup || a.Ride.DropoffLabel != route.Dropoff {
		t.Errorf("route not applied: %s → %s", a.Ride.Pickup, a.Ride.DropoffLabel)
	}
}

// Cancel-confirm nested over quick-book: confirming closes both overlays
// without touching the screen.
func TestDispatch_CancelConfirmCascade(t *testing.T) {
	a := newTestApp(t)
	a.Dispatch().Fire(EvOpenQuickBook, nil)
	a.Dispatch().Fire(EvCancelRide, nil)
	if !a.Overlays.Visible(overlay.CancelConfirm) {
		t.Fatal("cancel prompt not nested over quick-book")
	}

	a.Dispatch().Fire(EvCancelConfirmYes, nil)
	if a.Overlays.Visible(overlay.CancelConfirm) || a.Overlays.Visible(overlay.QuickBook) {
		t.Error("confirm must cascade-close both overlays")
	}
	if a.Nav.Current() != nav.ScreenHome {
		t.Errorf("cascading close must not change the screen, got %s", a.Nav.Current())
	}

	// The "keep" path closes only the prompt.
	a.Dispatch().Fire(EvOpenQuickBook, nil)
	a.Dispatch().Fire(EvCancelRide, nil)
	a.Dispatch().Fire(EvCancelConfirmNo, nil)
	if a.Overlays.Visible(overlay.CancelConfirm) {
		t.Error("dismissing the prompt must close it")
	}
	if !a.Overlays.Visible(overlay.QuickBook) {
		t.Error("dismissing the prompt must keep quick-book open")
	}
}

// Transient screens wired from a confirmed ride carry the driver contact and
// return to their origin.
func TestDispatch_TransientFromRideConfirmed(t *testing.T) {
	a := newTestApp(t)
	a.Nav.GoTo(nav.ScreenRideConfirmed)

	a.Dispatch().Fire(EvCall, nil)
	if a.Nav.Current() != nav.ScreenCall {
		t.Fatalf("call callback must reach the call screen, got %s", a.Nav.Current())
	}
	res := a.Dispatch()
	driver := trip.CounterpartFor(trip.ServiceRide)
	if res.Props.Contact == nil || res.Props.Contact.Name != driver.Name {
		t.Error("call screen missing the driver contact from context")
	}

	res.Fire(EvBack, nil)
	if a.Nav.Current() != nav.ScreenRideConfirmed {
		t.Errorf("transient back must return to origin, got %s", a.Nav.Current())
	}
}

// Illegal events are simply not exposed: firing a ride event on the settings
// screen is a no-op.
func TestDispatch_UnexposedEventIsNoop(t *testing.T) {
	a := newTestApp(t)
	a.Nav.GoTo(nav.ScreenSettings)
	if ok := a.Dispatch().Fire(EvOfferSelect, 0); ok {
		t.Error("settings screen must not expose offer selection")
	}
	if a.Nav.Current() != nav.ScreenSettings {
		t.Errorf("no-op event moved the screen to %s", a.Nav.Current())
	}
}

// The registry is total over the real screens.
func TestRegistry_CoversEveryScreen(t *testing.T) {
	for _, s := range nav.All() {
		if _, ok := registry[s]; !ok {
			t.Errorf("no step registered for %s", s)
		}
	}
}

func TestDispatch_LogoutClearsSession(t *testing.T) {
	a := newTestApp(t)
	a.Nav.GoTo(nav.ScreenSettings)
	a.Dispatch().Fire(EvLogout, nil)

	if a.Auth.Authenticated {
		t.Error("logout left the session authenticated")
	}
	if a.Prefs.Get(config.PrefAuthenticated) != "" {
		t.Errorf("auth flag not cleared: %q", a.Prefs.Get(config.PrefAuthenticated))
	}
	if a.Nav.Current() != nav.ScreenLogin {
		t.Errorf("logout must land on login, got %s", a.Nav.Current())
	}
}

func TestDispatch_RideCompletionRecordsHistory(t *testing.T) {
	a := newTestApp(t)
	a.Ride.DropoffLabel = "Boat Basin"
	a.Ride.Fare = 310
	a.Nav.GoTo(nav.ScreenRideCompleted)

	res := a.Dispatch()
	res.Fire(EvRate, 5)
	res.Fire(EvAdvance, nil)

	if a.Nav.Current() != nav.ScreenHome {
		t.Errorf("completion must land on home, got %s", a.Nav.Current())
	}
	if a.History.Len() != 1 {
		t.Fatalf("expected one history entry, got %d", a.History.Len())
	}
	b := a.History.All()[0]
	if b.Fare != 310 || b.Rating != 5 || b.Service != trip.ServiceRide {
		t.Errorf("bad history entry: %+v", b)
	}
	if b.ID == "" {
		t.Error("history entry missing id")
	}
	if a.Ride.DropoffLabel != "" || a.Ride.Fare != 0 {
		t.Error("ride bag not reset after completion")
	}
}

// Package dispatch resolves the current screen into a concrete render input:
// the screen's read-only props plus the callbacks it may fire. It is the only
// place that knows which transitions each screen is allowed to make; the
// navigator itself is permissive.
package dispatch

import (
	"log"

	"safar/internal/config"
	"safar/internal/nav"
	"safar/internal/overlay"
	"safar/internal/trip"
)

// Event names a callback a screen or overlay can fire. Events are the whole
// contract between the dispatcher and the rendering layer: the UI maps key
// presses to events and never mutates state directly.
type Event string

const (
	EvBack    Event = "back"
	EvConfirm Event = "confirm"
	EvAdvance Event = "advance" // timer-driven auto transitions

	// Counterpart actions available on confirmed/started screens
	EvCall Event = "call"
	EvChat Event = "chat"
	EvSOS  Event = "sos"

	// Home hub
	EvGoDropoff     Event = "goDropoff"
	EvGoDelivery    Event = "goDelivery"
	EvGoRentals     Event = "goRentals"
	EvGoShops       Event = "goShops"
	EvGoHistory     Event = "goHistory"
	EvGoSettings    Event = "goSettings"
	EvChangePickup  Event = "changePickup"
	EvOpenQuickBook Event = "openQuickBook"
	EvOpenVoice     Event = "openVoice"

	// Auth
	EvSubmitPhone Event = "submitPhone"
	EvSubmitOTP   Event = "submitOTP"
	EvGoSignup    Event = "goSignup"
	EvGoLogin     Event = "goLogin"
	EvCallSupport Event = "callSupport"

	// Ride
	EvApplyPickup       Event = "applyPickup"
	EvSetDropoff        Event = "setDropoff"
	EvSelectVehicle     Event = "selectVehicle"
	EvOpenFareDialog    Event = "openFareDialog"
	EvOpenPaymentModal  Event = "openPaymentModal"
	EvOpenFareBreakdown Event = "openFareBreakdown"
	EvShowOffers        Event = "showOffers"
	EvExtendSearch      Event = "extendSearch"
	EvCancelRide        Event = "cancelRide"
	EvRate              Event = "rate"

	// Delivery
	EvSubmitParcel   Event = "submitParcel"
	EvSetDestination Event = "setDestination"
	EvSetFare        Event = "setFare"
	EvSelectPayment  Event = "selectPayment"

	// Rentals
	EvSetHours Event = "setHours"

	// Shops
	EvSelectShop     Event = "selectShop"
	EvSelectLocation Event = "selectLocation"

	// Settings family
	EvGoAccount           Event = "goAccount"
	EvGoNotifications     Event = "goNotifications"
	EvGoTextSize          Event = "goTextSize"
	EvGoLanguage          Event = "goLanguage"
	EvGoTheme             Event = "goTheme"
	EvGoTerms             Event = "goTerms"
	EvGoContact           Event = "goContact"
	EvGoHelp              Event = "goHelp"
	EvGoVoiceFeedback     Event = "goVoiceFeedback"
	EvLogout              Event = "logout"
	EvSetLanguage         Event = "setLanguage"
	EvSetTheme            Event = "setTheme"
	EvSetTextSize         Event = "setTextSize"
	EvToggleNotifications Event = "toggleNotifications"
	EvToggleVoice         Event = "toggleVoice"
	EvSetAccountField     Event = "setAccountField"

	// Overlay callbacks
	EvQuickBookSelect  Event = "quickBookSelect"
	EvQuickBookConfirm Event = "quickBookConfirm"
	EvQuickBookClose   Event = "quickBookClose"
	EvCancelConfirmYes Event = "cancelConfirmYes"
	EvCancelConfirmNo  Event = "cancelConfirmNo"
	EvFareConfirm      Event = "fareConfirm"
	EvFareClose        Event = "fareClose"
	EvPaymentSelect    Event = "paymentSelect"
	EvPaymentClose     Event = "paymentClose"
	EvBreakdownClose   Event = "breakdownClose"
	EvOfferSelect      Event = "offerSelect"
	EvOffersClose      Event = "offersClose"
	EvVoiceClose       Event = "voiceClose"
)

// Handler is a screen callback. Most ignore the argument; events that carry
// a payload (a fare amount, an option index, a text field) document the
// expected type at their wiring site.
type Handler func(arg any)

// Handlers maps the events a screen can emit to their effects.
type Handlers map[Event]Handler

// Props is the read-only display bundle for one screen render.
type Props struct {
	Title   string
	Lines   []string
	Options []string
	Recents []string // revealed by the pickup panel above half height
	Contact *trip.Contact
	Editing bool // screen wants text input focus
}

// Result is one dispatch pass: the screen actually rendered (after the auth
// gate), its props, and its callbacks. Overlay callbacks for every visible
// overlay are merged in by Dispatch.
type Result struct {
	Screen nav.Screen
	Props  Props
	On     Handlers
}

// Fire invokes an event handler if the current screen exposes it. It returns
// false for events the screen cannot emit, which is how illegal transitions
// stay unreachable without any navigator-side validation.
func (r Result) Fire(ev Event, arg any) bool {
	h, ok := r.On[ev]
	if !ok {
		return false
	}
	h(arg)
	return true
}

// AuthState is the login-session bag. Authenticated mirrors the persisted
// flag; the rest is scratch state for the login/signup/OTP screens.
type AuthState struct {
	Authenticated bool
	Phone         string
	Name          string
	IsSignup      bool
}

// AccountState holds the editable my-account strings. Local-only.
type AccountState struct {
	Name  string
	Email string
	Phone string
}

// App is the application-state struct owned by the composition root. All
// mutation goes through dispatcher-wired callbacks; screens only ever see
// copies.
type App struct {
	Nav      *nav.Navigator
	Overlays *overlay.Controller
	Ride     *trip.RideState
	Delivery *trip.DeliveryState
	Rentals  *trip.RentalsState
	Shops    *trip.ShopsState
	History  *trip.History
	Prefs    *config.Prefs

	Auth          AuthState
	Account       AccountState
	Notifications bool
	VoiceFeedback bool
}

// NewApp seeds application state from the preference store. The initial
// screen depends on the persisted auth flag: straight to home when a session
// exists, splash otherwise.
func NewApp(prefs *config.Prefs) *App {
	authed := prefs.IsAuthenticated()
	start := nav.ScreenSplash
	if authed {
		start = nav.ScreenHome
	}
	return &App{
		Nav:           nav.New(start),
		Overlays:      overlay.NewController(),
		Ride:          trip.NewRideState(),
		Delivery:      trip.NewDeliveryState(),
		Rentals:       trip.NewRentalsState(),
		Shops:         trip.NewShopsState(),
		History:       trip.NewHistory(),
		Prefs:         prefs,
		Auth:          AuthState{Authenticated: authed, Phone: prefs.Get(config.PrefPhone)},
		Notifications: true,
		VoiceFeedback: prefs.Get(config.PrefVoiceFeedback) == "true",
	}
}

// guestReachable are the screens renderable without a session. Everything
// else is substituted with login while unauthenticated.
var guestReachable = map[nav.Screen]bool{
	nav.ScreenSplash:             true,
	nav.ScreenLogin:              true,
	nav.ScreenSignup:             true,
	nav.ScreenOTPVerification:    true,
	nav.ScreenOnboarding:         true,
	nav.ScreenOnboardingTutorial: true,
	nav.ScreenCallBykea:          true,
}

// maxRedirects bounds the redirect-following loop. Redirect chains in
// practice are one hop (shop order → shopsHome); anything longer than a few
// indicates a registry bug.
const maxRedirects = 4

// Dispatch resolves the current screen into a Result. A step may redirect by
// returning a target screen, in which case the navigator is mutated
// mid-dispatch and the lookup restarts, bounded by maxRedirects.
func (a *App) Dispatch() Result {
	for i := 0; i < maxRedirects; i++ {
		requested := a.Nav.Current()

		// Auth gate: substitution only. The navigator keeps the requested
		// screen; the login step is rendered in its place.
		shown := requested
		if !a.Auth.Authenticated && !guestReachable[requested] {
			shown = nav.ScreenLogin
		}

		step, ok := registry[shown]
		if !ok {
			log.Printf("dispatch: no step registered for %s", shown)
			return Result{Screen: shown, On: Handlers{}}
		}

		res, redirect := step(a)
		if redirect != nav.ScreenNone {
			a.Nav.GoTo(redirect)
			continue
		}

		res.Screen = shown
		if res.On == nil {
			res.On = Handlers{}
		}
		a.attachOverlayHandlers(&res)
		return res
	}

	log.Printf("dispatch: redirect cycle guard tripped at %s", a.Nav.Current())
	return Result{Screen: a.Nav.Current(), On: Handlers{}}
}

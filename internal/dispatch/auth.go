package dispatch

import (
	"fmt"
	"log"

	"safar/internal/config"
	"safar/internal/nav"
	"safar/internal/trip"
)

// SignupForm is the payload of EvSubmitPhone on the signup screen.
type SignupForm struct {
	Name  string
	Phone string
}

func stepSplash(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvAdvance: func(any) {
			if a.Auth.Authenticated {
				a.Nav.GoTo(nav.ScreenHome)
				return
			}
			a.Nav.GoTo(nav.ScreenLogin)
		},
	}
	return Result{
		Props: Props{Title: "Safar", Lines: []string{"Rides · Delivery · Rentals · Shops"}},
		On:    on,
	}, noRedirect
}

func stepLogin(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSubmitPhone: func(arg any) {
			phone, _ := arg.(string)
			if phone == "" {
				return
			}
			a.Auth.Phone = phone
			a.Auth.IsSignup = false
			a.Nav.GoTo(nav.ScreenOTPVerification)
		},
		EvGoSignup: func(any) { a.Nav.GoTo(nav.ScreenSignup) },
		EvCallSupport: func(any) {
			a.Nav.GoToWithContext(nav.ScreenCallBykea, nav.Context{Previous: nav.ScreenLogin})
		},
	}
	return Result{
		Props: Props{Title: "Welcome back", Lines: []string{"Enter your phone number"}, Editing: true},
		On:    on,
	}, noRedirect
}

func stepSignup(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSubmitPhone: func(arg any) {
			form, ok := arg.(SignupForm)
			if !ok || form.Phone == "" {
				return
			}
			a.Auth.Phone = form.Phone
			a.Auth.Name = form.Name
			a.Auth.IsSignup = true
			a.Nav.GoTo(nav.ScreenOTPVerification)
		},
		EvGoLogin: func(any) { a.Nav.GoTo(nav.ScreenLogin) },
	}
	return Result{
		Props: Props{Title: "Create account", Lines: []string{"Name and phone number"}, Editing: true},
		On:    on,
	}, noRedirect
}

func stepOTPVerification(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSubmitOTP: func(arg any) {
			code, _ := arg.(string)
			if len(code) != 4 {
				return
			}
			// Any 4-digit code verifies: there is no backend to check against.
			a.Auth.Authenticated = true
			a.Prefs.Set(config.PrefAuthenticated, "true")
			a.Prefs.Set(config.PrefPhone, a.Auth.Phone)
			if err := a.Prefs.Save(); err != nil {
				log.Printf("auth: could not persist session: %v", err)
			}
			if a.Auth.IsSignup {
				a.Account.Name = a.Auth.Name
				a.Account.Phone = a.Auth.Phone
				a.Nav.GoTo(nav.ScreenOnboarding)
				return
			}
			a.Nav.GoTo(nav.ScreenHome)
		},
		EvBack: func(any) {
			if a.Auth.IsSignup {
				a.Nav.GoTo(nav.ScreenSignup)
				return
			}
			a.Nav.GoTo(nav.ScreenLogin)
		},
	}
	return Result{
		Props: Props{
			Title:   "Verify your number",
			Lines:   []string{fmt.Sprintf("Code sent to %s", a.Auth.Phone)},
			Editing: true,
		},
		On: on,
	}, noRedirect
}

func stepOnboarding(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenOnboardingTutorial) },
		EvBack:    func(any) { a.Nav.GoTo(nav.ScreenHome) }, // skip
	}
	return Result{
		Props: Props{
			Title: "Welcome to Safar",
			Lines: []string{"One app for rides, parcels, rentals and shops."},
		},
		On: on,
	}, noRedirect
}

func stepOnboardingTutorial(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenHome) },
		EvBack:    func(any) { a.Nav.GoTo(nav.ScreenOnboarding) },
	}
	return Result{
		Props: Props{
			Title: "How it works",
			Lines: []string{
				"Pick a service from the home screen.",
				"Set your pickup and destination.",
				"Agree a fare and you're off.",
			},
		},
		On: on,
	}, noRedirect
}

// transientHandlers wires the call/chat/sos callbacks every confirmed or
// in-progress screen exposes. Each sets the counterpart contact and the
// return slot before transitioning; the transient screens themselves never
// hard-code a destination back.
func transientHandlers(a *App, from nav.Screen, kind trip.ServiceKind) Handlers {
	contact := trip.CounterpartFor(kind)
	return Handlers{
		EvCall: func(any) {
			a.Nav.GoToWithContext(nav.ScreenCall, nav.Context{Previous: from, Contact: contact})
		},
		EvChat: func(any) {
			a.Nav.GoToWithContext(nav.ScreenMessage, nav.Context{Previous: from, Contact: contact})
		},
		EvSOS: func(any) {
			a.Nav.GoToWithContext(nav.ScreenSOS, nav.Context{Previous: from, Contact: contact})
		},
	}
}

// merge copies extra handlers into base, overwriting on collision.
func merge(base Handlers, extra Handlers) Handlers {
	for ev, h := range extra {
		base[ev] = h
	}
	return base
}

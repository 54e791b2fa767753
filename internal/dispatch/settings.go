package dispatch

import (
	"fmt"
	"log"
	"strconv"

	"safar/internal/config"
	"safar/internal/nav"
	"safar/internal/overlay"
	"safar/internal/trip"
)

func stepHistory(a *App) (Result, nav.Screen) {
	lines := make([]string, 0, a.History.Len())
	for _, b := range a.History.All() {
		lines = append(lines, b.Line())
	}
	if len(lines) == 0 {
		lines = []string{"No bookings yet."}
	}
	on := Handlers{
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenHome) },
	}
	return Result{
		Props: Props{Title: "Your bookings", Lines: lines},
		On:    on,
	}, noRedirect
}

func stepSettings(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvGoAccount:       func(any) { a.Nav.GoTo(nav.ScreenMyAccount) },
		EvGoNotifications: func(any) { a.Nav.GoTo(nav.ScreenNotificationsSettings) },
		EvGoTextSize:      func(any) { a.Nav.GoTo(nav.ScreenChangeSizeSettings) },
		EvGoLanguage:      func(any) { a.Nav.GoTo(nav.ScreenLanguageSettings) },
		EvGoTheme:         func(any) { a.Nav.GoTo(nav.ScreenChangeThemeSettings) },
		EvGoTerms:         func(any) { a.Nav.GoTo(nav.ScreenTermsPrivacy) },
		EvGoContact:       func(any) { a.Nav.GoTo(nav.ScreenContactUs) },
		EvGoHelp:          func(any) { a.Nav.GoTo(nav.ScreenHelpSupport) },
		EvGoVoiceFeedback: func(any) { a.Nav.GoTo(nav.ScreenVoiceFeedback) },
		EvLogout: func(any) {
			a.Auth.Authenticated = false
			a.Prefs.Delete(config.PrefAuthenticated)
			if err := a.Prefs.Save(); err != nil {
				log.Printf("settings: could not persist logout: %v", err)
			}
			a.Nav.GoTo(nav.ScreenLogin)
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenHome) },
	}
	return Result{
		Props: Props{
			Title: "Settings",
			Options: []string{
				"My account",
				"Notifications",
				"Text size",
				"Language",
				"Theme",
				"Terms & privacy",
				"Contact us",
				"Help & support",
				"Voice feedback",
				"Log out",
			},
		},
		On: on,
	}, noRedirect
}

func stepMyAccount(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSetAccountField: func(arg any) {
			form, ok := arg.(AccountState)
			if !ok {
				return
			}
			a.Account = form
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenSettings) },
	}
	return Result{
		Props: Props{
			Title: "My account",
			Lines: []string{
				fmt.Sprintf("Name: %s", orUnset(a.Account.Name)),
				fmt.Sprintf("Email: %s", orUnset(a.Account.Email)),
				fmt.Sprintf("Phone: %s", orUnset(a.Account.Phone)),
			},
			Editing: true,
		},
		On: on,
	}, noRedirect
}

func stepNotificationsSettings(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvToggleNotifications: func(any) { a.Notifications = !a.Notifications },
		EvBack:                func(any) { a.Nav.GoTo(nav.ScreenSettings) },
	}
	state := "off"
	if a.Notifications {
		state = "on"
	}
	return Result{
		Props: Props{Title: "Notifications", Lines: []string{fmt.Sprintf("Push notifications: %s", state)}},
		On:    on,
	}, noRedirect
}

func stepChangeSizeSettings(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSetTextSize: func(arg any) {
			size, ok := arg.(int)
			if !ok || size < 1 || size > 3 {
				return
			}
			a.Prefs.Set(config.PrefTextSize, strconv.Itoa(size))
			if err := a.Prefs.Save(); err != nil {
				log.Printf("settings: could not persist text size: %v", err)
			}
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenSettings) },
	}
	return Result{
		Props: Props{Title: "Text size", Options: []string{"Small", "Medium", "Large"}},
		On:    on,
	}, noRedirect
}

func stepLanguageSettings(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSetLanguage: func(arg any) {
			code, _ := arg.(string)
			if code != "en" && code != "ur" {
				return
			}
			a.Prefs.Set(config.PrefLanguage, code)
			if err := a.Prefs.Save(); err != nil {
				log.Printf("settings: could not persist language: %v", err)
			}
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenSettings) },
	}
	return Result{
		Props: Props{Title: "Language", Options: []string{"English", "اردو"}},
		On:    on,
	}, noRedirect
}

func stepChangeThemeSettings(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSetTheme: func(arg any) {
			name, _ := arg.(string)
			if _, valid := themeNameSet()[name]; !valid {
				return
			}
			a.Prefs.Set(config.PrefTheme, name)
			if err := a.Prefs.Save(); err != nil {
				log.Printf("settings: could not persist theme: %v", err)
			}
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenSettings) },
	}
	return Result{
		Props: Props{Title: "Theme", Options: config.ThemeNames()},
		On:    on,
	}, noRedirect
}

func themeNameSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range config.ThemeNames() {
		set[name] = struct{}{}
	}
	return set
}

func stepTermsPrivacy(a *App) (Result, nav.Screen) {
	on := Handlers{EvBack: func(any) { a.Nav.GoTo(nav.ScreenSettings) }}
	return Result{
		Props: Props{
			Title: "Terms & privacy",
			Lines: []string{
				"This is a prototype. No data leaves your machine.",
				"Trips, contacts and shops are mock data.",
			},
		},
		On: on,
	}, noRedirect
}

func stepContactUs(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvCallSupport: func(any) {
			a.Nav.GoToWithContext(nav.ScreenCallBykea, nav.Context{Previous: nav.ScreenContactUs})
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenSettings) },
	}
	return Result{
		Props: Props{Title: "Contact us", Lines: []string{trip.SupportContact.Phone, "support@safar.example"}},
		On:    on,
	}, noRedirect
}

func stepHelpSupport(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvCallSupport: func(any) {
			a.Nav.GoToWithContext(nav.ScreenCallBykea, nav.Context{Previous: nav.ScreenHelpSupport})
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenSettings) },
	}
	return Result{
		Props: Props{
			Title: "Help & support",
			Lines: []string{
				"Lost an item? Call the helpline.",
				"Fare disputes are resolved in-app.",
			},
		},
		On: on,
	}, noRedirect
}

// stepCallBykea is the helpline screen, the one gated-off screen that stays
// reachable without a session.
func stepCallBykea(a *App) (Result, nav.Screen) {
	contact := trip.SupportContact
	on := Handlers{
		EvBack: func(any) {
			if prev := a.Nav.Context().Previous; prev != nav.ScreenNone {
				a.Nav.GoTo(prev)
				return
			}
			if a.Auth.Authenticated {
				a.Nav.GoTo(nav.ScreenHome)
				return
			}
			a.Nav.GoTo(nav.ScreenLogin)
		},
	}
	return Result{
		Props: Props{
			Title:   "Call the helpline",
			Lines:   []string{contact.Phone, "Available 24/7"},
			Contact: &contact,
		},
		On: on,
	}, noRedirect
}

func stepVoiceFeedback(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvToggleVoice: func(any) {
			a.VoiceFeedback = !a.VoiceFeedback
			value := "false"
			if a.VoiceFeedback {
				value = "true"
			}
			a.Prefs.Set(config.PrefVoiceFeedback, value)
			if err := a.Prefs.Save(); err != nil {
				log.Printf("settings: could not persist voice feedback: %v", err)
			}
		},
		EvOpenVoice: func(any) { a.Overlays.Open(overlay.VoiceActivation) },
		EvBack:      func(any) { a.Nav.GoTo(nav.ScreenSettings) },
	}
	state := "off"
	if a.VoiceFeedback {
		state = "on"
	}
	return Result{
		Props: Props{Title: "Voice feedback", Lines: []string{fmt.Sprintf("Spoken announcements: %s", state)}},
		On:    on,
	}, noRedirect
}

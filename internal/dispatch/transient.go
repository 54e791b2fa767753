package dispatch

import (
	"fmt"

	"safar/internal/nav"
)

// The three transient screens render whatever contact was stashed in the
// navigation context and always exit through the previous-screen slot. They
// own no contact state and never hard-code a destination.

func stepSOS(a *App) (Result, nav.Screen) {
	contact := a.Nav.Context().Contact
	on := Handlers{
		EvBack: func(any) { a.Nav.ReturnFromTransient() },
		EvConfirm: func(any) {
			// Mock alarm: the prototype only logs; there is nothing to call.
			a.Nav.ReturnFromTransient()
		},
	}
	return Result{
		Props: Props{
			Title:   "Emergency",
			Lines:   []string{"Hold tight. Help options below.", fmt.Sprintf("Share trip with %s", contact.Name)},
			Contact: &contact,
		},
		On: on,
	}, noRedirect
}

func stepMessage(a *App) (Result, nav.Screen) {
	contact := a.Nav.Context().Contact
	on := Handlers{
		EvBack: func(any) { a.Nav.ReturnFromTransient() },
	}
	return Result{
		Props: Props{
			Title:   fmt.Sprintf("Chat with %s", contact.Name),
			Lines:   []string{"I'm at the pin location.", "On my way!"},
			Contact: &contact,
			Editing: true,
		},
		On: on,
	}, noRedirect
}

func stepCall(a *App) (Result, nav.Screen) {
	contact := a.Nav.Context().Contact
	on := Handlers{
		EvBack: func(any) { a.Nav.ReturnFromTransient() },
	}
	return Result{
		Props: Props{
			Title:   fmt.Sprintf("Calling %s", contact.Name),
			Lines:   []string{contact.Phone},
			Contact: &contact,
		},
		On: on,
	}, noRedirect
}

package dispatch

import (
	"fmt"

	"safar/internal/nav"
	"safar/internal/trip"
)

func stepDeliveryHome(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvChangePickup: func(any) {
			a.Nav.GoToWithContext(nav.ScreenDeliveryPickupSelect, nav.Context{
				Previous:      nav.ScreenDeliveryHome,
				PickupSuccess: nav.ScreenDeliveryHome,
			})
		},
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenDeliveryForm) },
		EvBack:    func(any) { a.Nav.GoTo(nav.ScreenHome) },
		EvSOS: func(any) {
			a.Nav.GoToWithContext(nav.ScreenSOS, nav.Context{
				Previous: nav.ScreenDeliveryHome,
				Contact:  trip.SupportContact,
			})
		},
	}
	return Result{
		Props: Props{
			Title: "Send a parcel",
			Lines: []string{fmt.Sprintf("Pickup: %s", a.Delivery.Pickup)},
		},
		On: on,
	}, noRedirect
}

func stepDeliveryPickupSelect(a *App) (Result, nav.Screen) {
	return pickupSelect(a, "Parcel pickup point", func(label string) { a.Delivery.Pickup = label })
}

func stepDeliveryForm(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSubmitParcel: func(arg any) {
			parcel, ok := arg.(trip.ParcelDetails)
			if !ok || parcel.Description == "" {
				return
			}
			a.Delivery.Parcel = parcel
			a.Nav.GoTo(nav.ScreenDeliveryMap)
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenDeliveryHome) },
	}
	return Result{
		Props: Props{
			Title:   "What are you sending?",
			Lines:   []string{"Parcel description, weight and recipient"},
			Editing: true,
		},
		On: on,
	}, noRedirect
}

func stepDeliveryMap(a *App) (Result, nav.Screen) {
	on := Handlers{
		// The map collaborator translates clicks into a place label before
		// this fires; the dispatcher never sees raw coordinates.
		EvSetDestination: func(arg any) {
			label, _ := arg.(string)
			a.Delivery.Destination = label
		},
		EvConfirm: func(any) {
			if a.Delivery.Destination == "" {
				return
			}
			a.Nav.GoTo(nav.ScreenDeliveryFare)
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenDeliveryForm) },
	}
	return Result{
		Props: Props{
			Title: "Drop the pin",
			Lines: []string{fmt.Sprintf("Destination: %s", orUnset(a.Delivery.Destination))},
		},
		On: on,
	}, noRedirect
}

func stepDeliveryFare(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSetFare: func(arg any) {
			fare, ok := arg.(int)
			if !ok || fare < 0 {
				return
			}
			a.Delivery.Fare = fare
		},
		EvSelectPayment: func(arg any) {
			method, _ := arg.(string)
			if method == "" {
				return
			}
			a.Delivery.PaymentOption = method
		},
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenDeliverySuccess) },
		EvBack:    func(any) { a.Nav.GoTo(nav.ScreenDeliveryMap) },
	}
	return Result{
		Props: Props{
			Title: "Delivery fare",
			Lines: []string{
				fmt.Sprintf("%s → %s", a.Delivery.Pickup, a.Delivery.Destination),
				fmt.Sprintf("Fare: Rs %d  Payment: %s", a.Delivery.Fare, a.Delivery.PaymentOption),
			},
			Options: []string{trip.PayCash, trip.PayCard, trip.PayWallet},
		},
		On: on,
	}, noRedirect
}

func stepDeliverySuccess(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvAdvance: func(any) { a.Nav.GoTo(nav.ScreenDeliveryConfirmed) },
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenDeliveryConfirmed) },
	}
	return Result{
		Props: Props{
			Title: "Booking placed",
			Lines: []string{"A courier will pick up your parcel shortly."},
		},
		On: on,
	}, noRedirect
}

func stepDeliveryConfirmed(a *App) (Result, nav.Screen) {
	courier := trip.CounterpartFor(trip.ServiceDelivery)
	on := merge(transientHandlers(a, nav.ScreenDeliveryConfirmed, trip.ServiceDelivery), Handlers{
		EvAdvance: func(any) { a.Nav.GoTo(nav.ScreenDeliveryInProgress) },
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenDeliveryInProgress) },
	})
	return Result{
		Props: Props{
			Title:   "Courier assigned",
			Lines:   []string{fmt.Sprintf("%s is picking up your parcel", courier.Name)},
			Contact: &courier,
		},
		On: on,
	}, noRedirect
}

func stepDeliveryInProgress(a *App) (Result, nav.Screen) {
	courier := trip.CounterpartFor(trip.ServiceDelivery)
	on := merge(transientHandlers(a, nav.ScreenDeliveryInProgress, trip.ServiceDelivery), Handlers{
		EvAdvance: func(any) { a.Nav.GoTo(nav.ScreenDeliveryCompleted) },
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenDeliveryCompleted) },
	})
	return Result{
		Props: Props{
			Title:   "Parcel on the move",
			Lines:   []string{fmt.Sprintf("Heading to %s", a.Delivery.Destination)},
			Contact: &courier,
		},
		On: on,
	}, noRedirect
}

func stepDeliveryCompleted(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvRate: func(arg any) {
			stars, ok := arg.(int)
			if !ok || stars < 1 || stars > 5 {
				return
			}
			a.Delivery.Rating = stars
		},
		EvAdvance: func(any) { a.finishDelivery() },
		EvConfirm: func(any) { a.finishDelivery() },
	}
	return Result{
		Props: Props{
			Title: "Parcel delivered",
			Lines: []string{
				fmt.Sprintf("Fare: Rs %d", a.Delivery.Fare),
				"Rate your courier (1-5)",
			},
		},
		On: on,
	}, noRedirect
}

func (a *App) finishDelivery() {
	a.History.Record(trip.ServiceDelivery, a.Delivery.Pickup, a.Delivery.Destination, a.Delivery.Fare, a.Delivery.Rating)
	a.Delivery.Reset()
	a.Nav.GoTo(nav.ScreenHome)
}

func orUnset(s string) string {
	if s == "" {
		return "not set"
	}
	return s
}

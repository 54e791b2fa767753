package dispatch

import (
	"fmt"

	"safar/internal/nav"
	"safar/internal/overlay"
	"safar/internal/trip"
)

func stepRentalsHome(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSelectVehicle: func(arg any) {
			i, ok := arg.(int)
			vehicles := trip.RentalVehicles()
			if !ok || i < 0 || i >= len(vehicles) {
				return
			}
			a.Rentals.Vehicle = vehicles[i]
		},
		EvSetHours: func(arg any) {
			hours, ok := arg.(int)
			if !ok || hours < 1 || hours > 12 {
				return
			}
			a.Rentals.Hours = hours
		},
		EvConfirm: func(any) {
			if a.Rentals.Vehicle == "" {
				return
			}
			a.Nav.GoToWithContext(nav.ScreenRentalsPickupSelect, nav.Context{
				Previous:      nav.ScreenRentalsHome,
				PickupSuccess: nav.ScreenRentalsConfirm,
			})
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenHome) },
	}
	return Result{
		Props: Props{
			Title:   "Rent by the hour",
			Lines:   []string{fmt.Sprintf("Vehicle: %s  Hours: %d", orUnset(a.Rentals.Vehicle), a.Rentals.Hours)},
			Options: trip.RentalVehicles(),
		},
		On: on,
	}, noRedirect
}

func stepRentalsPickupSelect(a *App) (Result, nav.Screen) {
	return pickupSelect(a, "Rental pickup point", func(label string) { a.Rentals.Pickup = label })
}

func stepRentalsConfirm(a *App) (Result, nav.Screen) {
	on := Handlers{
		// The shared fare dialog is reused here. Its confirm still writes the
		// generic ride fare field, not a rentals-specific one; only shop
		// orders get their own target.
		EvOpenFareDialog:   func(any) { a.Overlays.Open(overlay.FareDialog) },
		EvOpenPaymentModal: func(any) { a.Overlays.Open(overlay.PaymentModal) },
		EvConfirm:          func(any) { a.Nav.GoTo(nav.ScreenRentalsStarted) },
		EvBack:             func(any) { a.Nav.GoTo(nav.ScreenRentalsHome) },
	}
	return Result{
		Props: Props{
			Title: "Confirm rental",
			Lines: []string{
				fmt.Sprintf("%s for %d hour(s) from %s", a.Rentals.Vehicle, a.Rentals.Hours, a.Rentals.Pickup),
				fmt.Sprintf("Fare: Rs %d  Payment: %s", a.Ride.Fare, a.Ride.PaymentMethod),
			},
		},
		On: on,
	}, noRedirect
}

func stepRentalsStarted(a *App) (Result, nav.Screen) {
	driver := trip.CounterpartFor(trip.ServiceRentals)
	on := merge(transientHandlers(a, nav.ScreenRentalsStarted, trip.ServiceRentals), Handlers{
		EvAdvance: func(any) { a.Nav.GoTo(nav.ScreenRentalsCompleted) },
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenRentalsCompleted) },
	})
	return Result{
		Props: Props{
			Title:   "Rental underway",
			Lines:   []string{fmt.Sprintf("%s · %s · %d hour(s)", driver.Name, a.Rentals.Vehicle, a.Rentals.Hours)},
			Contact: &driver,
		},
		On: on,
	}, noRedirect
}

func stepRentalsCompleted(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvRate: func(arg any) {
			stars, ok := arg.(int)
			if !ok || stars < 1 || stars > 5 {
				return
			}
			a.Rentals.Rating = stars
		},
		EvAdvance: func(any) { a.finishRental() },
		EvConfirm: func(any) { a.finishRental() },
	}
	return Result{
		Props: Props{
			Title: "Rental finished",
			Lines: []string{
				fmt.Sprintf("%d hour(s), Rs %d", a.Rentals.Hours, a.Ride.Fare),
				"Rate your captain (1-5)",
			},
		},
		On: on,
	}, noRedirect
}

func (a *App) finishRental() {
	// Rentals bill through the generic fare field (see stepRentalsConfirm).
	a.History.Record(trip.ServiceRentals, a.Rentals.Pickup, fmt.Sprintf("%d hour(s)", a.Rentals.Hours), a.Ride.Fare, a.Rentals.Rating)
	a.Rentals.Reset()
	a.Nav.GoTo(nav.ScreenHome)
}

package dispatch

import (
	"fmt"

	"safar/internal/nav"
	"safar/internal/overlay"
	"safar/internal/trip"
)

func stepHome(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvGoDropoff: func(any) { a.Nav.GoTo(nav.ScreenDropoff) },
		EvChangePickup: func(any) {
			a.Nav.GoToWithContext(nav.ScreenRidePickupSelect, nav.Context{
				Previous:      nav.ScreenHome,
				PickupSuccess: nav.ScreenDropoff,
			})
		},
		EvGoDelivery:    func(any) { a.Nav.GoTo(nav.ScreenDeliveryHome) },
		EvGoRentals:     func(any) { a.Nav.GoTo(nav.ScreenRentalsHome) },
		EvGoShops:       func(any) { a.Nav.GoTo(nav.ScreenShopsHome) },
		EvGoHistory:     func(any) { a.Nav.GoTo(nav.ScreenHistory) },
		EvGoSettings:    func(any) { a.Nav.GoTo(nav.ScreenSettings) },
		EvOpenQuickBook: func(any) { a.Overlays.Open(overlay.QuickBook) },
		EvOpenVoice:     func(any) { a.Overlays.Open(overlay.VoiceActivation) },
		EvSOS: func(any) {
			a.Nav.GoToWithContext(nav.ScreenSOS, nav.Context{
				Previous: nav.ScreenHome,
				Contact:  trip.SupportContact,
			})
		},
	}
	return Result{
		Props: Props{
			Title:   "Where to?",
			Lines:   []string{fmt.Sprintf("Pickup: %s", a.Ride.Pickup)},
			Options: []string{"Ride", "Delivery", "Rentals", "Shops", "History", "Settings"},
			Recents: trip.RecentLocations(),
		},
		On: on,
	}, noRedirect
}

// pickupSelect builds the shared pickup-selection step. Applying a choice
// writes through setPickup, then follows the one-shot success target when
// one is pending and falls back to the previous screen otherwise. Cancelling
// never consumes the success target.
func pickupSelect(a *App, title string, setPickup func(string)) (Result, nav.Screen) {
	on := Handlers{
		EvApplyPickup: func(arg any) {
			label, _ := arg.(string)
			if label == "" {
				label = trip.FallbackLocation
			}
			setPickup(label)
			if target, ok := a.Nav.ConsumePickupSuccess(); ok {
				a.Nav.GoTo(target)
				return
			}
			a.Nav.GoTo(a.Nav.Context().Previous)
		},
		EvBack: func(any) { a.Nav.GoTo(a.Nav.Context().Previous) },
	}
	return Result{
		Props: Props{
			Title:   title,
			Options: trip.LocationOptions(),
			Recents: trip.RecentLocations(),
		},
		On: on,
	}, noRedirect
}

func stepRidePickupSelect(a *App) (Result, nav.Screen) {
	return pickupSelect(a, "Set pickup point", func(label string) { a.Ride.Pickup = label })
}

func stepDropoff(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSetDropoff: func(arg any) {
			label, _ := arg.(string)
			a.Ride.DropoffLabel = label
		},
		EvConfirm: func(any) {
			if a.Ride.DropoffLabel == "" {
				return
			}
			a.Nav.GoTo(nav.ScreenSelectVehicle)
		},
		EvChangePickup: func(any) {
			a.Nav.GoToWithContext(nav.ScreenRidePickupSelect, nav.Context{
				Previous:      nav.ScreenDropoff,
				PickupSuccess: nav.ScreenDropoff,
			})
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenHome) },
	}
	return Result{
		Props: Props{
			Title:   "Where are you going?",
			Lines:   []string{fmt.Sprintf("Pickup: %s", a.Ride.Pickup)},
			Recents: trip.RecentLocations(),
			Editing: true,
		},
		On: on,
	}, noRedirect
}

func stepSelectVehicle(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvSelectVehicle: func(arg any) {
			i, ok := arg.(int)
			vehicles := trip.VehicleOptions()
			if !ok || i < 0 || i >= len(vehicles) {
				return
			}
			a.Ride.Vehicle = vehicles[i]
		},
		EvOpenFareDialog:    func(any) { a.Overlays.Open(overlay.FareDialog) },
		EvOpenPaymentModal:  func(any) { a.Overlays.Open(overlay.PaymentModal) },
		EvOpenFareBreakdown: func(any) { a.Overlays.Open(overlay.FareBreakdown) },
		EvChangePickup: func(any) {
			a.Nav.GoToWithContext(nav.ScreenRidePickupSelect, nav.Context{
				Previous:      nav.ScreenSelectVehicle,
				PickupSuccess: nav.ScreenSelectVehicle,
			})
		},
		EvConfirm: func(any) {
			if a.Ride.Vehicle == "" {
				return
			}
			a.Nav.GoTo(nav.ScreenSearchingRides)
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenDropoff) },
	}
	return Result{
		Props: Props{
			Title: "Choose a ride",
			Lines: []string{
				fmt.Sprintf("%s → %s", a.Ride.Pickup, a.Ride.DropoffLabel),
				fmt.Sprintf("Fare: Rs %d  Payment: %s", a.Ride.Fare, a.Ride.PaymentMethod),
			},
			Options: trip.VehicleOptions(),
		},
		On: on,
	}, noRedirect
}

func stepSearchingRides(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvAdvance:      func(any) { a.Nav.GoTo(nav.ScreenRideConfirmed) },
		EvShowOffers:   func(any) { a.Overlays.Open(overlay.RideOffers) },
		EvExtendSearch: func(any) { a.Nav.GoTo(nav.ScreenRideExtended) },
		EvCancelRide:   func(any) { a.Overlays.Open(overlay.CancelConfirm) },
		EvBack:         func(any) { a.Nav.GoTo(nav.ScreenSelectVehicle) },
	}
	return Result{
		Props: Props{
			Title: "Finding you a ride",
			Lines: []string{fmt.Sprintf("%s, %s", a.Ride.Vehicle, a.Ride.DropoffLabel)},
		},
		On: on,
	}, noRedirect
}

func stepRideExtended(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvConfirm:    func(any) { a.Nav.GoTo(nav.ScreenSearchingRides) },
		EvCancelRide: func(any) { a.Overlays.Open(overlay.CancelConfirm) },
		EvBack:       func(any) { a.Nav.GoTo(nav.ScreenSelectVehicle) },
	}
	return Result{
		Props: Props{
			Title: "Still looking...",
			Lines: []string{"No captain nearby yet. Keep searching?"},
		},
		On: on,
	}, noRedirect
}

func stepRideConfirmed(a *App) (Result, nav.Screen) {
	driver := trip.CounterpartFor(trip.ServiceRide)
	on := merge(transientHandlers(a, nav.ScreenRideConfirmed, trip.ServiceRide), Handlers{
		EvCancelRide: func(any) { a.Overlays.Open(overlay.CancelConfirm) },
		EvAdvance:    func(any) { a.Nav.GoTo(nav.ScreenRideStarted) },
		EvConfirm:    func(any) { a.Nav.GoTo(nav.ScreenRideStarted) },
	})
	return Result{
		Props: Props{
			Title:   "Captain confirmed",
			Lines:   []string{fmt.Sprintf("%s · %s · Rs %d", driver.Name, a.Ride.Vehicle, a.Ride.Fare)},
			Contact: &driver,
		},
		On: on,
	}, noRedirect
}

func stepRideStarted(a *App) (Result, nav.Screen) {
	driver := trip.CounterpartFor(trip.ServiceRide)
	on := merge(transientHandlers(a, nav.ScreenRideStarted, trip.ServiceRide), Handlers{
		EvAdvance: func(any) { a.Nav.GoTo(nav.ScreenRideCompleted) },
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenRideCompleted) },
	})
	return Result{
		Props: Props{
			Title:   "On the way",
			Lines:   []string{fmt.Sprintf("Heading to %s", a.Ride.DropoffLabel)},
			Contact: &driver,
		},
		On: on,
	}, noRedirect
}

func stepRideCompleted(a *App) (Result, nav.Screen) {
	on := Handlers{
		EvRate: func(arg any) {
			stars, ok := arg.(int)
			if !ok || stars < 1 || stars > 5 {
				return
			}
			a.Ride.Rating = stars
		},
		EvAdvance: func(any) { a.finishRide() },
		EvConfirm: func(any) { a.finishRide() },
	}
	return Result{
		Props: Props{
			Title: "You have arrived",
			Lines: []string{
				fmt.Sprintf("Fare: Rs %d", a.Ride.Fare),
				"Rate your captain (1-5)",
			},
		},
		On: on,
	}, noRedirect
}

func (a *App) finishRide() {
	a.History.Record(trip.ServiceRide, a.Ride.Pickup, a.Ride.DropoffLabel, a.Ride.Fare, a.Ride.Rating)
	a.Ride.Reset()
	a.Nav.GoTo(nav.ScreenHome)
}

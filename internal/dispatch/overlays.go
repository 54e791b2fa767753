package dispatch

import (
	"safar/internal/nav"
	"safar/internal/overlay"
	"safar/internal/trip"
)

// fareTarget resolves which fare field the shared fare dialog edits.
// Resolution happens at confirm time, not when the dialog opens: only a shop
// order gets its own field, every other flow (ride, rentals) writes the
// generic ride fare.
func (a *App) fareTarget() *int {
	if a.Nav.Current() == nav.ScreenShopOrder {
		return &a.Shops.Fare
	}
	return &a.Ride.Fare
}

// paymentTarget mirrors fareTarget for the payment-method picker.
func (a *App) paymentTarget() *string {
	if a.Nav.Current() == nav.ScreenShopOrder {
		return &a.Shops.PaymentMethod
	}
	return &a.Ride.PaymentMethod
}

// attachOverlayHandlers merges the callbacks of every visible overlay into
// the screen's handler set. Overlays float above whichever screen is active;
// none of their callbacks changes the screen, with the single exception of
// ride offers, whose close paths perform an overlay close and a screen
// transition as two explicit, sequential effects.
func (a *App) attachOverlayHandlers(res *Result) {
	o := a.Overlays

	if o.Visible(overlay.QuickBook) {
		routes := trip.SavedRoutes()
		res.On[EvQuickBookConfirm] = func(arg any) {
			i, ok := arg.(int)
			if !ok || i < 0 || i >= len(routes) {
				return
			}
			a.Ride.Pickup = routes[i].Pickup
			a.Ride.DropoffLabel = routes[i].Dropoff
			o.Close(overlay.QuickBook)
			o.Open(overlay.FareDialog)
		}
		res.On[EvQuickBookClose] = func(any) { o.Close(overlay.QuickBook) }
		// Asking to discard the quick-book draft nests the confirmation
		// prompt above the sheet.
		res.On[EvCancelRide] = func(any) { o.Open(overlay.CancelConfirm) }
	}

	if o.Visible(overlay.CancelConfirm) {
		res.On[EvCancelConfirmYes] = func(any) {
			// Cascading close: confirming dismisses the prompt and its
			// parent quick-book sheet. The screen stays where it is.
			o.Close(overlay.CancelConfirm)
			o.Close(overlay.QuickBook)
		}
		res.On[EvCancelConfirmNo] = func(any) { o.Close(overlay.CancelConfirm) }
	}

	if o.Visible(overlay.FareDialog) {
		res.On[EvFareConfirm] = func(arg any) {
			amount, ok := arg.(int)
			if !ok || amount < 0 {
				return
			}
			*a.fareTarget() = amount
			o.Close(overlay.FareDialog)
		}
		res.On[EvFareClose] = func(any) { o.Close(overlay.FareDialog) }
	}

	if o.Visible(overlay.PaymentModal) {
		res.On[EvPaymentSelect] = func(arg any) {
			method, ok := arg.(string)
			if !ok || method == "" {
				return
			}
			*a.paymentTarget() = method
			o.Close(overlay.PaymentModal)
		}
		res.On[EvPaymentClose] = func(any) { o.Close(overlay.PaymentModal) }
	}

	if o.Visible(overlay.FareBreakdown) {
		res.On[EvBreakdownClose] = func(any) { o.Close(overlay.FareBreakdown) }
	}

	if o.Visible(overlay.RideOffers) {
		offers := trip.RideOffers()
		res.On[EvOfferSelect] = func(arg any) {
			i, ok := arg.(int)
			if !ok || i < 0 || i >= len(offers) {
				return
			}
			a.Ride.Vehicle = offers[i].Vehicle
			a.Ride.Fare = offers[i].Fare
			o.Close(overlay.RideOffers)
			a.Nav.GoTo(nav.ScreenRideConfirmed)
		}
		res.On[EvOffersClose] = func(any) {
			o.Close(overlay.RideOffers)
			a.Nav.GoTo(nav.ScreenSelectVehicle)
		}
	}

	if o.Visible(overlay.VoiceActivation) {
		res.On[EvVoiceClose] = func(any) { o.Close(overlay.VoiceActivation) }
	}
}

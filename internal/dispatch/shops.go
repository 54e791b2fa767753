package dispatch

import (
	"fmt"

	"safar/internal/nav"
	"safar/internal/overlay"
	"safar/internal/trip"
)

func stepShopsHome(a *App) (Result, nav.Screen) {
	catalog := trip.Catalog()
	names := make([]string, len(catalog))
	for i, shop := range catalog {
		names[i] = fmt.Sprintf("%s (%s)", shop.Name, shop.Category)
	}
	on := Handlers{
		EvSelectShop: func(arg any) {
			i, ok := arg.(int)
			if !ok || i < 0 || i >= len(catalog) {
				return
			}
			selected := catalog[i]
			a.Shops.Selected = &selected
			a.Nav.GoTo(nav.ScreenShopOrder)
		},
		EvSelectLocation: func(any) { a.Nav.GoTo(nav.ScreenShopsLocationSelect) },
		EvBack:           func(any) { a.Nav.GoTo(nav.ScreenHome) },
	}
	return Result{
		Props: Props{
			Title:   "Order from shops",
			Lines:   []string{fmt.Sprintf("Deliver to: %s", a.Shops.Location)},
			Options: names,
		},
		On: on,
	}, noRedirect
}

func stepShopsLocationSelect(a *App) (Result, nav.Screen) {
	options := trip.LocationOptions()
	on := Handlers{
		EvSelectLocation: func(arg any) {
			i, ok := arg.(int)
			if !ok || i < 0 || i >= len(options) {
				return
			}
			a.Shops.Location = options[i]
			a.Nav.GoTo(nav.ScreenShopsHome)
		},
		EvBack: func(any) { a.Nav.GoTo(nav.ScreenShopsHome) },
	}
	return Result{
		Props: Props{Title: "Deliver where?", Options: options},
		On:    on,
	}, noRedirect
}

// requireShop guards the four shop-order screens. Reaching them without a
// selection is not an error: the dispatcher silently redirects to shopsHome
// and yields no props for this pass.
func requireShop(a *App) nav.Screen {
	if a.Shops.Selected == nil {
		return nav.ScreenShopsHome
	}
	return noRedirect
}

func stepShopOrder(a *App) (Result, nav.Screen) {
	if r := requireShop(a); r != noRedirect {
		return Result{}, r
	}
	shop := *a.Shops.Selected
	on := Handlers{
		EvOpenFareDialog:    func(any) { a.Overlays.Open(overlay.FareDialog) },
		EvOpenPaymentModal:  func(any) { a.Overlays.Open(overlay.PaymentModal) },
		EvOpenFareBreakdown: func(any) { a.Overlays.Open(overlay.FareBreakdown) },
		EvConfirm:           func(any) { a.Nav.GoTo(nav.ScreenShopOrderConfirmed) },
		EvBack:              func(any) { a.Nav.GoTo(nav.ScreenShopsHome) },
	}
	return Result{
		Props: Props{
			Title: fmt.Sprintf("Order from %s", shop.Name),
			Lines: []string{
				fmt.Sprintf("Deliver to: %s", a.Shops.Location),
				fmt.Sprintf("Fare: Rs %d  Payment: %s", a.Shops.Fare, a.Shops.PaymentMethod),
			},
		},
		On: on,
	}, noRedirect
}

func stepShopOrderConfirmed(a *App) (Result, nav.Screen) {
	if r := requireShop(a); r != noRedirect {
		return Result{}, r
	}
	rider := trip.CounterpartFor(trip.ServiceShops)
	on := merge(transientHandlers(a, nav.ScreenShopOrderConfirmed, trip.ServiceShops), Handlers{
		EvAdvance: func(any) { a.Nav.GoTo(nav.ScreenShopOrderInProgress) },
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenShopOrderInProgress) },
	})
	return Result{
		Props: Props{
			Title:   "Order confirmed",
			Lines:   []string{fmt.Sprintf("%s is heading to %s", rider.Name, a.Shops.Selected.Name)},
			Contact: &rider,
		},
		On: on,
	}, noRedirect
}

func stepShopOrderInProgress(a *App) (Result, nav.Screen) {
	if r := requireShop(a); r != noRedirect {
		return Result{}, r
	}
	rider := trip.CounterpartFor(trip.ServiceShops)
	on := merge(transientHandlers(a, nav.ScreenShopOrderInProgress, trip.ServiceShops), Handlers{
		EvAdvance: func(any) { a.Nav.GoTo(nav.ScreenShopOrderCompleted) },
		EvConfirm: func(any) { a.Nav.GoTo(nav.ScreenShopOrderCompleted) },
	})
	return Result{
		Props: Props{
			Title:   "Order on the way",
			Lines:   []string{fmt.Sprintf("Delivering to %s", a.Shops.Location)},
			Contact: &rider,
		},
		On: on,
	}, noRedirect
}

func stepShopOrderCompleted(a *App) (Result, nav.Screen) {
	if r := requireShop(a); r != noRedirect {
		return Result{}, r
	}
	on := Handlers{
		EvRate: func(arg any) {
			stars, ok := arg.(int)
			if !ok || stars < 1 || stars > 5 {
				return
			}
			a.Shops.Rating = stars
		},
		EvAdvance: func(any) { a.finishShopOrder() },
		EvConfirm: func(any) { a.finishShopOrder() },
	}
	return Result{
		Props: Props{
			Title: "Order delivered",
			Lines: []string{
				fmt.Sprintf("Fare: Rs %d", a.Shops.Fare),
				"Rate your rider (1-5)",
			},
		},
		On: on,
	}, noRedirect
}

func (a *App) finishShopOrder() {
	shopName := ""
	if a.Shops.Selected != nil {
		shopName = a.Shops.Selected.Name
	}
	a.History.Record(trip.ServiceShops, shopName, a.Shops.Location, a.Shops.Fare, a.Shops.Rating)
	a.Shops.Reset()
	a.Nav.GoTo(nav.ScreenHome)
}

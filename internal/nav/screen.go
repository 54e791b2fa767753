package nav

// Screen is a type-safe identifier for one of the app's screens. ScreenNone
// is the zero value on purpose: context patches leave zero-valued fields
// untouched, and dispatch steps return ScreenNone to mean "no redirect".
type Screen int

const (
	ScreenNone Screen = iota

	// Auth and onboarding
	ScreenSplash
	ScreenLogin
	ScreenSignup
	ScreenOTPVerification
	ScreenOnboarding
	ScreenOnboardingTutorial

	// Ride booking
	ScreenHome
	ScreenRidePickupSelect
	ScreenDropoff
	ScreenSelectVehicle
	ScreenSearchingRides
	ScreenRideExtended
	ScreenRideConfirmed
	ScreenRideStarted
	ScreenRideCompleted

	// Parcel delivery
	ScreenDeliveryHome
	ScreenDeliveryPickupSelect
	ScreenDeliveryForm
	ScreenDeliveryMap
	ScreenDeliveryFare
	ScreenDeliverySuccess
	ScreenDeliveryConfirmed
	ScreenDeliveryInProgress
	ScreenDeliveryCompleted

	// Hourly rentals
	ScreenRentalsHome
	ScreenRentalsPickupSelect
	ScreenRentalsConfirm
	ScreenRentalsStarted
	ScreenRentalsCompleted

	// Shop orders
	ScreenShopsHome
	ScreenShopsLocationSelect
	ScreenShopOrder
	ScreenShopOrderConfirmed
	ScreenShopOrderInProgress
	ScreenShopOrderCompleted

	// Transient screens, always exited via the previous-screen slot
	ScreenSOS
	ScreenMessage
	ScreenCall

	// Account and settings
	ScreenHistory
	ScreenSettings
	ScreenMyAccount
	ScreenNotificationsSettings
	ScreenChangeSizeSettings
	ScreenLanguageSettings
	ScreenChangeThemeSettings
	ScreenTermsPrivacy
	ScreenContactUs
	ScreenHelpSupport
	ScreenCallBykea
	ScreenVoiceFeedback

	screenCount
)

var screenNames = map[Screen]string{
	ScreenNone:                  "none",
	ScreenSplash:                "splash",
	ScreenLogin:                 "login",
	ScreenSignup:                "signup",
	ScreenOTPVerification:       "otpVerification",
	ScreenOnboarding:            "onboarding",
	ScreenOnboardingTutorial:    "onboardingTutorial",
	ScreenHome:                  "home",
	ScreenRidePickupSelect:      "ridePickupSelect",
	ScreenDropoff:               "dropoff",
	ScreenSelectVehicle:         "selectVehicle",
	ScreenSearchingRides:        "searchingRides",
	ScreenRideExtended:          "rideExtended",
	ScreenRideConfirmed:         "rideConfirmed",
	ScreenRideStarted:           "rideStarted",
	ScreenRideCompleted:         "rideCompleted",
	ScreenDeliveryHome:          "deliveryHome",
	ScreenDeliveryPickupSelect:  "deliveryPickupSelect",
	ScreenDeliveryForm:          "deliveryForm",
	ScreenDeliveryMap:           "deliveryMap",
	ScreenDeliveryFare:          "deliveryFare",
	ScreenDeliverySuccess:       "deliverySuccess",
	ScreenDeliveryConfirmed:     "deliveryConfirmed",
	ScreenDeliveryInProgress:    "deliveryInProgress",
	ScreenDeliveryCompleted:     "deliveryCompleted",
	ScreenRentalsHome:           "rentalsHome",
	ScreenRentalsPickupSelect:   "rentalsPickupSelect",
	ScreenRentalsConfirm:        "rentalsConfirm",
	ScreenRentalsStarted:        "rentalsStarted",
	ScreenRentalsCompleted:      "rentalsCompleted",
	ScreenShopsHome:             "shopsHome",
	ScreenShopsLocationSelect:   "shopsLocationSelect",
	ScreenShopOrder:             "shopOrder",
	ScreenShopOrderConfirmed:    "shopOrderConfirmed",
	ScreenShopOrderInProgress:   "shopOrderInProgress",
	ScreenShopOrderCompleted:    "shopOrderCompleted",
	ScreenSOS:                   "sos",
	ScreenMessage:               "message",
	ScreenCall:                  "call",
	ScreenHistory:               "history",
	ScreenSettings:              "settings",
	ScreenMyAccount:             "myAccount",
	ScreenNotificationsSettings: "notificationsSettings",
	ScreenChangeSizeSettings:    "changeSizeSettings",
	ScreenLanguageSettings:      "languageSettings",
	ScreenChangeThemeSettings:   "changeThemeSettings",
	ScreenTermsPrivacy:          "termsPrivacy",
	ScreenContactUs:             "contactUs",
	ScreenHelpSupport:           "helpSupport",
	ScreenCallBykea:             "callBykea",
	ScreenVoiceFeedback:         "voiceFeedback",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "invalid"
}

// Count is the number of real screens (excluding ScreenNone). The dispatcher
// uses it to size its registry and bound its redirect loop.
func Count() int {
	return int(screenCount) - 1
}

// All returns every real screen id in declaration order.
func All() []Screen {
	out := make([]Screen, 0, Count())
	for s := ScreenNone + 1; s < screenCount; s++ {
		out = append(out, s)
	}
	return out
}

// IsTransient reports whether a screen is entered from many places and exited
// only via the previous-screen slot.
func (s Screen) IsTransient() bool {
	return s == ScreenSOS || s == ScreenMessage || s == ScreenCall
}

package dispatch

import "safar/internal/nav"

// step builds one screen's render input. The second return is a redirect
// target: a step that cannot render (missing precondition) names where the
// navigator should go instead and yields no props for this pass.
type step func(a *App) (Result, nav.Screen)

// noRedirect is returned by steps that rendered normally.
const noRedirect = nav.ScreenNone

// registry is the total decision table from screen to step. Which callbacks
// each step exposes is the only transition legality the app enforces.
var registry = map[nav.Screen]step{
	nav.ScreenSplash:             stepSplash,
	nav.ScreenLogin:              stepLogin,
	nav.ScreenSignup:             stepSignup,
	nav.ScreenOTPVerification:    stepOTPVerification,
	nav.ScreenOnboarding:         stepOnboarding,
	nav.ScreenOnboardingTutorial: stepOnboardingTutorial,

	nav.ScreenHome:             stepHome,
	nav.ScreenRidePickupSelect: stepRidePickupSelect,
	nav.ScreenDropoff:          stepDropoff,
	nav.ScreenSelectVehicle:    stepSelectVehicle,
	nav.ScreenSearchingRides:   stepSearchingRides,
	nav.ScreenRideExtended:     stepRideExtended,
	nav.ScreenRideConfirmed:    stepRideConfirmed,
	nav.ScreenRideStarted:      stepRideStarted,
	nav.ScreenRideCompleted:    stepRideCompleted,

	nav.ScreenDeliveryHome:         stepDeliveryHome,
	nav.ScreenDeliveryPickupSelect: stepDeliveryPickupSelect,
	nav.ScreenDeliveryForm:         stepDeliveryForm,
	nav.ScreenDeliveryMap:          stepDeliveryMap,
	nav.ScreenDeliveryFare:         stepDeliveryFare,
	nav.ScreenDeliverySuccess:      stepDeliverySuccess,
	nav.ScreenDeliveryConfirmed:    stepDeliveryConfirmed,
	nav.ScreenDeliveryInProgress:   stepDeliveryInProgress,
	nav.ScreenDeliveryCompleted:    stepDeliveryCompleted,

	nav.ScreenRentalsHome:         stepRentalsHome,
	nav.ScreenRentalsPickupSelect: stepRentalsPickupSelect,
	nav.ScreenRentalsConfirm:      stepRentalsConfirm,
	nav.ScreenRentalsStarted:      stepRentalsStarted,
	nav.ScreenRentalsCompleted:    stepRentalsCompleted,

	nav.ScreenShopsHome:           stepShopsHome,
	nav.ScreenShopsLocationSelect: stepShopsLocationSelect,
	nav.ScreenShopOrder:           stepShopOrder,
	nav.ScreenShopOrderConfirmed:  stepShopOrderConfirmed,
	nav.ScreenShopOrderInProgress: stepShopOrderInProgress,
	nav.ScreenShopOrderCompleted:  stepShopOrderCompleted,

	nav.ScreenSOS:     stepSOS,
	nav.ScreenMessage: stepMessage,
	nav.ScreenCall:    stepCall,

	nav.ScreenHistory:               stepHistory,
	nav.ScreenSettings:              stepSettings,
	nav.ScreenMyAccount:             stepMyAccount,
	nav.ScreenNotificationsSettings: stepNotificationsSettings,
	nav.ScreenChangeSizeSettings:    stepChangeSizeSettings,
	nav.ScreenLanguageSettings:      stepLanguageSettings,
	nav.ScreenChangeThemeSettings:   stepChangeThemeSettings,
	nav.ScreenTermsPrivacy:          stepTermsPrivacy,
	nav.ScreenContactUs:             stepContactUs,
	nav.ScreenHelpSupport:           stepHelpSupport,
	nav.ScreenCallBykea:             stepCallBykea,
	nav.ScreenVoiceFeedback:         stepVoiceFeedback,
}

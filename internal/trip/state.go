package trip

// Per-service field bags. Each bag is owned by the composition root and
// mutated only through dispatcher callbacks; screens get read-only copies.

// PaymentMethod values are plain strings on the wire-less prototype.
const (
	PayCash   = "cash"
	PayCard   = "card"
	PayWallet = "wallet"
)

// FallbackLocation is shown when the host location lookup fails.
// Failures are a policy fallback here, never an error.
const FallbackLocation = "My current location"

// RideState holds the ride-booking fields.
type RideState struct {
	Pickup        string
	DropoffLabel  string
	Vehicle       string
	Fare          int
	PaymentMethod string
	Rating        int
}

// ParcelDetails is the delivery form payload.
type ParcelDetails struct {
	Description    string
	WeightKg       int
	RecipientName  string
	RecipientPhone string
}

// DeliveryState holds the parcel-delivery fields.
type DeliveryState struct {
	Pickup        string
	Destination   string
	Parcel        ParcelDetails
	PaymentOption string
	Fare          int
	Rating        int
}

// RentalsState holds the hourly-rental fields.
type RentalsState struct {
	Pickup  string
	Hours   int
	Vehicle string
	Fare    int
	Rating  int
}

// ShopsState holds the shop-order fields. Selected stays nil until the user
// picks a shop on the shops home screen; the order screens are unreachable
// without it.
type ShopsState struct {
	Location      string
	Selected      *Shop
	Fare          int
	PaymentMethod string
	Rating        int
}

// NewRideState seeds the ride bag with the fallback pickup.
func NewRideState() *RideState {
	return &RideState{Pickup: FallbackLocation, PaymentMethod: PayCash}
}

// NewDeliveryState seeds the delivery bag with the fallback pickup.
func NewDeliveryState() *DeliveryState {
	return &DeliveryState{Pickup: FallbackLocation, PaymentOption: PayCash}
}

// NewRentalsState seeds a one-hour rental from the fallback pickup.
func NewRentalsState() *RentalsState {
	return &RentalsState{Pickup: FallbackLocation, Hours: 1}
}

// NewShopsState seeds the shops bag with the fallback location.
func NewShopsState() *ShopsState {
	return &ShopsState{Location: FallbackLocation, PaymentMethod: PayCash}
}

// Reset clears the request-scoped ride fields after a trip finishes or is
// cancelled. Pickup survives, it belongs to the user not the trip.
func (r *RideState) Reset() {
	r.DropoffLabel = ""
	r.Vehicle = ""
	r.Fare = 0
	r.Rating = 0
}

// Reset clears the request-scoped delivery fields.
func (d *DeliveryState) Reset() {
	d.Destination = ""
	d.Parcel = ParcelDetails{}
	d.Fare = 0
	d.Rating = 0
}

// Reset clears the request-scoped rental fields.
func (r *RentalsState) Reset() {
	r.Hours = 1
	r.Vehicle = ""
	r.Fare = 0
	r.Rating = 0
}

// Reset clears the request-scoped shop-order fields, including the selection.
func (s *ShopsState) Reset() {
	s.Selected = nil
	s.Fare = 0
	s.Rating = 0
}

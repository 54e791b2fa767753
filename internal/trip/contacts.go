package trip

// ServiceKind tags which service line a contact or booking belongs to.
type ServiceKind int

const (
	ServiceRide ServiceKind = iota
	ServiceDelivery
	ServiceRentals
	ServiceShops
)

func (k ServiceKind) String() string {
	switch k {
	case ServiceRide:
		return "ride"
	case ServiceDelivery:
		return "delivery"
	case ServiceRentals:
		return "rentals"
	case ServiceShops:
		return "shops"
	}
	return "unknown"
}

// Contact is the counterpart shown on the call/message/sos screens. Those
// screens never own contact state; the dispatcher stashes a Contact in the
// navigation context right before transitioning to them.
type Contact struct {
	Name    string
	Avatar  string
	Phone   string
	Service ServiceKind
}

// Mock counterparts per service line. The prototype has no matching backend,
// so every line gets a fixed driver/courier/rider.
var counterparts = map[ServiceKind]Contact{
	ServiceRide:     {Name: "Ahmed Khan", Avatar: "🧔", Phone: "0301-1234567", Service: ServiceRide},
	ServiceDelivery: {Name: "Bilal Raza", Avatar: "🧢", Phone: "0302-2345678", Service: ServiceDelivery},
	ServiceRentals:  {Name: "Imran Ali", Avatar: "🧑", Phone: "0303-3456789", Service: ServiceRentals},
	ServiceShops:    {Name: "Sana Tariq", Avatar: "🛵", Phone: "0304-4567890", Service: ServiceShops},
}

// CounterpartFor returns the mock driver/courier/rider for a service line.
func CounterpartFor(k ServiceKind) Contact {
	return counterparts[k]
}

// SupportContact is the helpline reachable even before login.
var SupportContact = Contact{Name: "Safar Helpline", Avatar: "☎", Phone: "111-222-333", Service: ServiceRide}

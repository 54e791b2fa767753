package trip

// Shop is a selectable storefront on the shops home screen.
type Shop struct {
	ID       int
	Name     string
	Category string
}

// Catalog is the mock storefront table. Order matters, screens index into it.
func Catalog() []Shop {
	return []Shop{
		{ID: 1, Name: "Karachi Biryani House", Category: "Food"},
		{ID: 2, Name: "City Pharmacy", Category: "Pharmacy"},
		{ID: 3, Name: "Fresh Basket", Category: "Grocery"},
		{ID: 4, Name: "Chai Chowk", Category: "Food"},
		{ID: 5, Name: "Readers Corner", Category: "Books"},
	}
}

// LocationOptions are the mock pickup/delivery areas offered by the
// location-select screens.
func LocationOptions() []string {
	return []string{
		"Gulshan-e-Iqbal",
		"DHA Phase 5",
		"Saddar",
		"North Nazimabad",
		"Clifton Block 2",
	}
}

// SavedRoutes are the quick-book presets shown in the quick-book overlay.
type SavedRoute struct {
	Label   string
	Pickup  string
	Dropoff string
}

func SavedRoutes() []SavedRoute {
	return []SavedRoute{
		{Label: "Home → Office", Pickup: "Gulshan-e-Iqbal", Dropoff: "Shahrah-e-Faisal"},
		{Label: "Office → Home", Pickup: "Shahrah-e-Faisal", Dropoff: "Gulshan-e-Iqbal"},
		{Label: "Home → Gym", Pickup: "Gulshan-e-Iqbal", Dropoff: "DHA Phase 5"},
	}
}

// RideOffer is a driver counter-offer surfaced while searching.
type RideOffer struct {
	Driver  string
	Vehicle string
	Fare    int
	ETA     string
}

func RideOffers() []RideOffer {
	return []RideOffer{
		{Driver: "Ahmed Khan", Vehicle: "Bike", Fare: 250, ETA: "3 min"},
		{Driver: "Waqas Mir", Vehicle: "Rickshaw", Fare: 320, ETA: "5 min"},
		{Driver: "Danish Saeed", Vehicle: "Car Mini", Fare: 540, ETA: "7 min"},
	}
}

// VehicleOptions are the ride classes on the select-vehicle screen.
func VehicleOptions() []string {
	return []string{"Bike", "Rickshaw", "Car Mini", "Car AC"}
}

// RentalVehicles are the hourly-rental classes.
func RentalVehicles() []string {
	return []string{"Bike", "Car Mini", "Car AC"}
}

// RecentLocations feed the pickup panel once it is dragged past half height.
func RecentLocations() []string {
	return []string{
		"Dolmen Mall Clifton",
		"Jinnah International Airport",
		"Boat Basin",
		"Tariq Road",
	}
}

package domain

// Internal category identifiers shared by the catalog and the external
// aggregation core. "all" is a sentinel meaning no category filter.
const (
	CategoryVeterinaryClinics = "veterinary_clinics"
	CategoryPetShops          = "pet_shops"
	CategoryGrooming          = "grooming"
	CategoryPetHotels         = "pet_hotels"
	CategoryPetCafes          = "pet_cafes"
	CategoryPetParks          = "pet_parks"
	CategoryPetTraining       = "pet_training"
	CategoryPetRestaurants    = "pet_friendly_restaurants"
	CategoryAll               = "all"
)

// Categories lists every concrete category (the "all" sentinel excluded).
var Categories = []string{
	CategoryVeterinaryClinics,
	CategoryPetShops,
	CategoryGrooming,
	CategoryPetHotels,
	CategoryPetCafes,
	CategoryPetParks,
	CategoryPetTraining,
	CategoryPetRestaurants,
}

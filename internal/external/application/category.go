package application

import (
	"strings"

	"github.com/petmate-id/petcare-services/api/internal/external/domain"
)

var placeTypeByCategory = map[string]string{
	domain.CategoryVeterinaryClinics: "veterinary_care",
	domain.CategoryPetShops:          "pet_store",
	domain.CategoryPetHotels:         "lodging",
	domain.CategoryPetCafes:          "cafe",
	domain.CategoryPetParks:          "park",
	domain.CategoryPetRestaurants:    "restaurant",
}

var keywordByCategory = map[string]string{
	domain.CategoryVeterinaryClinics: "veterinary clinic pet",
	domain.CategoryPetShops:          "pet shop",
	domain.CategoryGrooming:          "pet grooming salon",
	domain.CategoryPetHotels:         "pet hotel boarding",
	domain.CategoryPetCafes:          "pet cafe",
	domain.CategoryPetParks:          "dog park",
	domain.CategoryPetTraining:       "pet training school",
	domain.CategoryPetRestaurants:    "pet friendly restaurant",
}

// PlaceTypeForCategory maps an internal category onto the provider's place-type
// vocabulary. Unknown categories and the "all" sentinel map to an empty string,
// meaning no type filter.
func PlaceTypeForCategory(categoryID string) string {
	return placeTypeByCategory[strings.TrimSpace(categoryID)]
}

// KeywordForCategory returns a free-text keyword that sharpens provider search
// relevance for the category. Falls back to the generic "pet" keyword.
func KeywordForCategory(categoryID string) string {
	if keyword, ok := keywordByCategory[strings.TrimSpace(categoryID)]; ok {
		return keyword
	}
	return "pet"
}

// InferCategoryFromTypes guesses the internal category from provider place-type
// tags. Specific signals are checked before generic ones; the fallback for
// anything unrecognised is pet shops.
func InferCategoryFromTypes(types []string) string {
	tags := make(map[string]struct{}, len(types))
	for _, t := range types {
		tags[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	has := func(tag string) bool {
		_, ok := tags[tag]
		return ok
	}

	switch {
	case has("veterinary_care"):
		return domain.CategoryVeterinaryClinics
	case has("pet_store"):
		return domain.CategoryPetShops
	case has("lodging") && has("point_of_interest"):
		return domain.CategoryPetHotels
	case (has("cafe") || has("restaurant")) && has("point_of_interest"):
		return domain.CategoryPetCafes
	case has("park"):
		return domain.CategoryPetParks
	case has("restaurant"):
		return domain.CategoryPetRestaurants
	default:
		return domain.CategoryPetShops
	}
}

// InferCategoryFromQuery guesses the internal category from a free-text search
// query, scanning for Indonesian and English keyword fragments.
func InferCategoryFromQuery(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	containsAny := func(fragments ...string) bool {
		for _, fragment := range fragments {
			if strings.Contains(q, fragment) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("vet", "clinic", "klinik", "dokter hewan"):
		return domain.CategoryVeterinaryClinics
	case containsAny("groom", "salon"):
		return domain.CategoryGrooming
	case containsAny("hotel", "boarding", "penginapan"):
		return domain.CategoryPetHotels
	case containsAny("cafe", "kafe"):
		return domain.CategoryPetCafes
	case containsAny("park", "taman"):
		return domain.CategoryPetParks
	case containsAny("train", "school", "latih"):
		return domain.CategoryPetTraining
	case containsAny("restaurant", "restoran"):
		return domain.CategoryPetRestaurants
	default:
		return domain.CategoryPetShops
	}
}

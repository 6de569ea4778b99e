package common

import (
	"strings"

	externaldomain "github.com/petmate-id/petcare-services/api/internal/external/domain"
)

var categorySet = makeStringSet(externaldomain.Categories)

func makeStringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}

// CanonicalCategoryID normalises category aliases used by older clients into
// the canonical identifiers. Unknown values pass through unchanged so new
// categories do not require a client release.
func CanonicalCategoryID(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	switch lower {
	case "vet", "vets", "clinic", "clinics", "veterinary":
		return externaldomain.CategoryVeterinaryClinics
	case "shop", "shops", "petshop", "pet_shop", "store":
		return externaldomain.CategoryPetShops
	case "groomer", "groomers", "salon":
		return externaldomain.CategoryGrooming
	case "hotel", "hotels", "boarding":
		return externaldomain.CategoryPetHotels
	case "cafe", "cafes":
		return externaldomain.CategoryPetCafes
	case "park", "parks":
		return externaldomain.CategoryPetParks
	case "training", "trainer", "school":
		return externaldomain.CategoryPetTraining
	case "restaurant", "restaurants":
		return externaldomain.CategoryPetRestaurants
	case externaldomain.CategoryAll:
		return externaldomain.CategoryAll
	}

	return lower
}

// IsKnownCategoryID reports whether the id is one of the concrete categories.
func IsKnownCategoryID(id string) bool {
	_, ok := categorySet[strings.TrimSpace(id)]
	return ok
}

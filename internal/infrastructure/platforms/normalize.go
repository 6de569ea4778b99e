package platforms

import (
	"strings"
	"time"
	"unicode"

	"github.com/petmate-id/petcare-services/api/internal/external/application"
	"github.com/petmate-id/petcare-services/api/internal/external/domain"
	"github.com/petmate-id/petcare-services/api/internal/infrastructure/googleplaces"
)

const (
	googleMapsIDPrefix = "gmaps-"

	// Tier used when the provider does not report a price level.
	defaultGoogleMapsPriceRange = 2
)

// NormalizePlace converts a raw provider place, plus an optional richer
// detail payload, into the canonical Service record. Detail fields win where
// both payloads carry a value. Never fails: a malformed payload degrades to a
// minimal record satisfying the Service invariants.
func NormalizePlace(place googleplaces.Place, details *googleplaces.PlaceDetails, categoryHint string) domain.Service {
	now := time.Now().UTC()

	service := domain.Service{
		ID:         googleMapsIDPrefix + place.PlaceID,
		Name:       place.Name,
		Address:    place.Vicinity,
		PriceRange: defaultGoogleMapsPriceRange,
		Verified:   true,
		Source:     domain.SourceGoogleMaps,
		ExternalID: place.PlaceID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if place.FormattedAddress != "" {
		service.Address = place.FormattedAddress
	}
	if place.Geometry != nil {
		lat, lng := place.Geometry.Location.Lat, place.Geometry.Location.Lng
		service.Latitude = &lat
		service.Longitude = &lng
	}
	if place.Rating != nil {
		rating := *place.Rating
		service.AvgRating = &rating
	}
	if place.UserRatingsTotal != nil {
		count := *place.UserRatingsTotal
		service.ReviewCount = &count
	}
	if place.PriceLevel != nil && *place.PriceLevel > 0 {
		service.PriceRange = *place.PriceLevel
	}

	if details != nil {
		applyDetails(&service, details)
	}

	service.City = extractCity(service.Address)

	service.CategoryID = strings.TrimSpace(categoryHint)
	if service.CategoryID == "" {
		service.CategoryID = application.InferCategoryFromTypes(place.Types)
	}

	if service.Website != "" {
		service.ExternalURL = service.Website
	} else {
		service.ExternalURL = "https://www.google.com/maps/place/?q=place_id:" + place.PlaceID
	}

	if service.Name == "" {
		service.Name = "Unknown place"
	}
	return service
}

func applyDetails(service *domain.Service, details *googleplaces.PlaceDetails) {
	if details.FormattedAddress != "" {
		service.Address = details.FormattedAddress
	}
	phone := details.FormattedPhoneNumber
	if phone == "" {
		phone = details.InternationalPhone
	}
	if phone != "" {
		service.ContactPhone = phone
	}
	if details.Website != "" {
		service.Website = details.Website
	}
	if details.OpeningHours != nil && len(details.OpeningHours.WeekdayText) > 0 {
		service.OperatingHours = strings.Join(details.OpeningHours.WeekdayText, "; ")
	}
	if details.Geometry != nil {
		lat, lng := details.Geometry.Location.Lat, details.Geometry.Location.Lng
		service.Latitude = &lat
		service.Longitude = &lng
	}
	if details.Rating != nil {
		rating := *details.Rating
		service.AvgRating = &rating
	}
	if details.UserRatingsTotal != nil {
		count := *details.UserRatingsTotal
		service.ReviewCount = &count
	}
	if details.PriceLevel != nil && *details.PriceLevel > 0 {
		service.PriceRange = *details.PriceLevel
	}
}

// extractCity guesses the city from a free-text address: split on comma, take
// the second-to-last segment, strip digits. Best-effort only.
func extractCity(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return ""
	}

	segment := strings.TrimSpace(parts[len(parts)-2])
	var builder strings.Builder
	for _, r := range segment {
		if unicode.IsDigit(r) {
			continue
		}
		builder.WriteRune(r)
	}
	return strings.TrimSpace(builder.String())
}

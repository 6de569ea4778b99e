package platforms

import (
	"strings"
	"testing"

	"github.com/petmate-id/petcare-services/api/internal/external/domain"
	"github.com/petmate-id/petcare-services/api/internal/infrastructure/googleplaces"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestNormalizePlaceSummaryOnly(t *testing.T) {
	place := googleplaces.Place{
		PlaceID:  "ChIJabc123",
		Name:     "Klinik Hewan Sehat",
		Vicinity: "Jl. Sudirman No. 10, Jakarta Selatan 12190, Indonesia",
		Geometry: &googleplaces.Geometry{Location: googleplaces.Location{Lat: -6.22, Lng: 106.81}},
		Types:    []string{"veterinary_care", "point_of_interest"},
		Rating:   floatPtr(4.6),
	}

	service := NormalizePlace(place, nil, "")

	if service.ID != "gmaps-ChIJabc123" {
		t.Errorf("ID = %q; want gmaps-ChIJabc123", service.ID)
	}
	if service.ExternalID != "ChIJabc123" {
		t.Errorf("ExternalID = %q; want ChIJabc123", service.ExternalID)
	}
	if service.Source != domain.SourceGoogleMaps {
		t.Errorf("Source = %q; want %q", service.Source, domain.SourceGoogleMaps)
	}
	if !service.Verified {
		t.Error("provider-backed listings must be verified")
	}
	if service.CategoryID != domain.CategoryVeterinaryClinics {
		t.Errorf("CategoryID = %q; want inferred %q", service.CategoryID, domain.CategoryVeterinaryClinics)
	}
	if service.City != "Jakarta Selatan" {
		t.Errorf("City = %q; want Jakarta Selatan", service.City)
	}
	if service.Latitude == nil || *service.Latitude != -6.22 {
		t.Errorf("Latitude = %v; want -6.22", service.Latitude)
	}
	if service.AvgRating == nil || *service.AvgRating != 4.6 {
		t.Errorf("AvgRating = %v; want 4.6", service.AvgRating)
	}
	if service.PriceRange != defaultGoogleMapsPriceRange {
		t.Errorf("PriceRange = %d; want default %d", service.PriceRange, defaultGoogleMapsPriceRange)
	}
	wantURL := "https://www.google.com/maps/place/?q=place_id:ChIJabc123"
	if service.ExternalURL != wantURL {
		t.Errorf("ExternalURL = %q; want %q", service.ExternalURL, wantURL)
	}
}

func TestNormalizePlaceDetailsWin(t *testing.T) {
	place := googleplaces.Place{
		PlaceID:  "ChIJxyz",
		Name:     "Groomeo",
		Vicinity: "Jl. Lama No. 1, Bandung, Indonesia",
		Rating:   floatPtr(4.0),
	}
	details := &googleplaces.PlaceDetails{
		FormattedAddress:     "Jl. Baru No. 2, Bandung 40115, Indonesia",
		FormattedPhoneNumber: "(022) 123-4567",
		Website:              "https://groomeo.example.id",
		OpeningHours: &googleplaces.OpeningHours{
			WeekdayText: []string{"Monday: 9:00 AM - 5:00 PM", "Tuesday: 9:00 AM - 5:00 PM"},
		},
		Rating:           floatPtr(4.4),
		UserRatingsTotal: intPtr(98),
		PriceLevel:       intPtr(3),
	}

	service := NormalizePlace(place, details, "grooming")

	if service.Address != "Jl. Baru No. 2, Bandung 40115, Indonesia" {
		t.Errorf("Address = %q; details address must win", service.Address)
	}
	if service.City != "Bandung" {
		t.Errorf("City = %q; want Bandung (digits stripped)", service.City)
	}
	if service.ContactPhone != "(022) 123-4567" {
		t.Errorf("ContactPhone = %q", service.ContactPhone)
	}
	if service.Website != "https://groomeo.example.id" {
		t.Errorf("Website = %q", service.Website)
	}
	if service.ExternalURL != service.Website {
		t.Errorf("ExternalURL = %q; want the website when present", service.ExternalURL)
	}
	if !strings.Contains(service.OperatingHours, "Monday") || !strings.Contains(service.OperatingHours, "; ") {
		t.Errorf("OperatingHours = %q; want joined weekday text", service.OperatingHours)
	}
	if service.AvgRating == nil || *service.AvgRating != 4.4 {
		t.Errorf("AvgRating = %v; details rating must win", service.AvgRating)
	}
	if service.ReviewCount == nil || *service.ReviewCount != 98 {
		t.Errorf("ReviewCount = %v; want 98", service.ReviewCount)
	}
	if service.PriceRange != 3 {
		t.Errorf("PriceRange = %d; want 3", service.PriceRange)
	}
	if service.CategoryID != "grooming" {
		t.Errorf("CategoryID = %q; the explicit hint must win", service.CategoryID)
	}
}

func TestNormalizePlaceInternationalPhoneFallback(t *testing.T) {
	details := &googleplaces.PlaceDetails{InternationalPhone: "+62 22 1234567"}

	service := NormalizePlace(googleplaces.Place{PlaceID: "p1", Name: "X"}, details, "")
	if service.ContactPhone != "+62 22 1234567" {
		t.Errorf("ContactPhone = %q; want the international number", service.ContactPhone)
	}
}

func TestNormalizePlaceMalformedPayload(t *testing.T) {
	service := NormalizePlace(googleplaces.Place{}, nil, "")

	if service.Name != "Unknown place" {
		t.Errorf("Name = %q; want the fallback name", service.Name)
	}
	if service.ID != googleMapsIDPrefix {
		t.Errorf("ID = %q; want bare prefix for empty place id", service.ID)
	}
	if service.Source != domain.SourceGoogleMaps {
		t.Errorf("Source = %q", service.Source)
	}
	if service.CategoryID != domain.CategoryPetShops {
		t.Errorf("CategoryID = %q; want the pet shops fallback", service.CategoryID)
	}
	if service.Latitude != nil || service.Longitude != nil {
		t.Error("missing geometry must leave coordinates nil")
	}
}

func TestExtractCity(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"Jl. Sudirman No. 10, Jakarta Selatan 12190, Indonesia", "Jakarta Selatan"},
		{"Jl. Malioboro, Yogyakarta, Indonesia", "Yogyakarta"},
		{"Somewhere, Bandung", "Somewhere"},
		{"no commas here", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := extractCity(tt.address); got != tt.want {
			t.Errorf("extractCity(%q) = %q; want %q", tt.address, got, tt.want)
		}
	}
}

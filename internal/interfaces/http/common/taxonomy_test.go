package common

import (
	"testing"

	externaldomain "github.com/petmate-id/petcare-services/api/internal/external/domain"
)

func TestCanonicalCategoryID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"vet", externaldomain.CategoryVeterinaryClinics},
		{"Clinics", externaldomain.CategoryVeterinaryClinics},
		{"petshop", externaldomain.CategoryPetShops},
		{"groomer", externaldomain.CategoryGrooming},
		{"boarding", externaldomain.CategoryPetHotels},
		{"cafes", externaldomain.CategoryPetCafes},
		{"park", externaldomain.CategoryPetParks},
		{"trainer", externaldomain.CategoryPetTraining},
		{"restaurants", externaldomain.CategoryPetRestaurants},
		{"all", externaldomain.CategoryAll},
		{"veterinary_clinics", "veterinary_clinics"},
		{"  Grooming  ", "grooming"},
		{"something_new", "something_new"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CanonicalCategoryID(tt.input); got != tt.want {
			t.Errorf("CanonicalCategoryID(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsKnownCategoryID(t *testing.T) {
	for _, id := range externaldomain.Categories {
		if !IsKnownCategoryID(id) {
			t.Errorf("%q should be a known category", id)
		}
	}
	for _, id := range []string{"", "all", "vet", "made_up"} {
		if IsKnownCategoryID(id) {
			t.Errorf("%q should not be a known category", id)
		}
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		value    string
		fallback int
		want     int
		ok       bool
	}{
		{"10", 1, 10, true},
		{" 3 ", 1, 3, true},
		{"", 7, 7, false},
		{"0", 7, 7, false},
		{"-5", 7, 7, false},
		{"abc", 7, 7, false},
	}

	for _, tt := range tests {
		got, ok := ParsePositiveInt(tt.value, tt.fallback)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePositiveInt(%q, %d) = (%d, %v); want (%d, %v)", tt.value, tt.fallback, got, ok, tt.want, tt.ok)
		}
	}
}

package application

import (
	"context"
	"strings"

	"github.com/petmate-id/petcare-services/api/internal/external/domain"
)

// Geocoder resolves a free-text address to candidate coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]domain.Coordinates, error)
}

// Centroids of the cities that dominate real traffic. Hits here skip the
// geocoding call entirely.
var knownCityCoordinates = map[string]domain.Coordinates{
	"jakarta":    {Lat: -6.2088, Lng: 106.8456},
	"surabaya":   {Lat: -7.2575, Lng: 112.7521},
	"bandung":    {Lat: -6.9175, Lng: 107.6191},
	"medan":      {Lat: 3.5952, Lng: 98.6722},
	"semarang":   {Lat: -6.9667, Lng: 110.4167},
	"yogyakarta": {Lat: -7.7956, Lng: 110.3695},
}

// ResolveCoordinates maps a city name to coordinates, case-insensitively.
// Unknown names fall back to a single geocoding request. Returns nil on any
// geocoding failure or empty candidate list; callers proceed without a
// location filter in that case.
func ResolveCoordinates(ctx context.Context, geocoder Geocoder, locationName string) *domain.Coordinates {
	normalized := strings.ToLower(strings.TrimSpace(locationName))
	if normalized == "" {
		return nil
	}
	if coords, ok := knownCityCoordinates[normalized]; ok {
		return &coords
	}

	if geocoder == nil {
		return nil
	}
	candidates, err := geocoder.Geocode(ctx, strings.TrimSpace(locationName))
	if err != nil || len(candidates) == 0 {
		return nil
	}
	return &candidates[0]
}

package platforms

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/petmate-id/petcare-services/api/internal/external/application"
	"github.com/petmate-id/petcare-services/api/internal/external/domain"
	"github.com/petmate-id/petcare-services/api/internal/infrastructure/googleplaces"
)

const defaultSearchRadiusMeters = 5000

// GoogleMapsPlatform is the one real adapter: it queries the Google Maps
// Platform and normalizes each result into the canonical Service shape.
type GoogleMapsPlatform struct {
	client  *googleplaces.Client
	logger  *log.Logger
	enabled bool
	radius  int
}

// NewGoogleMapsPlatform builds the adapter. The platform is disabled when no
// client is supplied, which lets deployments without an API key keep the
// mock-only aggregation working.
func NewGoogleMapsPlatform(client *googleplaces.Client, logger *log.Logger) *GoogleMapsPlatform {
	return &GoogleMapsPlatform{
		client:  client,
		logger:  logger,
		enabled: client != nil,
		radius:  defaultSearchRadiusMeters,
	}
}

func (p *GoogleMapsPlatform) Name() string  { return string(domain.SourceGoogleMaps) }
func (p *GoogleMapsPlatform) Enabled() bool { return p.enabled }

// FetchServices resolves the location, maps the category onto the provider
// vocabulary and normalizes each nearby result. Failures degrade to an empty
// list; they are logged but never surface to the aggregator.
func (p *GoogleMapsPlatform) FetchServices(ctx context.Context, categoryID, location string) []domain.Service {
	coords := application.ResolveCoordinates(ctx, p.client, location)
	if coords == nil {
		p.logf("no coordinates for location %q, skipping nearby search", location)
		return []domain.Service{}
	}

	placeType := application.PlaceTypeForCategory(categoryID)
	keyword := application.KeywordForCategory(categoryID)

	places, err := p.client.NearbySearch(ctx, *coords, p.radius, placeType, keyword)
	if err != nil {
		p.logf("nearby search failed for category=%q location=%q: %v", categoryID, location, err)
		return []domain.Service{}
	}

	return p.normalizeAll(ctx, places, categoryHintOrEmpty(categoryID))
}

// SearchServices issues a free-text query, geo-biased when a location is
// supplied, and infers the category from the query when none was given.
func (p *GoogleMapsPlatform) SearchServices(ctx context.Context, query, categoryID, location string) []domain.Service {
	var coords *domain.Coordinates
	if strings.TrimSpace(location) != "" {
		coords = application.ResolveCoordinates(ctx, p.client, location)
	}

	places, err := p.client.TextSearch(ctx, query, coords, p.radius)
	if err != nil {
		p.logf("text search failed for query=%q: %v", query, err)
		return []domain.Service{}
	}

	hint := categoryHintOrEmpty(categoryID)
	if hint == "" {
		hint = application.InferCategoryFromQuery(query)
	}
	return p.normalizeAll(ctx, places, hint)
}

// FetchReviews loads the place details for a canonical "gmaps-" id and maps
// the attached provider reviews.
func (p *GoogleMapsPlatform) FetchReviews(ctx context.Context, serviceID string) []domain.Review {
	placeID := strings.TrimPrefix(serviceID, googleMapsIDPrefix)
	if placeID == "" {
		return []domain.Review{}
	}

	details, err := p.client.PlaceDetails(ctx, placeID)
	if err != nil {
		p.logf("place details failed for %q: %v", placeID, err)
		return []domain.Review{}
	}

	reviews := make([]domain.Review, 0, len(details.Reviews))
	for i, raw := range details.Reviews {
		reviews = append(reviews, domain.Review{
			ID:         fmt.Sprintf("%s-review-%d", serviceID, i),
			ServiceID:  serviceID,
			AuthorName: raw.AuthorName,
			Rating:     raw.Rating,
			Comment:    raw.Text,
			Source:     domain.SourceGoogleMaps,
			CreatedAt:  time.Unix(raw.Time, 0).UTC(),
		})
	}
	return reviews
}

func (p *GoogleMapsPlatform) normalizeAll(ctx context.Context, places []googleplaces.Place, categoryHint string) []domain.Service {
	services := make([]domain.Service, 0, len(places))
	for _, place := range places {
		details := p.lookupDetails(ctx, place.PlaceID)
		services = append(services, NormalizePlace(place, details, categoryHint))
	}
	return services
}

// lookupDetails enriches a summary result. A details failure is tolerable:
// normalization falls back to summary-only fields.
func (p *GoogleMapsPlatform) lookupDetails(ctx context.Context, placeID string) *googleplaces.PlaceDetails {
	if placeID == "" {
		return nil
	}
	details, err := p.client.PlaceDetails(ctx, placeID)
	if err != nil {
		p.logf("place details lookup failed for %q: %v", placeID, err)
		return nil
	}
	return details
}

func (p *GoogleMapsPlatform) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

func categoryHintOrEmpty(categoryID string) string {
	trimmed := strings.TrimSpace(categoryID)
	if trimmed == "" || trimmed == domain.CategoryAll {
		return ""
	}
	return trimmed
}

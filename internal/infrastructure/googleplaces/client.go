package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/petmate-id/petcare-services/api/internal/external/domain"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// Client talks to the Google Maps Platform web services (Places + Geocoding).
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a Client. An empty baseURL falls back to the public API
// endpoint; tests point it at an httptest server.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	return &Client{httpClient: httpClient, baseURL: trimmed, apiKey: apiKey}
}

// Place is the summary payload shared by nearby and text search responses.
type Place struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	Vicinity         string    `json:"vicinity"`
	FormattedAddress string    `json:"formatted_address"`
	Geometry         *Geometry `json:"geometry,omitempty"`
	Types            []string  `json:"types"`
	Rating           *float64  `json:"rating,omitempty"`
	UserRatingsTotal *int      `json:"user_ratings_total,omitempty"`
	PriceLevel       *int      `json:"price_level,omitempty"`
	BusinessStatus   string    `json:"business_status,omitempty"`
}

// PlaceDetails is the richer payload returned by the details endpoint.
type PlaceDetails struct {
	PlaceID              string        `json:"place_id"`
	Name                 string        `json:"name"`
	FormattedAddress     string        `json:"formatted_address"`
	FormattedPhoneNumber string        `json:"formatted_phone_number"`
	InternationalPhone   string        `json:"international_phone_number"`
	Website              string        `json:"website"`
	OpeningHours         *OpeningHours `json:"opening_hours,omitempty"`
	Geometry             *Geometry     `json:"geometry,omitempty"`
	Rating               *float64      `json:"rating,omitempty"`
	UserRatingsTotal     *int          `json:"user_ratings_total,omitempty"`
	PriceLevel           *int          `json:"price_level,omitempty"`
	Types                []string      `json:"types"`
	Reviews              []PlaceReview `json:"reviews,omitempty"`
}

// PlaceReview is one user review attached to a place's details.
type PlaceReview struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}

// Geometry carries the place coordinates.
type Geometry struct {
	Location Location `json:"location"`
}

// Location is a latitude/longitude pair as the API encodes it.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OpeningHours lists the weekday opening descriptions.
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type searchResponse struct {
	Results      []Place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

type detailsResponse struct {
	Result       PlaceDetails `json:"result"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

type geocodeResponse struct {
	Results []struct {
		Geometry Geometry `json:"geometry"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// NearbySearch runs a nearby search around the given coordinates. Type and
// keyword are optional filters; an empty string omits them from the request.
func (c *Client) NearbySearch(ctx context.Context, coords domain.Coordinates, radiusMeters int, placeType, keyword string) ([]Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", coords.Lat, coords.Lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	if placeType != "" {
		params.Set("type", placeType)
	}
	if keyword != "" {
		params.Set("keyword", keyword)
	}

	var payload searchResponse
	if err := c.get(ctx, "/place/nearbysearch/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// TextSearch runs a free-text place search, optionally biased around coords.
func (c *Client) TextSearch(ctx context.Context, query string, coords *domain.Coordinates, radiusMeters int) ([]Place, error) {
	params := url.Values{}
	params.Set("query", query)
	if coords != nil {
		params.Set("location", fmt.Sprintf("%f,%f", coords.Lat, coords.Lng))
		params.Set("radius", strconv.Itoa(radiusMeters))
	}

	var payload searchResponse
	if err := c.get(ctx, "/place/textsearch/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// PlaceDetails fetches the detail payload for a provider-native place id.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,formatted_phone_number,international_phone_number,website,opening_hours,geometry,rating,user_ratings_total,price_level,types,reviews")

	var payload detailsResponse
	if err := c.get(ctx, "/place/details/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}
	return &payload.Result, nil
}

// Geocode resolves a free-text address into candidate coordinates.
func (c *Client) Geocode(ctx context.Context, address string) ([]domain.Coordinates, error) {
	params := url.Values{}
	params.Set("address", address)

	var payload geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}

	coords := make([]domain.Coordinates, 0, len(payload.Results))
	for _, result := range payload.Results {
		coords = append(coords, domain.Coordinates{
			Lat: result.Geometry.Location.Lat,
			Lng: result.Geometry.Location.Lng,
		})
	}
	return coords, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building places request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("places request error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding places response: %w", err)
	}
	return nil
}

// checkStatus treats only OK and ZERO_RESULTS as non-error provider statuses.
func checkStatus(status, message string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	default:
		if message != "" {
			return fmt.Errorf("places status %s: %s", status, message)
		}
		return fmt.Errorf("places status %s", status)
	}
}

package domain

import "time"

// Source identifies the platform a listing originated from.
type Source string

const (
	SourceGoogleMaps Source = "google_maps"
	SourceInstagram  Source = "instagram"
	SourceFacebook   Source = "facebook"
	SourceTokopedia  Source = "tokopedia"
	SourceShopee     Source = "shopee"
	SourceInternal   Source = "internal"
	SourceOther      Source = "other"
)

// Service is the canonical listing record every platform adapter produces.
// ID, Source and Name are always populated; everything else is best-effort.
type Service struct {
	ID             string
	Name           string
	Address        string
	City           string
	CategoryID     string
	ContactPhone   string
	Website        string
	OperatingHours string
	PriceRange     int
	Latitude       *float64
	Longitude      *float64
	Verified       bool
	AvgRating      *float64
	ReviewCount    *int
	Source         Source
	ExternalID     string
	ExternalURL    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Review is a single rating left on an external listing.
type Review struct {
	ID         string
	ServiceID  string
	AuthorName string
	Rating     float64
	Comment    string
	Source     Source
	CreatedAt  time.Time
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

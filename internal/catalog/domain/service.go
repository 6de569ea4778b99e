package domain

import "time"

// Service represents an internally-owned pet-service listing, either created
// by an operator or promoted from an external platform.
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
	Tags           []string
	PhotoURLs      []string
	Description    string
	Stats          ServiceStats
	ExternalSource string
	ExternalID     string
	ExternalURL    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ServiceStats aggregates review metrics for a listing.
type ServiceStats struct {
	ReviewCount    int
	AvgRating      *float64
	LastReviewedAt *time.Time
}

// Review is one visitor review of an internal listing.
type Review struct {
	ID         string
	ServiceID  string
	AuthorName string
	Rating     float64
	Comment    string
	Tags       []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

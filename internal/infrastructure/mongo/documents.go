package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceStatsDocument is the stats embed inside a service document.
type ServiceStatsDocument struct {
	ReviewCount    int        `bson:"reviewCount"`
	AvgRating      *float64   `bson:"avgRating,omitempty"`
	LastReviewedAt *time.Time `bson:"lastReviewedAt,omitempty"`
}

// ServiceDocument is the MongoDB schema for an internal pet-service listing.
// Listings promoted from external platforms keep the provider reference in
// the external_* fields.
type ServiceDocument struct {
	ID             primitive.ObjectID   `bson:"_id"`
	Name           string               `bson:"name"`
	Address        string               `bson:"address,omitempty"`
	City           string               `bson:"city,omitempty"`
	CategoryID     string               `bson:"category_id,omitempty"`
	ContactPhone   string               `bson:"contact_phone,omitempty"`
	Website        string               `bson:"website,omitempty"`
	OperatingHours string               `bson:"operating_hours,omitempty"`
	PriceRange     int                  `bson:"price_range,omitempty"`
	Latitude       *float64             `bson:"latitude,omitempty"`
	Longitude      *float64             `bson:"longitude,omitempty"`
	Verified       bool                 `bson:"verified"`
	Tags           []string             `bson:"tags,omitempty"`
	PhotoURLs      []string             `bson:"photo_urls,omitempty"`
	Description    string               `bson:"description,omitempty"`
	Stats          ServiceStatsDocument `bson:"stats"`
	ExternalSource string               `bson:"external_source,omitempty"`
	ExternalID     string               `bson:"external_id,omitempty"`
	ExternalURL    string               `bson:"external_url,omitempty"`
	CreatedAt      *time.Time           `bson:"created_at,omitempty"`
	UpdatedAt      *time.Time           `bson:"updated_at,omitempty"`
}

// ReviewDocument is the MongoDB schema for a listing review.
type ReviewDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	ServiceID  primitive.ObjectID `bson:"service_id"`
	AuthorName string             `bson:"author_name,omitempty"`
	Rating     float64            `bson:"rating"`
	Comment    string             `bson:"comment,omitempty"`
	Tags       []string           `bson:"tags,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// PetDocument is the MongoDB schema for a pet profile.
type PetDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	OwnerID   string             `bson:"owner_id"`
	Name      string             `bson:"name"`
	Species   string             `bson:"species"`
	Breed     string             `bson:"breed,omitempty"`
	BirthDate *time.Time         `bson:"birth_date,omitempty"`
	Gender    string             `bson:"gender,omitempty"`
	WeightKg  *float64           `bson:"weight_kg,omitempty"`
	PhotoURL  string             `bson:"photo_url,omitempty"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// HealthRecordDocument is the MongoDB schema for one pet health event.
type HealthRecordDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	PetID      primitive.ObjectID `bson:"pet_id"`
	OwnerID    string             `bson:"owner_id"`
	RecordType string             `bson:"record_type"`
	Title      string             `bson:"title"`
	Notes      string             `bson:"notes,omitempty"`
	VetName    string             `bson:"vet_name,omitempty"`
	RecordedAt time.Time          `bson:"recorded_at"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// ReminderDocument is the MongoDB schema for a care reminder.
type ReminderDocument struct {
	ID          primitive.ObjectID  `bson:"_id"`
	PetID       *primitive.ObjectID `bson:"pet_id,omitempty"`
	OwnerID     string              `bson:"owner_id"`
	Title       string              `bson:"title"`
	Notes       string              `bson:"notes,omitempty"`
	Frequency   string              `bson:"frequency"`
	DueAt       time.Time           `bson:"due_at"`
	Completed   bool                `bson:"completed"`
	CompletedAt *time.Time          `bson:"completed_at,omitempty"`
	CreatedAt   time.Time           `bson:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at"`
}

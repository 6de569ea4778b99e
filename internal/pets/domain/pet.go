package domain

import "time"

// Pet is a user-owned pet profile.
type Pet struct {
	ID        string
	OwnerID   string
	Name      string
	Species   Species
	Breed     string
	BirthDate *time.Time
	Gender    string
	WeightKg  *float64
	PhotoURL  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HealthRecord is one logged health event for a pet.
type HealthRecord struct {
	ID         string
	PetID      string
	OwnerID    string
	RecordType RecordType
	Title      string
	Notes      string
	VetName    string
	RecordedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Reminder is a scheduled care task for a pet.
type Reminder struct {
	ID          string
	PetID       string
	OwnerID     string
	Title       string
	Notes       string
	Frequency   Frequency
	DueAt       time.Time
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

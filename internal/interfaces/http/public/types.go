package public

import (
	"time"

	catalogdomain "github.com/petmate-id/petcare-services/api/internal/catalog/domain"
	externaldomain "github.com/petmate-id/petcare-services/api/internal/external/domain"
	petsdomain "github.com/petmate-id/petcare-services/api/internal/pets/domain"
)

type serviceSummaryResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	City           string   `json:"city,omitempty"`
	CategoryID     string   `json:"categoryId,omitempty"`
	PriceRange     int      `json:"priceRange"`
	Verified       bool     `json:"verified"`
	AverageRating  float64  `json:"averageRating"`
	ReviewCount    int      `json:"reviewCount"`
	Tags           []string `json:"tags,omitempty"`
	PhotoURLs      []string `json:"photoUrls,omitempty"`
	ExternalSource string   `json:"externalSource,omitempty"`
}

type serviceDetailResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address,omitempty"`
	City           string     `json:"city,omitempty"`
	CategoryID     string     `json:"categoryId,omitempty"`
	ContactPhone   string     `json:"contactPhone,omitempty"`
	Website        string     `json:"website,omitempty"`
	OperatingHours string     `json:"operatingHours,omitempty"`
	PriceRange     int        `json:"priceRange"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	Verified       bool       `json:"verified"`
	AverageRating  float64    `json:"averageRating"`
	ReviewCount    int        `json:"reviewCount"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	PhotoURLs      []string   `json:"photoUrls,omitempty"`
	Description    string     `json:"description,omitempty"`
	ExternalSource string     `json:"externalSource,omitempty"`
	ExternalURL    string     `json:"externalUrl,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

type serviceListResponse struct {
	Items []serviceSummaryResponse `json:"items"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
	Total int                      `json:"total"`
}

type reviewResponse struct {
	ID         string    `json:"id"`
	ServiceID  string    `json:"serviceId"`
	AuthorName string    `json:"authorName,omitempty"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type reviewListResponse struct {
	Items []reviewResponse `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type externalServiceResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	City           string   `json:"city,omitempty"`
	CategoryID     string   `json:"categoryId,omitempty"`
	ContactPhone   string   `json:"contactPhone,omitempty"`
	Website        string   `json:"website,omitempty"`
	OperatingHours string   `json:"operatingHours,omitempty"`
	PriceRange     int      `json:"priceRange"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Verified       bool     `json:"verified"`
	AvgRating      *float64 `json:"avgRating,omitempty"`
	ReviewCount    *int     `json:"reviewCount,omitempty"`
	Source         string   `json:"source"`
	ExternalID     string   `json:"externalId,omitempty"`
	ExternalURL    string   `json:"externalUrl,omitempty"`
}

type externalListResponse struct {
	Items []externalServiceResponse `json:"items"`
	Total int                       `json:"total"`
}

type externalPlatformResponse struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type importRequest struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	CategoryID     string   `json:"categoryId"`
	ContactPhone   string   `json:"contactPhone"`
	Website        string   `json:"website"`
	OperatingHours string   `json:"operatingHours"`
	PriceRange     int      `json:"priceRange"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Verified       bool     `json:"verified"`
	AvgRating      *float64 `json:"avgRating"`
	Source         string   `json:"source"`
	ExternalID     string   `json:"externalId"`
	ExternalURL    string   `json:"externalUrl"`
}

type petResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	WeightKg  *float64   `json:"weightKg,omitempty"`
	PhotoURL  string     `json:"photoUrl,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type petRequest struct {
	Name      string   `json:"name"`
	Species   string   `json:"species"`
	Breed     string   `json:"breed"`
	BirthDate string   `json:"birthDate"`
	Gender    string   `json:"gender"`
	WeightKg  *float64 `json:"weightKg"`
	PhotoURL  string   `json:"photoUrl"`
	Notes     string   `json:"notes"`
}

type healthRecordResponse struct {
	ID         string    `json:"id"`
	PetID      string    `json:"petId"`
	RecordType string    `json:"recordType"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes,omitempty"`
	VetName    string    `json:"vetName,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

type healthRecordRequest struct {
	RecordType string `json:"recordType"`
	Title      string `json:"title"`
	Notes      string `json:"notes"`
	VetName    string `json:"vetName"`
	RecordedAt string `json:"recordedAt"`
}

type reminderResponse struct {
	ID          string     `json:"id"`
	PetID       string     `json:"petId,omitempty"`
	Title       string     `json:"title"`
	Notes       string     `json:"notes,omitempty"`
	Frequency   string     `json:"frequency"`
	DueAt       time.Time  `json:"dueAt"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type reminderRequest struct {
	PetID     string `json:"petId"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	Frequency string `json:"frequency"`
	DueAt     string `json:"dueAt"`
}

func buildServiceSummaryResponse(service catalogdomain.Service) serviceSummaryResponse {
	avgRating := 0.0
	if service.Stats.AvgRating != nil {
		avgRating = roundRating(*service.Stats.AvgRating)
	}
	return serviceSummaryResponse{
		ID:             service.ID,
		Name:           service.Name,
		Address:        service.Address,
		City:           service.City,
		CategoryID:     service.CategoryID,
		PriceRange:     service.PriceRange,
		Verified:       service.Verified,
		AverageRating:  avgRating,
		ReviewCount:    service.Stats.ReviewCount,
		Tags:           append([]string{}, service.Tags...),
		PhotoURLs:      append([]string{}, service.PhotoURLs...),
		ExternalSource: service.ExternalSource,
	}
}

func buildServiceDetailResponse(service catalogdomain.Service) serviceDetailResponse {
	avgRating := 0.0
	if service.Stats.AvgRating != nil {
		avgRating = roundRating(*service.Stats.AvgRating)
	}
	var updatedAt *time.Time
	if !service.UpdatedAt.IsZero() {
		t := service.UpdatedAt
		updatedAt = &t
	}
	return serviceDetailResponse{
		ID:             service.ID,
		Name:           service.Name,
		Address:        service.Address,
		City:           service.City,
		CategoryID:     service.CategoryID,
		ContactPhone:   service.ContactPhone,
		Website:        service.Website,
		OperatingHours: service.OperatingHours,
		PriceRange:     service.PriceRange,
		Latitude:       service.Latitude,
		Longitude:      service.Longitude,
		Verified:       service.Verified,
		AverageRating:  avgRating,
		ReviewCount:    service.Stats.ReviewCount,
		LastReviewedAt: service.Stats.LastReviewedAt,
		Tags:           append([]string{}, service.Tags...),
		PhotoURLs:      append([]string{}, service.PhotoURLs...),
		Description:    service.Description,
		ExternalSource: service.ExternalSource,
		ExternalURL:    service.ExternalURL,
		UpdatedAt:      updatedAt,
	}
}

func buildExternalServiceResponse(service externaldomain.Service) externalServiceResponse {
	return externalServiceResponse{
		ID:             service.ID,
		Name:           service.Name,
		Address:        service.Address,
		City:           service.City,
		CategoryID:     service.CategoryID,
		ContactPhone:   service.ContactPhone,
		Website:        service.Website,
		OperatingHours: service.OperatingHours,
		PriceRange:     service.PriceRange,
		Latitude:       service.Latitude,
		Longitude:      service.Longitude,
		Verified:       service.Verified,
		AvgRating:      service.AvgRating,
		ReviewCount:    service.ReviewCount,
		Source:         string(service.Source),
		ExternalID:     service.ExternalID,
		ExternalURL:    service.ExternalURL,
	}
}

func buildPetResponse(pet petsdomain.Pet) petResponse {
	return petResponse{
		ID:        pet.ID,
		Name:      pet.Name,
		Species:   pet.Species.String(),
		Breed:     pet.Breed,
		BirthDate: pet.BirthDate,
		Gender:    pet.Gender,
		WeightKg:  pet.WeightKg,
		PhotoURL:  pet.PhotoURL,
		Notes:     pet.Notes,
		CreatedAt: pet.CreatedAt,
		UpdatedAt: pet.UpdatedAt,
	}
}

func buildHealthRecordResponse(record petsdomain.HealthRecord) healthRecordResponse {
	return healthRecordResponse{
		ID:         record.ID,
		PetID:      record.PetID,
		RecordType: record.RecordType.String(),
		Title:      record.Title,
		Notes:      record.Notes,
		VetName:    record.VetName,
		RecordedAt: record.RecordedAt,
		CreatedAt:  record.CreatedAt,
	}
}

func buildReminderResponse(reminder petsdomain.Reminder) reminderResponse {
	return reminderResponse{
		ID:          reminder.ID,
		PetID:       reminder.PetID,
		Title:       reminder.Title,
		Notes:       reminder.Notes,
		Frequency:   reminder.Frequency.String(),
		DueAt:       reminder.DueAt,
		Completed:   reminder.Completed,
		CompletedAt: reminder.CompletedAt,
		CreatedAt:   reminder.CreatedAt,
	}
}

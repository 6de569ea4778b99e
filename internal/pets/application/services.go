package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/petmate-id/petcare-services/api/internal/pets/domain"
)

// PetRepository abstracts pet profile storage. All operations are scoped to
// the owning user; repositories must not leak other owners' documents.
type PetRepository interface {
	Find(ctx context.Context, ownerID string) ([]domain.Pet, error)
	FindByID(ctx context.Context, ownerID, id string) (*domain.Pet, error)
	Create(ctx context.Context, pet *domain.Pet) error
	Update(ctx context.Context, pet *domain.Pet) error
	Delete(ctx context.Context, ownerID, id string) error
}

// HealthRecordRepository stores per-pet health events.
type HealthRecordRepository interface {
	FindByPetID(ctx context.Context, ownerID, petID string) ([]domain.HealthRecord, error)
	Create(ctx context.Context, record *domain.HealthRecord) error
}

// ReminderRepository stores care reminders.
type ReminderRepository interface {
	FindByOwner(ctx context.Context, ownerID string, includeCompleted bool) ([]domain.Reminder, error)
	Create(ctx context.Context, reminder *domain.Reminder) error
	MarkCompleted(ctx context.Context, ownerID, id string, completedAt time.Time) (*domain.Reminder, error)
}

// UpsertPetCommand captures pet profile input.
type UpsertPetCommand struct {
	Name      string
	Species   string
	Breed     string
	BirthDate *time.Time
	Gender    string
	WeightKg  *float64
	PhotoURL  string
	Notes     string
}

// AddHealthRecordCommand captures one health event.
type AddHealthRecordCommand struct {
	RecordType string
	Title      string
	Notes      string
	VetName    string
	RecordedAt time.Time
}

// CreateReminderCommand captures a new care reminder.
type CreateReminderCommand struct {
	PetID     string
	Title     string
	Notes     string
	Frequency string
	DueAt     time.Time
}

// PetService describes the pet-care use-cases gated behind auth.
type PetService interface {
	List(ctx context.Context, ownerID string) ([]domain.Pet, error)
	Detail(ctx context.Context, ownerID, id string) (*domain.Pet, error)
	Create(ctx context.Context, ownerID string, cmd UpsertPetCommand) (*domain.Pet, error)
	Update(ctx context.Context, ownerID, id string, cmd UpsertPetCommand) (*domain.Pet, error)
	Delete(ctx context.Context, ownerID, id string) error
	HealthRecords(ctx context.Context, ownerID, petID string) ([]domain.HealthRecord, error)
	AddHealthRecord(ctx context.Context, ownerID, petID string, cmd AddHealthRecordCommand) (*domain.HealthRecord, error)
	Reminders(ctx context.Context, ownerID string, includeCompleted bool) ([]domain.Reminder, error)
	CreateReminder(ctx context.Context, ownerID string, cmd CreateReminderCommand) (*domain.Reminder, error)
	CompleteReminder(ctx context.Context, ownerID, id string) (*domain.Reminder, error)
}

// NewPetService wires the repositories into the pet-care use-cases.
func NewPetService(pets PetRepository, records HealthRecordRepository, reminders ReminderRepository) PetService {
	return &petService{pets: pets, records: records, reminders: reminders}
}

type petService struct {
	pets      PetRepository
	records   HealthRecordRepository
	reminders ReminderRepository
}

func (s *petService) List(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	return s.pets.Find(ctx, ownerID)
}

func (s *petService) Detail(ctx context.Context, ownerID, id string) (*domain.Pet, error) {
	return s.pets.FindByID(ctx, ownerID, id)
}

func (s *petService) Create(ctx context.Context, ownerID string, cmd UpsertPetCommand) (*domain.Pet, error) {
	pet, err := buildPet(ownerID, cmd)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	pet.CreatedAt = now
	pet.UpdatedAt = now
	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *petService) Update(ctx context.Context, ownerID, id string, cmd UpsertPetCommand) (*domain.Pet, error) {
	existing, err := s.pets.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	pet, err := buildPet(ownerID, cmd)
	if err != nil {
		return nil, err
	}
	pet.ID = existing.ID
	pet.CreatedAt = existing.CreatedAt
	pet.UpdatedAt = time.Now().UTC()
	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *petService) Delete(ctx context.Context, ownerID, id string) error {
	return s.pets.Delete(ctx, ownerID, id)
}

func (s *petService) HealthRecords(ctx context.Context, ownerID, petID string) ([]domain.HealthRecord, error) {
	if _, err := s.pets.FindByID(ctx, ownerID, petID); err != nil {
		return nil, err
	}
	return s.records.FindByPetID(ctx, ownerID, petID)
}

func (s *petService) AddHealthRecord(ctx context.Context, ownerID, petID string, cmd AddHealthRecordCommand) (*domain.HealthRecord, error) {
	if _, err := s.pets.FindByID(ctx, ownerID, petID); err != nil {
		return nil, err
	}
	recordType, err := domain.NewRecordType(cmd.RecordType)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	recordedAt := cmd.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	now := time.Now().UTC()
	record := &domain.HealthRecord{
		PetID:      petID,
		OwnerID:    ownerID,
		RecordType: recordType,
		Title:      title,
		Notes:      strings.TrimSpace(cmd.Notes),
		VetName:    strings.TrimSpace(cmd.VetName),
		RecordedAt: recordedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *petService) Reminders(ctx context.Context, ownerID string, includeCompleted bool) ([]domain.Reminder, error) {
	return s.reminders.FindByOwner(ctx, ownerID, includeCompleted)
}

func (s *petService) CreateReminder(ctx context.Context, ownerID string, cmd CreateReminderCommand) (*domain.Reminder, error) {
	if strings.TrimSpace(cmd.PetID) != "" {
		if _, err := s.pets.FindByID(ctx, ownerID, cmd.PetID); err != nil {
			return nil, err
		}
	}
	frequency, err := domain.NewFrequency(cmd.Frequency)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if cmd.DueAt.IsZero() {
		return nil, fmt.Errorf("dueAt is required")
	}

	now := time.Now().UTC()
	reminder := &domain.Reminder{
		PetID:     strings.TrimSpace(cmd.PetID),
		OwnerID:   ownerID,
		Title:     title,
		Notes:     strings.TrimSpace(cmd.Notes),
		Frequency: frequency,
		DueAt:     cmd.DueAt.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.reminders.Create(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *petService) CompleteReminder(ctx context.Context, ownerID, id string) (*domain.Reminder, error) {
	return s.reminders.MarkCompleted(ctx, ownerID, id, time.Now().UTC())
}

func buildPet(ownerID string, cmd UpsertPetCommand) (*domain.Pet, error) {
	species, err := domain.NewSpecies(cmd.Species)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cmd.WeightKg != nil && (*cmd.WeightKg <= 0 || *cmd.WeightKg > 500) {
		return nil, fmt.Errorf("weight out of range")
	}

	return &domain.Pet{
		OwnerID:   ownerID,
		Name:      name,
		Species:   species,
		Breed:     strings.TrimSpace(cmd.Breed),
		BirthDate: cmd.BirthDate,
		Gender:    strings.ToLower(strings.TrimSpace(cmd.Gender)),
		WeightKg:  cmd.WeightKg,
		PhotoURL:  strings.TrimSpace(cmd.PhotoURL),
		Notes:     strings.TrimSpace(cmd.Notes),
	}, nil
}

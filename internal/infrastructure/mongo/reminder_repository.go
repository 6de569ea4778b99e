package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petmate-id/petcare-services/api/internal/pets/domain"
)

// ReminderRepository implements reminder storage using MongoDB.
type ReminderRepository struct {
	collection *mongo.Collection
}

// NewReminderRepository creates a Mongo-backed reminder repository.
func NewReminderRepository(db *mongo.Database, collectionName string) *ReminderRepository {
	return &ReminderRepository{collection: db.Collection(collectionName)}
}

// FindByOwner returns the owner's reminders ordered by due date.
func (r *ReminderRepository) FindByOwner(ctx context.Context, ownerID string, includeCompleted bool) ([]domain.Reminder, error) {
	filter := bson.M{"owner_id": ownerID}
	if !includeCompleted {
		filter["completed"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "due_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reminders := make([]domain.Reminder, 0)
	for cursor.Next(ctx) {
		var doc ReminderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reminders = append(reminders, mapReminderDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return reminders, nil
}

// Create inserts a reminder and backfills the generated id.
func (r *ReminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	doc := ReminderDocument{
		ID:        primitive.NewObjectID(),
		OwnerID:   reminder.OwnerID,
		Title:     reminder.Title,
		Notes:     reminder.Notes,
		Frequency: reminder.Frequency.String(),
		DueAt:     reminder.DueAt,
		Completed: reminder.Completed,
		CreatedAt: reminder.CreatedAt,
		UpdatedAt: reminder.UpdatedAt,
	}
	if petID := strings.TrimSpace(reminder.PetID); petID != "" {
		petObjectID, err := primitive.ObjectIDFromHex(petID)
		if err != nil {
			return err
		}
		doc.PetID = &petObjectID
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	reminder.ID = doc.ID.Hex()
	return nil
}

// MarkCompleted flips a reminder to completed and returns the updated record.
func (r *ReminderRepository) MarkCompleted(ctx context.Context, ownerID, id string, completedAt time.Time) (*domain.Reminder, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"completed":    true,
		"completed_at": completedAt,
		"updated_at":   completedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc ReminderDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID, "owner_id": ownerID}, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	reminder := mapReminderDocument(doc)
	return &reminder, nil
}

func mapReminderDocument(doc ReminderDocument) domain.Reminder {
	reminder := domain.Reminder{
		ID:          doc.ID.Hex(),
		OwnerID:     doc.OwnerID,
		Title:       doc.Title,
		Notes:       doc.Notes,
		Frequency:   domain.Frequency(doc.Frequency),
		DueAt:       doc.DueAt,
		Completed:   doc.Completed,
		CompletedAt: doc.CompletedAt,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	if doc.PetID != nil {
		reminder.PetID = doc.PetID.Hex()
	}
	return reminder
}

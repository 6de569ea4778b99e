package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petmate-id/petcare-services/api/internal/pets/domain"
)

// HealthRecordRepository implements health-record storage using MongoDB.
type HealthRecordRepository struct {
	collection *mongo.Collection
}

// NewHealthRecordRepository creates a Mongo-backed health record repository.
func NewHealthRecordRepository(db *mongo.Database, collectionName string) *HealthRecordRepository {
	return &HealthRecordRepository{collection: db.Collection(collectionName)}
}

// FindByPetID returns a pet's health events, most recent first.
func (r *HealthRecordRepository) FindByPetID(ctx context.Context, ownerID, petID string) ([]domain.HealthRecord, error) {
	petObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(petID))
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"pet_id": petObjectID, "owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]domain.HealthRecord, 0)
	for cursor.Next(ctx) {
		var doc HealthRecordDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		records = append(records, domain.HealthRecord{
			ID:         doc.ID.Hex(),
			PetID:      doc.PetID.Hex(),
			OwnerID:    doc.OwnerID,
			RecordType: domain.RecordType(doc.RecordType),
			Title:      doc.Title,
			Notes:      doc.Notes,
			VetName:    doc.VetName,
			RecordedAt: doc.RecordedAt,
			CreatedAt:  doc.CreatedAt,
			UpdatedAt:  doc.UpdatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts a health event and backfills the generated id.
func (r *HealthRecordRepository) Create(ctx context.Context, record *domain.HealthRecord) error {
	petObjectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(record.PetID))
	if err != nil {
		return err
	}

	doc := HealthRecordDocument{
		ID:         primitive.NewObjectID(),
		PetID:      petObjectID,
		OwnerID:    record.OwnerID,
		RecordType: record.RecordType.String(),
		Title:      record.Title,
		Notes:      record.Notes,
		VetName:    record.VetName,
		RecordedAt: record.RecordedAt,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	record.ID = doc.ID.Hex()
	return nil
}

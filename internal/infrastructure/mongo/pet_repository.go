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

// PetRepository implements the pets application ports using MongoDB.
type PetRepository struct {
	collection *mongo.Collection
}

// NewPetRepository creates a Mongo-backed pet profile repository.
func NewPetRepository(db *mongo.Database, collectionName string) *PetRepository {
	return &PetRepository{collection: db.Collection(collectionName)}
}

// Find returns the owner's pets, newest first.
func (r *PetRepository) Find(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pets := make([]domain.Pet, 0)
	for cursor.Next(ctx) {
		var doc PetDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		pets = append(pets, mapPetDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return pets, nil
}

// FindByID returns a single pet, scoped to its owner.
func (r *PetRepository) FindByID(ctx context.Context, ownerID, id string) (*domain.Pet, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc PetDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID, "owner_id": ownerID}).Decode(&doc); err != nil {
		return nil, err
	}
	pet := mapPetDocument(doc)
	return &pet, nil
}

// Create inserts a new pet profile and backfills the generated id.
func (r *PetRepository) Create(ctx context.Context, pet *domain.Pet) error {
	doc := buildPetDocument(pet, primitive.NewObjectID())
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	pet.ID = doc.ID.Hex()
	return nil
}

// Update replaces the mutable fields of an existing pet profile.
func (r *PetRepository) Update(ctx context.Context, pet *domain.Pet) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(pet.ID))
	if err != nil {
		return err
	}
	doc := buildPetDocument(pet, objectID)
	update := bson.M{"$set": bson.M{
		"name":       doc.Name,
		"species":    doc.Species,
		"breed":      doc.Breed,
		"birth_date": doc.BirthDate,
		"gender":     doc.Gender,
		"weight_kg":  doc.WeightKg,
		"photo_url":  doc.PhotoURL,
		"notes":      doc.Notes,
		"updated_at": doc.UpdatedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID, "owner_id": pet.OwnerID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a pet profile, scoped to its owner.
func (r *PetRepository) Delete(ctx context.Context, ownerID, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "owner_id": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func mapPetDocument(doc PetDocument) domain.Pet {
	return domain.Pet{
		ID:        doc.ID.Hex(),
		OwnerID:   doc.OwnerID,
		Name:      doc.Name,
		Species:   domain.Species(doc.Species),
		Breed:     doc.Breed,
		BirthDate: doc.BirthDate,
		Gender:    doc.Gender,
		WeightKg:  doc.WeightKg,
		PhotoURL:  doc.PhotoURL,
		Notes:     doc.Notes,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func buildPetDocument(pet *domain.Pet, id primitive.ObjectID) PetDocument {
	createdAt := pet.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := pet.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return PetDocument{
		ID:        id,
		OwnerID:   pet.OwnerID,
		Name:      pet.Name,
		Species:   pet.Species.String(),
		Breed:     pet.Breed,
		BirthDate: pet.BirthDate,
		Gender:    pet.Gender,
		WeightKg:  pet.WeightKg,
		PhotoURL:  pet.PhotoURL,
		Notes:     pet.Notes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

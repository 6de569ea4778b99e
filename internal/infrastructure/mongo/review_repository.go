package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petmate-id/petcare-services/api/internal/catalog/application"
	"github.com/petmate-id/petcare-services/api/internal/catalog/domain"
)

// ReviewRepository implements application.ReviewRepository using MongoDB.
type ReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new Mongo-backed review repository.
func NewReviewRepository(db *mongo.Database, collectionName string) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(collectionName)}
}

// FindByServiceID returns the reviews for one listing, newest first.
func (r *ReviewRepository) FindByServiceID(ctx context.Context, serviceID string, paging application.Paging) ([]domain.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(serviceID))
	if err != nil {
		return nil, err
	}

	limit := paging.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	skip := 0
	if paging.Page > 1 {
		skip = (paging.Page - 1) * limit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"service_id": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]domain.Review, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, domain.Review{
			ID:         doc.ID.Hex(),
			ServiceID:  doc.ServiceID.Hex(),
			AuthorName: doc.AuthorName,
			Rating:     doc.Rating,
			Comment:    doc.Comment,
			Tags:       append([]string{}, doc.Tags...),
			CreatedAt:  doc.CreatedAt,
			UpdatedAt:  doc.UpdatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

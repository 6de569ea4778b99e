package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	externaldomain "github.com/petmate-id/petcare-services/api/internal/external/domain"
)

// ExternalServiceRepository persists external listings promoted into the
// internal catalog collection.
type ExternalServiceRepository struct {
	collection *mongo.Collection
}

// NewExternalServiceRepository creates a Mongo-backed import repository.
func NewExternalServiceRepository(db *mongo.Database, collectionName string) *ExternalServiceRepository {
	return &ExternalServiceRepository{collection: db.Collection(collectionName)}
}

// Insert stores the snake_case projection of a canonical Service as a fresh
// catalog document. The aggregated id is never reused as the primary key;
// the provider-native reference survives in the external_* fields.
func (r *ExternalServiceRepository) Insert(ctx context.Context, service externaldomain.Service) (*externaldomain.Service, error) {
	doc := BuildExternalServiceDocument(service)
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	saved := service
	saved.ID = doc.ID.Hex()
	saved.CreatedAt = *doc.CreatedAt
	saved.UpdatedAt = *doc.UpdatedAt
	return &saved, nil
}

// BuildExternalServiceDocument maps the canonical camelCase Service onto the
// catalog's snake_case schema.
func BuildExternalServiceDocument(service externaldomain.Service) ServiceDocument {
	now := time.Now().UTC()
	reviewCount := 0
	if service.ReviewCount != nil {
		reviewCount = *service.ReviewCount
	}
	return ServiceDocument{
		ID:             primitive.NewObjectID(),
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
		Stats: ServiceStatsDocument{
			ReviewCount: reviewCount,
			AvgRating:   service.AvgRating,
		},
		ExternalSource: string(service.Source),
		ExternalID:     service.ExternalID,
		ExternalURL:    service.ExternalURL,
		CreatedAt:      &now,
		UpdatedAt:      &now,
	}
}

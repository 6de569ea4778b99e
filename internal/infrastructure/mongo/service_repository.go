package mongo

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petmate-id/petcare-services/api/internal/catalog/application"
	"github.com/petmate-id/petcare-services/api/internal/catalog/domain"
)

// ServiceRepository implements application.ServiceRepository using MongoDB.
type ServiceRepository struct {
	collection *mongo.Collection
}

// NewServiceRepository creates a new Mongo-backed listing repository.
func NewServiceRepository(db *mongo.Database, collectionName string) *ServiceRepository {
	return &ServiceRepository{collection: db.Collection(collectionName)}
}

// Find returns listings filtered according to the provided criteria.
func (r *ServiceRepository) Find(ctx context.Context, filter application.ServiceFilter, paging application.Paging) ([]domain.Service, error) {
	mongoFilter := bson.M{}
	if filter.CategoryID != "" {
		mongoFilter["category_id"] = strings.TrimSpace(filter.CategoryID)
	}
	if filter.City != "" {
		mongoFilter["city"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(filter.City)) + "$", Options: "i"}
	}
	if filter.Verified != nil {
		mongoFilter["verified"] = *filter.Verified
	}
	if len(filter.Tags) > 0 {
		mongoFilter["tags"] = bson.M{"$all": filter.Tags}
	}
	if filter.Keyword != "" {
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"address": regex},
			bson.M{"description": regex},
		}
	}

	cursor, err := r.collection.Find(ctx, mongoFilter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := make([]domain.Service, 0)
	for cursor.Next(ctx) {
		var doc ServiceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		services = append(services, mapServiceDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	sortServices(services, paging.Sort)
	return services, nil
}

// FindByID returns a single listing by its identifier.
func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc ServiceDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	service := mapServiceDocument(doc)
	return &service, nil
}

func mapServiceDocument(doc ServiceDocument) domain.Service {
	service := domain.Service{
		ID:             doc.ID.Hex(),
		Name:           doc.Name,
		Address:        doc.Address,
		City:           doc.City,
		CategoryID:     doc.CategoryID,
		ContactPhone:   doc.ContactPhone,
		Website:        doc.Website,
		OperatingHours: doc.OperatingHours,
		PriceRange:     doc.PriceRange,
		Latitude:       doc.Latitude,
		Longitude:      doc.Longitude,
		Verified:       doc.Verified,
		Tags:           append([]string{}, doc.Tags...),
		PhotoURLs:      append([]string{}, doc.PhotoURLs...),
		Description:    doc.Description,
		Stats: domain.ServiceStats{
			ReviewCount:    doc.Stats.ReviewCount,
			AvgRating:      doc.Stats.AvgRating,
			LastReviewedAt: doc.Stats.LastReviewedAt,
		},
		ExternalSource: doc.ExternalSource,
		ExternalID:     doc.ExternalID,
		ExternalURL:    doc.ExternalURL,
	}
	if doc.CreatedAt != nil {
		service.CreatedAt = *doc.CreatedAt
	}
	if doc.UpdatedAt != nil {
		service.UpdatedAt = *doc.UpdatedAt
	}
	return service
}

func sortServices(services []domain.Service, sortKey string) {
	switch sortKey {
	case "rating":
		sort.SliceStable(services, func(i, j int) bool {
			return ptrFloat(services[i].Stats.AvgRating) > ptrFloat(services[j].Stats.AvgRating)
		})
	case "reviews":
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].Stats.ReviewCount > services[j].Stats.ReviewCount
		})
	default:
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].CreatedAt.After(services[j].CreatedAt)
		})
	}
}

func ptrFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return math.Round(*v*10) / 10
}

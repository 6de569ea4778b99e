package application

import (
	"context"

	"github.com/petmate-id/petcare-services/api/internal/catalog/domain"
)

// ServiceRepository abstracts read access to internal listings.
type ServiceRepository interface {
	Find(ctx context.Context, filter ServiceFilter, paging Paging) ([]domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
}

// ReviewRepository handles review reads for internal listings.
type ReviewRepository interface {
	FindByServiceID(ctx context.Context, serviceID string, paging Paging) ([]domain.Review, error)
}

// ServiceFilter expresses search criteria for internal listings.
type ServiceFilter struct {
	CategoryID string
	City       string
	Keyword    string
	Verified   *bool
	Tags       []string
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
	Sort  string
}

// ServiceQueryService describes listing read use-cases.
type ServiceQueryService interface {
	List(ctx context.Context, filter ServiceFilter, paging Paging) ([]domain.Service, error)
	Detail(ctx context.Context, id string) (*domain.Service, error)
}

// ReviewQueryService describes review read use-cases.
type ReviewQueryService interface {
	ListForService(ctx context.Context, serviceID string, paging Paging) ([]domain.Review, error)
}

// NewServiceQueryService creates a new listing query service.
func NewServiceQueryService(repo ServiceRepository) ServiceQueryService {
	return &serviceQueryService{repo: repo}
}

type serviceQueryService struct {
	repo ServiceRepository
}

func (s *serviceQueryService) List(ctx context.Context, filter ServiceFilter, paging Paging) ([]domain.Service, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *serviceQueryService) Detail(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

// NewReviewQueryService creates a new review query service.
func NewReviewQueryService(repo ReviewRepository) ReviewQueryService {
	return &reviewQueryService{repo: repo}
}

type reviewQueryService struct {
	repo ReviewRepository
}

func (s *reviewQueryService) ListForService(ctx context.Context, serviceID string, paging Paging) ([]domain.Review, error) {
	return s.repo.FindByServiceID(ctx, serviceID, paging)
}

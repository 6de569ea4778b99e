package application

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/petmate-id/petcare-services/api/internal/external/domain"
)

// Platform is the capability contract every external source implements.
// Implementations own their provider's data-shape quirks and must convert
// every internal failure into an empty result rather than an error that
// reaches the aggregator.
type Platform interface {
	Name() string
	Enabled() bool
	FetchServices(ctx context.Context, categoryID, location string) []domain.Service
	SearchServices(ctx context.Context, query, categoryID, location string) []domain.Service
	FetchReviews(ctx context.Context, serviceID string) []domain.Review
}

// ExternalServiceRepository persists a promoted external listing into the
// primary datastore and returns the stored record with its new identifier.
type ExternalServiceRepository interface {
	Insert(ctx context.Context, service domain.Service) (*domain.Service, error)
}

// AggregatorService fans requests out to every enabled platform and merges
// the results. It is stateless beyond its fixed adapter registry.
type AggregatorService struct {
	platforms []Platform
	repo      ExternalServiceRepository
	logger    *log.Logger
	timeout   time.Duration
}

// NewAggregatorService builds an aggregator over a fixed set of platforms.
// A non-positive timeout disables the per-adapter deadline.
func NewAggregatorService(platforms []Platform, repo ExternalServiceRepository, logger *log.Logger, timeout time.Duration) *AggregatorService {
	return &AggregatorService{
		platforms: append([]Platform(nil), platforms...),
		repo:      repo,
		logger:    logger,
		timeout:   timeout,
	}
}

// Platforms returns the enabled adapters.
func (s *AggregatorService) Platforms() []Platform {
	enabled := make([]Platform, 0, len(s.platforms))
	for _, platform := range s.platforms {
		if platform.Enabled() {
			enabled = append(enabled, platform)
		}
	}
	return enabled
}

// FetchServicesFromAll queries every enabled platform concurrently for the
// given category and location and returns the merged list. Result order
// across sources is not guaranteed.
func (s *AggregatorService) FetchServicesFromAll(ctx context.Context, categoryID, location string) []domain.Service {
	return s.fanOut(ctx, func(ctx context.Context, platform Platform) []domain.Service {
		return platform.FetchServices(ctx, categoryID, location)
	})
}

// SearchAcrossAll runs a free-text search on every enabled platform
// concurrently and returns the merged list.
func (s *AggregatorService) SearchAcrossAll(ctx context.Context, query, categoryID, location string) []domain.Service {
	return s.fanOut(ctx, func(ctx context.Context, platform Platform) []domain.Service {
		return platform.SearchServices(ctx, query, categoryID, location)
	})
}

// fanOut launches one call per enabled platform and joins the whole batch.
// A panicking or timed-out adapter contributes an empty list; it never
// cancels or corrupts the other in-flight calls.
func (s *AggregatorService) fanOut(ctx context.Context, call func(context.Context, Platform) []domain.Service) []domain.Service {
	platforms := s.Platforms()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		merged []domain.Service
	)
	for _, platform := range platforms {
		wg.Add(1)
		go func(platform Platform) {
			defer wg.Done()
			results := s.callPlatform(ctx, platform, call)
			if len(results) == 0 {
				return
			}
			mu.Lock()
			merged = append(merged, results...)
			mu.Unlock()
		}(platform)
	}
	wg.Wait()

	if merged == nil {
		merged = []domain.Service{}
	}
	return merged
}

func (s *AggregatorService) callPlatform(ctx context.Context, platform Platform, call func(context.Context, Platform) []domain.Service) (results []domain.Service) {
	defer func() {
		if r := recover(); r != nil {
			s.logf("platform %s panicked: %v", platform.Name(), r)
			results = nil
		}
	}()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return call(ctx, platform)
}

// SaveExternalService promotes an aggregated listing into the primary
// datastore. The stored record carries a freshly assigned identifier; the
// external id is kept only as a reference field. Returns nil on any
// persistence error.
func (s *AggregatorService) SaveExternalService(ctx context.Context, service domain.Service) *domain.Service {
	if s.repo == nil {
		s.logf("external service repository not configured")
		return nil
	}
	saved, err := s.repo.Insert(ctx, service)
	if err != nil {
		s.logf("saving external service %q from %s failed: %v", service.Name, service.Source, err)
		return nil
	}
	return saved
}

func (s *AggregatorService) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// FetchReviewsFor asks the platform matching the service's source for reviews.
// Sources without review support simply return an empty list.
func (s *AggregatorService) FetchReviewsFor(ctx context.Context, source domain.Source, serviceID string) []domain.Review {
	for _, platform := range s.Platforms() {
		if platform.Name() != string(source) {
			continue
		}
		reviews := platform.FetchReviews(ctx, serviceID)
		if reviews == nil {
			return []domain.Review{}
		}
		return reviews
	}
	return []domain.Review{}
}

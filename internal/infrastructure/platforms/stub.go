package platforms

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/petmate-id/petcare-services/api/internal/external/application"
	"github.com/petmate-id/petcare-services/api/internal/external/domain"
)

// StubConfig tunes a synthetic platform. Each source gets its own record
// count, templates and random ranges so downstream consumers see the
// heterogeneous trust/quality signals real integrations would produce.
type StubConfig struct {
	Source          domain.Source
	IDPrefix        string
	RecordCount     int
	NameTemplates   []string
	AddressTemplate string
	PhoneTemplate   string
	URLTemplate     string
	VerifiedChance  float64
	RatingMin       float64
	RatingMax       float64
	ReviewCountMax  int
	PriceRangeMin   int
	PriceRangeMax   int
}

// StubPlatform synthesizes plausible listings for a source that has no real
// integration yet. It sits behind the same Platform contract so the
// aggregator cannot tell it apart from a live adapter.
type StubPlatform struct {
	cfg StubConfig

	mu  sync.Mutex
	rng *rand.Rand
}

// NewStubPlatform builds a synthetic platform from its config.
func NewStubPlatform(cfg StubConfig) *StubPlatform {
	return &StubPlatform{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *StubPlatform) Name() string  { return string(p.cfg.Source) }
func (p *StubPlatform) Enabled() bool { return true }

// FetchServices synthesizes the configured number of records for the
// category and location.
func (p *StubPlatform) FetchServices(ctx context.Context, categoryID, location string) []domain.Service {
	return p.generate(categoryID, location, "")
}

// SearchServices synthesizes records whose names echo the query, inferring
// the category from the query when none was supplied.
func (p *StubPlatform) SearchServices(ctx context.Context, query, categoryID, location string) []domain.Service {
	if strings.TrimSpace(categoryID) == "" || categoryID == domain.CategoryAll {
		categoryID = application.InferCategoryFromQuery(query)
	}
	return p.generate(categoryID, location, strings.TrimSpace(query))
}

// FetchReviews is unsupported on synthetic platforms.
func (p *StubPlatform) FetchReviews(ctx context.Context, serviceID string) []domain.Review {
	return []domain.Review{}
}

func (p *StubPlatform) generate(categoryID, location, query string) []domain.Service {
	if strings.TrimSpace(categoryID) == "" || categoryID == domain.CategoryAll {
		categoryID = domain.CategoryPetShops
	}
	city := strings.TrimSpace(location)
	if city == "" {
		city = "Jakarta"
	}
	city = titleCase(city)

	now := time.Now().UTC()
	services := make([]domain.Service, 0, p.cfg.RecordCount)
	for i := 0; i < p.cfg.RecordCount; i++ {
		services = append(services, p.record(i, categoryID, city, query, now))
	}
	return services
}

func (p *StubPlatform) record(index int, categoryID, city, query string, now time.Time) domain.Service {
	p.mu.Lock()
	verified := p.rng.Float64() < p.cfg.VerifiedChance
	rating := p.cfg.RatingMin + p.rng.Float64()*(p.cfg.RatingMax-p.cfg.RatingMin)
	reviewCount := p.rng.Intn(p.cfg.ReviewCountMax + 1)
	priceRange := p.cfg.PriceRangeMin
	if p.cfg.PriceRangeMax > p.cfg.PriceRangeMin {
		priceRange += p.rng.Intn(p.cfg.PriceRangeMax - p.cfg.PriceRangeMin + 1)
	}
	streetNumber := 1 + p.rng.Intn(200)
	phoneSuffix := p.rng.Intn(10000)
	p.mu.Unlock()

	// Repeated fetches must not collapse to the same id.
	externalID := fmt.Sprintf("%d-%s", now.UnixNano(), shortUUID())
	id := p.cfg.IDPrefix + externalID

	name := p.cfg.NameTemplates[index%len(p.cfg.NameTemplates)]
	if query != "" {
		name = fmt.Sprintf("%s %s", titleCase(query), name)
	}
	name = fmt.Sprintf("%s %s", name, city)

	rating = float64(int(rating*10)) / 10

	return domain.Service{
		ID:           id,
		Name:         name,
		Address:      fmt.Sprintf(p.cfg.AddressTemplate, streetNumber, city),
		City:         city,
		CategoryID:   categoryID,
		ContactPhone: fmt.Sprintf(p.cfg.PhoneTemplate, phoneSuffix),
		PriceRange:   priceRange,
		Verified:     verified,
		AvgRating:    &rating,
		ReviewCount:  &reviewCount,
		Source:       p.cfg.Source,
		ExternalID:   externalID,
		ExternalURL:  fmt.Sprintf(p.cfg.URLTemplate, externalID),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func shortUUID() string {
	return uuid.NewString()[:8]
}

func titleCase(input string) string {
	words := strings.Fields(strings.ToLower(input))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

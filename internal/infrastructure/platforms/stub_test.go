package platforms

import (
	"context"
	"strings"
	"testing"

	"github.com/petmate-id/petcare-services/api/internal/external/domain"
)

func TestStubPlatformRecordCounts(t *testing.T) {
	tests := []struct {
		platform *StubPlatform
		source   domain.Source
		prefix   string
		count    int
	}{
		{NewInstagramPlatform(), domain.SourceInstagram, "ig-", 5},
		{NewFacebookPlatform(), domain.SourceFacebook, "fb-", 4},
		{NewTokopediaPlatform(), domain.SourceTokopedia, "tkp-", 5},
		{NewShopeePlatform(), domain.SourceShopee, "shp-", 3},
	}

	for _, tt := range tests {
		services := tt.platform.FetchServices(context.Background(), domain.CategoryPetShops, "Jakarta")
		if len(services) != tt.count {
			t.Errorf("%s: got %d services, want %d", tt.source, len(services), tt.count)
		}
		for _, s := range services {
			if s.Source != tt.source {
				t.Errorf("%s: service source = %q", tt.source, s.Source)
			}
			if !strings.HasPrefix(s.ID, tt.prefix) {
				t.Errorf("%s: id %q missing prefix %q", tt.source, s.ID, tt.prefix)
			}
			if s.Name == "" || s.Address == "" || s.ContactPhone == "" {
				t.Errorf("%s: incomplete record %+v", tt.source, s)
			}
		}
	}
}

func TestStubPlatformIDsAreUnstable(t *testing.T) {
	p := NewInstagramPlatform()

	first := p.FetchServices(context.Background(), domain.CategoryGrooming, "Bandung")
	second := p.FetchServices(context.Background(), domain.CategoryGrooming, "Bandung")

	seen := make(map[string]struct{}, len(first))
	for _, s := range first {
		seen[s.ID] = struct{}{}
	}
	for _, s := range second {
		if _, dup := seen[s.ID]; dup {
			t.Errorf("id %q repeated across fetches", s.ID)
		}
	}
}

func TestStubPlatformRatingBounds(t *testing.T) {
	p := NewTokopediaPlatform()

	for i := 0; i < 10; i++ {
		for _, s := range p.FetchServices(context.Background(), domain.CategoryPetShops, "Surabaya") {
			if s.AvgRating == nil {
				t.Fatal("stub records must carry a rating")
			}
			if *s.AvgRating < 4.2 || *s.AvgRating > 5.0 {
				t.Errorf("rating %.1f outside [4.2, 5.0]", *s.AvgRating)
			}
		}
	}
}

func TestStubPlatformDefaults(t *testing.T) {
	p := NewFacebookPlatform()

	services := p.FetchServices(context.Background(), "", "")
	for _, s := range services {
		if s.CategoryID != domain.CategoryPetShops {
			t.Errorf("empty category must default to pet shops, got %q", s.CategoryID)
		}
		if s.City != "Jakarta" {
			t.Errorf("empty location must default to Jakarta, got %q", s.City)
		}
	}
}

func TestStubPlatformSearchInfersCategory(t *testing.T) {
	p := NewShopeePlatform()

	services := p.SearchServices(context.Background(), "grooming kucing", "", "bandung")
	for _, s := range services {
		if s.CategoryID != domain.CategoryGrooming {
			t.Errorf("category = %q; want inferred grooming", s.CategoryID)
		}
		if s.City != "Bandung" {
			t.Errorf("city = %q; want title-cased Bandung", s.City)
		}
		if !strings.Contains(s.Name, "Grooming Kucing") {
			t.Errorf("name %q should echo the query", s.Name)
		}
	}
}

func TestStubPlatformFetchReviewsEmpty(t *testing.T) {
	reviews := NewInstagramPlatform().FetchReviews(context.Background(), "ig-123")
	if reviews == nil || len(reviews) != 0 {
		t.Fatalf("expected empty non-nil reviews, got %v", reviews)
	}
}

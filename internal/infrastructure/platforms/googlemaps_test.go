package platforms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/petmate-id/petcare-services/api/internal/external/domain"
	"github.com/petmate-id/petcare-services/api/internal/infrastructure/googleplaces"
)

func newPlacesServer(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := routes[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encoding fixture: %v", err)
		}
	}))
}

func TestGoogleMapsPlatformDisabledWithoutClient(t *testing.T) {
	p := NewGoogleMapsPlatform(nil, nil)
	if p.Enabled() {
		t.Fatal("platform must be disabled without a client")
	}
	if p.Name() != string(domain.SourceGoogleMaps) {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestGoogleMapsPlatformFetchServices(t *testing.T) {
	server := newPlacesServer(t, map[string]any{
		"/place/nearbysearch/json": map[string]any{
			"status": "OK",
			"results": []map[string]any{
				{
					"place_id": "ChIJvet1",
					"name":     "Klinik Hewan Kemang",
					"vicinity": "Jl. Kemang, Jakarta Selatan, Indonesia",
					"types":    []string{"veterinary_care", "point_of_interest"},
					"rating":   4.7,
				},
			},
		},
		"/place/details/json": map[string]any{
			"status": "OK",
			"result": map[string]any{
				"place_id":               "ChIJvet1",
				"formatted_phone_number": "(021) 765-4321",
				"website":                "https://klinikkemang.example.id",
			},
		},
	})
	defer server.Close()

	client := googleplaces.NewClient(server.Client(), server.URL, "test-key")
	p := NewGoogleMapsPlatform(client, nil)

	services := p.FetchServices(context.Background(), domain.CategoryVeterinaryClinics, "Jakarta")
	if len(services) != 1 {
		t.Fatalf("got %d services, want 1", len(services))
	}

	s := services[0]
	if s.ID != "gmaps-ChIJvet1" {
		t.Errorf("ID = %q", s.ID)
	}
	if s.CategoryID != domain.CategoryVeterinaryClinics {
		t.Errorf("CategoryID = %q", s.CategoryID)
	}
	if s.ContactPhone != "(021) 765-4321" {
		t.Errorf("ContactPhone = %q; details enrichment missing", s.ContactPhone)
	}
	if s.ExternalURL != "https://klinikkemang.example.id" {
		t.Errorf("ExternalURL = %q", s.ExternalURL)
	}
}

func TestGoogleMapsPlatformFetchServicesProviderError(t *testing.T) {
	server := newPlacesServer(t, map[string]any{
		"/place/nearbysearch/json": map[string]any{
			"status":        "REQUEST_DENIED",
			"error_message": "The provided API key is invalid.",
		},
	})
	defer server.Close()

	client := googleplaces.NewClient(server.Client(), server.URL, "bad-key")
	p := NewGoogleMapsPlatform(client, nil)

	services := p.FetchServices(context.Background(), domain.CategoryPetShops, "Jakarta")
	if services == nil || len(services) != 0 {
		t.Fatalf("provider errors must yield an empty list, got %v", services)
	}
}

func TestGoogleMapsPlatformSearchInfersCategory(t *testing.T) {
	server := newPlacesServer(t, map[string]any{
		"/place/textsearch/json": map[string]any{
			"status": "OK",
			"results": []map[string]any{
				{
					"place_id":          "ChIJgroom1",
					"name":              "Pawsome Grooming",
					"formatted_address": "Jl. Riau No. 5, Bandung, Indonesia",
					"types":             []string{"point_of_interest", "establishment"},
				},
			},
		},
		"/place/details/json": map[string]any{
			"status": "OK",
			"result": map[string]any{"place_id": "ChIJgroom1"},
		},
	})
	defer server.Close()

	client := googleplaces.NewClient(server.Client(), server.URL, "test-key")
	p := NewGoogleMapsPlatform(client, nil)

	services := p.SearchServices(context.Background(), "grooming anjing", domain.CategoryAll, "")
	if len(services) != 1 {
		t.Fatalf("got %d services, want 1", len(services))
	}
	if services[0].CategoryID != domain.CategoryGrooming {
		t.Errorf("CategoryID = %q; want grooming inferred from the query", services[0].CategoryID)
	}
}

func TestGoogleMapsPlatformFetchReviews(t *testing.T) {
	server := newPlacesServer(t, map[string]any{
		"/place/details/json": map[string]any{
			"status": "OK",
			"result": map[string]any{
				"place_id": "ChIJvet1",
				"reviews": []map[string]any{
					{"author_name": "Dewi", "rating": 5, "text": "Dokternya ramah.", "time": 1700000000},
					{"author_name": "Budi", "rating": 4, "text": "Antrian cukup cepat.", "time": 1700100000},
				},
			},
		},
	})
	defer server.Close()

	client := googleplaces.NewClient(server.Client(), server.URL, "test-key")
	p := NewGoogleMapsPlatform(client, nil)

	reviews := p.FetchReviews(context.Background(), "gmaps-ChIJvet1")
	if len(reviews) != 2 {
		t.Fatalf("got %d reviews, want 2", len(reviews))
	}
	if reviews[0].ServiceID != "gmaps-ChIJvet1" {
		t.Errorf("ServiceID = %q", reviews[0].ServiceID)
	}
	if reviews[0].AuthorName != "Dewi" || reviews[0].Rating != 5 {
		t.Errorf("first review = %+v", reviews[0])
	}
	if reviews[0].Source != domain.SourceGoogleMaps {
		t.Errorf("Source = %q", reviews[0].Source)
	}

	empty := p.FetchReviews(context.Background(), "gmaps-")
	if empty == nil || len(empty) != 0 {
		t.Fatalf("empty place id must yield empty reviews, got %v", empty)
	}
}

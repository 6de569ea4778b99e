package googleplaces

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/petmate-id/petcare-services/api/internal/external/domain"
)

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		status  string
		message string
		wantErr bool
	}{
		{"OK", "", false},
		{"ZERO_RESULTS", "", false},
		{"OVER_QUERY_LIMIT", "", true},
		{"REQUEST_DENIED", "The provided API key is invalid.", true},
		{"INVALID_REQUEST", "", true},
		{"UNKNOWN_ERROR", "", true},
	}

	for _, tt := range tests {
		err := checkStatus(tt.status, tt.message)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkStatus(%q) error = %v; wantErr %v", tt.status, err, tt.wantErr)
		}
		if err != nil && tt.message != "" && !strings.Contains(err.Error(), tt.message) {
			t.Errorf("checkStatus(%q) error %q should carry the provider message", tt.status, err)
		}
	}
}

func TestNearbySearchSendsFilters(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","results":[{"place_id":"p1","name":"Pet Store"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "secret")
	places, err := client.NearbySearch(context.Background(), domain.Coordinates{Lat: -6.2, Lng: 106.8}, 5000, "pet_store", "pet shop")
	if err != nil {
		t.Fatalf("NearbySearch: %v", err)
	}
	if len(places) != 1 || places[0].PlaceID != "p1" {
		t.Fatalf("places = %v", places)
	}

	for key, want := range map[string]string{
		"radius":  "5000",
		"type":    "pet_store",
		"keyword": "pet shop",
		"key":     "secret",
	} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query %s = %v; want %q", key, got, want)
		}
	}
}

func TestNearbySearchOmitsEmptyFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("type") || r.URL.Query().Has("keyword") {
			t.Error("empty filters must be omitted from the request")
		}
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "secret")
	places, err := client.NearbySearch(context.Background(), domain.Coordinates{}, 1000, "", "")
	if err != nil {
		t.Fatalf("NearbySearch: %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("places = %v; want none", places)
	}
}

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":-8.65,"lng":115.21}}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "secret")
	coords, err := client.Geocode(context.Background(), "Denpasar")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if len(coords) != 1 || coords[0].Lat != -8.65 || coords[0].Lng != 115.21 {
		t.Fatalf("coords = %v", coords)
	}
}

func TestGetRejectsHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "secret")
	if _, err := client.PlaceDetails(context.Background(), "p1"); err == nil {
		t.Fatal("expected an error for a 502 response")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(nil, "  https://example.test/api/ ", "k")
	if client.baseURL != "https://example.test/api" {
		t.Errorf("baseURL = %q; trailing slash must be trimmed", client.baseURL)
	}

	client = NewClient(nil, "", "k")
	if client.baseURL != defaultBaseURL {
		t.Errorf("baseURL = %q; want the public endpoint", client.baseURL)
	}
}

package public

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	catalogapp "github.com/petmate-id/petcare-services/api/internal/catalog/application"
	catalogdomain "github.com/petmate-id/petcare-services/api/internal/catalog/domain"
	externalapp "github.com/petmate-id/petcare-services/api/internal/external/application"
	externaldomain "github.com/petmate-id/petcare-services/api/internal/external/domain"
	"github.com/petmate-id/petcare-services/api/internal/interfaces/http/common"
	petsapp "github.com/petmate-id/petcare-services/api/internal/pets/application"
	petsdomain "github.com/petmate-id/petcare-services/api/internal/pets/domain"
)

type fakeServiceQueries struct {
	services []catalogdomain.Service
}

func (f *fakeServiceQueries) List(_ context.Context, _ catalogapp.ServiceFilter, _ catalogapp.Paging) ([]catalogdomain.Service, error) {
	return f.services, nil
}

func (f *fakeServiceQueries) Detail(_ context.Context, id string) (*catalogdomain.Service, error) {
	for _, service := range f.services {
		if service.ID == id {
			copied := service
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeReviewQueries struct {
	reviews []catalogdomain.Review
}

func (f *fakeReviewQueries) ListForService(_ context.Context, serviceID string, _ catalogapp.Paging) ([]catalogdomain.Review, error) {
	var out []catalogdomain.Review
	for _, review := range f.reviews {
		if review.ServiceID == serviceID {
			out = append(out, review)
		}
	}
	return out, nil
}

type staticPlatform struct {
	name     string
	services []externaldomain.Service
}

func (p *staticPlatform) Name() string  { return p.name }
func (p *staticPlatform) Enabled() bool { return true }

func (p *staticPlatform) FetchServices(_ context.Context, _, _ string) []externaldomain.Service {
	return p.services
}

func (p *staticPlatform) SearchServices(_ context.Context, _, _, _ string) []externaldomain.Service {
	return p.services
}

func (p *staticPlatform) FetchReviews(_ context.Context, _ string) []externaldomain.Review {
	return []externaldomain.Review{}
}

type memoryExternalRepo struct {
	inserted []externaldomain.Service
}

func (r *memoryExternalRepo) Insert(_ context.Context, service externaldomain.Service) (*externaldomain.Service, error) {
	r.inserted = append(r.inserted, service)
	saved := service
	saved.ID = fmt.Sprintf("65f%021d", len(r.inserted))
	return &saved, nil
}

type memoryPetRepo struct {
	pets   map[string]*petsdomain.Pet
	nextID int
}

func (r *memoryPetRepo) Find(_ context.Context, ownerID string) ([]petsdomain.Pet, error) {
	var out []petsdomain.Pet
	for _, pet := range r.pets {
		if pet.OwnerID == ownerID {
			out = append(out, *pet)
		}
	}
	return out, nil
}

func (r *memoryPetRepo) FindByID(_ context.Context, ownerID, id string) (*petsdomain.Pet, error) {
	pet, ok := r.pets[id]
	if !ok || pet.OwnerID != ownerID {
		return nil, mongo.ErrNoDocuments
	}
	copied := *pet
	return &copied, nil
}

func (r *memoryPetRepo) Create(_ context.Context, pet *petsdomain.Pet) error {
	r.nextID++
	pet.ID = fmt.Sprintf("pet-%d", r.nextID)
	copied := *pet
	r.pets[pet.ID] = &copied
	return nil
}

func (r *memoryPetRepo) Update(_ context.Context, pet *petsdomain.Pet) error {
	if _, ok := r.pets[pet.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *pet
	r.pets[pet.ID] = &copied
	return nil
}

func (r *memoryPetRepo) Delete(_ context.Context, ownerID, id string) error {
	pet, ok := r.pets[id]
	if !ok || pet.OwnerID != ownerID {
		return mongo.ErrNoDocuments
	}
	delete(r.pets, id)
	return nil
}

type memoryRecordRepo struct {
	records []petsdomain.HealthRecord
}

func (r *memoryRecordRepo) FindByPetID(_ context.Context, ownerID, petID string) ([]petsdomain.HealthRecord, error) {
	var out []petsdomain.HealthRecord
	for _, record := range r.records {
		if record.OwnerID == ownerID && record.PetID == petID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *memoryRecordRepo) Create(_ context.Context, record *petsdomain.HealthRecord) error {
	record.ID = fmt.Sprintf("rec-%d", len(r.records)+1)
	r.records = append(r.records, *record)
	return nil
}

type memoryReminderRepo struct {
	reminders map[string]*petsdomain.Reminder
	nextID    int
}

func (r *memoryReminderRepo) FindByOwner(_ context.Context, ownerID string, includeCompleted bool) ([]petsdomain.Reminder, error) {
	var out []petsdomain.Reminder
	for _, reminder := range r.reminders {
		if reminder.OwnerID != ownerID {
			continue
		}
		if !includeCompleted && reminder.Completed {
			continue
		}
		out = append(out, *reminder)
	}
	return out, nil
}

func (r *memoryReminderRepo) Create(_ context.Context, reminder *petsdomain.Reminder) error {
	r.nextID++
	reminder.ID = fmt.Sprintf("rem-%d", r.nextID)
	copied := *reminder
	r.reminders[reminder.ID] = &copied
	return nil
}

func (r *memoryReminderRepo) MarkCompleted(_ context.Context, ownerID, id string, completedAt time.Time) (*petsdomain.Reminder, error) {
	reminder, ok := r.reminders[id]
	if !ok || reminder.OwnerID != ownerID {
		return nil, mongo.ErrNoDocuments
	}
	reminder.Completed = true
	reminder.CompletedAt = &completedAt
	copied := *reminder
	return &copied, nil
}

type testEnv struct {
	router       chi.Router
	externalRepo *memoryExternalRepo
}

func injectUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := common.ContextWithUser(r.Context(), common.AuthenticatedUser{ID: "owner-1", Name: "Tester"})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newTestEnv(services []catalogdomain.Service, platforms []externalapp.Platform) *testEnv {
	logger := log.New(io.Discard, "", 0)
	externalRepo := &memoryExternalRepo{}
	aggregator := externalapp.NewAggregatorService(platforms, externalRepo, logger, 0)

	petService := petsapp.NewPetService(
		&memoryPetRepo{pets: make(map[string]*petsdomain.Pet)},
		&memoryRecordRepo{},
		&memoryReminderRepo{reminders: make(map[string]*petsdomain.Reminder)},
	)

	handler := NewHandler(Config{
		Logger:         logger,
		ServiceQueries: &fakeServiceQueries{services: services},
		ReviewQueries:  &fakeReviewQueries{},
		Aggregator:     aggregator,
		PetService:     petService,
	})

	router := chi.NewRouter()
	handler.Register(router, injectUser)
	return &testEnv{router: router, externalRepo: externalRepo}
}

func doJSON(t *testing.T, router chi.Router, method, target, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decoding %s %s response: %v\n%s", method, target, err, rec.Body.String())
		}
	}
	return rec
}

func catalogService(id string) catalogdomain.Service {
	rating := 4.56
	return catalogdomain.Service{
		ID:         id,
		Name:       "Klinik Hewan Sehat",
		City:       "Jakarta",
		CategoryID: "veterinary_clinics",
		Verified:   true,
		Stats:      catalogdomain.ServiceStats{ReviewCount: 12, AvgRating: &rating},
	}
}

func TestServiceListHandler(t *testing.T) {
	env := newTestEnv([]catalogdomain.Service{catalogService("65f000000000000000000001")}, nil)

	var resp struct {
		Items []map[string]any `json:"items"`
		Page  int              `json:"page"`
		Limit int              `json:"limit"`
		Total int              `json:"total"`
	}
	rec := doJSON(t, env.router, http.MethodGet, "/services?category=vet&city=Jakarta", "", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", rec.Code, rec.Body.String())
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Items[0]["averageRating"] != 4.6 {
		t.Errorf("averageRating = %v; want rounded 4.6", resp.Items[0]["averageRating"])
	}
	if resp.Page != 1 || resp.Limit != 10 {
		t.Errorf("default paging = %d/%d", resp.Page, resp.Limit)
	}
}

func TestServiceDetailHandler(t *testing.T) {
	env := newTestEnv([]catalogdomain.Service{catalogService("65f000000000000000000001")}, nil)

	rec := doJSON(t, env.router, http.MethodGet, "/services/not-an-objectid", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status = %d; want 400", rec.Code)
	}

	rec = doJSON(t, env.router, http.MethodGet, "/services/65f000000000000000000099", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d; want 404", rec.Code)
	}

	var detail map[string]any
	rec = doJSON(t, env.router, http.MethodGet, "/services/65f000000000000000000001", "", &detail)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if detail["name"] != "Klinik Hewan Sehat" {
		t.Errorf("detail = %v", detail)
	}
}

func TestExternalFetchHandler(t *testing.T) {
	env := newTestEnv(nil, []externalapp.Platform{
		&staticPlatform{name: "instagram", services: []externaldomain.Service{
			{ID: "ig-1", Name: "Paw Studio Jakarta", Source: externaldomain.SourceInstagram},
		}},
		&staticPlatform{name: "facebook", services: []externaldomain.Service{
			{ID: "fb-1", Name: "Happy Tails Jakarta", Source: externaldomain.SourceFacebook},
		}},
	})

	var resp struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
	}
	rec := doJSON(t, env.router, http.MethodGet, "/external/services?category=vet&location=Jakarta", "", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp.Total != 2 || len(resp.Items) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestExternalSearchHandlerRequiresQuery(t *testing.T) {
	env := newTestEnv(nil, nil)

	rec := doJSON(t, env.router, http.MethodGet, "/external/search", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}

	var resp struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
	}
	rec = doJSON(t, env.router, http.MethodGet, "/external/search?q=grooming", "", &resp)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d; want 200", rec.Code)
	}
	if resp.Items == nil {
		t.Error("items must be an empty array, not null")
	}
}

func TestExternalPlatformListHandler(t *testing.T) {
	env := newTestEnv(nil, []externalapp.Platform{
		&staticPlatform{name: "instagram"},
		&staticPlatform{name: "tokopedia"},
	})

	var resp struct {
		Items []externalPlatformResponse `json:"items"`
	}
	rec := doJSON(t, env.router, http.MethodGet, "/external/platforms", "", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("items = %v", resp.Items)
	}
	for _, item := range resp.Items {
		if !item.Enabled {
			t.Errorf("platform %s should report enabled", item.Name)
		}
	}
}

func TestExternalImportHandler(t *testing.T) {
	env := newTestEnv(nil, nil)

	rec := doJSON(t, env.router, http.MethodPost, "/external/import", `{"address":"x"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing name: status = %d; want 400", rec.Code)
	}

	body := `{
		"name": "Paw Studio Jakarta",
		"city": "Jakarta",
		"categoryId": "groomer",
		"source": "instagram",
		"externalId": "1726-abc",
		"externalUrl": "https://www.instagram.com/p/1726-abc"
	}`
	var resp externalServiceResponse
	rec = doJSON(t, env.router, http.MethodPost, "/external/import", body, &resp)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d\n%s", rec.Code, rec.Body.String())
	}
	if resp.ID == "" || strings.HasPrefix(resp.ID, "ig-") {
		t.Errorf("imported id %q must be freshly assigned", resp.ID)
	}
	if resp.CategoryID != "grooming" {
		t.Errorf("categoryId = %q; alias must be canonicalised", resp.CategoryID)
	}
	if resp.ExternalID != "1726-abc" {
		t.Errorf("externalId = %q; provider reference must survive", resp.ExternalID)
	}
	if len(env.externalRepo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(env.externalRepo.inserted))
	}
}

func TestPetLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(nil, nil)

	var pet petResponse
	rec := doJSON(t, env.router, http.MethodPost, "/pets", `{"name":"Milo","species":"dog","gender":"male"}`, &pet)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d\n%s", rec.Code, rec.Body.String())
	}
	if pet.ID == "" || pet.Species != "dog" {
		t.Fatalf("pet = %+v", pet)
	}

	rec = doJSON(t, env.router, http.MethodPost, "/pets", `{"name":"Ghost","species":"dragon"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid species: status = %d; want 400", rec.Code)
	}

	var list struct {
		Items []petResponse `json:"items"`
	}
	rec = doJSON(t, env.router, http.MethodGet, "/pets", "", &list)
	if rec.Code != http.StatusOK || len(list.Items) != 1 {
		t.Fatalf("list: status = %d items = %v", rec.Code, list.Items)
	}

	var record healthRecordResponse
	body := `{"recordType":"vaccination","title":"Vaksin rabies","recordedAt":"2026-08-01"}`
	rec = doJSON(t, env.router, http.MethodPost, "/pets/"+pet.ID+"/health-records", body, &record)
	if rec.Code != http.StatusCreated {
		t.Fatalf("health record: status = %d\n%s", rec.Code, rec.Body.String())
	}
	if record.RecordType != "vaccination" || record.RecordedAt.Format("2006-01-02") != "2026-08-01" {
		t.Errorf("record = %+v", record)
	}

	rec = doJSON(t, env.router, http.MethodGet, "/pets/unknown/health-records", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown pet: status = %d; want 404", rec.Code)
	}

	rec = doJSON(t, env.router, http.MethodDelete, "/pets/"+pet.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("delete: status = %d", rec.Code)
	}
}

func TestReminderHandlers(t *testing.T) {
	env := newTestEnv(nil, nil)

	var reminder reminderResponse
	rec := doJSON(t, env.router, http.MethodPost, "/reminders", `{"title":"Vaksin booster","dueAt":"2026-09-15"}`, &reminder)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d\n%s", rec.Code, rec.Body.String())
	}
	if reminder.Frequency != "once" {
		t.Errorf("frequency = %q; want the once default", reminder.Frequency)
	}

	rec = doJSON(t, env.router, http.MethodPost, "/reminders", `{"title":"No due date"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing dueAt: status = %d; want 400", rec.Code)
	}

	var completed reminderResponse
	rec = doJSON(t, env.router, http.MethodPatch, "/reminders/"+reminder.ID+"/complete", "", &completed)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete: status = %d", rec.Code)
	}
	if !completed.Completed || completed.CompletedAt == nil {
		t.Errorf("completed = %+v", completed)
	}

	var open struct {
		Items []reminderResponse `json:"items"`
	}
	rec = doJSON(t, env.router, http.MethodGet, "/reminders", "", &open)
	if rec.Code != http.StatusOK || len(open.Items) != 0 {
		t.Fatalf("open reminders = %v", open.Items)
	}

	var all struct {
		Items []reminderResponse `json:"items"`
	}
	rec = doJSON(t, env.router, http.MethodGet, "/reminders?includeCompleted=true", "", &all)
	if rec.Code != http.StatusOK || len(all.Items) != 1 {
		t.Fatalf("all reminders = %v", all.Items)
	}
}

func TestAuthVerifyHandler(t *testing.T) {
	env := newTestEnv(nil, nil)

	var resp struct {
		Status string `json:"status"`
		User   struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	rec := doJSON(t, env.router, http.MethodGet, "/auth/verify", "", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp.Status != "ok" || resp.User.ID != "owner-1" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantNil bool
		wantErr bool
	}{
		{"2026-08-01", "2026-08-01T00:00:00Z", false, false},
		{"2026-08-01T10:30:00+07:00", "2026-08-01T03:30:00Z", false, false},
		{"", "", true, false},
		{"yesterday", "", false, true},
	}

	for _, tt := range tests {
		got, err := parseDate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v; wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if tt.wantNil {
			if got != nil {
				t.Errorf("parseDate(%q) = %v; want nil", tt.value, got)
			}
			continue
		}
		if got == nil || got.Format(time.RFC3339) != tt.want {
			t.Errorf("parseDate(%q) = %v; want %s", tt.value, got, tt.want)
		}
	}
}

package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/petmate-id/petcare-services/api/internal/catalog/application"
	externalapp "github.com/petmate-id/petcare-services/api/internal/external/application"
	petsapp "github.com/petmate-id/petcare-services/api/internal/pets/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger         *log.Logger
	serviceQueries catalogapp.ServiceQueryService
	reviewQueries  catalogapp.ReviewQueryService
	aggregator     *externalapp.AggregatorService
	petService     petsapp.PetService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         *log.Logger
	ServiceQueries catalogapp.ServiceQueryService
	ReviewQueries  catalogapp.ReviewQueryService
	Aggregator     *externalapp.AggregatorService
	PetService     petsapp.PetService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:         cfg.Logger,
		serviceQueries: cfg.ServiceQueries,
		reviewQueries:  cfg.ReviewQueries,
		aggregator:     cfg.Aggregator,
		petService:     cfg.PetService,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/services", h.serviceListHandler())
	r.Get("/services/{id}", h.serviceDetailHandler())
	r.Get("/services/{id}/reviews", h.serviceReviewListHandler())

	r.Get("/external/services", h.externalFetchHandler())
	r.Get("/external/search", h.externalSearchHandler())
	r.Get("/external/platforms", h.externalPlatformListHandler())
	r.With(authMiddleware).Post("/external/import", h.externalImportHandler())

	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())

	r.With(authMiddleware).Route("/pets", func(r chi.Router) {
		r.Get("/", h.petListHandler())
		r.Post("/", h.petCreateHandler())
		r.Get("/{id}", h.petDetailHandler())
		r.Patch("/{id}", h.petUpdateHandler())
		r.Delete("/{id}", h.petDeleteHandler())
		r.Get("/{id}/health-records", h.healthRecordListHandler())
		r.Post("/{id}/health-records", h.healthRecordCreateHandler())
	})

	r.With(authMiddleware).Route("/reminders", func(r chi.Router) {
		r.Get("/", h.reminderListHandler())
		r.Post("/", h.reminderCreateHandler())
		r.Patch("/{id}/complete", h.reminderCompleteHandler())
	})
}

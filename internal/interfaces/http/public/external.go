package public

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	externaldomain "github.com/petmate-id/petcare-services/api/internal/external/domain"
	"github.com/petmate-id/petcare-services/api/internal/interfaces/http/common"
)

// externalFetchHandler aggregates category/location listings across every
// enabled platform. Provider failures surface as an empty list, never a 5xx.
func (h *Handler) externalFetchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		categoryID := common.CanonicalCategoryID(query.Get("category"))
		location := strings.TrimSpace(query.Get("location"))

		services := h.aggregator.FetchServicesFromAll(r.Context(), categoryID, location)

		items := make([]externalServiceResponse, 0, len(services))
		for _, service := range services {
			items = append(items, buildExternalServiceResponse(service))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, externalListResponse{Items: items, Total: len(items)})
	}
}

func (h *Handler) externalSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		q := strings.TrimSpace(query.Get("q"))
		if q == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "query parameter q is required"})
			return
		}
		categoryID := common.CanonicalCategoryID(query.Get("category"))
		location := strings.TrimSpace(query.Get("location"))

		services := h.aggregator.SearchAcrossAll(r.Context(), q, categoryID, location)

		items := make([]externalServiceResponse, 0, len(services))
		for _, service := range services {
			items = append(items, buildExternalServiceResponse(service))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, externalListResponse{Items: items, Total: len(items)})
	}
}

func (h *Handler) externalPlatformListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		platforms := h.aggregator.Platforms()
		items := make([]externalPlatformResponse, 0, len(platforms))
		for _, platform := range platforms {
			items = append(items, externalPlatformResponse{Name: platform.Name(), Enabled: platform.Enabled()})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

// externalImportHandler promotes one aggregated listing into the internal
// catalog. The stored record gets a fresh id; the request's aggregated id is
// kept only as the external reference.
func (h *Handler) externalImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req importRequest
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "name is required"})
			return
		}

		source := externaldomain.Source(strings.TrimSpace(req.Source))
		if source == "" {
			source = externaldomain.SourceOther
		}

		now := time.Now().UTC()
		service := externaldomain.Service{
			Name:           strings.TrimSpace(req.Name),
			Address:        strings.TrimSpace(req.Address),
			City:           strings.TrimSpace(req.City),
			CategoryID:     common.CanonicalCategoryID(req.CategoryID),
			ContactPhone:   strings.TrimSpace(req.ContactPhone),
			Website:        strings.TrimSpace(req.Website),
			OperatingHours: strings.TrimSpace(req.OperatingHours),
			PriceRange:     req.PriceRange,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			Verified:       req.Verified,
			AvgRating:      req.AvgRating,
			Source:         source,
			ExternalID:     strings.TrimSpace(req.ExternalID),
			ExternalURL:    strings.TrimSpace(req.ExternalURL),
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		saved := h.aggregator.SaveExternalService(r.Context(), service)
		if saved == nil {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to import service"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildExternalServiceResponse(*saved))
	}
}

package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	catalogapp "github.com/petmate-id/petcare-services/api/internal/catalog/application"
	"github.com/petmate-id/petcare-services/api/internal/interfaces/http/common"
)

func (h *Handler) serviceListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		categoryFilter := common.CanonicalCategoryID(query.Get("category"))
		if categoryFilter == "all" {
			categoryFilter = ""
		}
		cityFilter := strings.TrimSpace(query.Get("city"))
		keyword := strings.TrimSpace(query.Get("keyword"))
		sortKey := strings.TrimSpace(query.Get("sort"))

		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 10)
		if limit <= 0 {
			limit = 10
		}

		var verified *bool
		if raw := strings.TrimSpace(query.Get("verified")); raw != "" {
			value := strings.EqualFold(raw, "true")
			verified = &value
		}

		filter := catalogapp.ServiceFilter{
			CategoryID: categoryFilter,
			City:       cityFilter,
			Keyword:    keyword,
			Verified:   verified,
			Tags:       query["tags"],
		}
		paging := catalogapp.Paging{Page: page, Limit: limit, Sort: sortKey}

		services, err := h.serviceQueries.List(ctx, filter, paging)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusOK, serviceListResponse{
					Items: []serviceSummaryResponse{},
					Page:  page,
					Limit: limit,
					Total: 0,
				})
				return
			}
			h.logger.Printf("service list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch services"})
			return
		}

		total := len(services)
		start := (page - 1) * limit
		if start >= total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		items := make([]serviceSummaryResponse, 0, end-start)
		for _, service := range services[start:end] {
			items = append(items, buildServiceSummaryResponse(service))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, serviceListResponse{
			Items: items,
			Page:  page,
			Limit: limit,
			Total: total,
		})
	}
}

func (h *Handler) serviceDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "service id is required"})
			return
		}
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid service id"})
			return
		}

		service, err := h.serviceQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "service not found"})
				return
			}
			h.logger.Printf("service detail fetch failed id=%q err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch service"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildServiceDetailResponse(*service))
	}
}

func (h *Handler) serviceReviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid service id"})
			return
		}

		query := r.URL.Query()
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 20)

		reviews, err := h.reviewQueries.ListForService(ctx, idParam, catalogapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.logger.Printf("review list fetch failed service=%q err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch reviews"})
			return
		}

		items := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			items = append(items, reviewResponse{
				ID:         review.ID,
				ServiceID:  review.ServiceID,
				AuthorName: review.AuthorName,
				Rating:     review.Rating,
				Comment:    review.Comment,
				Tags:       append([]string{}, review.Tags...),
				CreatedAt:  review.CreatedAt,
			})
		}

		common.WriteJSON(h.logger, w, http.StatusOK, reviewListResponse{
			Items: items,
			Page:  page,
			Limit: limit,
		})
	}
}

package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petmate-id/petcare-services/api/internal/interfaces/http/common"
	petsapp "github.com/petmate-id/petcare-services/api/internal/pets/application"
)

func (h *Handler) petListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		pets, err := h.petService.List(ctx, user.ID)
		if err != nil {
			h.logger.Printf("pet list fetch failed owner=%q err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch pets"})
			return
		}

		items := make([]petResponse, 0, len(pets))
		for _, pet := range pets {
			items = append(items, buildPetResponse(pet))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) petDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		pet, err := h.petService.Detail(ctx, user.ID, chi.URLParam(r, "id"))
		if err != nil {
			h.writePetError(w, "pet detail fetch", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildPetResponse(*pet))
	}
}

func (h *Handler) petCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		cmd, err := h.decodePetRequest(w, r)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		pet, err := h.petService.Create(ctx, user.ID, *cmd)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildPetResponse(*pet))
	}
}

func (h *Handler) petUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		cmd, err := h.decodePetRequest(w, r)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		pet, err := h.petService.Update(ctx, user.ID, chi.URLParam(r, "id"), *cmd)
		if err != nil {
			h.writePetError(w, "pet update", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildPetResponse(*pet))
	}
}

func (h *Handler) petDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		if err := h.petService.Delete(ctx, user.ID, chi.URLParam(r, "id")); err != nil {
			h.writePetError(w, "pet delete", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (h *Handler) healthRecordListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		records, err := h.petService.HealthRecords(ctx, user.ID, chi.URLParam(r, "id"))
		if err != nil {
			h.writePetError(w, "health record list", err)
			return
		}

		items := make([]healthRecordResponse, 0, len(records))
		for _, record := range records {
			items = append(items, buildHealthRecordResponse(record))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) healthRecordCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		defer r.Body.Close()
		var req healthRecordRequest
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		recordedAt, err := parseDate(req.RecordedAt)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid recordedAt"})
			return
		}
		cmd := petsapp.AddHealthRecordCommand{
			RecordType: req.RecordType,
			Title:      req.Title,
			Notes:      req.Notes,
			VetName:    req.VetName,
		}
		if recordedAt != nil {
			cmd.RecordedAt = *recordedAt
		}

		record, err := h.petService.AddHealthRecord(ctx, user.ID, chi.URLParam(r, "id"), cmd)
		if err != nil {
			h.writePetError(w, "health record create", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildHealthRecordResponse(*record))
	}
}

func (h *Handler) reminderListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		includeCompleted := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("includeCompleted")), "true")
		reminders, err := h.petService.Reminders(ctx, user.ID, includeCompleted)
		if err != nil {
			h.logger.Printf("reminder list fetch failed owner=%q err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch reminders"})
			return
		}

		items := make([]reminderResponse, 0, len(reminders))
		for _, reminder := range reminders {
			items = append(items, buildReminderResponse(reminder))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) reminderCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		defer r.Body.Close()
		var req reminderRequest
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		dueAt, err := parseDate(req.DueAt)
		if err != nil || dueAt == nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid dueAt"})
			return
		}

		reminder, err := h.petService.CreateReminder(ctx, user.ID, petsapp.CreateReminderCommand{
			PetID:     req.PetID,
			Title:     req.Title,
			Notes:     req.Notes,
			Frequency: req.Frequency,
			DueAt:     *dueAt,
		})
		if err != nil {
			h.writePetError(w, "reminder create", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildReminderResponse(*reminder))
	}
}

func (h *Handler) reminderCompleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		reminder, err := h.petService.CompleteReminder(ctx, user.ID, chi.URLParam(r, "id"))
		if err != nil {
			h.writePetError(w, "reminder complete", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildReminderResponse(*reminder))
	}
}

func (h *Handler) decodePetRequest(w http.ResponseWriter, r *http.Request) (*petsapp.UpsertPetCommand, error) {
	defer r.Body.Close()

	var req petRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody))
	if err := decoder.Decode(&req); err != nil {
		return nil, errors.New("invalid request body")
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, errors.New("invalid birthDate")
	}
	if len([]rune(req.Notes)) > common.MaxNotesRunes {
		return nil, errors.New("notes too long")
	}

	return &petsapp.UpsertPetCommand{
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		BirthDate: birthDate,
		Gender:    req.Gender,
		WeightKg:  req.WeightKg,
		PhotoURL:  req.PhotoURL,
		Notes:     req.Notes,
	}, nil
}

// writePetError maps repository/service errors onto HTTP statuses: missing
// documents and malformed ids are client errors, everything else is a 500.
func (h *Handler) writePetError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "not found"})
	case strings.Contains(err.Error(), "invalid") || strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "encoding/hex"):
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.logger.Printf("%s failed: %v", operation, err)
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

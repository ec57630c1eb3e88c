package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/medias-catalog-go/internal/api_context"
	"github.com/fhuszti/medias-catalog-go/internal/catalog"
	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/usecase/gallery"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

type SaveEditRequest struct {
	Description *string `json:"description" validate:"required"`
}

type EditStateResponse struct {
	Editing bool       `json:"editing"`
	ID      *uuid.UUID `json:"id,omitempty"`
}

func OpenEditHandler(svc port.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.OpenEdit(r.Context(), id); err != nil {
			if errors.Is(err, gallery.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Media not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not open media for editing", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Editing media #%s", id)
	}
}

func GetEditHandler(svc port.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var out EditStateResponse
		if id, ok := svc.EditingID(); ok {
			out = EditStateResponse{Editing: true, ID: &id}
		}

		w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
		RespondJSON(w, http.StatusOK, out)
	}
}

func SaveEditHandler(svc port.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveEditRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		m, err := svc.SaveEdit(r.Context(), *req.Description)
		if err != nil {
			var verr *gallery.ValidationError
			switch {
			case errors.As(err, &verr):
				WriteError(w, http.StatusBadRequest, verr.Notice, nil)
			case errors.Is(err, gallery.ErrNotEditing):
				WriteError(w, http.StatusConflict, "No media selected for editing", nil)
			case errors.Is(err, catalog.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Media not found", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not update media", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, m)
		logger.Infof(r.Context(), "✅  Successfully updated media #%s", m.ID)
	}
}

func CancelEditHandler(svc port.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.CancelEdit(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/medias-catalog-go/internal/api_context"
	"github.com/fhuszti/medias-catalog-go/internal/catalog"
	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/usecase/gallery"
)

// UploadRequest describes the file picked by the user. Only metadata travels; an empty
// fileName means no file was selected.
type UploadRequest struct {
	FileName    string `json:"fileName" validate:"max=255"`
	MediaType   string `json:"mediaType" validate:"max=255"`
	FileSize    *int64 `json:"fileSize,omitempty" validate:"omitempty,gte=0"`
	Description string `json:"description"`
}

func (req UploadRequest) toInput() port.UploadInput {
	in := port.UploadInput{Description: req.Description}
	if req.FileName != "" {
		in.File = &port.FileSelection{Name: req.FileName, MediaType: req.MediaType, Size: req.FileSize}
	}
	return in
}

func ListMediaHandler(svc port.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Refresh(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list media", err)
			return
		}

		w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
		RespondJSON(w, http.StatusOK, items)
		logger.Infof(r.Context(), "✅  Successfully listed %d media", len(items))
	}
}

func UploadMediaHandler(svc port.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UploadRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		m, err := svc.Upload(r.Context(), req.toInput())
		if err != nil {
			var verr *gallery.ValidationError
			if errors.As(err, &verr) {
				WriteError(w, http.StatusBadRequest, verr.Notice, nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not upload media", err)
			return
		}

		RespondJSON(w, http.StatusCreated, m)
		logger.Infof(r.Context(), "✅  Successfully uploaded media #%s", m.ID)
	}
}

func GetMediaHandler(svc port.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		out, err := svc.View(id)
		if err != nil {
			if errors.Is(err, gallery.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Media not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get media details", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully returned details for media #%s", id)
	}
}

// DeleteMediaHandler deletes a media by ID once the request carries ?confirm=true.
func DeleteMediaHandler(svc port.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, gallery.ErrDeleteCancelled):
				WriteError(w, http.StatusConflict, "Deletion must be confirmed", nil)
			case errors.Is(err, catalog.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Media not found", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Failed to delete media", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted media #%s", id)
	}
}

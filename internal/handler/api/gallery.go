package api

import (
	"net/http"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/port"
)

// GetGalleryHandler serves what the gallery currently shows. The ETag changes whenever
// the list or the visible notice does.
func GetGalleryHandler(view port.GalleryView, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, etag, err := view.RenderState(now())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not render gallery", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
	}
}

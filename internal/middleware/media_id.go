package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fhuszti/medias-catalog-go/internal/api_context"
	"github.com/fhuszti/medias-catalog-go/internal/handler/api"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
	"github.com/go-chi/chi/v5"
)

func WithMediaID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}
			parsedID, err := uuid.Parse(id)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("ID %q is not a valid UUID", id), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.IDKey, parsedID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

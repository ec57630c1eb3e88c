package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fhuszti/medias-catalog-go/internal/api_context"
	"github.com/fhuszti/medias-catalog-go/internal/handler/api"
	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/port"
)

// WithConfirmation reads the ?confirm= query flag into the request context.
// An absent flag means not confirmed.
func WithConfirmation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			confirmed := false
			if raw := r.URL.Query().Get("confirm"); raw != "" {
				v, err := strconv.ParseBool(raw)
				if err != nil {
					api.WriteError(w, http.StatusBadRequest, "confirm must be a boolean", nil)
					return
				}
				confirmed = v
			}

			next.ServeHTTP(w, r.WithContext(api_context.WithConfirmed(r.Context(), confirmed)))
		})
	}
}

// ContextConfirmer answers confirmation prompts with the flag WithConfirmation stored.
type ContextConfirmer struct{}

// compile-time check: ContextConfirmer must satisfy port.Confirmer
var _ port.Confirmer = ContextConfirmer{}

func (ContextConfirmer) Confirm(ctx context.Context, prompt string) bool {
	ok := api_context.ConfirmedFromContext(ctx)
	if !ok {
		logger.Debugf(ctx, "prompt %q not confirmed by the request", prompt)
	}
	return ok
}

package api_context

import (
	"context"

	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

type ctxKey string

const (
	IDKey        ctxKey = "id"
	ConfirmedKey ctxKey = "confirmed"
)

func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	return id, ok
}

func WithConfirmed(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, ConfirmedKey, confirmed)
}

// ConfirmedFromContext reports whether the caller confirmed a destructive action.
// A missing value counts as not confirmed.
func ConfirmedFromContext(ctx context.Context) bool {
	confirmed, _ := ctx.Value(ConfirmedKey).(bool)
	return confirmed
}

package api_context

import (
	"context"
	"testing"

	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

func TestIDFromContext(t *testing.T) {
	if _, ok := IDFromContext(context.Background()); ok {
		t.Error("expected no id in an empty context")
	}

	id := uuid.NewUUID()
	got, ok := IDFromContext(context.WithValue(context.Background(), IDKey, id))
	if !ok || got != id {
		t.Errorf("IDFromContext = %s, %v; want %s", got, ok, id)
	}
}

func TestConfirmedFromContext(t *testing.T) {
	if ConfirmedFromContext(context.Background()) {
		t.Error("missing value must count as not confirmed")
	}
	if !ConfirmedFromContext(WithConfirmed(context.Background(), true)) {
		t.Error("expected confirmed")
	}
	if ConfirmedFromContext(WithConfirmed(context.Background(), false)) {
		t.Error("expected not confirmed")
	}
}

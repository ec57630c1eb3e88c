package port

import (
	"context"

	"github.com/fhuszti/medias-catalog-go/internal/model"
)

// Renderer receives the full record list after every successful listing.
type Renderer interface {
	Render(ctx context.Context, items []model.Media)
}

// Notifier displays transient success and error notices.
type Notifier interface {
	Notify(ctx context.Context, msg Message)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

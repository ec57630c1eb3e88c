package port

import (
	"context"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// Latency simulates the round trip of a remote backend.
type Latency interface {
	Wait(ctx context.Context)
}

// Catalog owns the list of media records and its persistence.
type Catalog interface {
	Init(ctx context.Context)
	Create(ctx context.Context, in CreateMediaInput) (model.Media, error)
	List(ctx context.Context) ([]model.Media, error)
	Get(ctx context.Context, id uuid.UUID) (model.Media, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateMediaFields) (model.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
type CreateMediaInput struct {
	FileName    string         `json:"fileName" validate:"required,notblank"`
	Description string         `json:"description" validate:"required,max=500"`
	FileType    model.FileType `json:"fileType" validate:"required,filetype"`
	FileSize    *int64         `json:"fileSize,omitempty" validate:"omitempty,gte=0"`
}

// UpdateMediaFields lists the mutable fields of a record; nil fields are left untouched.
type UpdateMediaFields struct {
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
}

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is a transient notice shown to the user for Duration.
type Message struct {
	Kind     MessageKind   `json:"kind"`
	Text     string        `json:"text"`
	Duration time.Duration `json:"duration"`
}

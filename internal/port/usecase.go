package port

import (
	"context"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

// Gallery translates user intents into catalog calls and keeps the rendered list in sync.
type Gallery interface {
	Refresh(ctx context.Context) ([]model.Media, error)
	Upload(ctx context.Context, in UploadInput) (model.Media, error)
	OpenEdit(ctx context.Context, id uuid.UUID) error
	CancelEdit(ctx context.Context)
	EditingID() (uuid.UUID, bool)
	SaveEdit(ctx context.Context, description string) (model.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	View(id uuid.UUID) (MediaDetails, error)
}

// FileSelection is what the file picker hands over: no bytes, only metadata.
type FileSelection struct {
	Name      string
	MediaType string
	Size      *int64
}
type UploadInput struct {
	File        *FileSelection
	Description string
}

type MediaDetails struct {
	model.Media
	TypeLabel     string `json:"typeLabel"`
	SizeLabel     string `json:"sizeLabel"`
	UploadedLabel string `json:"uploadedLabel"`
}

// GalleryState is what the rendering surface currently shows.
type GalleryState struct {
	Items   []model.Media `json:"items"`
	Message *Message      `json:"message,omitempty"`
}

// GalleryView exposes the rendering surface to readers.
type GalleryView interface {
	State(now time.Time) GalleryState
	// RenderState returns the JSON encoded state and an ETag derived from it.
	RenderState(now time.Time) ([]byte, string, error)
}

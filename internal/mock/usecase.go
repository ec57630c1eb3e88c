package mock

import (
	"context"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

// MockGallery implements port.Gallery for tests.
type MockGallery struct {
	// returned values
	Items   []model.Media
	Media   model.Media
	Details port.MediaDetails
	Editing *uuid.UUID

	// errors
	RefreshErr  error
	UploadErr   error
	OpenEditErr error
	SaveEditErr error
	DeleteErr   error
	ViewErr     error

	// call flags and arguments
	RefreshCalled    bool
	UploadCalled     bool
	OpenEditCalled   bool
	CancelEditCalled bool
	SaveEditCalled   bool
	DeleteCalled     bool
	ViewCalled       bool
	GotUpload        port.UploadInput
	GotID            uuid.UUID
	GotDescription   string
}

func (m *MockGallery) Refresh(ctx context.Context) ([]model.Media, error) {
	m.RefreshCalled = true
	return m.Items, m.RefreshErr
}

func (m *MockGallery) Upload(ctx context.Context, in port.UploadInput) (model.Media, error) {
	m.UploadCalled = true
	m.GotUpload = in
	return m.Media, m.UploadErr
}

func (m *MockGallery) OpenEdit(ctx context.Context, id uuid.UUID) error {
	m.OpenEditCalled = true
	m.GotID = id
	return m.OpenEditErr
}

func (m *MockGallery) CancelEdit(ctx context.Context) {
	m.CancelEditCalled = true
}

func (m *MockGallery) EditingID() (uuid.UUID, bool) {
	if m.Editing == nil {
		return uuid.UUID{}, false
	}
	return *m.Editing, true
}

func (m *MockGallery) SaveEdit(ctx context.Context, description string) (model.Media, error) {
	m.SaveEditCalled = true
	m.GotDescription = description
	return m.Media, m.SaveEditErr
}

func (m *MockGallery) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.GotID = id
	return m.DeleteErr
}

func (m *MockGallery) View(id uuid.UUID) (port.MediaDetails, error) {
	m.ViewCalled = true
	m.GotID = id
	return m.Details, m.ViewErr
}

// MockGalleryView implements port.GalleryView for tests.
type MockGalleryView struct {
	Out  port.GalleryState
	Raw  []byte
	Etag string
	Err  error
}

func (m *MockGalleryView) State(now time.Time) port.GalleryState {
	return m.Out
}

func (m *MockGalleryView) RenderState(now time.Time) ([]byte, string, error) {
	if m.Err != nil {
		return nil, "", m.Err
	}
	return m.Raw, m.Etag, nil
}

package mock

import (
	"context"

	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

// Catalog implements port.Catalog for tests.
type Catalog struct {
	// returned values
	Items   []model.Media
	Created model.Media
	Updated model.Media
	Got     model.Media

	// errors
	CreateErr error
	ListErr   error
	GetErr    error
	UpdateErr error
	DeleteErr error

	// call flags and arguments
	InitCalled   bool
	CreateCalled bool
	ListCalls    int
	UpdateCalled bool
	DeleteCalled bool
	GotCreate    port.CreateMediaInput
	GotUpdateID  uuid.UUID
	GotFields    port.UpdateMediaFields
	GotDeleteID  uuid.UUID
}

func (c *Catalog) Init(ctx context.Context) {
	c.InitCalled = true
}

func (c *Catalog) Create(ctx context.Context, in port.CreateMediaInput) (model.Media, error) {
	c.CreateCalled = true
	c.GotCreate = in
	if c.CreateErr != nil {
		return model.Media{}, c.CreateErr
	}
	return c.Created, nil
}

func (c *Catalog) List(ctx context.Context) ([]model.Media, error) {
	c.ListCalls++
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	out := make([]model.Media, len(c.Items))
	copy(out, c.Items)
	return out, nil
}

func (c *Catalog) Get(ctx context.Context, id uuid.UUID) (model.Media, error) {
	if c.GetErr != nil {
		return model.Media{}, c.GetErr
	}
	return c.Got, nil
}

func (c *Catalog) Update(ctx context.Context, id uuid.UUID, fields port.UpdateMediaFields) (model.Media, error) {
	c.UpdateCalled = true
	c.GotUpdateID = id
	c.GotFields = fields
	if c.UpdateErr != nil {
		return model.Media{}, c.UpdateErr
	}
	return c.Updated, nil
}

func (c *Catalog) Delete(ctx context.Context, id uuid.UUID) error {
	c.DeleteCalled = true
	c.GotDeleteID = id
	return c.DeleteErr
}

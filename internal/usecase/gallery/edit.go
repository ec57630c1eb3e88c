package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fhuszti/medias-catalog-go/internal/catalog"
	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

// OpenEdit moves the edit slot to id. Opening a second record replaces the first.
func (c *Controller) OpenEdit(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lookup(id); !ok {
		return fmt.Errorf("%w: #%s", ErrNotFound, id)
	}
	if c.editing != nil && *c.editing != id {
		logger.Debugf(ctx, "edit slot moved from media #%s to #%s", *c.editing, id)
	}
	c.editing = &id
	return nil
}

func (c *Controller) CancelEdit(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = nil
}

// EditingID returns the record currently open for editing, if any.
func (c *Controller) EditingID() (uuid.UUID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editing == nil {
		return uuid.UUID{}, false
	}
	return *c.editing, true
}

// SaveEdit changes the description of the record being edited. On success the edit slot
// goes back to idle; on failure it stays open.
func (c *Controller) SaveEdit(ctx context.Context, description string) (model.Media, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editing == nil {
		c.fail(ctx, msgNotEditing)
		return model.Media{}, ErrNotEditing
	}
	id := *c.editing

	description = strings.TrimSpace(description)
	if msg := checkDescription(description); msg != "" {
		c.fail(ctx, msg)
		return model.Media{}, &ValidationError{Notice: msg}
	}

	m, err := c.cat.Update(ctx, id, port.UpdateMediaFields{Description: &description})
	if err != nil {
		logger.Errorf(ctx, "❌  Could not update media #%s: %v", id, err)
		c.fail(ctx, msgUpdateFailed)
		if errors.Is(err, catalog.ErrNotFound) {
			_ = c.relist(ctx)
		}
		return model.Media{}, err
	}

	c.editing = nil
	logger.Infof(ctx, "✅  Updated description of media #%s", id)
	c.succeed(ctx, msgUpdated)
	_ = c.relist(ctx)
	return m, nil
}

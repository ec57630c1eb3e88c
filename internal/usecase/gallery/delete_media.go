package gallery

import (
	"context"
	"errors"

	"github.com/fhuszti/medias-catalog-go/internal/catalog"
	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

// Delete removes the media once the user confirms.
func (c *Controller) Delete(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.confirmer.Confirm(ctx, msgConfirmDelete) {
		logger.Infof(ctx, "deletion of media #%s not confirmed", id)
		return ErrDeleteCancelled
	}

	if err := c.cat.Delete(ctx, id); err != nil {
		logger.Errorf(ctx, "❌  Could not delete media #%s: %v", id, err)
		c.fail(ctx, msgDeleteFailed)
		if errors.Is(err, catalog.ErrNotFound) {
			_ = c.relist(ctx)
		}
		return err
	}

	logger.Infof(ctx, "✅  Deleted media #%s", id)
	c.succeed(ctx, msgDeleted)
	_ = c.relist(ctx)
	return nil
}

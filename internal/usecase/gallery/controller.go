// Package gallery drives the catalog from user actions and keeps the rendered gallery in
// sync with it after every mutation.
package gallery

import (
	"context"
	"sync"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

type Controller struct {
	cat       port.Catalog
	renderer  port.Renderer
	notifier  port.Notifier
	confirmer port.Confirmer

	successDuration time.Duration
	errorDuration   time.Duration

	// mu serialises commands: the gallery has a single logical actor.
	mu       sync.Mutex
	editing  *uuid.UUID
	snapshot []model.Media
}

// compile-time check: *Controller must satisfy port.Gallery
var _ port.Gallery = (*Controller)(nil)

type Option func(*Controller)

func WithMessageDurations(success, failure time.Duration) Option {
	return func(c *Controller) {
		if success > 0 {
			c.successDuration = success
		}
		if failure > 0 {
			c.errorDuration = failure
		}
	}
}

func NewController(cat port.Catalog, r port.Renderer, n port.Notifier, cf port.Confirmer, opts ...Option) *Controller {
	c := &Controller{
		cat:             cat,
		renderer:        r,
		notifier:        n,
		confirmer:       cf,
		successDuration: DefaultSuccessDuration,
		errorDuration:   DefaultErrorDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh re-reads the whole catalog and renders it.
func (c *Controller) Refresh(ctx context.Context) ([]model.Media, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.relist(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Media, len(c.snapshot))
	for i, m := range c.snapshot {
		out[i] = m.Clone()
	}
	return out, nil
}

// relist lists the catalog, keeps the result as the current snapshot and renders it.
// Caller holds c.mu.
func (c *Controller) relist(ctx context.Context) error {
	items, err := c.cat.List(ctx)
	if err != nil {
		logger.Errorf(ctx, "❌  Could not list media: %v", err)
		c.fail(ctx, msgLoadFailed)
		return err
	}
	c.snapshot = items
	c.renderer.Render(ctx, items)
	return nil
}

// lookup finds id in the last listed snapshot. Caller holds c.mu.
func (c *Controller) lookup(id uuid.UUID) (model.Media, bool) {
	for _, m := range c.snapshot {
		if m.ID == id {
			return m, true
		}
	}
	return model.Media{}, false
}

func (c *Controller) succeed(ctx context.Context, text string) {
	c.notifier.Notify(ctx, port.Message{Kind: port.MessageSuccess, Text: text, Duration: c.successDuration})
}

func (c *Controller) fail(ctx context.Context, text string) {
	c.notifier.Notify(ctx, port.Message{Kind: port.MessageError, Text: text, Duration: c.errorDuration})
}

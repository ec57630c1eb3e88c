// Package renderer holds the rendering surface of the gallery: the list as last rendered
// and the notice currently on screen.
package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"sync"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
)

// GalleryRenderer receives renders and notices from the controller and serves them to
// readers. A notice stays visible for its own duration and is replaced by the next one.
type GalleryRenderer struct {
	mu      sync.RWMutex
	items   []model.Media
	msg     *port.Message
	shownAt time.Time
	now     func() time.Time
}

// compile-time checks: *GalleryRenderer must satisfy the rendering ports
var (
	_ port.Renderer    = (*GalleryRenderer)(nil)
	_ port.Notifier    = (*GalleryRenderer)(nil)
	_ port.GalleryView = (*GalleryRenderer)(nil)
)

func NewGalleryRenderer() *GalleryRenderer {
	return &GalleryRenderer{items: []model.Media{}, now: time.Now}
}

// Render replaces the displayed list. An empty list renders the empty-state placeholder.
func (g *GalleryRenderer) Render(ctx context.Context, items []model.Media) {
	cp := make([]model.Media, len(items))
	for i, m := range items {
		cp[i] = m.Clone()
	}

	g.mu.Lock()
	g.items = cp
	g.mu.Unlock()

	logger.Debugf(ctx, "rendered %d media", len(cp))
}

func (g *GalleryRenderer) Notify(ctx context.Context, msg port.Message) {
	g.mu.Lock()
	g.msg = &msg
	g.shownAt = g.now()
	g.mu.Unlock()

	logger.Debugf(ctx, "notice shown (%s): %s", msg.Kind, msg.Text)
}

// State returns what the surface shows at now. The notice is dropped once its duration
// has elapsed.
func (g *GalleryRenderer) State(now time.Time) port.GalleryState {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := port.GalleryState{Items: make([]model.Media, len(g.items))}
	for i, m := range g.items {
		st.Items[i] = m.Clone()
	}
	if g.msg != nil && now.Before(g.shownAt.Add(g.msg.Duration)) {
		msg := *g.msg
		st.Message = &msg
	}
	return st
}

func (g *GalleryRenderer) RenderState(now time.Time) ([]byte, string, error) {
	raw, err := json.Marshal(g.State(now))
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}
	etag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	return raw, etag, nil
}

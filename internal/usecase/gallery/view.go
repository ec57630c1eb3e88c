package gallery

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

const uploadedLayout = "Jan 2, 2006 15:04 MST"

// View presents a record from the last listing. It never calls the catalog.
func (c *Controller) View(id uuid.UUID) (port.MediaDetails, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.lookup(id)
	if !ok {
		return port.MediaDetails{}, fmt.Errorf("%w: #%s", ErrNotFound, id)
	}
	return details(m.Clone()), nil
}

func details(m model.Media) port.MediaDetails {
	size := "unknown"
	if m.FileSize != nil {
		size = humanize.Bytes(uint64(*m.FileSize))
	}
	return port.MediaDetails{
		Media:         m,
		TypeLabel:     m.FileType.Label(),
		SizeLabel:     size,
		UploadedLabel: m.UploadDate.UTC().Format(uploadedLayout),
	}
}

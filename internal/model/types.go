package model

import (
	"fmt"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

const SnapshotVersion = "1.0"

// Snapshot is the persisted form of the whole catalog.
type Snapshot struct {
	MediaItems  []Media   `json:"mediaItems"`
	LastUpdated time.Time `json:"lastUpdated"`
	Version     string    `json:"version"`
}

// Check verifies the snapshot can be loaded as a catalog: known version, every record
// complete and ids unique.
func (s Snapshot) Check() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %q", s.Version)
	}
	seen := make(map[uuid.UUID]struct{}, len(s.MediaItems))
	for i, m := range s.MediaItems {
		if m.ID.IsZero() {
			return fmt.Errorf("media item #%d: missing id", i)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("media item #%d: duplicate id %s", i, m.ID)
		}
		seen[m.ID] = struct{}{}
		if m.FileName == "" {
			return fmt.Errorf("media item %s: missing file name", m.ID)
		}
		if m.Description == "" {
			return fmt.Errorf("media item %s: missing description", m.ID)
		}
		if m.UploadDate.IsZero() {
			return fmt.Errorf("media item %s: missing upload date", m.ID)
		}
		if !m.FileType.IsValid() {
			return fmt.Errorf("media item %s: invalid file type %q", m.ID, m.FileType)
		}
		if m.FileSize != nil && *m.FileSize < 0 {
			return fmt.Errorf("media item %s: negative file size", m.ID)
		}
	}
	return nil
}

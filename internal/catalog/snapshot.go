package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/model"
)

// Init loads the catalog from the primary and backup slots. When both hold a valid snapshot
// the one written last wins, ties going to the primary; when neither does the catalog starts
// empty. It never fails.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	primary, errPrimary := s.load(ctx, s.primaryKey)
	if errPrimary != nil {
		logger.Warnf(ctx, "⚠️  Could not load slot %q: %v", s.primaryKey, errPrimary)
	}
	backup, errBackup := s.load(ctx, s.backupKey)
	if errBackup != nil {
		logger.Warnf(ctx, "⚠️  Could not load backup slot %q: %v", s.backupKey, errBackup)
	}

	switch {
	case errPrimary == nil && (errBackup != nil || !backup.LastUpdated.After(primary.LastUpdated)):
		s.items = primary.MediaItems
		logger.Infof(ctx, "✅  Loaded %d media from slot %q", len(s.items), s.primaryKey)
	case errBackup == nil:
		s.items = backup.MediaItems
		logger.Infof(ctx, "✅  Recovered %d media from backup slot %q", len(s.items), s.backupKey)
	default:
		s.items = []model.Media{}
		logger.Info(ctx, "starting with an empty catalog")
	}
}

func (s *Store) load(ctx context.Context, key string) (model.Snapshot, error) {
	data, err := s.slots.Read(ctx, key)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read failed: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: unmarshal failed: %v", ErrStorageCorrupt, err)
	}
	if err := snap.Check(); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}

	if snap.MediaItems == nil {
		snap.MediaItems = []model.Media{}
	}
	return snap, nil
}

// persist writes the full snapshot of items to both slots. It only fails when neither
// write succeeds.
func (s *Store) persist(ctx context.Context, items []model.Media) error {
	snap := model.Snapshot{
		MediaItems:  items,
		LastUpdated: s.now().UTC(),
		Version:     model.SnapshotVersion,
	}
	if snap.MediaItems == nil {
		snap.MediaItems = []model.Media{}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	errPrimary := s.slots.Write(ctx, s.primaryKey, data)
	errBackup := s.slots.Write(ctx, s.backupKey, data)

	if errPrimary != nil && errBackup != nil {
		return fmt.Errorf("%w: primary: %v; backup: %v", ErrStorageUnavailable, errPrimary, errBackup)
	}
	if errPrimary != nil {
		logger.Warnf(ctx, "⚠️  Failed writing slot %q, backup only: %v", s.primaryKey, errPrimary)
	}
	if errBackup != nil {
		logger.Warnf(ctx, "⚠️  Failed writing backup slot %q: %v", s.backupKey, errBackup)
	}
	return nil
}

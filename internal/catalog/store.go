// Package catalog owns the list of media records and keeps it persisted as a full
// snapshot in two slots of a key-value store.
package catalog

import (
	"sync"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/latency"
	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

const (
	DefaultPrimaryKey = "media_catalog"
	DefaultBackupKey  = "media_catalog_backup"
)

type Store struct {
	slots      port.SlotStore
	primaryKey string
	backupKey  string
	latency    port.Latency
	newID      port.UUIDGen
	now        func() time.Time

	// mu guards items and serialises stage, persist and commit.
	mu    sync.Mutex
	items []model.Media
}

// compile-time check: *Store must satisfy port.Catalog
var _ port.Catalog = (*Store)(nil)

type Option func(*Store)

func WithKeys(primary, backup string) Option {
	return func(s *Store) {
		if primary != "" {
			s.primaryKey = primary
		}
		if backup != "" {
			s.backupKey = backup
		}
	}
}

func WithLatency(l port.Latency) Option {
	return func(s *Store) { s.latency = l }
}

func WithUUIDGen(gen port.UUIDGen) Option {
	return func(s *Store) { s.newID = gen }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds an empty store. Call Init to load the persisted catalog.
func New(slots port.SlotStore, opts ...Option) *Store {
	s := &Store{
		slots:      slots,
		primaryKey: DefaultPrimaryKey,
		backupKey:  DefaultBackupKey,
		latency:    latency.None(),
		newID:      uuid.NewUUID,
		now:        time.Now,
		items:      []model.Media{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) indexOf(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// stage returns a copy of the current list that can be mutated without touching s.items.
func (s *Store) stage(extra int) []model.Media {
	staged := make([]model.Media, len(s.items), len(s.items)+extra)
	copy(staged, s.items)
	return staged
}

package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/fhuszti/medias-catalog-go/internal/port"
)

// LocalSlots is an in-process slot store with a byte budget shared by all keys,
// mirroring the quota a browser puts on its local storage.
type LocalSlots struct {
	mu    sync.RWMutex
	slots map[string][]byte
	quota int64
	used  int64
}

// compile-time check: *LocalSlots must satisfy port.SlotStore
var _ port.SlotStore = (*LocalSlots)(nil)

// NewLocalSlots creates a store; a quota <= 0 means unlimited.
func NewLocalSlots(quota int64) *LocalSlots {
	return &LocalSlots{slots: make(map[string][]byte), quota: quota}
}

func (s *LocalSlots) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *LocalSlots) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := int64(len(key) + len(data))
	used := s.used
	if prev, ok := s.slots[key]; ok {
		used -= int64(len(key) + len(prev))
	}
	if s.quota > 0 && used+size > s.quota {
		return fmt.Errorf("%w: writing %d bytes to %q would use %d of %d bytes", ErrQuotaExceeded, size, key, used+size, s.quota)
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	s.slots[key] = buf
	s.used = used + size
	return nil
}

// Used returns the number of bytes currently counted against the quota.
func (s *LocalSlots) Used() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.used
}

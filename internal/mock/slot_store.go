package mock

import (
	"context"
	"sync"

	"github.com/fhuszti/medias-catalog-go/internal/storage"
)

// SlotStore implements port.SlotStore for tests.
type SlotStore struct {
	mu sync.Mutex

	// stored values
	Data map[string][]byte

	// per-key errors
	ReadErr  map[string]error
	WriteErr map[string]error

	// call log
	Reads  []string
	Writes []string
}

func NewSlotStore() *SlotStore {
	return &SlotStore{
		Data:     map[string][]byte{},
		ReadErr:  map[string]error{},
		WriteErr: map[string]error{},
	}
}

func (s *SlotStore) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reads = append(s.Reads, key)
	if err := s.ReadErr[key]; err != nil {
		return nil, err
	}
	data, ok := s.Data[key]
	if !ok {
		return nil, storage.ErrSlotEmpty
	}
	return data, nil
}

func (s *SlotStore) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes = append(s.Writes, key)
	if err := s.WriteErr[key]; err != nil {
		return err
	}
	s.Data[key] = append([]byte(nil), data...)
	return nil
}

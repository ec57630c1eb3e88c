package port

import "context"

// SlotStore is a key-value store holding whole serialised snapshots under fixed keys.
type SlotStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

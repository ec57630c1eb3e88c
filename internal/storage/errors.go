package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

var (
	ErrSlotEmpty     = errors.New("storage: slot is empty")
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
	ErrInternal      = errors.New("storage: internal error")
)

func mapRedisErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.Nil) {
		return ErrSlotEmpty
	}
	// redis reports an OOM error when maxmemory is reached with noeviction
	var rErr redis.Error
	if errors.As(err, &rErr) && strings.HasPrefix(rErr.Error(), "OOM") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

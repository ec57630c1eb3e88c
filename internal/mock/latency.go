package mock

import (
	"context"
	"sync"
)

// Latency implements port.Latency and counts waits.
type Latency struct {
	mu    sync.Mutex
	Calls int
}

func (l *Latency) Wait(ctx context.Context) {
	l.mu.Lock()
	l.Calls++
	l.mu.Unlock()
}

func (l *Latency) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Calls
}

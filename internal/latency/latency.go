package latency

import (
	"context"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/port"
)

type fixed struct {
	d time.Duration
}

// compile-time check: fixed must satisfy port.Latency
var _ port.Latency = fixed{}

// Fixed waits d on every call, or until ctx is done.
func Fixed(d time.Duration) port.Latency {
	if d <= 0 {
		return None()
	}
	return fixed{d: d}
}

func (f fixed) Wait(ctx context.Context) {
	t := time.NewTimer(f.d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

type none struct{}

// None never waits. Used in tests so catalog operations complete synchronously.
func None() port.Latency { return none{} }

func (none) Wait(context.Context) {}

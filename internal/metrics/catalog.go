package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/catalog"
	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Total number of catalog operations by outcome",
		},
		[]string{"operation", "result"},
	)

	catalogOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_operation_duration_seconds",
			Help:    "Catalog operation duration in seconds, simulated latency included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	catalogMediaItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_media_items",
			Help: "Number of media records seen on the last listing",
		},
	)
)

// InstrumentedCatalog records metrics around every call to the wrapped catalog.
type InstrumentedCatalog struct {
	next port.Catalog
}

// compile-time check: *InstrumentedCatalog must satisfy port.Catalog
var _ port.Catalog = (*InstrumentedCatalog)(nil)

func NewInstrumentedCatalog(next port.Catalog) *InstrumentedCatalog {
	return &InstrumentedCatalog{next: next}
}

func (c *InstrumentedCatalog) Init(ctx context.Context) {
	start := time.Now()
	c.next.Init(ctx)
	observe("init", start, nil)
}

func (c *InstrumentedCatalog) Create(ctx context.Context, in port.CreateMediaInput) (model.Media, error) {
	start := time.Now()
	m, err := c.next.Create(ctx, in)
	observe("create", start, err)
	return m, err
}

func (c *InstrumentedCatalog) List(ctx context.Context) ([]model.Media, error) {
	start := time.Now()
	items, err := c.next.List(ctx)
	observe("list", start, err)
	if err == nil {
		catalogMediaItems.Set(float64(len(items)))
	}
	return items, err
}

func (c *InstrumentedCatalog) Get(ctx context.Context, id uuid.UUID) (model.Media, error) {
	start := time.Now()
	m, err := c.next.Get(ctx, id)
	observe("get", start, err)
	return m, err
}

func (c *InstrumentedCatalog) Update(ctx context.Context, id uuid.UUID, fields port.UpdateMediaFields) (model.Media, error) {
	start := time.Now()
	m, err := c.next.Update(ctx, id, fields)
	observe("update", start, err)
	return m, err
}

func (c *InstrumentedCatalog) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, id)
	observe("delete", start, err)
	return err
}

func observe(op string, start time.Time, err error) {
	catalogOperationsTotal.WithLabelValues(op, resultLabel(err)).Inc()
	catalogOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, catalog.ErrNotFound):
		return "not_found"
	case errors.Is(err, catalog.ErrValidation):
		return "invalid"
	case errors.Is(err, catalog.ErrStorageUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

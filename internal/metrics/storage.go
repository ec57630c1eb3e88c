package metrics

import "github.com/prometheus/client_golang/prometheus"

// UsageReporter is a slot store that accounts the bytes it holds.
type UsageReporter interface {
	Used() int64
}

// NewLocalStorageGauge exposes the bytes an in-process slot store counts against its quota.
// The caller registers it.
func NewLocalStorageGauge(u UsageReporter) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "catalog_local_storage_bytes",
			Help: "Bytes used in the local slot store, keys included",
		},
		func() float64 { return float64(u.Used()) },
	)
}

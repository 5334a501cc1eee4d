package parquetdb

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordUpsert is called after each upsert operation.
	// rows is the number of rows in the batch, duration the total time taken,
	// err nil if successful.
	RecordUpsert(table string, rows int, duration time.Duration, err error)

	// RecordRead is called after each read operation.
	// rows is the number of rows returned after filtering and projection.
	RecordRead(table string, rows int, duration time.Duration, err error)

	// RecordValidationFailure is called for each row that fails an advisory
	// validator. The row is persisted regardless.
	RecordValidationFailure(table string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordUpsert(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRead(string, int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordValidationFailure(string)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	UpsertCount        atomic.Int64
	UpsertRows         atomic.Int64
	UpsertErrors       atomic.Int64
	UpsertTotalNanos   atomic.Int64
	ReadCount          atomic.Int64
	ReadRows           atomic.Int64
	ReadErrors         atomic.Int64
	ReadTotalNanos     atomic.Int64
	ValidationFailures atomic.Int64
}

// RecordUpsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpsert(_ string, rows int, duration time.Duration, err error) {
	b.UpsertCount.Add(1)
	b.UpsertRows.Add(int64(rows))
	b.UpsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.UpsertErrors.Add(1)
	}
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(_ string, rows int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadRows.Add(int64(rows))
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordValidationFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordValidationFailure(string) {
	b.ValidationFailures.Add(1)
}

package transform

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting batch metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBatch is called after each Apply call.
	// points is the number of input points, err is nil if successful.
	RecordBatch(points int, duration time.Duration, err error)

	// RecordChunk is called after a worker finished a chunk.
	RecordChunk(points int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordChunk(int, time.Duration)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BatchCount      atomic.Int64
	BatchErrors     atomic.Int64
	BatchPoints     atomic.Int64
	BatchTotalNanos atomic.Int64
	ChunkCount      atomic.Int64
	ChunkPoints     atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(points int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchPoints.Add(int64(points))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// RecordChunk implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunk(points int, _ time.Duration) {
	b.ChunkCount.Add(1)
	b.ChunkPoints.Add(int64(points))
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	BatchCount    int64
	BatchErrors   int64
	BatchPoints   int64
	BatchAvgNanos int64
	ChunkCount    int64
	ChunkPoints   int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BatchCount:    b.BatchCount.Load(),
		BatchErrors:   b.BatchErrors.Load(),
		BatchPoints:   b.BatchPoints.Load(),
		BatchAvgNanos: b.getAvgBatchNanos(),
		ChunkCount:    b.ChunkCount.Load(),
		ChunkPoints:   b.ChunkPoints.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBatchNanos() int64 {
	count := b.BatchCount.Load()
	if count == 0 {
		return 0
	}
	return b.BatchTotalNanos.Load() / count
}

package cornertable

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter   prometheus.Counter
//	    removeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordInsert(duration time.Duration, err error) {
//	    p.insertCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordInsert is called after each simplex insertion.
	// err is non-nil if the insertion was rejected.
	RecordInsert(duration time.Duration, err error)

	// RecordRemoveSimplices is called after each batch simplex removal.
	// requested is the number of indices passed in, res what was deleted.
	RecordRemoveSimplices(requested int, res Removal, duration time.Duration)

	// RecordRemoveVertex is called after each vertex removal.
	// found reports whether the position matched a vertex.
	RecordRemoveVertex(found bool, res Removal, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)                 {}
func (NoopMetricsCollector) RecordRemoveSimplices(int, Removal, time.Duration) {}
func (NoopMetricsCollector) RecordRemoveVertex(bool, Removal, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount        atomic.Int64
	InsertErrors       atomic.Int64
	InsertTotalNanos   atomic.Int64
	RemoveCount        atomic.Int64
	RemoveRequested    atomic.Int64
	RemoveTotalNanos   atomic.Int64
	VertexRemoveCount  atomic.Int64
	VertexRemoveMisses atomic.Int64
	SimplicesRemoved   atomic.Int64
	VerticesRemoved    atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemoveSimplices implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemoveSimplices(requested int, res Removal, duration time.Duration) {
	b.RemoveCount.Add(1)
	b.RemoveRequested.Add(int64(requested))
	b.RemoveTotalNanos.Add(duration.Nanoseconds())
	b.SimplicesRemoved.Add(int64(res.Simplices))
	b.VerticesRemoved.Add(int64(res.Vertices))
}

// RecordRemoveVertex implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemoveVertex(found bool, res Removal, duration time.Duration) {
	b.VertexRemoveCount.Add(1)
	b.RemoveTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.VertexRemoveMisses.Add(1)
	}
	b.SimplicesRemoved.Add(int64(res.Simplices))
	b.VerticesRemoved.Add(int64(res.Vertices))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:        b.InsertCount.Load(),
		InsertErrors:       b.InsertErrors.Load(),
		InsertAvgNanos:     b.getAvgInsertNanos(),
		RemoveCount:        b.RemoveCount.Load(),
		RemoveRequested:    b.RemoveRequested.Load(),
		VertexRemoveCount:  b.VertexRemoveCount.Load(),
		VertexRemoveMisses: b.VertexRemoveMisses.Load(),
		SimplicesRemoved:   b.SimplicesRemoved.Load(),
		VerticesRemoved:    b.VerticesRemoved.Load(),
		RemoveAvgNanos:     b.getAvgRemoveNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgRemoveNanos() int64 {
	count := b.RemoveCount.Load() + b.VertexRemoveCount.Load()
	if count == 0 {
		return 0
	}
	return b.RemoveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount        int64
	InsertErrors       int64
	InsertAvgNanos     int64
	RemoveCount        int64
	RemoveRequested    int64
	VertexRemoveCount  int64
	VertexRemoveMisses int64
	SimplicesRemoved   int64
	VerticesRemoved    int64
	RemoveAvgNanos     int64
}

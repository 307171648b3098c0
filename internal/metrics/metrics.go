package metrics

import (
	"sync"
	"time"
)

type viewStats struct {
	fetches          int
	fetchErrors      int
	cacheHits        int
	cacheMisses      int
	renders          int
	lastFetchLatency time.Duration
}

// Snapshot is a read-only copy of one view's counters.
type Snapshot struct {
	Fetches          int
	FetchErrors      int
	CacheHits        int
	CacheMisses      int
	Renders          int
	LastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches,
// cache behavior and renders, keyed by view (calendar, table, banner).
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*viewStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*viewStats),
		otel:  otel,
	}
}

// RecordFetch increments fetch counters for a view and stores the last
// observed upstream latency.
func (r *Recorder) RecordFetch(view string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(view)
	r.mu.Lock()
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.fetchErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(view, duration, err)
	}
}

// RecordCacheLookup tracks a month-cache hit or miss.
func (r *Recorder) RecordCacheLookup(view string, hit bool) {
	if r == nil {
		return
	}

	stats := r.ensureStats(view)
	r.mu.Lock()
	if hit {
		stats.cacheHits++
	} else {
		stats.cacheMisses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(view, hit)
	}
}

// RecordRender counts a completed fragment render.
func (r *Recorder) RecordRender(view string) {
	if r == nil {
		return
	}

	stats := r.ensureStats(view)
	r.mu.Lock()
	stats.renders++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRender(view)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ViewSnapshot returns a copy of the counters recorded for a view.
func (r *Recorder) ViewSnapshot(view string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[view]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Fetches:          stats.fetches,
		FetchErrors:      stats.fetchErrors,
		CacheHits:        stats.cacheHits,
		CacheMisses:      stats.cacheMisses,
		Renders:          stats.renders,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

func (r *Recorder) ensureStats(view string) *viewStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[view]
	if !ok {
		stats = &viewStats{}
		r.stats[view] = stats
	}
	return stats
}

package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderFetchCounters(t *testing.T) {
	r := NewRecorder()

	r.RecordFetch("calendar", 120*time.Millisecond, nil)
	r.RecordFetch("calendar", 80*time.Millisecond, errors.New("boom"))
	r.RecordFetch("table", 40*time.Millisecond, nil)

	snap := r.ViewSnapshot("calendar")
	if snap.Fetches != 2 {
		t.Fatalf("expected 2 fetches, got %d", snap.Fetches)
	}
	if snap.FetchErrors != 1 {
		t.Fatalf("expected 1 fetch error, got %d", snap.FetchErrors)
	}
	if snap.LastFetchLatency != 80*time.Millisecond {
		t.Fatalf("unexpected last latency %v", snap.LastFetchLatency)
	}
	if got := r.ViewSnapshot("table").Fetches; got != 1 {
		t.Fatalf("expected 1 table fetch, got %d", got)
	}
}

func TestRecorderCacheCounters(t *testing.T) {
	r := NewRecorder()

	r.RecordCacheLookup("calendar", true)
	r.RecordCacheLookup("calendar", false)
	r.RecordCacheLookup("calendar", false)

	snap := r.ViewSnapshot("calendar")
	if snap.CacheHits != 1 || snap.CacheMisses != 2 {
		t.Fatalf("unexpected cache counters %+v", snap)
	}
}

func TestRecorderRenderCounter(t *testing.T) {
	r := NewRecorder()
	r.RecordRender("banner")
	r.RecordRender("banner")
	if got := r.ViewSnapshot("banner").Renders; got != 2 {
		t.Fatalf("expected 2 renders, got %d", got)
	}
}

func TestRecorderUnknownViewSnapshot(t *testing.T) {
	r := NewRecorder()
	if snap := r.ViewSnapshot("nothing"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordFetch("calendar", time.Second, nil)
	r.RecordCacheLookup("calendar", true)
	r.RecordRender("calendar")
	if snap := r.ViewSnapshot("calendar"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot from nil recorder")
	}
}

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected a recorder even when disabled")
	}
	if handler != nil {
		t.Fatalf("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestSetupEnabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
	}()
	if handler == nil {
		t.Fatalf("expected a prometheus handler")
	}
	rec.RecordFetch("calendar", 10*time.Millisecond, nil)
	rec.RecordCacheLookup("calendar", false)
	rec.RecordRender("calendar")
	rec.RecordHTTPRequest("GET", "/calendar", 200, 5*time.Millisecond)
}

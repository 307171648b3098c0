package view

import (
	"context"
	"html/template"
	"log/slog"
	"sync"
	"time"

	"club-calendar-service/internal/category"
	"club-calendar-service/internal/domain"
	"club-calendar-service/internal/logging"
	"club-calendar-service/internal/metrics"
	"club-calendar-service/internal/providers"
	"club-calendar-service/internal/render"
	"club-calendar-service/internal/schedule"
)

const tableViewName = "table"

// TableConfig wires a TableController.
type TableConfig struct {
	Provider providers.MatchProvider
	Renderer *render.Renderer
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
}

// TableController drives the flat table view. The full match set is fetched
// once and kept; category changes only filter and re-render the held set.
type TableController struct {
	provider providers.MatchProvider
	renderer *render.Renderer
	metrics  *metrics.Recorder
	logger   *slog.Logger

	mu     sync.Mutex
	state  State
	html   template.HTML
	bucket category.Bucket
	full   []domain.Match // sorted ascending by date
	loaded bool
}

// NewTable constructs an idle table controller with bucket all.
func NewTable(cfg TableConfig) *TableController {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TableController{
		provider: cfg.Provider,
		renderer: cfg.Renderer,
		metrics:  cfg.Metrics,
		logger:   logger,
		state:    StateIdle,
		bucket:   category.All,
	}
}

// Load fetches the full match set on first call and renders. Subsequent calls
// reuse the held set; after an error the next Load retries the fetch.
func (t *TableController) Load(ctx context.Context) error {
	t.mu.Lock()
	if t.loaded {
		t.state = StateRendered
		t.renderLocked()
		t.mu.Unlock()
		return nil
	}
	t.state = StateLoading
	t.html = t.renderer.LoadingPanel()
	t.mu.Unlock()

	logger := logging.FromContext(ctx, t.logger)
	start := time.Now()
	matches, err := t.provider.FetchMatches(ctx, providers.All)
	t.metrics.RecordFetch(tableViewName, time.Since(start), err)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		logger.Warn("table fetch failed", "error", err)
		t.state = StateError
		t.html = t.renderer.ErrorPanel()
		return err
	}
	t.full = schedule.SortByDate(matches)
	t.loaded = true
	t.state = StateRendered
	t.renderLocked()
	return nil
}

// SetCategory switches the filter and re-renders from the held set. Before
// the first successful Load it only records the bucket.
func (t *TableController) SetCategory(b category.Bucket) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bucket == b {
		return
	}
	t.bucket = b
	if t.loaded {
		t.state = StateRendered
		t.renderLocked()
	}
}

// HTML returns the last rendered fragment.
func (t *TableController) HTML() template.HTML {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.html
}

// State returns the current lifecycle phase.
func (t *TableController) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Bucket returns the active filter bucket.
func (t *TableController) Bucket() category.Bucket {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bucket
}

// Matches returns the held set filtered by the active bucket, for the JSON
// view model.
func (t *TableController) Matches() []domain.Match {
	t.mu.Lock()
	defer t.mu.Unlock()
	return filterByBucket(t.full, t.bucket)
}

func (t *TableController) renderLocked() {
	t.html = t.renderer.Table(filterByBucket(t.full, t.bucket))
	t.metrics.RecordRender(tableViewName)
}

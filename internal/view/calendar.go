package view

import (
	"context"
	"html/template"
	"log/slog"
	"sync"
	"time"

	"club-calendar-service/internal/cache"
	"club-calendar-service/internal/category"
	"club-calendar-service/internal/domain"
	"club-calendar-service/internal/logging"
	"club-calendar-service/internal/metrics"
	"club-calendar-service/internal/providers"
	"club-calendar-service/internal/render"
	"club-calendar-service/internal/schedule"
)

const calendarViewName = "calendar"

// State is the calendar controller's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateError:
		return "error"
	}
	return "unknown"
}

// CalendarConfig wires a CalendarController.
type CalendarConfig struct {
	Provider providers.MatchProvider
	Cache    *cache.Cache
	Renderer *render.Renderer
	Metrics  *metrics.Recorder
	Logger   *slog.Logger

	// Now is the clock; defaults to time.Now.
	Now func() time.Time
	// Month selects the initially visible month; zero means the current one.
	Month time.Time
	// Bucket is the initial filter bucket; empty means all.
	Bucket category.Bucket
	// Width is the initial viewport width; zero means unknown and renders
	// the desktop grid.
	Width int
	// Debounce delays the resize re-render; zero or negative re-renders
	// synchronously. Production wiring passes ResizeDebounce.
	Debounce time.Duration
}

// CalendarController drives the monthly calendar view. It fetches the visible
// month per filter bucket through the TTL cache, renders a grid or card list
// depending on viewport width, and can switch to the full match list. All
// state lives behind the mutex; Dispatch is safe for concurrent use.
type CalendarController struct {
	provider providers.MatchProvider
	cache    *cache.Cache
	renderer *render.Renderer
	metrics  *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
	debounce time.Duration

	mu          sync.Mutex
	state       State
	html        template.HTML
	month       time.Time // first day of the visible month
	bucket      category.Bucket
	mode        Mode
	width       int
	matches     []domain.Match // visible month, current bucket
	monthLoaded bool
	full        []domain.Match // lazily fetched for list mode
	fullLoaded  bool
	generation  uint64
	resizeTimer *time.Timer
}

// NewCalendar constructs an idle controller showing the current month with
// bucket all. Nothing is fetched until the first load action.
func NewCalendar(cfg CalendarConfig) *CalendarController {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	start := cfg.Month
	if start.IsZero() {
		start = now()
	}
	first, _ := schedule.MonthRange(start.Year(), start.Month())

	bucket := cfg.Bucket
	if bucket == "" {
		bucket = category.All
	}

	return &CalendarController{
		provider: cfg.Provider,
		cache:    cfg.Cache,
		renderer: cfg.Renderer,
		metrics:  cfg.Metrics,
		logger:   logger,
		now:      now,
		debounce: cfg.Debounce,
		state:    StateIdle,
		month:    first,
		bucket:   bucket,
		mode:     ModeCalendar,
		width:    cfg.Width,
	}
}

// Dispatch applies one action. Load-bearing actions block until the fetch
// completes; a load superseded by a newer one discards its result silently.
func (c *CalendarController) Dispatch(ctx context.Context, a Action) error {
	switch a.Kind {
	case KindLoad:
		if !a.Month.IsZero() {
			c.mu.Lock()
			first, _ := schedule.MonthRange(a.Month.Year(), a.Month.Month())
			c.month = first
			c.monthLoaded = false
			c.mu.Unlock()
		}
		return c.reload(ctx)

	case KindPrevMonth:
		c.shiftMonth(-1)
		return c.reload(ctx)

	case KindNextMonth:
		c.shiftMonth(1)
		return c.reload(ctx)

	case KindSetCategory:
		return c.setCategory(ctx, a.Bucket)

	case KindSetView:
		return c.setView(ctx, a.Mode)

	case KindResize:
		c.resize(a.Width)
		return nil
	}
	return nil
}

// State returns the current lifecycle phase.
func (c *CalendarController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HTML returns the last rendered fragment: the loading panel while a fetch is
// in flight, the error panel after a failed one.
func (c *CalendarController) HTML() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.html
}

// Month returns the first day of the visible month.
func (c *CalendarController) Month() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.month
}

// Bucket returns the active filter bucket.
func (c *CalendarController) Bucket() category.Bucket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bucket
}

func (c *CalendarController) shiftMonth(months int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.month = c.month.AddDate(0, months, 0)
	c.monthLoaded = false
}

func (c *CalendarController) setCategory(ctx context.Context, b category.Bucket) error {
	c.mu.Lock()
	if c.bucket == b {
		c.mu.Unlock()
		return nil
	}
	c.bucket = b
	c.monthLoaded = false

	// In list mode the full set is already here; filtering is local.
	if c.mode == ModeList && c.fullLoaded {
		c.state = StateRendered
		c.renderLocked()
		c.mu.Unlock()
		return nil
	}
	if c.mode == ModeList {
		c.mu.Unlock()
		return c.loadFull(ctx)
	}
	c.mu.Unlock()
	return c.reload(ctx)
}

func (c *CalendarController) setView(ctx context.Context, mode Mode) error {
	if mode != ModeCalendar && mode != ModeList {
		mode = ModeCalendar
	}

	c.mu.Lock()
	if c.mode == mode {
		c.mu.Unlock()
		return nil
	}
	c.mode = mode

	if mode == ModeList {
		if c.fullLoaded {
			c.state = StateRendered
			c.renderLocked()
			c.mu.Unlock()
			return nil
		}
		c.mu.Unlock()
		return c.loadFull(ctx)
	}

	if c.monthLoaded {
		c.state = StateRendered
		c.renderLocked()
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()
	return c.reload(ctx)
}

// reload fetches the visible month for the active bucket, via the cache, and
// renders. The generation token makes a slow response lose to any load that
// started after it.
func (c *CalendarController) reload(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	month := c.month
	bucket := c.bucket
	c.state = StateLoading
	c.html = c.renderer.LoadingPanel()
	c.mu.Unlock()

	if cached, ok := c.cache.Get(month.Year(), month.Month(), bucket); ok {
		c.metrics.RecordCacheLookup(calendarViewName, true)
		return c.finishMonth(gen, cached, nil)
	}
	c.metrics.RecordCacheLookup(calendarViewName, false)

	first, last := schedule.MonthRange(month.Year(), month.Month())
	query := providers.Query{
		From:     schedule.FormatDate(first),
		To:       schedule.FormatDate(last),
		Category: bucket,
	}

	logger := logging.FromContext(ctx, c.logger)
	start := time.Now()
	matches, err := c.provider.FetchMatches(ctx, query)
	c.metrics.RecordFetch(calendarViewName, time.Since(start), err)
	if err != nil {
		logger.Warn("month fetch failed",
			logging.FieldMonth, month.Format(schedule.MonthLayout),
			logging.FieldBucket, string(bucket),
			"error", err)
	} else {
		c.cache.Put(month.Year(), month.Month(), bucket, matches)
	}
	return c.finishMonth(gen, matches, err)
}

func (c *CalendarController) finishMonth(gen uint64, matches []domain.Match, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("discarding superseded month load")
		return nil
	}
	if err != nil {
		c.state = StateError
		c.html = c.renderer.ErrorPanel()
		return err
	}
	c.matches = matches
	c.monthLoaded = true
	c.state = StateRendered
	c.renderLocked()
	return nil
}

// loadFull fetches every match once for list mode; later mode toggles reuse
// the held set.
func (c *CalendarController) loadFull(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state = StateLoading
	c.html = c.renderer.LoadingPanel()
	c.mu.Unlock()

	logger := logging.FromContext(ctx, c.logger)
	start := time.Now()
	matches, err := c.provider.FetchMatches(ctx, providers.All)
	c.metrics.RecordFetch(calendarViewName, time.Since(start), err)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("discarding superseded full load")
		return nil
	}
	if err != nil {
		logger.Warn("full fetch failed", "error", err)
		c.state = StateError
		c.html = c.renderer.ErrorPanel()
		return err
	}
	c.full = matches
	c.fullLoaded = true
	c.state = StateRendered
	c.renderLocked()
	return nil
}

// resize stores the viewport width and, when the layout crosses the mobile
// breakpoint in calendar mode, re-renders from the held matches without
// refetching, debounced.
func (c *CalendarController) resize(width int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	crossed := isMobile(c.width) != isMobile(width)
	c.width = width

	if !crossed || c.mode != ModeCalendar || c.state != StateRendered {
		return
	}

	if c.resizeTimer != nil {
		c.resizeTimer.Stop()
	}
	if c.debounce <= 0 {
		c.renderLocked()
		return
	}
	c.resizeTimer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.state == StateRendered && c.mode == ModeCalendar {
			c.renderLocked()
		}
	})
}

// renderLocked rebuilds the fragment from held state. Callers hold the mutex.
func (c *CalendarController) renderLocked() {
	switch {
	case c.mode == ModeList:
		c.html = c.renderer.FullList(filterByBucket(c.full, c.bucket))
	case isMobile(c.width):
		c.html = c.renderer.MatchesList(c.matches)
	default:
		c.html = c.renderer.MonthGrid(c.month, c.matches, c.now())
	}
	c.metrics.RecordRender(calendarViewName)
}

// isMobile treats zero (unknown) width as desktop.
func isMobile(width int) bool {
	return width > 0 && width < MobileBreakpoint
}

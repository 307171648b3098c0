// Package http exposes the views as HTML fragments plus a small JSON API.
// Fragment endpoints return ready-to-swap markup; the page shell around them
// is out of scope.
package http

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"club-calendar-service/internal/cache"
	"club-calendar-service/internal/category"
	"club-calendar-service/internal/domain"
	"club-calendar-service/internal/i18n"
	"club-calendar-service/internal/metrics"
	"club-calendar-service/internal/providers"
	"club-calendar-service/internal/render"
	"club-calendar-service/internal/schedule"
	"club-calendar-service/internal/view"
)

type nowFunc func() time.Time

// HandlerConfig wires a Handler.
type HandlerConfig struct {
	Provider providers.MatchProvider
	Cache    *cache.Cache
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
	Now      nowFunc

	ClubName string
	// Language is the fallback when the request carries no lang parameter.
	Language string
}

// Handler serves the fragment and API routes. Controllers are built per
// request; the month cache and provider are shared, so repeat calendar
// requests inside the TTL window skip the upstream fetch.
type Handler struct {
	provider providers.MatchProvider
	cache    *cache.Cache
	metrics  *metrics.Recorder
	logger   *slog.Logger
	now      nowFunc
	clubName string
	language string

	mu        sync.Mutex
	renderers map[string]*render.Renderer
}

// NewHandler constructs a Handler with defaults.
func NewHandler(cfg HandlerConfig) *Handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	lang := cfg.Language
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	return &Handler{
		provider:  cfg.Provider,
		cache:     cfg.Cache,
		metrics:   cfg.Metrics,
		logger:    logger,
		now:       now,
		clubName:  cfg.ClubName,
		language:  lang,
		renderers: make(map[string]*render.Renderer),
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service serves stale-tolerant
// read-only views, so readiness does not gate on the upstream API.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Calendar returns the monthly calendar fragment.
// Params: month=YYYY-MM, category, view=calendar|list, width, lang.
func (h *Handler) Calendar(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	q := r.URL.Query()
	month := h.now()
	if raw := q.Get("month"); raw != "" {
		parsed, err := time.Parse(schedule.MonthLayout, raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid month format (expected YYYY-MM)", h.logger)
			return
		}
		month = parsed
	}

	width := 0
	if raw := q.Get("width"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid width", h.logger)
			return
		}
		width = parsed
	}

	controller := view.NewCalendar(view.CalendarConfig{
		Provider: h.provider,
		Cache:    h.cache,
		Renderer: h.rendererFor(q.Get("lang")),
		Metrics:  h.metrics,
		Logger:   loggerFromRequest(r, h.logger),
		Now:      h.now,
		Month:    month,
		Bucket:   parseBucket(q.Get("category")),
		Width:    width,
	})

	action := view.Load()
	if q.Get("view") == string(view.ModeList) {
		action = view.SetView(view.ModeList)
	}

	status := nethttp.StatusOK
	if err := controller.Dispatch(r.Context(), action); err != nil {
		// The fragment body is the localized error panel either way.
		status = nethttp.StatusBadGateway
	}
	writeFragment(w, status, controller.HTML(), h.logger)
}

// Table returns the flat table fragment. Params: category, lang.
func (h *Handler) Table(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	q := r.URL.Query()
	controller := view.NewTable(view.TableConfig{
		Provider: h.provider,
		Renderer: h.rendererFor(q.Get("lang")),
		Metrics:  h.metrics,
		Logger:   loggerFromRequest(r, h.logger),
	})
	controller.SetCategory(parseBucket(q.Get("category")))

	status := nethttp.StatusOK
	if err := controller.Load(r.Context()); err != nil {
		status = nethttp.StatusBadGateway
	}
	writeFragment(w, status, controller.HTML(), h.logger)
}

// Upcoming returns the banner fragment, empty when no upcoming matches.
// Params: lang.
func (h *Handler) Upcoming(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	banner := view.NewBanner(view.BannerConfig{
		Provider: h.provider,
		Renderer: h.rendererFor(r.URL.Query().Get("lang")),
		Metrics:  h.metrics,
		Logger:   loggerFromRequest(r, h.logger),
		Now:      h.now,
	})

	fragment, err := banner.Render(r.Context())
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "upstream unavailable", h.logger)
		return
	}
	writeFragment(w, nethttp.StatusOK, fragment, h.logger)
}

// APIMatches returns the JSON view model: the matches for an optional month
// window and category, sorted ascending by date.
// Params: month=YYYY-MM, category.
func (h *Handler) APIMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	q := r.URL.Query()
	query := providers.Query{Category: parseBucket(q.Get("category"))}
	if raw := q.Get("month"); raw != "" {
		parsed, err := time.Parse(schedule.MonthLayout, raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid month format (expected YYYY-MM)", h.logger)
			return
		}
		first, last := schedule.MonthRange(parsed.Year(), parsed.Month())
		query.From = schedule.FormatDate(first)
		query.To = schedule.FormatDate(last)
	}

	matches, err := h.provider.FetchMatches(r.Context(), query)
	if err != nil {
		loggerFromRequest(r, h.logger).Warn("api fetch failed", "error", err)
		writeError(w, r, nethttp.StatusBadGateway, "upstream unavailable", h.logger)
		return
	}

	sorted := schedule.SortByDate(matches)
	payload := domain.MatchesResponse{
		Date:    schedule.FormatDate(h.now()),
		Count:   len(sorted),
		Matches: sorted,
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// rendererFor returns the cached per-language renderer, building it on first
// use. Unsupported languages fall back inside i18n.Load.
func (h *Handler) rendererFor(lang string) *render.Renderer {
	if lang == "" {
		lang = h.language
	}
	key := strings.ToLower(lang)

	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.renderers[key]; ok {
		return r
	}
	r := render.New(i18n.Load(key), h.clubName)
	h.renderers[key] = r
	return r
}

// parseBucket maps the category parameter onto a filter bucket. Unknown
// values pass through upper-cased, keeping the loose contains-matching
// semantics of the filter downstream.
func parseBucket(raw string) category.Bucket {
	if raw == "" || strings.EqualFold(raw, string(category.All)) {
		return category.All
	}
	upper := strings.ToUpper(strings.TrimSpace(raw))
	for _, b := range category.Buckets() {
		if string(b) == upper {
			return b
		}
	}
	return category.Bucket(upper)
}

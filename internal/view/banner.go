package view

import (
	"context"
	"html/template"
	"log/slog"
	"sort"
	"time"

	"club-calendar-service/internal/category"
	"club-calendar-service/internal/domain"
	"club-calendar-service/internal/logging"
	"club-calendar-service/internal/metrics"
	"club-calendar-service/internal/providers"
	"club-calendar-service/internal/render"
	"club-calendar-service/internal/schedule"
)

const bannerViewName = "banner"

// ComputeUpcoming builds the banner slots from the full match set: at most
// one next match per banner bucket, nearest first.
//
// Postponed and cancelled matches, past dates and unparseable dates are
// excluded. SUB8/SUB10/SUB12 and literal RUGBY DAY matches are consolidated
// into a single synthetic RUGBY DAY slot holding the nearest of them, and are
// skipped when filling the per-bucket slots. A label matching several of the
// remaining buckets fills each of them, as on the original site.
func ComputeUpcoming(matches []domain.Match, now time.Time) []domain.Upcoming {
	type candidate struct {
		match domain.Match
		days  int
	}

	var candidates []candidate
	for _, m := range matches {
		if m.Status.IsCalledOff() {
			continue
		}
		date, err := schedule.ParseDate(m.Date)
		if err != nil {
			continue
		}
		days := schedule.DaysUntil(date, now)
		if days < 0 {
			continue
		}
		candidates = append(candidates, candidate{match: m, days: days})
	}

	var slots []domain.Upcoming

	var youth *candidate
	for i := range candidates {
		if !category.ConsolidatedYouth(candidates[i].match.Category) {
			continue
		}
		if youth == nil || candidates[i].days < youth.days {
			youth = &candidates[i]
		}
	}
	if youth != nil {
		slots = append(slots, domain.Upcoming{
			Bucket:    string(category.RugbyDay),
			Match:     youth.match,
			DaysUntil: youth.days,
		})
	}

	for _, b := range category.BannerBuckets() {
		var best *candidate
		for i := range candidates {
			if category.ConsolidatedYouth(candidates[i].match.Category) {
				continue
			}
			if !category.Matches(b, candidates[i].match.Category) {
				continue
			}
			if best == nil || candidates[i].days < best.days {
				best = &candidates[i]
			}
		}
		if best != nil {
			slots = append(slots, domain.Upcoming{
				Bucket:    string(b),
				Match:     best.match,
				DaysUntil: best.days,
			})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].DaysUntil < slots[j].DaysUntil
	})
	return slots
}

// BannerConfig wires an UpcomingBanner.
type BannerConfig struct {
	Provider providers.MatchProvider
	Renderer *render.Renderer
	Metrics  *metrics.Recorder
	Logger   *slog.Logger

	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

// UpcomingBanner renders the upcoming-matches banner. It holds no state
// between renders; every render fetches the full set.
type UpcomingBanner struct {
	provider providers.MatchProvider
	renderer *render.Renderer
	metrics  *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewBanner constructs an UpcomingBanner.
func NewBanner(cfg BannerConfig) *UpcomingBanner {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UpcomingBanner{
		provider: cfg.Provider,
		renderer: cfg.Renderer,
		metrics:  cfg.Metrics,
		logger:   logger,
		now:      now,
	}
}

// Render fetches, computes the slots and renders the banner fragment. An
// empty slot set renders as the empty string: the banner hides entirely.
func (b *UpcomingBanner) Render(ctx context.Context) (template.HTML, error) {
	logger := logging.FromContext(ctx, b.logger)

	start := time.Now()
	matches, err := b.provider.FetchMatches(ctx, providers.All)
	b.metrics.RecordFetch(bannerViewName, time.Since(start), err)
	if err != nil {
		logger.Warn("banner fetch failed", "error", err)
		return "", err
	}

	slots := ComputeUpcoming(matches, b.now())
	b.metrics.RecordRender(bannerViewName)
	return b.renderer.Banner(slots), nil
}

// Slots fetches and computes the banner slots without rendering, for the JSON
// view model.
func (b *UpcomingBanner) Slots(ctx context.Context) ([]domain.Upcoming, error) {
	matches, err := b.provider.FetchMatches(ctx, providers.All)
	if err != nil {
		return nil, err
	}
	return ComputeUpcoming(matches, b.now()), nil
}

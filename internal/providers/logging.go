package providers

import (
	"context"
	"log/slog"
	"time"

	"club-calendar-service/internal/domain"
	"club-calendar-service/internal/logging"
)

// LoggingProvider decorates a MatchProvider with per-fetch logging. It keeps
// the inner provider's error untouched.
type LoggingProvider struct {
	inner  MatchProvider
	logger *slog.Logger
	name   string
}

// NewLoggingProvider wraps inner; name identifies the provider in log records.
func NewLoggingProvider(inner MatchProvider, logger *slog.Logger, name string) *LoggingProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: inner, logger: logger, name: name}
}

// FetchMatches implements MatchProvider.
func (p *LoggingProvider) FetchMatches(ctx context.Context, q Query) ([]domain.Match, error) {
	logger := logging.FromContext(ctx, p.logger)
	start := time.Now()

	matches, err := p.inner.FetchMatches(ctx, q)
	duration := time.Since(start)

	if err != nil {
		logger.Warn("upstream fetch failed",
			slog.String("provider", p.name),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Debug("upstream fetch complete",
		slog.String("provider", p.name),
		slog.Int(logging.FieldCount, len(matches)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return matches, nil
}

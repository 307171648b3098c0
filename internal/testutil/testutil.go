// Package testutil holds the shared test doubles: a fixed clock, a stub
// match provider and match fixtures.
package testutil

import (
	"context"
	"sync"
	"time"

	"club-calendar-service/internal/domain"
	"club-calendar-service/internal/providers"
)

// Clock returns a clock function frozen at t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Date builds a frozen clock from a YYYY-MM-DD string; the layout is fixed,
// so a typo panics at test setup.
func Date(value string) func() time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return Clock(t)
}

// StubProvider is a canned providers.MatchProvider that records its queries.
type StubProvider struct {
	mu      sync.Mutex
	matches []domain.Match
	err     error
	queries []providers.Query

	// Fetch, when set, overrides the canned behavior entirely.
	Fetch func(ctx context.Context, q providers.Query) ([]domain.Match, error)
}

// NewStubProvider returns a provider serving the given matches.
func NewStubProvider(matches ...domain.Match) *StubProvider {
	return &StubProvider{matches: matches}
}

// FailWith makes every fetch return err until SetMatches is called.
func (s *StubProvider) FailWith(err error) *StubProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// SetMatches replaces the canned matches and clears any canned error.
func (s *StubProvider) SetMatches(matches ...domain.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = matches
	s.err = nil
}

// FetchMatches implements providers.MatchProvider.
func (s *StubProvider) FetchMatches(ctx context.Context, q providers.Query) ([]domain.Match, error) {
	if s.Fetch != nil {
		s.mu.Lock()
		s.queries = append(s.queries, q)
		s.mu.Unlock()
		return s.Fetch(ctx, q)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Match, len(s.matches))
	copy(out, s.matches)
	return out, nil
}

// Calls reports how many fetches were made.
func (s *StubProvider) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

// LastQuery returns the most recent query, or the zero Query before any call.
func (s *StubProvider) LastQuery() providers.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return providers.Query{}
	}
	return s.queries[len(s.queries)-1]
}

// Match builds a confirmed home fixture with boilerplate display fields.
func Match(id, date, category, opponent string) domain.Match {
	return domain.Match{
		ID:       id,
		Date:     date,
		Time:     "10:00",
		Category: category,
		Opponent: opponent,
		Location: "Son Moix",
		IsHome:   true,
		Status:   domain.StatusConfirmed,
	}
}

package providers

import (
	"context"
	"errors"
	"testing"

	"club-calendar-service/internal/domain"
)

type cannedProvider struct {
	matches []domain.Match
	err     error
	last    Query
}

func (p *cannedProvider) FetchMatches(ctx context.Context, q Query) ([]domain.Match, error) {
	p.last = q
	return p.matches, p.err
}

func TestLoggingProviderPassesThrough(t *testing.T) {
	inner := &cannedProvider{matches: []domain.Match{{ID: "m1", Date: "2024-03-10"}}}
	p := NewLoggingProvider(inner, nil, "test")

	q := Query{From: "2024-03-01", To: "2024-03-31"}
	matches, err := p.FetchMatches(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "m1" {
		t.Fatalf("unexpected matches %+v", matches)
	}
	if inner.last != q {
		t.Fatalf("query not forwarded: %+v", inner.last)
	}
}

func TestLoggingProviderKeepsErrors(t *testing.T) {
	wantErr := errors.New("boom")
	p := NewLoggingProvider(&cannedProvider{err: wantErr}, nil, "test")

	if _, err := p.FetchMatches(context.Background(), All); !errors.Is(err, wantErr) {
		t.Fatalf("expected the inner error, got %v", err)
	}
}

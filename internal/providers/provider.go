package providers

import (
	"context"

	"club-calendar-service/internal/category"
	"club-calendar-service/internal/domain"
)

// Query narrows an upstream fetch. Zero values mean "everything": an empty
// From/To drops the date window, bucket all drops the category parameter.
type Query struct {
	From     string
	To       string
	Category category.Bucket
}

// All is the unbounded query used by the table and banner views.
var All = Query{Category: category.All}

// MatchProvider defines how upstream match data is fetched and normalized.
// Implementations never retry on their own; a failed fetch surfaces to the
// controller, which shows an error panel until the user acts again.
type MatchProvider interface {
	FetchMatches(ctx context.Context, q Query) ([]domain.Match, error)
}

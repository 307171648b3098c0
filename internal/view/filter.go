package view

import (
	"club-calendar-service/internal/category"
	"club-calendar-service/internal/domain"
)

// filterByBucket keeps the matches whose raw category label belongs to the
// bucket, preserving order. Bucket all passes everything through.
func filterByBucket(matches []domain.Match, b category.Bucket) []domain.Match {
	if b == category.All {
		return matches
	}
	var filtered []domain.Match
	for _, m := range matches {
		if category.Matches(b, m.Category) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

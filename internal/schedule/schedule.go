// Package schedule holds the date parsing, grouping and sorting helpers the
// calendar views are built on. All dates use local wall-clock semantics.
package schedule

import (
	"sort"
	"time"

	"club-calendar-service/internal/domain"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MonthLayout defines the month-group key format (YYYY-MM).
const MonthLayout = "2006-01"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as zero-padded YYYY-MM-DD using its calendar
// fields, not UTC.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Midnight truncates a time to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsToday reports whether t falls on the same calendar day as now.
func IsToday(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month() && t.Day() == now.Day()
}

// MonthRange returns the first and last day of the given month, for building
// the upstream fetch window.
func MonthRange(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// DaysUntil returns the number of whole days between today and the match
// date, comparing calendar fields only. Today yields 0, tomorrow 1, past
// dates are negative; callers filter negatives out of upcoming computations.
func DaysUntil(matchDate, today time.Time) int {
	a := time.Date(matchDate.Year(), matchDate.Month(), matchDate.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b) / (24 * time.Hour))
}

// GroupByDate buckets matches under their date string. Relative order within
// each date is the input order.
func GroupByDate(matches []domain.Match) map[string][]domain.Match {
	groups := make(map[string][]domain.Match)
	for _, m := range matches {
		groups[m.Date] = append(groups[m.Date], m)
	}
	return groups
}

// GroupByMonth buckets matches under their YYYY-MM prefix. Dates shorter than
// seven characters group under themselves.
func GroupByMonth(matches []domain.Match) map[string][]domain.Match {
	groups := make(map[string][]domain.Match)
	for _, m := range matches {
		key := m.Date
		if len(key) > 7 {
			key = key[:7]
		}
		groups[key] = append(groups[key], m)
	}
	return groups
}

// SortedKeys returns the group keys in ascending lexical order, which for
// YYYY-MM-DD and YYYY-MM keys is chronological order.
func SortedKeys(groups map[string][]domain.Match) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortByDate returns a copy of matches sorted ascending by calendar date.
// The sort is stable: matches sharing a date keep their upstream order.
// Unparseable dates sort before parseable ones and keep their relative order.
func SortByDate(matches []domain.Match) []domain.Match {
	sorted := make([]domain.Match, len(matches))
	copy(sorted, matches)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, erri := ParseDate(sorted[i].Date)
		dj, errj := ParseDate(sorted[j].Date)
		if erri != nil || errj != nil {
			return erri != nil && errj == nil
		}
		return di.Before(dj)
	})
	return sorted
}

package schedule

import (
	"testing"
	"time"

	"club-calendar-service/internal/domain"
)

func date(value string, t *testing.T) time.Time {
	t.Helper()
	parsed, err := ParseDate(value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestFormatDateZeroPadded(t *testing.T) {
	got := FormatDate(time.Date(2024, time.March, 5, 15, 4, 5, 0, time.Local))
	if got != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %s", got)
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	if FormatDate(first) != "2024-02-01" {
		t.Fatalf("unexpected first day %s", FormatDate(first))
	}
	if FormatDate(last) != "2024-02-29" {
		t.Fatalf("unexpected last day %s", FormatDate(last))
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2024, time.March, 10, 13, 30, 0, 0, time.Local)

	cases := []struct {
		match string
		want  int
	}{
		{"2024-03-10", 0},
		{"2024-03-11", 1},
		{"2024-03-09", -1},
		{"2024-03-24", 14},
		{"2024-02-28", -11},
	}

	for _, tc := range cases {
		if got := DaysUntil(date(tc.match, t), today); got != tc.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", tc.match, got, tc.want)
		}
	}
}

func TestGroupByDatePreservesOrder(t *testing.T) {
	matches := []domain.Match{
		{ID: "a", Date: "2024-03-10"},
		{ID: "b", Date: "2024-03-12"},
		{ID: "c", Date: "2024-03-10"},
		{ID: "d", Date: "2024-03-10"},
	}

	groups := GroupByDate(matches)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	day := groups["2024-03-10"]
	if len(day) != 3 {
		t.Fatalf("expected 3 matches on 2024-03-10, got %d", len(day))
	}
	for i, id := range []string{"a", "c", "d"} {
		if day[i].ID != id {
			t.Fatalf("expected %s at position %d, got %s", id, i, day[i].ID)
		}
	}
}

// Stability law: grouping then flattening in date order reproduces the
// original per-date relative ordering.
func TestGroupByDateThenFlattenIsStable(t *testing.T) {
	matches := []domain.Match{
		{ID: "a", Date: "2024-03-12"},
		{ID: "b", Date: "2024-03-10"},
		{ID: "c", Date: "2024-03-12"},
		{ID: "d", Date: "2024-03-10"},
		{ID: "e", Date: "2024-03-11"},
	}

	groups := GroupByDate(matches)
	var flat []string
	for _, key := range SortedKeys(groups) {
		for _, m := range groups[key] {
			flat = append(flat, m.ID)
		}
	}

	want := []string{"b", "d", "e", "a", "c"}
	if len(flat) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(flat))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], flat[i])
		}
	}
}

func TestGroupByMonth(t *testing.T) {
	matches := []domain.Match{
		{ID: "a", Date: "2024-03-10"},
		{ID: "b", Date: "2024-04-02"},
		{ID: "c", Date: "2024-03-28"},
	}

	groups := GroupByMonth(matches)
	if len(groups["2024-03"]) != 2 {
		t.Fatalf("expected 2 matches in 2024-03, got %d", len(groups["2024-03"]))
	}
	if len(groups["2024-04"]) != 1 {
		t.Fatalf("expected 1 match in 2024-04, got %d", len(groups["2024-04"]))
	}
}

func TestSortByDateStable(t *testing.T) {
	matches := []domain.Match{
		{ID: "a", Date: "2024-04-01"},
		{ID: "b", Date: "2024-03-10"},
		{ID: "c", Date: "2024-03-10"},
		{ID: "d", Date: "2024-02-20"},
	}

	sorted := SortByDate(matches)

	want := []string{"d", "b", "c", "a"}
	for i := range want {
		if sorted[i].ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], sorted[i].ID)
		}
	}

	// Input must be untouched.
	if matches[0].ID != "a" {
		t.Fatalf("expected input slice to be left unmodified")
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2024, time.March, 10, 22, 0, 0, 0, time.Local)
	if !IsToday(date("2024-03-10", t), now) {
		t.Fatalf("expected 2024-03-10 to be today")
	}
	if IsToday(date("2024-03-11", t), now) {
		t.Fatalf("expected 2024-03-11 not to be today")
	}
}

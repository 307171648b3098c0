package cache

import (
	"testing"
	"time"

	"club-calendar-service/internal/category"
	"club-calendar-service/internal/domain"
)

func fixedClock(at *time.Time) func() time.Time {
	return func() time.Time { return *at }
}

func TestGetMiss(t *testing.T) {
	c := New(DefaultTTL)
	if _, ok := c.Get(2024, time.March, category.All); ok {
		t.Fatalf("expected a miss on an empty cache")
	}
}

func TestGetFreshHit(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	c := New(DefaultTTL)
	c.now = fixedClock(&now)

	c.Put(2024, time.March, category.Sub8, []domain.Match{{ID: "m1"}})

	now = now.Add(4 * time.Minute)
	matches, ok := c.Get(2024, time.March, category.Sub8)
	if !ok {
		t.Fatalf("expected a hit before the TTL elapses")
	}
	if len(matches) != 1 || matches[0].ID != "m1" {
		t.Fatalf("unexpected cached payload %+v", matches)
	}
}

func TestGetStaleMiss(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	c := New(DefaultTTL)
	c.now = fixedClock(&now)

	c.Put(2024, time.March, category.All, []domain.Match{{ID: "m1"}})

	now = now.Add(5 * time.Minute)
	if _, ok := c.Get(2024, time.March, category.All); ok {
		t.Fatalf("expected a miss once the entry is 5 minutes old")
	}

	// Stale entries are ignored, not removed.
	if c.Len() != 1 {
		t.Fatalf("expected stale entry to remain stored, len=%d", c.Len())
	}
}

func TestKeysAreIndependent(t *testing.T) {
	c := New(DefaultTTL)
	c.Put(2024, time.March, category.All, []domain.Match{{ID: "all"}})
	c.Put(2024, time.March, category.Senior, []domain.Match{{ID: "senior"}})
	c.Put(2024, time.April, category.All, []domain.Match{{ID: "april"}})

	matches, ok := c.Get(2024, time.March, category.Senior)
	if !ok || matches[0].ID != "senior" {
		t.Fatalf("expected the senior march entry, got %+v ok=%v", matches, ok)
	}
}

func TestPutOverwrites(t *testing.T) {
	c := New(DefaultTTL)
	c.Put(2024, time.March, category.All, []domain.Match{{ID: "first"}})
	c.Put(2024, time.March, category.All, []domain.Match{{ID: "second"}})

	matches, ok := c.Get(2024, time.March, category.All)
	if !ok || len(matches) != 1 || matches[0].ID != "second" {
		t.Fatalf("expected last write to win, got %+v", matches)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	c := New(DefaultTTL)
	c.Put(2024, time.March, category.All, []domain.Match{{ID: "m1", Opponent: "original"}})

	matches, _ := c.Get(2024, time.March, category.All)
	matches[0].Opponent = "mutated"

	again, _ := c.Get(2024, time.March, category.All)
	if again[0].Opponent != "original" {
		t.Fatalf("expected cache to be isolated from caller mutation")
	}
}

func TestKeyFormat(t *testing.T) {
	if got := Key(2024, time.March, category.Sub8); got != "2024-03-SUB8" {
		t.Fatalf("unexpected key %s", got)
	}
	if got := Key(2024, time.November, category.All); got != "2024-11-all" {
		t.Fatalf("unexpected key %s", got)
	}
}

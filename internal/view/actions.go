// Package view holds the three view controllers: the monthly calendar, the
// flat table and the upcoming banner. Controllers own their state behind a
// mutex and are driven through a small action dispatch; rendering itself is
// delegated to internal/render.
package view

import (
	"time"

	"club-calendar-service/internal/category"
)

// MobileBreakpoint is the viewport width (px) below which the calendar view
// renders the per-date card list instead of the month grid.
const MobileBreakpoint = 768

// ResizeDebounce is how long the calendar waits after the last resize action
// before re-rendering. Tests pass zero for a synchronous re-render.
const ResizeDebounce = 250 * time.Millisecond

// Mode selects the calendar's display mode: the month-by-month calendar or
// the full match list grouped by month.
type Mode string

const (
	ModeCalendar Mode = "calendar"
	ModeList     Mode = "list"
)

// Kind enumerates the calendar controller actions.
type Kind int

const (
	KindLoad Kind = iota
	KindPrevMonth
	KindNextMonth
	KindSetCategory
	KindSetView
	KindResize
)

// Action is one dispatched calendar action. Only the fields relevant to the
// Kind are read.
type Action struct {
	Kind   Kind
	Month  time.Time
	Bucket category.Bucket
	Mode   Mode
	Width  int
}

// Load (re)loads the currently visible month.
func Load() Action { return Action{Kind: KindLoad} }

// LoadMonth loads the month containing t.
func LoadMonth(t time.Time) Action { return Action{Kind: KindLoad, Month: t} }

// PrevMonth navigates one month back and reloads.
func PrevMonth() Action { return Action{Kind: KindPrevMonth} }

// NextMonth navigates one month forward and reloads.
func NextMonth() Action { return Action{Kind: KindNextMonth} }

// SetCategory switches the active filter bucket.
func SetCategory(b category.Bucket) Action {
	return Action{Kind: KindSetCategory, Bucket: b}
}

// SetView switches between the calendar and full-list display modes.
func SetView(m Mode) Action { return Action{Kind: KindSetView, Mode: m} }

// Resize reports a new viewport width.
func Resize(width int) Action { return Action{Kind: KindResize, Width: width} }

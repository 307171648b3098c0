package domain

import "strings"

// MatchStatus mirrors the upstream lifecycle states. Upstream is free-text;
// unknown values are carried through unchanged rather than rejected.
type MatchStatus string

const (
	StatusConfirmed MatchStatus = "confirmed"
	StatusPlanned   MatchStatus = "planned"
	StatusPending   MatchStatus = "pending"
	StatusCancelled MatchStatus = "cancelled"
	StatusCanceled  MatchStatus = "canceled"
	StatusPostponed MatchStatus = "postponed"
	StatusFinished  MatchStatus = "finished"
)

// IsCalledOff reports whether the status removes the match from upcoming
// computations. Both spellings of cancelled occur upstream.
func (s MatchStatus) IsCalledOff() bool {
	switch MatchStatus(strings.ToLower(string(s))) {
	case StatusPostponed, StatusCancelled, StatusCanceled:
		return true
	}
	return false
}

// Match is the canonical match shape consumed by the renderers. Date carries
// ISO YYYY-MM-DD semantics with no time zone; Time is a display string and is
// never parsed. Matches are read-only: views filter and sort copies.
type Match struct {
	ID              string      `json:"id"`
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	Category        string      `json:"category"`
	Opponent        string      `json:"opponent"`
	Location        string      `json:"location"`
	IsHome          bool        `json:"is_home"`
	Status          MatchStatus `json:"status"`
	CompetitionType string      `json:"competition_type,omitempty"`
	Result          string      `json:"result,omitempty"`
}

// EffectiveStatus resolves the implicit default: an absent status means planned.
func (m Match) EffectiveStatus() MatchStatus {
	if m.Status == "" {
		return StatusPlanned
	}
	return m.Status
}

// Upcoming pairs a banner bucket with its next match and the whole-day
// countdown. Recomputed on every banner render, never stored.
type Upcoming struct {
	Bucket    string `json:"bucket"`
	Match     Match  `json:"match"`
	DaysUntil int    `json:"days_until"`
}

// CalendarResponse mirrors the upstream calendar API payload.
type CalendarResponse struct {
	Success bool    `json:"success"`
	Matches []Match `json:"matches"`
}

// MatchesResponse is the JSON view-model payload served by /api/matches.
type MatchesResponse struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Matches []Match `json:"matches"`
}

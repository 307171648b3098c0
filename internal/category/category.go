// Package category decides which filter buckets a raw, free-text match
// category belongs to. Upstream labels are not a closed enum: one string may
// name several age groups at once ("SUB 10 Y SUB 8"), and "RUGBY DAY" marks a
// shared youth event spanning SUB8/SUB10/SUB12.
package category

import (
	"regexp"
	"strings"
)

// Bucket is one of the fixed filter categories exposed by the views.
type Bucket string

const (
	All      Bucket = "all"
	Senior   Bucket = "SENIOR"
	Femenino Bucket = "FEMENINO"
	Sub18    Bucket = "SUB18"
	Sub16    Bucket = "SUB16"
	Sub14    Bucket = "SUB14"
	Sub12    Bucket = "SUB12"
	Sub10    Bucket = "SUB10"
	Sub8     Bucket = "SUB8"
	Sub6     Bucket = "SUB6"
	RugbyDay Bucket = "RUGBY DAY"
)

const rugbyDayMarker = "RUGBY DAY"

// youthBuckets are the buckets a RUGBY DAY event belongs to.
var youthBuckets = []Bucket{Sub6, Sub8, Sub10, Sub12}

// consolidated are the age groups folded into the synthetic RUGBY DAY slot of
// the upcoming banner.
var consolidated = []Bucket{Sub8, Sub10, Sub12}

var digitRun = regexp.MustCompile(`(\d+)`)

// Buckets returns every selectable filter bucket, in display order.
func Buckets() []Bucket {
	return []Bucket{All, Senior, Femenino, Sub18, Sub16, Sub14, Sub12, Sub10, Sub8, Sub6, RugbyDay}
}

// BannerBuckets returns the buckets the upcoming banner iterates, in the order
// the original site checks them. RUGBY DAY is handled separately by the caller
// and SUB12/SUB10/SUB8 matches are consolidated into it.
func BannerBuckets() []Bucket {
	return []Bucket{Senior, Femenino, Sub18, Sub16, Sub14, Sub12, Sub10, Sub8, Sub6}
}

// Matches reports whether a raw category label belongs to the given bucket.
//
// The rule is deliberately the loose contains-matching of the original site:
// the upper-cased raw label matches bucket B when it contains B verbatim or B
// with a space inserted before its trailing digit run ("SUB10" also matches
// "SUB 10"). This lets composite labels satisfy several buckets at once and
// can over-match on substring collisions; that behavior is documented and
// preserved, not fixed.
func Matches(b Bucket, raw string) bool {
	if b == All {
		return true
	}

	label := strings.ToUpper(raw)
	if label == "" {
		return false
	}

	// RUGBY DAY events belong only to the youth buckets, never matched
	// generically against the label text.
	if strings.Contains(label, rugbyDayMarker) {
		for _, yb := range youthBuckets {
			if yb == b {
				return true
			}
		}
		return false
	}

	filter := strings.ToUpper(string(b))
	return strings.Contains(label, filter) || strings.Contains(label, withSpace(filter))
}

// ConsolidatedYouth reports whether a raw label counts toward the banner's
// synthetic RUGBY DAY slot instead of its own bucket: either a literal RUGBY
// DAY event or any SUB8/SUB10/SUB12 label (with or without the space).
func ConsolidatedYouth(raw string) bool {
	label := strings.ToUpper(raw)
	if strings.Contains(label, rugbyDayMarker) {
		return true
	}
	for _, b := range consolidated {
		filter := string(b)
		if strings.Contains(label, filter) || strings.Contains(label, withSpace(filter)) {
			return true
		}
	}
	return false
}

// withSpace inserts a space before the first digit run: "SUB18" -> "SUB 18".
func withSpace(filter string) string {
	loc := digitRun.FindStringIndex(filter)
	if loc == nil {
		return filter
	}
	return filter[:loc[0]] + " " + filter[loc[0]:]
}

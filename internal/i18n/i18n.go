// Package i18n loads the per-language dictionaries every user-visible string
// comes from. Dictionaries are JSON files addressed by dot-separated key
// paths; a missing key falls back to a small hardcoded default set so the
// views never render blank labels.
package i18n

import (
	"embed"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"club-calendar-service/internal/domain"
)

//go:embed lang/*.json
var langFS embed.FS

// DefaultLanguage is Spanish, the club's primary language and the fallback
// for everything else.
const DefaultLanguage = "es"

var supported = []string{"es", "ca", "en", "fr", "it", "pt"}

// Supported returns the language codes a Translator can be loaded for.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether the code names a shipped dictionary.
func IsSupported(lang string) bool {
	for _, s := range supported {
		if s == lang {
			return true
		}
	}
	return false
}

// Translator resolves keys against one language dictionary.
type Translator struct {
	lang    string
	entries map[string]any
}

// Load returns the Translator for a language code. Unsupported or unloadable
// languages degrade to the default language; if even that fails, lookups run
// on the hardcoded defaults alone.
func Load(lang string) *Translator {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if !IsSupported(lang) {
		lang = DefaultLanguage
	}

	entries, err := readDictionary(lang)
	if err != nil && lang != DefaultLanguage {
		lang = DefaultLanguage
		entries, err = readDictionary(lang)
	}
	if err != nil {
		entries = map[string]any{}
	}

	return &Translator{lang: lang, entries: entries}
}

func readDictionary(lang string) (map[string]any, error) {
	data, err := langFS.ReadFile("lang/" + lang + ".json")
	if err != nil {
		return nil, err
	}
	var entries map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Lang returns the resolved language code.
func (t *Translator) Lang() string {
	return t.lang
}

// T resolves a dot-separated key path. A key absent from the dictionary falls
// back to the default set; a key absent there too yields "".
func (t *Translator) T(key string) string {
	if val, ok := lookup(t.entries, key); ok {
		return val
	}
	if val, ok := fallbackDefaults[key]; ok {
		return val
	}
	return ""
}

func lookup(entries map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	var current any = entries
	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[part]
		if !ok {
			return "", false
		}
	}
	val, ok := current.(string)
	return val, ok
}

// StatusLabel maps a match status to its localized label. Unknown statuses
// pass through as their raw value unchanged.
func (t *Translator) StatusLabel(status domain.MatchStatus) string {
	key := "status." + strings.ToLower(string(status))
	if label := t.T(key); label != "" {
		return label
	}
	return string(status)
}

// HomeAway returns the localized home/away label.
func (t *Translator) HomeAway(isHome bool) string {
	if isHome {
		return t.T("match.home")
	}
	return t.T("match.away")
}

// DaysLeft renders the countdown label for a future match n days away.
// n == 0 is the caller's business (the banner shows the today label plus the
// kickoff time instead).
func (t *Translator) DaysLeft(n int) string {
	key := "banner.days_left"
	if n == 1 {
		key = "banner.day_left"
	}
	return strings.ReplaceAll(t.T(key), "{n}", strconv.Itoa(n))
}

// Total renders the table footer count label.
func (t *Translator) Total(n int) string {
	return strings.ReplaceAll(t.T("table.total"), "{n}", strconv.Itoa(n))
}

// MonthName returns the localized full month name.
func (t *Translator) MonthName(m time.Month) string {
	names, ok := monthNames[t.lang]
	if !ok {
		names = monthNames[DefaultLanguage]
	}
	return names[m-1]
}

// DayShort returns the abbreviated weekday name.
func (t *Translator) DayShort(d time.Weekday) string {
	names, ok := dayNamesShort[t.lang]
	if !ok {
		names = dayNamesShort[DefaultLanguage]
	}
	return names[d]
}

// DayLong returns the full weekday name.
func (t *Translator) DayLong(d time.Weekday) string {
	names, ok := dayNamesLong[t.lang]
	if !ok {
		names = dayNamesLong[DefaultLanguage]
	}
	return names[d]
}

// FormatDateLong renders a date-group header, e.g. "Domingo, 10 de Marzo".
func (t *Translator) FormatDateLong(tm time.Time) string {
	day := t.DayLong(tm.Weekday())
	month := t.MonthName(tm.Month())
	if t.lang == "en" {
		return day + ", " + month + " " + strconv.Itoa(tm.Day())
	}
	return day + ", " + strconv.Itoa(tm.Day()) + " de " + month
}

// FormatDateShort renders a table-row date, e.g. "Dom 10 Mar 2024".
func (t *Translator) FormatDateShort(tm time.Time) string {
	month := t.MonthName(tm.Month())
	if runes := []rune(month); len(runes) > 3 {
		month = string(runes[:3])
	}
	return t.DayShort(tm.Weekday()) + " " + strconv.Itoa(tm.Day()) + " " + month + " " + strconv.Itoa(tm.Year())
}

// MonthTitle renders the calendar heading, e.g. "Marzo 2024".
func (t *Translator) MonthTitle(tm time.Time) string {
	return t.MonthName(tm.Month()) + " " + strconv.Itoa(tm.Year())
}

// Package render turns match records into HTML fragments. Every function is
// a pure transformation: no network, no mutation, markup out.
package render

import (
	"html/template"
	"strings"

	"club-calendar-service/internal/domain"
	"club-calendar-service/internal/i18n"
	"club-calendar-service/internal/schedule"
)

// OpponentMaxLen is the hard cap for opponent names in grid badges; longer
// names are cut and suffixed with an ellipsis.
const OpponentMaxLen = 12

// DefaultCompetition fills the table's competition column when upstream
// omits competition_type.
const DefaultCompetition = "Rugby XV"

const (
	homeGlyph = "🏠"
	awayGlyph = "✈️"
)

// Renderer renders fragments for one language.
type Renderer struct {
	tr       *i18n.Translator
	clubName string
}

// New constructs a Renderer. The club name appears as the home side on cards.
func New(tr *i18n.Translator, clubName string) *Renderer {
	return &Renderer{tr: tr, clubName: clubName}
}

type badgeView struct {
	ID            string
	CategoryClass string
	Category      string
	Time          string
	Glyph         string
	Opponent      string
	StatusClass   string
	StatusLabel   string
	Title         string
}

type cardView struct {
	ID            string
	CategoryClass string
	Category      string
	StatusClass   string
	StatusLabel   string
	ClubName      string
	VsLabel       string
	Opponent      string
	Result        string
	Time          string
	HomeIcon      string
	HomeAwayLabel string
	Location      string
}

type rowLabels struct {
	Date, Time, Category, Competition, Opponent, HomeAway, Location, Status string
}

type rowView struct {
	Labels        rowLabels
	Date          string
	Time          string
	CategoryClass string
	Category      string
	Competition   string
	Opponent      string
	HomeAway      string
	Location      string
	StatusClass   string
	StatusLabel   string
}

type panelView struct {
	Class string
	Icon  string
	Text  string
}

// Badge renders the compact badge used inside monthly grid cells.
func (r *Renderer) Badge(m domain.Match) template.HTML {
	return r.exec("badge", r.badgeView(m))
}

func (r *Renderer) badgeView(m domain.Match) badgeView {
	return badgeView{
		ID:            m.ID,
		CategoryClass: CategoryClass(m.Category),
		Category:      m.Category,
		Time:          m.Time,
		Glyph:         glyph(m.IsHome),
		Opponent:      Truncate(m.Opponent, OpponentMaxLen),
		StatusClass:   statusClass(m),
		StatusLabel:   r.tr.StatusLabel(m.EffectiveStatus()),
		Title:         m.Category + " - " + m.Opponent + " - " + m.Time,
	}
}

// Card renders the list-view card.
func (r *Renderer) Card(m domain.Match) template.HTML {
	return r.exec("card", r.cardView(m))
}

func (r *Renderer) cardView(m domain.Match) cardView {
	homeIcon := "fa-plane"
	if m.IsHome {
		homeIcon = "fa-home"
	}
	return cardView{
		ID:            m.ID,
		CategoryClass: CategoryClass(m.Category),
		Category:      m.Category,
		StatusClass:   statusClass(m),
		StatusLabel:   r.tr.StatusLabel(m.EffectiveStatus()),
		ClubName:      r.clubName,
		VsLabel:       r.tr.T("match.vs"),
		Opponent:      m.Opponent,
		Result:        m.Result,
		Time:          m.Time,
		HomeIcon:      homeIcon,
		HomeAwayLabel: r.tr.HomeAway(m.IsHome),
		Location:      m.Location,
	}
}

func (r *Renderer) rowView(m domain.Match) rowView {
	date := m.Date
	if parsed, err := schedule.ParseDate(m.Date); err == nil {
		date = r.tr.FormatDateShort(parsed)
	}
	competition := m.CompetitionType
	if competition == "" {
		competition = DefaultCompetition
	}
	return rowView{
		Labels:        r.labels(),
		Date:          date,
		Time:          m.Time,
		CategoryClass: CategoryClass(m.Category),
		Category:      m.Category,
		Competition:   competition,
		Opponent:      m.Opponent,
		HomeAway:      glyph(m.IsHome) + " " + r.tr.HomeAway(m.IsHome),
		Location:      m.Location,
		StatusClass:   statusClass(m),
		StatusLabel:   r.tr.StatusLabel(m.EffectiveStatus()),
	}
}

func (r *Renderer) labels() rowLabels {
	return rowLabels{
		Date:        r.tr.T("table.date"),
		Time:        r.tr.T("table.time"),
		Category:    r.tr.T("table.category"),
		Competition: r.tr.T("table.competition"),
		Opponent:    r.tr.T("table.opponent"),
		HomeAway:    r.tr.T("table.home_away"),
		Location:    r.tr.T("table.location"),
		Status:      r.tr.T("table.status"),
	}
}

// LoadingPanel renders the in-flight placeholder.
func (r *Renderer) LoadingPanel() template.HTML {
	return r.exec("loading", panelView{Text: r.tr.T("calendar.loading")})
}

// ErrorPanel renders the localized fetch-failure panel.
func (r *Renderer) ErrorPanel() template.HTML {
	return r.exec("panel", panelView{
		Class: "calendar-error",
		Icon:  "fa-exclamation-circle",
		Text:  r.tr.T("calendar.error"),
	})
}

// EmptyPanel renders the no-matches panel for the given message key.
func (r *Renderer) EmptyPanel(key string) template.HTML {
	return r.exec("panel", panelView{
		Class: "calendar-empty",
		Icon:  "fa-calendar-times",
		Text:  r.tr.T(key),
	})
}

func (r *Renderer) exec(name string, data any) template.HTML {
	var sb strings.Builder
	// The fragment set is parsed at init; execution only fails on a bad
	// template name, which is a programming error.
	if err := fragments.ExecuteTemplate(&sb, name, data); err != nil {
		return ""
	}
	return template.HTML(sb.String())
}

// Truncate cuts a string to max runes, appending an ellipsis beyond the cap.
// A string of exactly max runes is returned unchanged.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// CategoryClass derives the CSS class for a category label, e.g.
// "SUB 10 Y SUB 8" -> "category-sub-10-y-sub-8".
func CategoryClass(categoryLabel string) string {
	slug := strings.ToLower(strings.TrimSpace(categoryLabel))
	slug = strings.Join(strings.Fields(slug), "-")
	return "category-" + slug
}

func statusClass(m domain.Match) string {
	return "status-" + string(m.EffectiveStatus())
}

func glyph(isHome bool) string {
	if isHome {
		return homeGlyph
	}
	return awayGlyph
}

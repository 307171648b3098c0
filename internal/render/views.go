package render

import (
	"html/template"
	"time"

	"club-calendar-service/internal/domain"
	"club-calendar-service/internal/schedule"
)

// BannerCTAHref is the link target of the banner's call-to-action.
const BannerCTAHref = "calendar.html"

type gridDay struct {
	Number int
	Date   string
	Today  bool
	Badges []badgeView
}

type gridView struct {
	Weekdays []string
	Leading  []struct{}
	Days     []gridDay
	Empty    *panelView
}

type dateGroupView struct {
	Header string
	Cards  []cardView
}

type dateGroupsView struct {
	Groups []dateGroupView
}

type monthGroupView struct {
	Header string
	Groups []dateGroupView
}

type monthGroupsView struct {
	Months []monthGroupView
}

type tableView struct {
	Headers    []string
	Rows       []rowView
	TotalLabel string
}

type bannerCardView struct {
	CategoryClass string
	Bucket        string
	TimeText      string
	Opponent      string
	Glyph         string
	Location      string
}

type bannerView struct {
	Title    string
	Cards    []bannerCardView
	CTAHref  string
	CTALabel string
}

// MonthGrid renders the desktop month grid: weekday header row, leading empty
// cells up to the month's first weekday, one cell per day with its match
// badges in upstream order, and a today highlight. A month without matches
// gets the empty panel appended under the grid.
func (r *Renderer) MonthGrid(month time.Time, matches []domain.Match, now time.Time) template.HTML {
	first, last := schedule.MonthRange(month.Year(), month.Month())
	byDate := schedule.GroupByDate(matches)

	weekdays := make([]string, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekdays[d] = r.tr.DayShort(d)
	}

	view := gridView{
		Weekdays: weekdays,
		Leading:  make([]struct{}, int(first.Weekday())),
	}

	for day := 1; day <= last.Day(); day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.Local)
		dateStr := schedule.FormatDate(date)

		cell := gridDay{
			Number: day,
			Date:   dateStr,
			Today:  schedule.IsToday(date, now),
		}
		for _, m := range byDate[dateStr] {
			cell.Badges = append(cell.Badges, r.badgeView(m))
		}
		view.Days = append(view.Days, cell)
	}

	if len(matches) == 0 {
		view.Empty = &panelView{
			Class: "calendar-empty",
			Icon:  "fa-calendar-times",
			Text:  r.tr.T("calendar.empty_month"),
		}
	}

	return r.exec("grid", view)
}

// MatchesList renders the mobile month view: cards grouped per date with a
// long localized date header, dates ascending, upstream order within a date.
func (r *Renderer) MatchesList(matches []domain.Match) template.HTML {
	if len(matches) == 0 {
		return r.EmptyPanel("calendar.empty_month")
	}
	return r.exec("dategroups", dateGroupsView{Groups: r.dateGroups(matches)})
}

// FullList renders the all-matches list: sorted ascending by date, grouped by
// month with a month header, then by date within each month.
func (r *Renderer) FullList(matches []domain.Match) template.HTML {
	if len(matches) == 0 {
		return r.EmptyPanel("calendar.empty")
	}

	sorted := schedule.SortByDate(matches)
	byMonth := schedule.GroupByMonth(sorted)

	var view monthGroupsView
	for _, monthKey := range schedule.SortedKeys(byMonth) {
		header := monthKey
		if parsed, err := time.Parse(schedule.MonthLayout, monthKey); err == nil {
			header = r.tr.MonthTitle(parsed)
		}
		view.Months = append(view.Months, monthGroupView{
			Header: header,
			Groups: r.dateGroups(byMonth[monthKey]),
		})
	}

	return r.exec("monthgroups", view)
}

func (r *Renderer) dateGroups(matches []domain.Match) []dateGroupView {
	byDate := schedule.GroupByDate(matches)

	var groups []dateGroupView
	for _, dateStr := range schedule.SortedKeys(byDate) {
		header := dateStr
		if parsed, err := schedule.ParseDate(dateStr); err == nil {
			header = r.tr.FormatDateLong(parsed)
		}
		group := dateGroupView{Header: header}
		for _, m := range byDate[dateStr] {
			group.Cards = append(group.Cards, r.cardView(m))
		}
		groups = append(groups, group)
	}
	return groups
}

// Table renders the flat table view over an already filtered and sorted set.
func (r *Renderer) Table(matches []domain.Match) template.HTML {
	if len(matches) == 0 {
		return r.EmptyPanel("calendar.empty_category")
	}

	labels := r.labels()
	view := tableView{
		Headers: []string{
			labels.Date, labels.Time, labels.Category, labels.Competition,
			labels.Opponent, labels.HomeAway, labels.Location, labels.Status,
		},
		TotalLabel: r.tr.Total(len(matches)),
	}
	for _, m := range matches {
		view.Rows = append(view.Rows, r.rowView(m))
	}

	return r.exec("table", view)
}

// Banner renders the upcoming banner from precomputed slots, nearest first.
// An empty slot set renders nothing; the banner hides entirely.
func (r *Renderer) Banner(slots []domain.Upcoming) template.HTML {
	if len(slots) == 0 {
		return ""
	}

	view := bannerView{
		Title:    r.tr.T("banner.title"),
		CTAHref:  BannerCTAHref,
		CTALabel: r.tr.T("banner.view_full"),
	}
	for _, slot := range slots {
		timeText := r.tr.DaysLeft(slot.DaysUntil)
		if slot.DaysUntil == 0 {
			timeText = r.tr.T("banner.today") + " " + slot.Match.Time
		}
		view.Cards = append(view.Cards, bannerCardView{
			CategoryClass: CategoryClass(slot.Bucket),
			Bucket:        slot.Bucket,
			TimeText:      timeText,
			Opponent:      slot.Match.Opponent,
			Glyph:         glyph(slot.Match.IsHome),
			Location:      slot.Match.Location,
		})
	}

	return r.exec("banner", view)
}

package render

import "html/template"

// The fragment markup mirrors the class contract of the site's stylesheets;
// renderers fill the localized strings in, templates stay structural.
const fragmentTemplates = `
{{define "badge" -}}
<div class="match-badge {{.CategoryClass}}" data-match-id="{{.ID}}" title="{{.Title}}">
<div class="match-badge-header"><span class="match-category-label">{{.Category}}</span><span class="match-time">{{.Time}}</span></div>
<div class="match-badge-body"><span class="match-icon">{{.Glyph}}</span><span class="match-opponent">{{.Opponent}}</span></div>
<div class="match-status-mini {{.StatusClass}}">{{.StatusLabel}}</div>
</div>
{{- end}}

{{define "card" -}}
<div class="match-card {{.CategoryClass}}" data-match-id="{{.ID}}">
<div class="match-card-header"><span class="match-category-badge">{{.Category}}</span><span class="match-status-badge {{.StatusClass}}">{{.StatusLabel}}</span></div>
<div class="match-card-body">
<div class="match-info">
<div class="match-teams"><span class="match-team">{{.ClubName}}</span><span class="match-vs">{{.VsLabel}}</span><span class="match-opponent-name">{{.Opponent}}</span></div>
{{- if .Result}}<div class="match-result">{{.Result}}</div>{{end -}}
</div>
<div class="match-details">
<div class="match-detail"><i class="fas fa-clock"></i><span>{{.Time}}</span></div>
<div class="match-detail"><i class="fas {{.HomeIcon}}"></i><span>{{.HomeAwayLabel}}</span></div>
{{- if .Location}}<div class="match-detail"><i class="fas fa-map-marker-alt"></i><span>{{.Location}}</span></div>{{end -}}
</div>
</div>
</div>
{{- end}}

{{define "row" -}}
<tr>
<td data-label="{{.Labels.Date}}">{{.Date}}</td>
<td data-label="{{.Labels.Time}}">{{.Time}}</td>
<td data-label="{{.Labels.Category}}"><span class="category-badge {{.CategoryClass}}">{{.Category}}</span></td>
<td data-label="{{.Labels.Competition}}">{{.Competition}}</td>
<td data-label="{{.Labels.Opponent}}"><strong>{{.Opponent}}</strong></td>
<td data-label="{{.Labels.HomeAway}}">{{.HomeAway}}</td>
<td data-label="{{.Labels.Location}}">{{.Location}}</td>
<td data-label="{{.Labels.Status}}"><span class="status-badge {{.StatusClass}}">{{.StatusLabel}}</span></td>
</tr>
{{- end}}

{{define "table" -}}
<div class="matches-table-wrapper">
<table class="matches-table">
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>{{range .Rows}}{{template "row" .}}{{end}}</tbody>
</table>
</div>
<div class="matches-table-footer"><p>{{.TotalLabel}}</p></div>
{{- end}}

{{define "grid" -}}
<div class="calendar-weekdays">{{range .Weekdays}}<div class="calendar-weekday">{{.}}</div>{{end}}</div>
<div class="calendar-days">
{{- range .Leading}}<div class="calendar-day calendar-day-empty"></div>{{end -}}
{{- range .Days}}<div class="calendar-day{{if .Today}} calendar-day-today{{end}}" data-date="{{.Date}}"><span class="calendar-day-number">{{.Number}}</span>{{if .Badges}}<div class="calendar-matches">{{range .Badges}}{{template "badge" .}}{{end}}</div>{{end}}</div>{{end -}}
</div>
{{- if .Empty}}{{template "panel" .Empty}}{{end -}}
{{- end}}

{{define "dategroup" -}}
<div class="match-date-group">
<h4 class="match-date-header">{{.Header}}</h4>
{{- range .Cards}}{{template "card" .}}{{end -}}
</div>
{{- end}}

{{define "dategroups" -}}
<div class="matches-list-container">
{{- range .Groups}}{{template "dategroup" .}}{{end -}}
</div>
{{- end}}

{{define "monthgroups" -}}
<div class="matches-list-container">
{{- range .Months}}<div class="month-group"><h3 class="month-group-header">{{.Header}}</h3>{{range .Groups}}{{template "dategroup" .}}{{end}}</div>{{end -}}
</div>
{{- end}}

{{define "bannercard" -}}
<div class="upcoming-card {{.CategoryClass}}">
<div class="upcoming-card-category">{{.Bucket}}</div>
<div class="upcoming-card-time">{{.TimeText}}</div>
<div class="upcoming-card-opponent">{{.Opponent}}</div>
<div class="upcoming-card-location">{{.Glyph}} {{.Location}}</div>
</div>
{{- end}}

{{define "banner" -}}
<div class="upcoming-banner-container">
<h3 class="upcoming-banner-title">{{.Title}}</h3>
<div class="upcoming-cards">{{range .Cards}}{{template "bannercard" .}}{{end}}</div>
<div class="upcoming-cta"><a href="{{.CTAHref}}" class="upcoming-btn">{{.CTALabel}} <i class="fas fa-arrow-right"></i></a></div>
</div>
{{- end}}

{{define "panel" -}}
<div class="{{.Class}}"><i class="fas {{.Icon}}"></i><p>{{.Text}}</p></div>
{{- end}}

{{define "loading" -}}
<div class="calendar-loading"><i class="fas fa-spinner fa-spin"></i><span>{{.Text}}</span></div>
{{- end}}
`

var fragments = template.Must(template.New("fragments").Parse(fragmentTemplates))

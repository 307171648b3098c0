package i18n

// fallbackDefaults backs every dictionary lookup: when a key is missing from
// the loaded language file the Spanish default is used, so a truncated or
// outdated dictionary degrades instead of rendering empty labels.
var fallbackDefaults = map[string]string{
	"calendar.loading":        "Cargando partidos...",
	"calendar.error":          "Error al cargar los partidos. Intenta de nuevo más tarde.",
	"calendar.empty_month":    "No hay partidos programados para este mes",
	"calendar.empty":          "No hay partidos programados",
	"calendar.empty_category": "No hay partidos programados para esta categoría",

	"banner.title":     "🏉 Próximos Partidos",
	"banner.today":     "¡Hoy!",
	"banner.day_left":  "Falta 1 día",
	"banner.days_left": "Faltan {n} días",
	"banner.view_full": "Ver Calendario Completo",

	"status.confirmed": "Confirmado",
	"status.planned":   "Planificado",
	"status.pending":   "Pendiente",
	"status.cancelled": "Cancelado",
	"status.postponed": "Aplazado",
	"status.finished":  "Finalizado",

	"match.home": "Local",
	"match.away": "Visitante",
	"match.vs":   "vs",

	"table.date":        "Fecha",
	"table.time":        "Hora",
	"table.category":    "Categoría",
	"table.competition": "Competición",
	"table.opponent":    "Oponente",
	"table.home_away":   "Local/Visit.",
	"table.location":    "Ubicación",
	"table.status":      "Estado",
	"table.total":       "{n} partidos en total",
}

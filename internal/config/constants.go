package config

import "time"

// Environment variable names recognised by Load.
const (
	envConfigFile = "CONFIG_FILE"

	envPort     = "PORT"
	envLanguage = "DEFAULT_LANGUAGE"
	envClubName = "CLUB_NAME"
	envCacheTTL = "CACHE_TTL"

	envAPIBaseURL = "CALENDAR_API_BASE_URL"
	envAPITimeout = "CALENDAR_API_TIMEOUT"

	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"
)

const (
	defaultPort        = "8080"
	defaultLanguage    = "es"
	defaultClubName    = "RC Mallorca"
	defaultCacheTTL    = Duration(5 * time.Minute)
	defaultMetricsPort = "9091"
	defaultServiceName = "club-calendar-service"
)

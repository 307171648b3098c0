// Package config assembles runtime configuration: built-in defaults, then an
// optional YAML file, then environment variables, later layers winning.
package config

import "log/slog"

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Language string
	ClubName string
	CacheTTL Duration
	API      APIConfig
	Metrics  MetricsConfig
	Log      LogConfig
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the optional config file and environment
// variables with sensible defaults. File problems are logged and skipped;
// a partial config is better than refusing to boot a read-only site core.
func Load(logger *slog.Logger) Config {
	cfg := defaults()

	if path := envOrDefault(envConfigFile, ""); path != "" {
		if err := applyFile(&cfg, path); err != nil && logger != nil {
			logger.Warn("config file ignored", "path", path, "error", err)
		}
	}

	applyEnv(&cfg)
	return cfg
}

func defaults() Config {
	return Config{
		Port:     defaultPort,
		Language: defaultLanguage,
		ClubName: defaultClubName,
		CacheTTL: defaultCacheTTL,
		API: APIConfig{
			BaseURL: defaultAPIBaseURL,
			Timeout: defaultAPITimeout,
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

func applyEnv(cfg *Config) {
	cfg.Port = envOrDefault(envPort, cfg.Port)
	cfg.Language = envOrDefault(envLanguage, cfg.Language)
	cfg.ClubName = envOrDefault(envClubName, cfg.ClubName)
	cfg.CacheTTL = durationEnvOrDefault(envCacheTTL, cfg.CacheTTL)

	cfg.API.BaseURL = envOrDefault(envAPIBaseURL, cfg.API.BaseURL)
	cfg.API.Timeout = durationEnvOrDefault(envAPITimeout, cfg.API.Timeout)

	cfg.Metrics.Enabled = boolEnvOrDefault(envMetricsOn, cfg.Metrics.Enabled)
	cfg.Metrics.Port = envOrDefault(envMetricsPort, cfg.Metrics.Port)
	cfg.Metrics.ServiceName = envOrDefault(envOtelService, cfg.Metrics.ServiceName)
	cfg.Metrics.OtlpEndpoint = envOrDefault(envOtelEndpoint, cfg.Metrics.OtlpEndpoint)
	cfg.Metrics.OtlpInsecure = boolEnvOrDefault(envOtelInsecure, cfg.Metrics.OtlpInsecure)

	cfg.Log.Level = envOrDefault(envLogLevel, cfg.Log.Level)
	cfg.Log.Format = envOrDefault(envLogFormat, cfg.Log.Format)
}

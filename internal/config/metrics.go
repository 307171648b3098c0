package config

// MetricsConfig holds telemetry settings. The Prometheus scrape endpoint
// listens on its own port so it never shares the public listener.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

package config

import "time"

const defaultAPIBaseURL = "https://api.rcmallorca.example/v1"

const defaultAPITimeout = Duration(10 * time.Second)

// APIConfig holds settings for the upstream calendar API client.
type APIConfig struct {
	BaseURL string
	Timeout Duration
}

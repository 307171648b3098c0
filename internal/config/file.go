package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with optional fields so an overlay file can set
// just the keys it cares about.
type fileConfig struct {
	Port     *string   `yaml:"port"`
	Language *string   `yaml:"language"`
	ClubName *string   `yaml:"club_name"`
	CacheTTL *Duration `yaml:"cache_ttl"`

	API struct {
		BaseURL *string   `yaml:"base_url"`
		Timeout *Duration `yaml:"timeout"`
	} `yaml:"api"`

	Metrics struct {
		Enabled      *bool   `yaml:"enabled"`
		Port         *string `yaml:"port"`
		ServiceName  *string `yaml:"service_name"`
		OtlpEndpoint *string `yaml:"otlp_endpoint"`
		OtlpInsecure *bool   `yaml:"otlp_insecure"`
	} `yaml:"metrics"`

	Log struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&cfg.Port, fc.Port)
	setString(&cfg.Language, fc.Language)
	setString(&cfg.ClubName, fc.ClubName)
	setDuration(&cfg.CacheTTL, fc.CacheTTL)

	setString(&cfg.API.BaseURL, fc.API.BaseURL)
	setDuration(&cfg.API.Timeout, fc.API.Timeout)

	setBool(&cfg.Metrics.Enabled, fc.Metrics.Enabled)
	setString(&cfg.Metrics.Port, fc.Metrics.Port)
	setString(&cfg.Metrics.ServiceName, fc.Metrics.ServiceName)
	setString(&cfg.Metrics.OtlpEndpoint, fc.Metrics.OtlpEndpoint)
	setBool(&cfg.Metrics.OtlpInsecure, fc.Metrics.OtlpInsecure)

	setString(&cfg.Log.Level, fc.Log.Level)
	setString(&cfg.Log.Format, fc.Log.Format)

	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *Duration, src *Duration) {
	if src != nil {
		*dst = *src
	}
}

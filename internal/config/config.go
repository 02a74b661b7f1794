package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	ListenAddr     string   `yaml:"listen_addr"`
	ScalingEnabled bool     `yaml:"scaling_enabled"`
	LogFormat      string   `yaml:"log_format"`
	MetricsEnabled bool     `yaml:"metrics_enabled"`
	CORSOrigins    []string `yaml:"cors_origins"`
}

// Load reads configuration from config.yaml and overrides with environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:     ":8080",
		ScalingEnabled: true,
		LogFormat:      "json",
	}

	configPath := os.Getenv("CTXSCALE_CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("CTXSCALE_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("CTXSCALE_SCALING_ENABLED"); v != "" {
		cfg.ScalingEnabled = parseBool(v)
	}
	if v := os.Getenv("CTXSCALE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("CTXSCALE_METRICS_ENABLED"); v != "" {
		cfg.MetricsEnabled = parseBool(v)
	}
	if v := os.Getenv("CTXSCALE_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
}

func parseBool(v string) bool {
	return v == "true" || v == "1"
}

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the config for invalid or missing values. Returns a
// multi-error with all problems found.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.ListenAddr == "" {
		errs = append(errs, "listen_addr is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		errs = append(errs, fmt.Sprintf("log_format must be \"json\" or \"text\", got %q", cfg.LogFormat))
	}
	for _, origin := range cfg.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			errs = append(errs, "cors_origins must not contain empty entries")
			break
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}

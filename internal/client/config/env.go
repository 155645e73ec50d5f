package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over .env entries.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TWCLI_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TWCLI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("TWCLI_UNSPLASH_KEY"); v != "" {
		cfg.UnsplashAccessKey = v
	}
	if v := os.Getenv("TWCLI_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
}

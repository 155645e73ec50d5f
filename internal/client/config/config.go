package config

import "time"

// Config holds runtime settings for the twitterclone CLI.
//
// Fields:
//   - BaseURL: base URL of the backend REST API, including the /api/v1 prefix.
//   - Timeout: per-request timeout for backend calls.
//   - UnsplashAccessKey: optional key for Unsplash image search; empty means
//     placeholder images.
//   - SessionDBPath: path of the local sqlite database holding the session.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	UnsplashAccessKey string
	SessionDBPath     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api/v1"
	c.Timeout = 15 * time.Second
	c.UnsplashAccessKey = ""
	c.SessionDBPath = "twcli.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"encoding/json"
	"os"

	"github.com/maxh33/twitterclone-cli/internal/flagx"
	"github.com/maxh33/twitterclone-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL           string         `json:"api_url"`
	Timeout           timex.Duration `json:"timeout"`
	UnsplashAccessKey string         `json:"unsplash_access_key"`
	SessionDBPath     string         `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when
// neither flag is present nothing is loaded. Read or unmarshal errors panic,
// a broken explicit config file should not be silently ignored.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.Timeout.Duration > 0 {
		cfg.Timeout = jc.Timeout.Duration
	}
	if jc.UnsplashAccessKey != "" {
		cfg.UnsplashAccessKey = jc.UnsplashAccessKey
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}

// Package config loads runtime configuration for the twitterclone CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally sourced from a .env file.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-k string   Unsplash access key for image search
//	-d string   path to the local session database
//
// Environment variables
//
//	TWCLI_API_URL         base URL of the backend REST API
//	TWCLI_TIMEOUT         request timeout, e.g. "15s"
//	TWCLI_UNSPLASH_KEY    Unsplash access key
//	TWCLI_SESSION_DB      path to the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:8000/api/v1",
//	  "timeout": "15s",
//	  "unsplash_access_key": "...",
//	  "session_db_path": "twcli.db"
//	}
package config

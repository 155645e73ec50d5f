// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors surfaced by the API gateway.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Session-level errors.
	ErrNoRefreshToken = errors.New("no refresh token available")
	ErrNotLoggedIn    = errors.New("not logged in")

	// Demo sessions are read-only from the client's point of view.
	ErrDemoRestricted = errors.New("action not available for demo accounts")
)

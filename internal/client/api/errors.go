package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/maxh33/twitterclone-cli/internal/common"
)

// ErrorKind classifies backend failures once, at the gateway boundary.
// Callers switch on Kind (or use errors.Is with the common sentinels)
// instead of inspecting response bodies themselves.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNetwork
	KindUnauthorized
	KindUnverified
	KindValidation
	KindServer
)

// genericMessage is the fallback shown when the response body is absent
// or unstructured.
const genericMessage = "Something went wrong. Please try again."

// networkMessage is shown when no response was received at all.
const networkMessage = "Could not reach the server. Check your connection and try again."

// APIError is the typed result of a failed API call.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string

	// Fields holds per-field validation messages, passed through verbatim
	// from the backend.
	Fields map[string][]string

	// Email accompanies KindUnverified so the caller can offer a resend.
	Email string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return genericMessage
}

// Unwrap maps the kind onto the shared sentinels so call sites can keep
// using errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Kind {
	case KindUnauthorized:
		return common.ErrUnauthorized
	case KindNetwork:
		return common.ErrUnavailable
	}
	return nil
}

// AsAPIError unwraps err into *APIError, or returns nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// errorBody is the union of error shapes the backend produces: a plain
// detail/error/message string, a non_field_errors list, a
// requires_verification flag, or per-field string arrays.
type errorBody struct {
	Detail               string   `json:"detail"`
	Error                string   `json:"error"`
	Message              string   `json:"message"`
	NonFieldErrors       []string `json:"non_field_errors"`
	RequiresVerification bool     `json:"requires_verification"`
	Email                string   `json:"email"`
}

// decodeError classifies a non-2xx response into an APIError. This is the
// single place the backend's error payloads are interpreted.
func decodeError(status int, body []byte) *APIError {
	e := &APIError{Status: status}

	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	switch {
	case status == 401:
		e.Kind = KindUnauthorized
	case status == 403 && eb.RequiresVerification:
		e.Kind = KindUnverified
		e.Email = eb.Email
	case status >= 500:
		e.Kind = KindServer
	case status >= 400:
		e.Kind = KindValidation
	default:
		e.Kind = KindUnknown
	}

	e.Fields = decodeFieldErrors(body)
	e.Message = firstMessage(&eb, e.Fields)

	if e.Message == "" {
		e.Message = genericMessage
	}
	return e
}

// decodeFieldErrors extracts per-field validation messages: every top-level
// key whose value is an array of strings, minus the well-known non-field
// keys.
func decodeFieldErrors(body []byte) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	fields := make(map[string][]string)
	for key, val := range raw {
		if key == "non_field_errors" {
			continue
		}
		var msgs []string
		if err := json.Unmarshal(val, &msgs); err == nil && len(msgs) > 0 {
			fields[key] = msgs
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// firstMessage derives one human-readable message: the first structured
// error field available, with per-field messages concatenated.
func firstMessage(eb *errorBody, fields map[string][]string) string {
	switch {
	case eb.Detail != "":
		return eb.Detail
	case eb.Error != "":
		return eb.Error
	case eb.Message != "":
		return eb.Message
	case len(eb.NonFieldErrors) > 0:
		return strings.Join(eb.NonFieldErrors, " ")
	}

	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(fields[k], " ")))
	}
	return strings.Join(parts, "; ")
}

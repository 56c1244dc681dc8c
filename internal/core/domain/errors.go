package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized marks a 401 response. By the time a caller sees it the
	// pipeline has already torn the session down; callers must not retry.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks a 403 response (authenticated but under-privileged).
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound marks a 404 response.
	ErrNotFound = errors.New("resource not found")

	// ErrBadResponse marks a response body that does not match the endpoint's
	// declared schema. Contract drift fails fast instead of degrading.
	ErrBadResponse = errors.New("malformed server response")

	// ErrSessionSuperseded is returned to an auth operation whose result was
	// discarded because a later operation started before it settled.
	ErrSessionSuperseded = errors.New("session operation superseded")
)

// APIError is a server-reported failure (4xx/5xx with a message body). The
// message is surfaced to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// Unwrap maps well-known statuses onto sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	}
	return nil
}

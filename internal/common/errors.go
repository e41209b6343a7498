// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnavailable covers transport failures and malformed or otherwise
	// unclassified service responses.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnauthorized covers bad credentials and invalid or expired tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a story id matches nothing, locally or
	// on the service.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers input the service (or the client, pre-flight)
	// rejects, e.g. a duplicate username or a draft without a URL.
	ErrValidation = errors.New("validation failed")
)

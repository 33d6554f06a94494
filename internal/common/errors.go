// Package common defines shared sentinel errors used across client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (missing, invalid or expired credentials).
	ErrUnauthorized = errors.New("unauthorized")

	// Entity lookup errors.
	ErrNotFound = errors.New("not found")

	// Client-side validation errors.
	ErrValidation = errors.New("validation failed")
)

package api

import (
	"errors"
	"fmt"

	"github.com/placeprep/ppclient/internal/common"
)

// Error is a structured backend failure: the HTTP status and the
// backend-supplied message, when the error body carried one.
//
// Unwrap maps well-known statuses to the shared sentinels, so callers can
// both match with errors.Is and surface Message to the user.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error (%d)", e.Status)
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return common.ErrUnauthorized
	case 404:
		return common.ErrNotFound
	default:
		return nil
	}
}

// UserMessage extracts a message suitable for display from err: the backend's
// message when present, otherwise the given fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

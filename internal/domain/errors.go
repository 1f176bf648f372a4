package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrActiveRequest   = errors.New("active request exists")
	ErrEmptyCompletion = errors.New("completion returned no choices")
	ErrNetwork         = errors.New("completion endpoint unreachable")
)

// APIError reports a non-success status returned by the completion endpoint.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion api error: status %d", e.Status)
}

package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingApiKey   = errors.New("api key is required")
	ErrInvalidApiKey   = errors.New("invalid api key")
	ErrUpstream        = errors.New("upstream completion error")
	ErrEmptyCompletion = errors.New("completion contained no choices")
)

// UpstreamError is a failed completion call. StatusCode is zero when no
// response was received.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Err)
	}
	return fmt.Sprintf("upstream responded with status %d: %s", e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	if e.StatusCode == http.StatusUnauthorized {
		return []error{ErrInvalidApiKey, e.Err}
	}
	return []error{ErrUpstream, e.Err}
}

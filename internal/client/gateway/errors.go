package gateway

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx answer from the remote API.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	// Message is the "message" field of the response body, if any.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("%s %s: request failed with status code %d", e.Method, e.URL, e.StatusCode)
}

// ServerMessage returns the server-supplied message carried by err, if err
// wraps an *APIError with one.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

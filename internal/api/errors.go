package api

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested listing does not exist.
var ErrNotFound = errors.New("listing not found")

// APIError represents a non-200 response from the CFPTime API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return e.StatusCode == 404 && target == ErrNotFound
}

// NetworkError represents a request that could not be built or sent.
// Attempts is the number of attempts made before giving up.
type NetworkError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError represents a 200 response whose body could not be decoded
// into the expected shape. Body holds a snippet of the offending payload.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

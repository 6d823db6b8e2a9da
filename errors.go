package cfptime

import (
	"errors"
	"fmt"

	"github.com/cfptime/client-go/internal/api"
)

// ErrNotFound is returned when a listing does not exist (HTTP 404).
// Match it with errors.Is.
var ErrNotFound = errors.New("listing not found")

// CFPTimeError is implemented by all errors returned by this SDK.
type CFPTimeError interface {
	error
	CFPTimeError() // marker method
}

// APIError represents a non-200 response from the CFPTime API. Body
// holds the raw response body text for diagnostics.
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

// CFPTimeError implements the CFPTimeError interface.
func (e *APIError) CFPTimeError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return e.StatusCode == 404 && target == ErrNotFound
}

// NetworkError represents a request that could not be built or could
// not be sent after exhausting retries.
type NetworkError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// CFPTimeError implements the CFPTimeError interface.
func (e *NetworkError) CFPTimeError() {}

// DecodeError represents a 200 response whose body could not be decoded
// into the expected record shape. This is distinct from APIError: it
// signals schema drift, not a server-side failure.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// CFPTimeError implements the CFPTimeError interface.
func (e *DecodeError) CFPTimeError() {}

// wrapError converts internal API errors to public errors so that
// errors.Is and errors.As work against this package's types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:      netErr.Err,
			URL:      netErr.URL,
			Attempts: netErr.Attempts,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &DecodeError{
			Err:  decErr.Err,
			Body: decErr.Body,
		}
	}

	return err
}

package api

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy configures retry behavior for transient request failures.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// InitialInterval is the delay before the first retry.
	InitialInterval time.Duration
	// MaxInterval caps the delay between retries.
	MaxInterval time.Duration
	// Multiplier is the factor by which the delay grows per retry.
	Multiplier float64
	// RandomizationFactor is the jitter applied to each delay
	// to prevent thundering herd.
	RandomizationFactor float64
	// RetryableOn determines whether a status code is transient.
	RetryableOn func(statusCode int) bool
}

// DefaultPolicy returns the default retry policy: 3 retries with
// exponential backoff, retrying on timeouts and 5xx-class responses.
func DefaultPolicy() *Policy {
	return &Policy{
		MaxRetries:          3,
		InitialInterval:     500 * time.Millisecond,
		MaxInterval:         10 * time.Second,
		Multiplier:          2.0,
		RandomizationFactor: 0.2,
	}
}

// Retryable reports whether a status code should trigger a retry.
func (p *Policy) Retryable(statusCode int) bool {
	if p.RetryableOn != nil {
		return p.RetryableOn(statusCode)
	}
	switch statusCode {
	case 408, 429:
		return true
	default:
		return statusCode >= 500
	}
}

// BackOff builds the context-aware backoff schedule for one request.
// The schedule stops after MaxRetries retries or when ctx is done,
// whichever comes first.
func (p *Policy) BackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = p.RandomizationFactor
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(p.MaxRetries)), ctx)
}

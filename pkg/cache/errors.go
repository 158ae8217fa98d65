package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable reports that a remote cache backend did not answer.
var ErrUnavailable = errors.New("cache backend unavailable")

// connectAttempts bounds how often a backend connection is tried.
const connectAttempts = 3

// retryDelay is the pause after the first failed attempt; it doubles after
// each further failure.
var retryDelay = time.Second

// RetryableError marks a connection failure that may succeed on a later
// attempt.
type RetryableError struct{ Err error }

// Retryable marks err for RetryWithBackoff. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err, or any error it wraps, was marked with
// Retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff calls connect until it succeeds, returns an error not
// marked Retryable, or has failed connectAttempts times. [NewRedisCache]
// uses it so a server can start while Redis is still coming up.
func RetryWithBackoff(ctx context.Context, connect func() error) error {
	delay := retryDelay
	var err error
	for attempt := 1; ; attempt++ {
		if err = connect(); err == nil || !IsRetryable(err) {
			return err
		}
		if attempt == connectAttempts {
			return err
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
}

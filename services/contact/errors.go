package contact

import (
	"fmt"
	"time"
)

// ValidationError signals a required field was empty after trimming.
// It is detected before any network call.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

// CooldownError signals the sender must wait before submitting again.
type CooldownError struct {
	RetryAfter time.Duration
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("too many submissions; retry after %s", e.RetryAfter)
}

// SubmissionError wraps a failed message append.
type SubmissionError struct {
	Err error
}

func (e SubmissionError) Error() string {
	return "submitting contact message: " + e.Err.Error()
}

func (e SubmissionError) Unwrap() error {
	return e.Err
}

package api

import (
	"errors"
	"fmt"
)

// FetchError is a network or backend failure. Views surface it as a
// dismissable inline error with a retry action.
type FetchError struct {
	Op         string // e.g. "GET /consents"
	StatusCode int    // 0 when the request never reached the backend
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: backend returned %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is transient. Client errors (4xx)
// are permanent; transport failures and 5xx are worth retrying.
func (e *FetchError) Retryable() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

// ValidationError is a violated form precondition. It is raised before any
// network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// SigningError is a wallet rejection or signing failure. The create-consent
// flow aborts with no backend call made.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing failed: %v", e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }

// IsFetch reports whether err is (or wraps) a FetchError.
func IsFetch(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsSigning reports whether err is (or wraps) a SigningError.
func IsSigning(err error) bool {
	var se *SigningError
	return errors.As(err, &se)
}

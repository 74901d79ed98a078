package services

import (
	"errors"
	"fmt"
)

var (
	// ErrProjectNotFound indicates no project carries the requested id.
	ErrProjectNotFound = errors.New("project not found")
	// ErrAppUnavailable indicates the embedded-app view cannot be shown for an id.
	ErrAppUnavailable = errors.New("app unavailable")
	// ErrInvalidSubmission is matched by every ValidationError.
	ErrInvalidSubmission = errors.New("invalid contact submission")
	// ErrDeliveryFailed is matched by every DeliveryError.
	ErrDeliveryFailed = errors.New("contact delivery failed")
)

// ValidationError reports a malformed or incomplete contact payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidSubmission, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidSubmission, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSubmission
}

// DeliveryError wraps the failure reported by the email sender.
// Its text carries transport detail and must stay server side.
type DeliveryError struct {
	SubmissionID string
	Err          error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s (submission %s): %v", ErrDeliveryFailed, e.SubmissionID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}

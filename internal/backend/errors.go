package backend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a transport-level failure: the backend answered with a
// non-2xx status. Status holds the numeric HTTP status code.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("backend request failed (status %d)", e.Status)
}

// Failure is a client-attributable or validation-adjacent error. Its
// message is safe to surface to the user.
type Failure struct {
	Message string
}

func (e *Failure) Error() string { return e.Message }

// ServerError marks a 500-class backend failure. Callers show a generic
// message instead of its content.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// Classify maps a failed backend call into exactly one of the two
// surfaced kinds: ServerError for 500-class transport errors, Failure
// for everything else.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status >= http.StatusInternalServerError {
		return &ServerError{Message: apiErr.Message}
	}
	return &Failure{Message: ErrorMessage(err)}
}

// ErrorMessage extracts the most specific human-readable message from
// a backend error.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return err.Error()
}

func IsServerError(err error) bool {
	var target *ServerError
	return errors.As(err, &target)
}

func IsFailure(err error) bool {
	var target *Failure
	return errors.As(err, &target)
}

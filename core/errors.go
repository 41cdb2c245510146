package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// RequestError reports a failed request to one of the external collaborators.
// Only the status code is kept for diagnostics; statuses are not interpreted
// individually.
type RequestError struct {
	Op     string // e.g. "GET /subjects"
	Status int
}

func (err RequestError) Error() string {
	return fmt.Sprintf("%s failed (%d)", err.Op, err.Status)
}

func IsRequestError(err error) bool {
	_, ok := errors.Cause(err).(*RequestError)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}

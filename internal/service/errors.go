// Package service wraps each store with validation and cross-record business
// rules, translating store outcomes into domain errors. Only the HTTP layer
// maps these errors to status codes.
package service

import (
	"errors"
	"strings"

	"contacthub/internal/validation"
)

var (
	// ErrNotFound indicates the referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument indicates a required identifier was blank.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOwnershipMismatch indicates a task does not belong to the contact
	// named in the request path.
	ErrOwnershipMismatch = errors.New("task does not belong to contact")
)

// ValidationError aggregates field-level rule violations, including the
// cross-record phone-uniqueness rule. Its message is the wire format
// consumers parse: "Validation failed: f1: m1; f2: m2".
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(r validation.Result) error {
	return &ValidationError{Fields: r.Errors}
}

func phoneExistsError() error {
	return &ValidationError{Fields: []validation.FieldError{
		{Field: "phone", Message: "already exists"},
	}}
}

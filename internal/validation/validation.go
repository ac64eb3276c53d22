// Package validation holds the pure field and object validators. Validators
// never touch storage and never return errors of their own: every failed rule
// becomes one entry in the result, in field order, without short-circuiting.
package validation

// FieldError is one failed rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result aggregates every failed field of a whole-object check.
type Result struct {
	Errors []FieldError
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Result) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

package model

import (
	"fmt"
	"regexp"
)

var cuidPattern = regexp.MustCompile(`^c[^\s-]{8,}$`)

// IsCUID reports whether s looks like a PlayMoney id.
func IsCUID(s string) bool {
	return cuidPattern.MatchString(s)
}

// Validator is implemented by every model that checks its own invariants.
type Validator interface {
	Validate() error
}

// ValidationError is returned when a response cannot be turned into a model.
type ValidationError struct {
	Model  string
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s: %s", e.Model, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s %s", e.Model, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func checkID(model, field, id string) error {
	if id == "" {
		return &ValidationError{Model: model, Field: field, Reason: "is required"}
	}
	if !IsCUID(id) {
		return &ValidationError{Model: model, Field: field, Reason: fmt.Sprintf("%q is not a valid id", id)}
	}
	return nil
}

// checkOptionalID accepts an empty or nil id.
func checkOptionalID(model, field string, id *string) error {
	if id == nil || *id == "" {
		return nil
	}
	return checkID(model, field, *id)
}

func checkNonNegative(model, field string, n int) error {
	if n < 0 {
		return &ValidationError{Model: model, Field: field, Reason: fmt.Sprintf("must be >= 0, got %d", n)}
	}
	return nil
}

// nested prefixes the field of a ValidationError raised by a child model.
func nested(prefix string, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*ValidationError); ok {
		out := *ve
		if out.Field == "" {
			out.Field = prefix
		} else {
			out.Field = prefix + "." + out.Field
		}
		return &out
	}
	return err
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

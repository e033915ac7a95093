package models

import "fmt"

// ValidationError reports a missing or malformed required field. A mutation
// that fails validation is blocked entirely; no partial record is created.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing required field %q", e.Field)
}

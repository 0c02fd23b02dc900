package recommendations

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is matched by every survey validation failure.
var ErrInvalidInput = errors.New("invalid survey input")

// FieldError describes one rejected survey field.
type FieldError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
	Value string `json:"value,omitempty"`
}

// ValidationError collects every field problem found in a survey.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s (%q)", f.Field, f.Issue, f.Value))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Issue))
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *ValidationError) add(field, issue, value string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Issue: issue, Value: value})
}

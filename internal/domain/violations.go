package domain

import (
	"sort"
	"strings"
)

// NonFieldKey keys violations that reject the submission as a whole
// rather than a single field, e.g. bot detection.
const NonFieldKey = "__all__"

// FieldViolations maps a submitted field name to the human-readable
// messages explaining why it was rejected.
type FieldViolations map[string][]string

func (v FieldViolations) Add(field, message string) {
	v[field] = append(v[field], message)
}

func (v FieldViolations) Empty() bool {
	return len(v) == 0
}

// ValidationError carries the full violation set for a rejected
// submission. It is user-facing, never a system error.
type ValidationError struct {
	Fields FieldViolations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func NewValidationError(fields FieldViolations) *ValidationError {
	return &ValidationError{Fields: fields}
}

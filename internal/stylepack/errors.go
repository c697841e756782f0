// Package stylepack loads and validates style-pack configuration documents.
package stylepack

import (
	"fmt"
	"strings"
)

// FieldError represents a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// InvalidStylePackError represents a style-pack document that cannot
// be used: unreadable JSON or a shape violation against the schema.
type InvalidStylePackError struct {
	Message string
	Fields  []FieldError
	Cause   error
}

func (e *InvalidStylePackError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid style pack: ")
	sb.WriteString(e.Message)
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	for i, fe := range e.Fields {
		sb.WriteString(fmt.Sprintf("\n  %d. %s: %s", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

func (e *InvalidStylePackError) Unwrap() error {
	return e.Cause
}

// Package extract converts HTML documents to plain text suitable for style linting.
package extract

import "fmt"

// ParseError represents a failure to parse an HTML document.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

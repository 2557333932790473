package schema

import (
	"fmt"
	"strings"
)

// JSONSyntaxError is returned when the candidate substring is not parseable
// JSON. It carries the parser's message and a bounded preview of the candidate.
type JSONSyntaxError struct {
	Msg     string
	Preview string
}

func (e *JSONSyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON: %s", e.Msg)
}

// FieldError is a single (field path, reason) validation failure.
type FieldError struct {
	Path   string
	Reason string
}

func (e FieldError) String() string {
	return e.Path + ": " + e.Reason
}

// SchemaValidationError is returned when parsed JSON does not satisfy the
// InvoiceRecord schema. Fields holds one entry per failing field path.
type SchemaValidationError struct {
	Fields []FieldError
}

func (e *SchemaValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

package utils

import "fmt"

// FieldError points at the offending input field so the client can correct it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field-level validation failures for one request.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed on %d fields", len(e.Fields))
}

// Add appends a field failure and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasErrors reports whether any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// NotFoundError marks a resource that does not exist or is not owned by the caller.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// DuplicateSymbolError marks a holding uniqueness violation per (user, symbol).
type DuplicateSymbolError struct {
	Symbol string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("investment with symbol %s already exists in your portfolio", e.Symbol)
}

// InsufficientQuantityError rejects a sell exceeding the held quantity.
// Available carries the quantity actually owned for client display.
type InsufficientQuantityError struct {
	Requested float64
	Available float64
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("cannot sell %v shares, you only own %v shares", e.Requested, e.Available)
}

// InvariantViolationError marks a ledger mutation that would break the
// non-negative quantity invariant. The operation is aborted, never clamped.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string {
	return e.Message
}

// Package errz defines the structured errors reported when applying
// compiled statements.
package errz

import "fmt"

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrPrecondition indicates a statement was applied to a stack that is
	// shallower than its arguments count.
	ErrPrecondition ErrorKind = iota
	// ErrValue indicates an invalid value for an operation.
	ErrValue
	// ErrInput indicates a failure reading from the input source.
	ErrInput
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrPrecondition:
		return "precondition violation"
	case ErrValue:
		return "value error"
	case ErrInput:
		return "input error"
	default:
		return "error"
	}
}

// StructuredError is a categorized error with an optional underlying cause.
type StructuredError struct {
	Message string
	Kind    ErrorKind
	Cause   error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a StructuredError with the given kind and message.
func New(kind ErrorKind, message string) *StructuredError {
	return &StructuredError{Kind: kind, Message: message}
}

// Errorf creates a StructuredError with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *StructuredError {
	return &StructuredError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a StructuredError that wraps an underlying cause.
func Wrap(kind ErrorKind, message string, cause error) *StructuredError {
	return &StructuredError{Kind: kind, Message: message, Cause: cause}
}

// Underflow creates the precondition violation reported when a statement
// requires more arguments than the stack holds.
func Underflow(name string, want, have int) *StructuredError {
	return Errorf(ErrPrecondition, "stack underflow in %q (need %d, have %d)", name, want, have)
}

// IsKind reports whether err is a StructuredError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	if e, ok := err.(*StructuredError); ok {
		return e.Kind == kind
	}
	return false
}

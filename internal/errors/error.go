package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryCompile    Category = "compile"
	CategoryRuntime    Category = "runtime"
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryArchive    Category = "archive"
)

// QuillError is a structured error with a code, category, and optional
// suggestion and documentation link.
type QuillError struct {
	// Code is a unique error identifier (e.g., "Q001").
	Code string

	// Category is the error type (compile, runtime, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *QuillError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *QuillError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *QuillError) WithDetail(d string) *QuillError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *QuillError) WithSuggestion(s string) *QuillError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *QuillError) Wrap(err error) *QuillError {
	e.Wrapped = err
	return e
}

// New creates a QuillError from a registered error code.
func New(code string) *QuillError {
	template, ok := registry[code]
	if !ok {
		return &QuillError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &QuillError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new QuillError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *QuillError {
	return &QuillError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a QuillError.
func FromError(err error, code string) *QuillError {
	if err == nil {
		return nil
	}
	if qe, ok := err.(*QuillError); ok {
		return qe
	}
	return New(code).Wrap(err)
}

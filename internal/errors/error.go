package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryDOM    Category = "dom"
	CategoryMarkup Category = "markup"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// VassertError is a structured error with a code, detail and a fix suggestion.
type VassertError struct {
	// Code is a unique error identifier (e.g., "VA001").
	Code string

	// Category is the error type (dom, markup, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VassertError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VassertError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VassertError) WithSuggestion(s string) *VassertError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *VassertError) WithDetail(d string) *VassertError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *VassertError) Wrap(err error) *VassertError {
	e.Wrapped = err
	return e
}

// New creates a VassertError from a registered error code.
func New(code string) *VassertError {
	template, ok := registry[code]
	if !ok {
		return &VassertError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VassertError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
	}
}

// Newf creates a new VassertError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VassertError {
	return &VassertError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VassertError.
func FromError(err error, code string) *VassertError {
	if err == nil {
		return nil
	}
	var ve *VassertError
	if errors.As(err, &ve) {
		return ve
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first VassertError in err's chain, or "".
func Code(err error) string {
	var ve *VassertError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

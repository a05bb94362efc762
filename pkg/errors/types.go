// Package errors provides structured, coded errors for monika.
// Every failure crossing a package boundary carries a code so the CLI can
// map it to an exit code and a useful message.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Keychain errors
	ErrCodeKeychainRead  ErrorCode = "KEYCHAIN_READ"
	ErrCodeKeychainWrite ErrorCode = "KEYCHAIN_WRITE"

	// Terminal session errors
	ErrCodeSessionInit    ErrorCode = "SESSION_INIT"
	ErrCodeSessionRestore ErrorCode = "SESSION_RESTORE"

	// Loop I/O errors
	ErrCodeInputRead ErrorCode = "INPUT_READ"
	ErrCodeRender    ErrorCode = "RENDER"

	// Generic errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Error represents a structured monika error
type Error struct {
	Code        ErrorCode
	Message     string
	Underlying  error
	Remediation []string
}

// New creates a new structured error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with monika error context
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

// WithRemediation appends actionable remediation tips for the error.
func (e *Error) WithRemediation(tips ...string) *Error {
	if len(tips) == 0 {
		return e
	}
	e.Remediation = append([]string{}, tips...)
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Underlying != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Underlying))
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As
func (e *Error) Unwrap() error {
	return e.Underlying
}

// CodeOf extracts the code from an error, or ErrCodeInternal if the error
// carries none.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var structured *Error
	if As(err, &structured) {
		return structured.Code
	}
	return ErrCodeInternal
}

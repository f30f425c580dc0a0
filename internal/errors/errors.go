package errors

import (
	"errors"
	"fmt"
	"time"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeNoParticipants indicates a turn advance on an empty combat roster
	CodeNoParticipants Code = "no_participants"

	// CodeCooldownActive indicates an ability was reused before its cooldown elapsed
	CodeCooldownActive Code = "cooldown_active"

	// CodeTargetNotFound indicates an ability target has no character record
	CodeTargetNotFound Code = "target_not_found"

	// CodeUnavailable indicates the backing store is currently unreachable
	CodeUnavailable Code = "unavailable"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	// Otherwise, create unknown error
	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// NoParticipants creates a no participants error
func NoParticipants(message string) *Error {
	return New(CodeNoParticipants, message)
}

// TargetNotFound creates a target not found error
func TargetNotFound(message string) *Error {
	return New(CodeTargetNotFound, message)
}

// TargetNotFoundf creates a formatted target not found error
func TargetNotFoundf(format string, args ...any) *Error {
	return Newf(CodeTargetNotFound, format, args...)
}

// CooldownActive creates a cooldown error carrying the remaining wait in the
// "remaining" metadata key so the caller can render it.
func CooldownActive(remaining time.Duration) *Error {
	return Newf(CodeCooldownActive, "ability on cooldown for %s", remaining.Round(time.Second)).
		WithMeta("remaining", remaining)
}

// Unavailable creates an error for an unreachable backing store
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsNoParticipants checks if the error is a no participants error
func IsNoParticipants(err error) bool {
	return Is(err, CodeNoParticipants)
}

// IsCooldownActive checks if the error is a cooldown error
func IsCooldownActive(err error) bool {
	return Is(err, CodeCooldownActive)
}

// IsTargetNotFound checks if the error is a target not found error
func IsTargetNotFound(err error) bool {
	return Is(err, CodeTargetNotFound)
}

// IsUnavailable checks if the error is a storage unavailable error
func IsUnavailable(err error) bool {
	return Is(err, CodeUnavailable)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// CooldownRemaining returns the remaining wait carried by a cooldown error,
// or zero when the error is not a cooldown rejection.
func CooldownRemaining(err error) time.Duration {
	if !IsCooldownActive(err) {
		return 0
	}
	if remaining, ok := GetMeta(err)["remaining"].(time.Duration); ok {
		return remaining
	}
	return 0
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}

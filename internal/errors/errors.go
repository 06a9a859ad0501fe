package errors

import (
	"errors"
	"fmt"
)

// Error is a coded error with a message for the player and optional metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var other *Error
	return errors.As(target, &other) && other.Code == e.Code
}

// WithMeta sets a metadata key and returns e
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = map[string]interface{}{}
	}
	e.Meta[key] = value
	return e
}

// New creates an error with code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap adds message to err. The code and metadata of a wrapped *Error are
// kept and context cancellation keeps its code. Anything else is CodeInternal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: GetCode(err), Message: message, Cause: err}
	var inner *Error
	if errors.As(err, &inner) {
		wrapped.Meta = inner.Meta
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code. Metadata is copied.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: code, Message: message, Cause: err, Meta: map[string]interface{}{}}
	var inner *Error
	if errors.As(err, &inner) {
		for k, v := range inner.Meta {
			wrapped.Meta[k] = v
		}
	}
	return wrapped
}

// NotFound reports a missing session value or skill
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf is NotFound with a formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// InvalidArgument reports a rejected input
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf is InvalidArgument with a formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return InvalidArgument(fmt.Sprintf(format, args...))
}

// InvalidField rejects one input field. The field name and value go into the
// "field" and "value" metadata keys.
func InvalidField(field string, value interface{}, reason string) *Error {
	return InvalidArgumentf("%s: %s", field, reason).
		WithMeta("field", field).
		WithMeta("value", value)
}

// Internal reports a bug or an unexpected failure
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Unavailable reports a session store that cannot be reached
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

package errors

import (
	"context"
	"errors"
)

// Is is errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the outermost *Error in err's chain. Bare
// context errors map to CodeCanceled and CodeDeadlineExceeded.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var coded *Error
	switch {
	case errors.As(err, &coded):
		return coded.Code
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	default:
		return CodeInternal
	}
}

// GetMeta returns the metadata of err, nil for plain errors
func GetMeta(err error) map[string]interface{} {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

// GetMessage returns the player facing message of err
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Message
	}
	return err.Error()
}

// IsNotFound reports whether err carries CodeNotFound
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsUnavailable reports whether err carries CodeUnavailable
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsInternal reports whether err carries CodeInternal
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

package errors

import (
	"errors"
	"fmt"
)

// Code classifies a failure for callers deciding whether to retry, report
// or skip
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeValidation      Code = "validation"

	// CodeUnavailable marks a storage backend that could not be reached.
	// The blow itself has still resolved when lore storage reports it.
	CodeUnavailable Code = "unavailable"

	// CodeCorrupt marks stored data that could not be decoded
	CodeCorrupt Code = "corrupt"
)

// Error is a coded error carrying optional key/value context for logs
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key/value pair and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// Wrap adds context to err, keeping the code and metadata of a wrapped
// *Error. Anything else becomes CodeUnknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var coded *Error
	if errors.As(err, &coded) {
		return &Error{
			Code:    coded.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(coded.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NotFound reports a missing record, such as a race nobody has fought
func NotFound(message string) *Error {
	return newError(CodeNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return newError(CodeNotFound, fmt.Sprintf(format, args...))
}

// InvalidArgument reports a caller mistake: a missing combatant, an
// unknown blow method, a malformed dice string
func InvalidArgument(message string) *Error {
	return newError(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return newError(CodeInvalidArgument, fmt.Sprintf(format, args...))
}

// Validation reports configuration values out of range
func Validation(message string) *Error {
	return newError(CodeValidation, message)
}

func Validationf(format string, args ...any) *Error {
	return newError(CodeValidation, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain carries code
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }
func IsValidation(err error) bool      { return Is(err, CodeValidation) }
func IsUnavailable(err error) bool     { return Is(err, CodeUnavailable) }
func IsCorrupt(err error) bool         { return Is(err, CodeCorrupt) }

// GetCode returns err's code, CodeUnknown for uncoded errors
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta returns a copy of err's metadata, nil when there is none
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return copyMeta(coded.Meta)
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// Package errors carries coded errors through the spell pipeline. Catalog
// validation, repository lookups and mana checks each map to a Code so the
// CLI and services can branch on the category instead of the message.
package errors

import (
	"errors"
	"fmt"
)

// Code is the category of a failure, stable across wrapping
type Code string

const (
	// CodeUnknown marks a plain error from outside the pipeline
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an unusable argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a spell, rune or record does not exist
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to store a key that is taken
	CodeAlreadyExists Code = "already_exists"

	// CodeValidation indicates authored data failed validation
	CodeValidation Code = "validation"

	// CodeInternal indicates a broken invariant, such as a panicking listener
	CodeInternal Code = "internal"

	// CodeUnavailable indicates a backing store could not be reached
	CodeUnavailable Code = "unavailable"

	// CodeInsufficientResource indicates a pool such as mana cannot cover a cost
	CodeInsufficientResource Code = "insufficient_resource"
)

// Error is a coded failure. Meta holds lookup keys like the spell key or
// redis key so log lines can name what failed.
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

// WithMeta records a key such as "spell" or "variant" and returns e for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a coded error
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap adds context to err. A coded cause keeps its code and meta, so a
// validation failure inside an augment still reads as validation once the
// spell key is prefixed. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code, e.g. a redis dial error
// becoming unavailable.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFound reports a missing spell, rune slot or stored record
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument reports a nil or unusable argument from the caller
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf reports a spell key that is already stored
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validation reports authored catalog data that cannot build
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Is reports whether the outermost *Error in err's chain has code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsValidation is true for bad catalog documents and spell data
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsUnavailable is true when redis or another store could not be reached
func IsUnavailable(err error) bool {
	return Is(err, CodeUnavailable)
}

// IsInsufficientResource is true when a caster lacks mana for a rune
func IsInsufficientResource(err error) bool {
	return Is(err, CodeInsufficientResource)
}

// GetCode returns the code of err, or CodeUnknown for uncoded errors
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

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

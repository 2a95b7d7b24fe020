package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving the code when the
// wrapped error already carries one.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if err wraps an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err wraps an AppError with the given code.
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}

// Predefined error codes
const (
	CodeUnknownIndicator  = "UNKNOWN_INDICATOR"
	CodeDataSourceMissing = "DATA_SOURCE_MISSING"
	CodeMalformedInput    = "MALFORMED_INPUT"
	CodeSchemaMismatch    = "SCHEMA_MISMATCH"
	CodeEmptyDataset      = "EMPTY_DATASET"
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Common error constructors

func UnknownIndicator(key string) *AppError {
	return New(CodeUnknownIndicator, fmt.Sprintf("unknown indicator %q", key))
}

func DataSourceMissing(path string) *AppError {
	return New(CodeDataSourceMissing, fmt.Sprintf("data file not found: %s", path))
}

func MalformedInput(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeMalformedInput,
		Message: fmt.Sprintf("failed to parse %s", path),
		Cause:   cause,
	}
}

// SchemaMismatch reports which column was expected and which columns the file
// actually carries, so a bad export is diagnosable from the message alone.
func SchemaMismatch(expected string, actual []string) *AppError {
	cols := make([]string, len(actual))
	copy(cols, actual)
	sort.Strings(cols)
	return New(CodeSchemaMismatch, fmt.Sprintf("column %q not found; available columns: %s",
		expected, strings.Join(cols, ", ")))
}

func EmptyDataset(label string) *AppError {
	return New(CodeEmptyDataset, fmt.Sprintf("%s has no rows after cleaning", label))
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

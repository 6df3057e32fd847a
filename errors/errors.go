package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	ErrorCode_NOT_FOUND            ErrorCode = "NOT_FOUND"
	ErrorCode_INVALID_ARGUMENT     ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_STORAGE_FAILED       ErrorCode = "STORAGE_FAILED"
	ErrorCode_CAPABILITY_FAILED    ErrorCode = "CAPABILITY_FAILED"
	ErrorCode_SERIALIZATION_FAILED ErrorCode = "SERIALIZATION_FAILED"
	ErrorCode_INTERNAL             ErrorCode = "INTERNAL"
)

// String returns the string representation of the error code
func (c ErrorCode) String() string {
	return string(c)
}

// AppError là custom error type cho application
type AppError struct {
	Raw     error
	Code    ErrorCode
	Message string
	Details map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the ErrorCode carried by err, or ErrorCode_INTERNAL when
// err is not an AppError.
func CodeOf(err error) ErrorCode {
	var app AppError
	if errors.As(err, &app) {
		return app.Code
	}
	return ErrorCode_INTERNAL
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_INTERNAL,
		Message: "Internal error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		Code:    ErrorCode_INVALID_ARGUMENT,
		Message: message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		Code:    ErrorCode_NOT_FOUND,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// Storage Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_STORAGE_FAILED,
		Message: fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

// Capability Errors
func ErrCapabilityFailed(capability string, err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_CAPABILITY_FAILED,
		Message: fmt.Sprintf("Capability invocation failed: %s", capability),
	}
}

func ErrCapabilityUnavailable(capability string) AppError {
	return AppError{
		Code:    ErrorCode_CAPABILITY_FAILED,
		Message: "Capability unavailable",
	}.WithDetail("capability", capability)
}

// Serialization Errors
func ErrSerializationFailed(what string, err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_SERIALIZATION_FAILED,
		Message: fmt.Sprintf("Serialization failed: %s", what),
	}
}

// Export Errors
func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_STORAGE_FAILED,
		Message: "Failed to export meeting",
	}.WithDetail("format", format)
}

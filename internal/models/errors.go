package models

import (
	"errors"
	"fmt"
)

// Error codes carried by AppError.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeStorageFailure = "STORAGE_FAILURE"
	CodeValidation     = "VALIDATION_ERROR"
)

// Sentinels for errors.Is. Matching is by code, so any NOT_FOUND AppError
// satisfies errors.Is(err, ErrNotFound).
var (
	ErrNotFound   = &AppError{Code: CodeNotFound, Message: "record not found"}
	ErrStorage    = &AppError{Code: CodeStorageFailure, Message: "storage failure"}
	ErrValidation = &AppError{Code: CodeValidation, Message: "invalid argument"}
)

// AppError represents a data-access error.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewNotFoundError reports that no row of resource matched key.
func NewNotFoundError(resource string, key any) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with %v not found", resource, key),
	}
}

// NewStorageError wraps a driver error without altering it.
func NewStorageError(err error) *AppError {
	return &AppError{
		Code:    CodeStorageFailure,
		Message: "storage failure",
		Err:     err,
	}
}

// NewValidationError rejects a call before it reaches storage.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

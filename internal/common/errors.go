package common

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedFileType = errors.New("only PDF files are supported")
	ErrStorage             = errors.New("storage error")
	ErrFileNotFound        = errors.New("file not found")
	ErrUnreadableDocument  = errors.New("unreadable document")
	ErrAnalysisBackend     = errors.New("analysis backend error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus maps a pipeline error to the HTTP status code it surfaces as.
// Unreadable documents and missing files are kept as 500s on purpose: the
// upstream contract never special-cases them as client errors.
func HTTPStatus(err error) int {
	if errors.Is(err, ErrUnsupportedFileType) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

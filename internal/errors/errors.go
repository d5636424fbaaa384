package errors

import "fmt"

// ErrorCode represents a docket error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// DocketError represents a structured error with code, status, and details.
type DocketError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *DocketError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *DocketError {
	return &DocketError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for an unknown case or hearing id.
func NewNotFound(kind, id string) *DocketError {
	return &DocketError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %s", kind, id),
		Details: map[string]any{"kind": kind, "id": id},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *DocketError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &DocketError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a DocketError with the given code.
func Is(err error, code ErrorCode) bool {
	if dErr, ok := err.(*DocketError); ok {
		return dErr.Code == code
	}
	return false
}

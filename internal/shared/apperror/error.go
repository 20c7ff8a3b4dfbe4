package apperror

import "fmt"

type AppError struct {
	Code       string // Stable machine-readable code (e.g. INVALID_INPUT)
	Message    string // Human-readable message surfaced to the client
	HTTPStatus int    // HTTP status the handler should answer with
	Err        error  // Wrapped original error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap makes the wrapped error visible to errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without wrapping anything
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError around an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

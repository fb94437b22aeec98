package errors

import (
	"net/http"
)

// CustomError carries the HTTP status code the handler should respond with.
type CustomError struct {
	Code    int
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func UnauthorizedError(message string) error {
	return &CustomError{
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

func NotFound(message string) error {
	return &CustomError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

func InternalServerError(message string) error {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

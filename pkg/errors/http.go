package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the response code and message a handler
// should return to the client.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError. code doubles as the HTTP status when it is
// a valid status code, otherwise 400 is used.
func NewHTTPError(code int, msg string) *HTTPError {
	status := code
	if status < 100 || status > 599 {
		status = http.StatusBadRequest
	}
	return &HTTPError{Code: code, Message: msg, StatusCode: status}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ValidationError reports an invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

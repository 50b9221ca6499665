package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAuthenticationFailed is returned when email or password is incorrect.
	// Unknown email and wrong password are deliberately the same error so the
	// response cannot be used to enumerate registered addresses.
	ErrAuthenticationFailed = errors.New("invalid email or password")
	// ErrAlreadyExists is returned when registering an email that is taken,
	// or creating a category whose name is taken for that user.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrNotFound is returned when the target of an update or read is missing.
	ErrNotFound = errors.New("record not found")
	// ErrNoChangeRequested is returned when a profile update submits the
	// stored profile object itself.
	ErrNoChangeRequested = errors.New("profile details are the same, no update needed")
	// ErrInvalidToken is returned for malformed or badly signed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for well-formed tokens past their expiry.
	ErrExpiredToken = errors.New("expired token")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError carries an HTTP status alongside a machine-readable code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapToHTTP maps domain errors to HTTP errors.
func MapToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAuthenticationFailed):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "AUTHENTICATION_FAILED")
	case errors.Is(err, ErrAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_EXISTS")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrNoChangeRequested):
		return NewHTTPError(http.StatusConflict, err.Error(), "NO_CHANGE_REQUESTED")
	case errors.Is(err, ErrExpiredToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "EXPIRED_TOKEN")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

package api

import (
	"errors"
	"net/http"

	"github.com/studysnap/studysnap-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var unprocessable *service.ImageUnprocessableError
	var stageErr *service.StageError

	switch {
	// The capability rejected the image itself; user-correctable.
	case errors.As(err, &unprocessable):
		return http.StatusUnprocessableEntity

	// Unknown or expired content key; user-correctable.
	case errors.Is(err, service.ErrTextNotFound):
		return http.StatusNotFound

	// Any generation fault, including quiz format conversion.
	case errors.As(err, &stageErr):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. Raw capability output and internal detail never appear
// in the returned string.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var unprocessable *service.ImageUnprocessableError
	var stageErr *service.StageError

	switch {
	// The capability's rejection message is written for end users and is
	// safe to pass through.
	case errors.As(err, &unprocessable):
		return unprocessable.Message

	case errors.Is(err, service.ErrTextNotFound):
		return "Text ID not found. Please process the image first."

	case errors.As(err, &stageErr):
		return "An error occurred while generating the study content. Please try again."

	default:
		return "An unexpected error occurred"
	}
}

package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-scorer/internal/decoding"
	"github.com/jonathan/resume-scorer/internal/extraction"
)

// ErrValidation indicates a request failed field validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBadJSON indicates an unparseable request body.
type ErrBadJSON struct {
	Cause error
}

func (e *ErrBadJSON) Error() string {
	return fmt.Sprintf("invalid JSON body: %v", e.Cause)
}

func (e *ErrBadJSON) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps an error to the HTTP status code it should produce.
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		badJSONErr     *ErrBadJSON
		unsupportedErr *decoding.UnsupportedFormatError
		decodeErr      *decoding.DecodeError
		extractErr     *extraction.Error
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &badJSONErr):
		return http.StatusBadRequest
	case errors.As(err, &unsupportedErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &decodeErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &extractErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

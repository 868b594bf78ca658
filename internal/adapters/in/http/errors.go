package http

import (
	"errors"
	"net/http"

	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromError maps application errors onto HTTP status codes.
//
// Validation failures are client errors; a missing object is 404; an item
// that exists but cannot be ordered, and a transition the state machine
// forbids, are both 422; a lost concurrent status race is 409. Anything
// unrecognized is a 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectUnavailable),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standard JSON error body for err. Internal errors
// are masked with a generic message so storage details never leak to clients.
func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

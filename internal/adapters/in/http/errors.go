package http

import (
	"errors"
	"net/http"

	"fuelsettlement/internal/core/ports"
	"fuelsettlement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps the application error taxonomy onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := statusCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyReleased),
		errors.Is(err, ports.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

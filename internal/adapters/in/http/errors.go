package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/generated/servers"
	"forwarding/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")

// statusFor maps a use case error to its HTTP status and client message.
// Unclassified errors become 500 and their details stay in the log.
func statusFor(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrCarrierNotFound),
		errors.Is(err, carrier.ErrServiceNotFound),
		errors.Is(err, carrier.ErrZoneNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, carrier.ErrServiceAlreadyExists),
		errors.Is(err, carrier.ErrZoneAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// NewErrorHandler renders every handler error as a servers.Error body.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := statusFor(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err,
			)
		}

		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(code)
			return
		}
		_ = ctx.JSON(code, servers.Error{Code: code, Message: message})
	}
}

package http

import (
	"errors"
	"log/slog"
	"net/http"

	"parceltracker/internal/generated/servers"
	"parceltracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not permitted for this role")
)

// statusOf maps the error taxonomy of the core onto HTTP status codes.
func statusOf(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorBody renders err as the API error document. Internal failures never
// leak their message.
func errorBody(status int, err error) servers.Error {
	body := servers.Error{Code: status, Message: http.StatusText(status)}

	var he *echo.HTTPError
	switch {
	case status == http.StatusInternalServerError:
	case errors.As(err, &he):
		if msg, ok := he.Message.(string); ok {
			body.Message = msg
		}
	case status == http.StatusUnprocessableEntity:
		var ve *errs.ValidationError
		if !errors.As(err, &ve) {
			_ = errors.As(errs.Collect(err), &ve)
		}
		body.Message = "validation failed"
		violations := make([]servers.Violation, 0, len(ve.Violations))
		for _, v := range ve.Violations {
			violation := servers.Violation{Message: v.Message}
			if v.Field != "" {
				field := v.Field
				violation.Field = &field
			}
			violations = append(violations, violation)
		}
		body.Violations = &violations
	default:
		body.Message = err.Error()
	}
	return body
}

// NewHTTPErrorHandler writes every error returned by a handler or middleware as
// a servers.Error document.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, errorBody(status, err))
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}

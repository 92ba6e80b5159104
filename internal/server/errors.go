package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	calendar "github.com/SebastiaanKlippert/go-calendar"
	"github.com/SebastiaanKlippert/go-calendar/internal/config"
)

// appError carries an HTTP status code, a machine-readable type and a
// message safe to show to the client.
type appError struct {
	Code     int
	Type     string
	Message  string
	Internal error
}

func (e *appError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *appError) Unwrap() error {
	return e.Internal
}

func newBadRequest(message string) *appError {
	return &appError{Code: http.StatusBadRequest, Type: "bad_request", Message: message}
}

func newInternal(err error) *appError {
	return &appError{
		Code:     http.StatusInternalServerError,
		Type:     "internal_error",
		Message:  "An unexpected error occurred.",
		Internal: err,
	}
}

// fromCalendarError maps errors of the calendar package to client errors.
// The calendar messages hold only the values the client sent, so they are
// passed through.
func fromCalendarError(err error) *appError {
	var fieldErr *calendar.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return &appError{Code: http.StatusBadRequest, Type: "invalid_" + fieldErr.Field.String(), Message: err.Error()}
	case errors.Is(err, calendar.ErrSkippedDate):
		return &appError{Code: http.StatusUnprocessableEntity, Type: "skipped_date", Message: err.Error()}
	case errors.Is(err, calendar.ErrJDNRange):
		return &appError{Code: http.StatusUnprocessableEntity, Type: "jdn_range", Message: err.Error()}
	case errors.Is(err, calendar.ErrInvalidReformation), errors.Is(err, config.ErrInvalid):
		return &appError{Code: http.StatusBadRequest, Type: "invalid_calendar", Message: err.Error()}
	}
	return newInternal(err)
}

// errorHandler renders every error as JSON. Unknown errors are logged and
// reported without detail.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	typ := "internal_error"
	message := "An unexpected error occurred."

	var appErr *appError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		code, typ, message = appErr.Code, appErr.Type, appErr.Message
		if appErr.Internal != nil && code >= http.StatusInternalServerError {
			s.logger.Error("internal error",
				slog.String("type", appErr.Type),
				slog.Any("internal", appErr.Internal),
				slog.String("path", c.Request().URL.Path),
			)
		}
	case errors.As(err, &echoErr):
		code = echoErr.Code
		typ = "http_error"
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	default:
		s.logger.Error("unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
		)
	}

	if err := c.JSON(code, errorResponse{Error: http.StatusText(code), Type: typ, Message: message}); err != nil {
		s.logger.Error("writing error response", slog.Any("error", err))
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

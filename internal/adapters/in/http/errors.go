package http

import (
	"errors"
	"net/http"

	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StatusFor maps a use case error to its HTTP status code.
func StatusFor(err error) int {
	var (
		notFound   *errs.ObjectNotFoundError
		invalid    *errs.ValueIsInvalidError
		required   *errs.ValueIsRequiredError
		outOfRange *errs.ValueIsOutOfRangeError
		httpErr    *echo.HTTPError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Client errors carry the error text;
// server errors only the generic message.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := StatusFor(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error(message,
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		return ctx.JSON(code, Error{Code: code, Message: message})
	}
	return ctx.JSON(code, Error{Code: code, Message: message + ": " + err.Error()})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// ErrorHandler renders errors escaping the handlers, such as unknown routes
// or parameter binding failures, in the Error format.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := StatusFor(err)
		message := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}
		if code >= http.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", ctx.Path()), zap.Error(err))
		}

		if writeErr := ctx.JSON(code, Error{Code: code, Message: message}); writeErr != nil {
			logger.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}

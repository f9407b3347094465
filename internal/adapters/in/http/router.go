// Package http is the REST interface of the pizzeria.
//
// Routes and their wire types follow api/openapi.yaml. Every request under
// /api/v1 is validated against the contract before it reaches a handler.
// Use case errors map to status codes by type: errs.ObjectNotFoundError to
// 404, the value errors of package errs to 400 and everything else to 500.
package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

// NewEcho assembles the echo instance: recovery, request logging, contract
// validation, documentation, the health probe and the API routes.
func NewEcho(server ServerInterface, doc *openapi3.T, logger *zap.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.INFO)
	e.HTTPErrorHandler = ErrorHandler(logger)

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(validator)

	if err = RegisterDocs(e, doc); err != nil {
		return nil, err
	}
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	RegisterHandlers(e, server)

	return e, nil
}

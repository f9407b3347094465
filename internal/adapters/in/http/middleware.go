package http

import (
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			req := ctx.Request()
			logger.Info("request",
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", ctx.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}

// RequestValidator rejects requests that do not match the OpenAPI contract.
// Requests outside the contract, such as /health, pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}
			return next(ctx)
		}
	}, nil
}

package http

import (
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// swaggerDoc serves the OpenAPI contract to swag's registry.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerDoc sync.Once

// RegisterDocs serves the contract as /openapi.json and the Swagger UI
// under /swagger/. swag keeps a process-wide registry, so only the first
// contract registered is shown in the UI.
func RegisterDocs(e *echo.Echo, doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerDoc.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})

	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, data)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}

// Package api holds the OpenAPI contract of the pizzeria HTTP interface.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var Spec []byte

// Load parses and validates the embedded contract.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(Spec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse openapi contract: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi contract: %w", err)
	}
	return doc, nil
}

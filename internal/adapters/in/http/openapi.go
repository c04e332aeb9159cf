package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"visibility/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

var registerSwaggerOnce sync.Once

// Spec is the loaded and validated OpenAPI document of the service.
type Spec struct {
	doc  *openapi3.T
	json []byte
}

// LoadSpec parses the embedded OpenAPI document and validates it.
func LoadSpec(ctx context.Context) (*Spec, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}

	return &Spec{doc: doc, json: raw}, nil
}

// Document returns the parsed document.
func (s *Spec) Document() *openapi3.T {
	return s.doc
}

// JSON returns the document encoded as JSON.
func (s *Spec) JSON() []byte {
	return s.json
}

// ReadDoc implements swag.Swagger so the document can back the Swagger UI.
func (s *Spec) ReadDoc() string {
	return string(s.json)
}

// RegisterSwagger publishes the document under swag's default instance name.
// Only the first call registers; swag panics on duplicates.
func (s *Spec) RegisterSwagger() {
	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, s)
	})
}

// DecodeBody validates body against the named component schema and decodes it into dst.
// Returns a ValueIsInvalidError when the body is not JSON or violates the schema.
func (s *Spec) DecodeBody(schemaName string, body []byte, dst any) error {
	ref, ok := s.doc.Components.Schemas[schemaName]
	if !ok || ref.Value == nil {
		return fmt.Errorf("schema %s is not defined", schemaName)
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := ref.Value.VisitJSON(value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

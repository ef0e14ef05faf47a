package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-story",
	Description: "Minimal story shape for validation tests",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"paragraphs": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"title", "paragraphs"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title":"The Lost Star","paragraphs":["Once upon a time."]}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"No body"}`)
	err := validateResponse(testSchema, raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"title": "unterminated`)
	err := validateResponse(testSchema, raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should not validate: %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	raw := json.RawMessage(`{"title":"A","paragraphs":[]}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(testSchema.Name); !ok {
		t.Fatal("expected schema to be cached after first use")
	}
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}

package check

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
)

func TestSchemaSummary(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"b":    {Type: "number"},
			"a":    {Type: "number", Description: "first addend"},
			"tags": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
		Required: []string{"a", "b"},
	}

	assert.Equal(t, []string{
		"a: number (required) - first addend",
		"b: number (required)",
		"tags: array of string",
	}, SchemaSummary(schema))
}

// Listed tools deliver their input schema as decoded JSON rather than a
// typed schema; the summary must work from that form.
func TestSchemaSummaryFromWireFormat(t *testing.T) {
	wire := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
		"required": []any{"a"},
	}

	assert.Equal(t, []string{
		"a: number (required)",
		"b: number",
	}, SchemaSummary(toSchema(wire)))
}

func TestToSchema(t *testing.T) {
	assert.Nil(t, toSchema(nil))
	assert.Nil(t, toSchema(map[string]any{"type": 42}))

	typed := &jsonschema.Schema{Type: "object"}
	assert.Same(t, typed, toSchema(typed))
}

func TestSchemaSummaryEmpty(t *testing.T) {
	assert.Nil(t, SchemaSummary(nil))
	assert.Nil(t, SchemaSummary(&jsonschema.Schema{Type: "object"}))
}

func TestSchemaType(t *testing.T) {
	assert.Equal(t, "any", schemaType(nil))
	assert.Equal(t, "any", schemaType(&jsonschema.Schema{}))
	assert.Equal(t, "string|null", schemaType(&jsonschema.Schema{Types: []string{"string", "null"}}))
	assert.Equal(t, "array", schemaType(&jsonschema.Schema{Type: "array"}))
	assert.Equal(t, "enum", schemaType(&jsonschema.Schema{Enum: []any{"a", "b"}}))
}

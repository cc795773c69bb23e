package check

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// toSchema recovers a typed schema from a listed tool's input schema, which
// arrives from the wire as decoded JSON (map[string]any). Anything that does
// not round-trip as a schema yields nil, and the summary stays silent.
func toSchema(v any) *jsonschema.Schema {
	if v == nil {
		return nil
	}
	if s, ok := v.(*jsonschema.Schema); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	return &s
}

// SchemaSummary renders a tool's input schema as one line per property,
// e.g. "a: number (required)". Schemas without properties produce nothing.
func SchemaSummary(s *jsonschema.Schema) []string {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}

	required := map[string]bool{}
	for _, name := range s.Required {
		required[name] = true
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		line := fmt.Sprintf("%s: %s", name, schemaType(s.Properties[name]))
		if required[name] {
			line += " (required)"
		}
		if desc := s.Properties[name].Description; desc != "" {
			line += " - " + desc
		}
		lines = append(lines, line)
	}
	return lines
}

func schemaType(s *jsonschema.Schema) string {
	switch {
	case s == nil:
		return "any"
	case len(s.Types) > 0:
		return strings.Join(s.Types, "|")
	case s.Type == "array":
		if s.Items != nil {
			return "array of " + schemaType(s.Items)
		}
		return "array"
	case s.Type != "":
		return s.Type
	case len(s.Enum) > 0:
		return "enum"
	default:
		return "any"
	}
}

package check

import (
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NormalizeArgs returns a non-nil argument map for a tool call. Tools taking
// no arguments are invoked with an empty object, not a JSON null.
func NormalizeArgs(args map[string]any) map[string]any {
	if args == nil {
		return map[string]any{}
	}
	return args
}

// DecodeResult converts a tool call's structured content into out. A nil
// result or a result without structured content leaves out untouched.
func DecodeResult(res *mcp.CallToolResult, out any) error {
	if res == nil || res.StructuredContent == nil {
		return nil
	}
	b, err := json.Marshal(res.StructuredContent)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// ResultText flattens a tool call result into a printable string. Text
// content blocks are joined in order; a result carrying only structured
// content is rendered as compact JSON.
func ResultText(res *mcp.CallToolResult) string {
	if res == nil {
		return ""
	}

	var parts []string
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "\n")
	}

	if res.StructuredContent != nil {
		b, err := json.Marshal(res.StructuredContent)
		if err == nil {
			return string(b)
		}
	}
	return ""
}

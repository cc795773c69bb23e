// Package endpoint derives Bedrock AgentCore runtime invocation URLs.
package endpoint

import (
	"fmt"
	"strings"
)

// arnEscaper encodes the two characters the AgentCore runtime path
// reserves. Nothing else in the ARN is altered.
var arnEscaper = strings.NewReplacer(":", "%3A", "/", "%2F")

// EncodeRuntimeARN percent-encodes ':' and '/' in an agent runtime ARN so it
// can be embedded as a single path segment.
func EncodeRuntimeARN(arn string) string {
	return arnEscaper.Replace(arn)
}

// RuntimeURL builds the MCP invocation URL for an agent runtime in the given
// region. The ARN is not validated here; a malformed ARN surfaces as a
// transport error when the endpoint is contacted.
func RuntimeURL(agentARN, region string) string {
	return fmt.Sprintf("https://bedrock-agentcore.%s.amazonaws.com/runtimes/%s/invocations?qualifier=DEFAULT",
		region, EncodeRuntimeARN(agentARN))
}

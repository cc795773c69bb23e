// Package server implements the sample AgentCore MCP server the diagnostic
// harness is written against. It exposes the same four tools as the deployed
// runtime, so the harness can be exercised end to end without AWS.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddInput are the arguments for add_numbers.
type AddInput struct {
	A float64 `json:"a" jsonschema:"first addend"`
	B float64 `json:"b" jsonschema:"second addend"`
}

// MultiplyInput are the arguments for multiply_numbers.
type MultiplyInput struct {
	A float64 `json:"a" jsonschema:"first factor"`
	B float64 `json:"b" jsonschema:"second factor"`
}

// GreetInput are the arguments for greet_user.
type GreetInput struct {
	Name string `json:"name" jsonschema:"name of the person to greet"`
}

// RegionInput is the empty argument set for get_aws_region.
type RegionInput struct{}

// New builds the MCP server with all four diagnostic tools registered.
func New() *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "iam-runtime-sample",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "add_numbers",
		Description: "Add two numbers together",
	}, addNumbers)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "multiply_numbers",
		Description: "Multiply two numbers together",
	}, multiplyNumbers)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "greet_user",
		Description: "Greet a user by name",
	}, greetUser)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_aws_region",
		Description: "Return the AWS region the server is running in",
	}, getAWSRegion)

	return s
}

// Handler serves a shared server instance over streamable HTTP.
func Handler() http.Handler {
	s := New()
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
}

func addNumbers(ctx context.Context, req *mcp.CallToolRequest, in AddInput) (*mcp.CallToolResult, any, error) {
	return textResult(formatNumber(in.A + in.B)), nil, nil
}

func multiplyNumbers(ctx context.Context, req *mcp.CallToolRequest, in MultiplyInput) (*mcp.CallToolResult, any, error) {
	return textResult(formatNumber(in.A * in.B)), nil, nil
}

func greetUser(ctx context.Context, req *mcp.CallToolRequest, in GreetInput) (*mcp.CallToolResult, any, error) {
	if in.Name == "" {
		return nil, nil, fmt.Errorf("name is required")
	}
	return textResult(fmt.Sprintf("Hello, %s! Greetings from the AgentCore runtime.", in.Name)), nil, nil
}

func getAWSRegion(ctx context.Context, req *mcp.CallToolRequest, in RegionInput) (*mcp.CallToolResult, any, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if region == "" {
		region = "not configured"
	}
	return textResult(region), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// formatNumber renders whole results without a decimal point, matching how
// the deployed runtime prints them.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

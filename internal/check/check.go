// Package check drives one end-to-end connectivity check against an MCP
// server hosted on a Bedrock AgentCore runtime: resolve credentials, open a
// SigV4-signed streamable HTTP session, list the exposed tools, and invoke a
// fixed set of sample tools.
package check

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/des1-gner/bedrock-agentcore-iam-runtime-mcp-server/internal/config"
	"github.com/des1-gner/bedrock-agentcore-iam-runtime-mcp-server/internal/endpoint"
	"github.com/des1-gner/bedrock-agentcore-iam-runtime-mcp-server/internal/sigv4"
)

// SampleCall is one fixed diagnostic invocation.
type SampleCall struct {
	Tool      string
	Arguments map[string]any
}

// DefaultSamples are the invocations issued on every run, in order.
var DefaultSamples = []SampleCall{
	{Tool: "add_numbers", Arguments: map[string]any{"a": 5, "b": 3}},
	{Tool: "multiply_numbers", Arguments: map[string]any{"a": 4, "b": 7}},
	{Tool: "greet_user", Arguments: map[string]any{"name": "Alice"}},
	{Tool: "get_aws_region", Arguments: map[string]any{}},
}

// Runner holds the parameters of one diagnostic run. Zero-value fields fall
// back to sensible defaults in Run.
type Runner struct {
	// AgentARN and Region identify the runtime endpoint.
	AgentARN string
	Region   string

	// Profile selects a shared-config AWS profile for credential resolution.
	Profile string

	// Service is the SigV4 signing service name.
	Service string

	// Timeout bounds every HTTP request made by the session.
	Timeout time.Duration

	// Verbose additionally prints each tool's input schema.
	Verbose bool

	// Samples defaults to DefaultSamples when nil.
	Samples []SampleCall

	// Credentials overrides ambient credential resolution when set.
	Credentials aws.CredentialsProvider

	// Endpoint overrides the URL derived from AgentARN and Region when set.
	Endpoint string

	// Out receives the human-readable report. os.Stdout when nil.
	Out io.Writer

	// Log receives progress diagnostics.
	Log zerolog.Logger
}

// Run executes the check. Any failure, from credential resolution to a failed
// sample call, aborts the run and is returned to the caller; there is no
// retry and no partial success.
func (r *Runner) Run(ctx context.Context) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	service := r.Service
	if service == "" {
		service = config.DefaultService
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	samples := r.Samples
	if samples == nil {
		samples = DefaultSamples
	}

	url := r.Endpoint
	if url == "" {
		url = endpoint.RuntimeURL(r.AgentARN, r.Region)
	}
	fmt.Fprintf(out, "Connecting to: %s\n", url)

	creds, err := r.resolveCredentials(ctx)
	if err != nil {
		return err
	}

	session, err := r.openSession(ctx, url, creds, service, timeout)
	if err != nil {
		return err
	}
	defer session.Close()
	r.Log.Info().Str("server", session.InitializeResult().ServerInfo.Name).Msg("MCP session initialized")

	if err := r.listTools(ctx, session, out); err != nil {
		return err
	}

	for _, sample := range samples {
		if err := r.invoke(ctx, session, out, sample); err != nil {
			return err
		}
	}
	return nil
}

// resolveCredentials returns the configured provider, or the ambient AWS
// credential chain, and fails fast when no identity is available.
func (r *Runner) resolveCredentials(ctx context.Context) (aws.CredentialsProvider, error) {
	creds := r.Credentials
	if creds == nil {
		opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(r.Region)}
		if r.Profile != "" {
			opts = append(opts, awsconfig.WithSharedConfigProfile(r.Profile))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("load AWS configuration: %w", err)
		}
		creds = cfg.Credentials
	}
	if _, err := creds.Retrieve(ctx); err != nil {
		return nil, fmt.Errorf("resolve AWS credentials: %w", err)
	}
	return creds, nil
}

// openSession connects the streamable HTTP transport through the signing
// client and performs the MCP initialize handshake.
func (r *Runner) openSession(ctx context.Context, url string, creds aws.CredentialsProvider, service string, timeout time.Duration) (*mcp.ClientSession, error) {
	httpClient := sigv4.Client(sigv4.New(creds, service, r.Region), timeout)
	transport := &mcp.StreamableClientTransport{
		Endpoint:   url,
		HTTPClient: httpClient,
	}
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "agentcore-mcp-check",
		Version: "0.1.0",
	}, nil)

	r.Log.Info().Msg("initializing MCP session")
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("initialize MCP session: %w", err)
	}
	return session, nil
}

// listTools prints every tool the session exposes, in server order, following
// the list cursor until the server is exhausted.
func (r *Runner) listTools(ctx context.Context, session *mcp.ClientSession, out io.Writer) error {
	fmt.Fprintln(out, "\n=== Available Tools ===")

	params := &mcp.ListToolsParams{}
	for {
		res, err := session.ListTools(ctx, params)
		if err != nil {
			return fmt.Errorf("list tools: %w", err)
		}
		for _, tool := range res.Tools {
			fmt.Fprintf(out, "  - %s: %s\n", tool.Name, tool.Description)
			if r.Verbose {
				for _, line := range SchemaSummary(toSchema(tool.InputSchema)) {
					fmt.Fprintf(out, "      %s\n", line)
				}
			}
		}
		if res.NextCursor == "" {
			return nil
		}
		params.Cursor = res.NextCursor
	}
}

// invoke runs one sample call and prints its result. A result flagged as an
// error by the server fails the run just like a transport error.
func (r *Runner) invoke(ctx context.Context, session *mcp.ClientSession, out io.Writer, sample SampleCall) error {
	fmt.Fprintf(out, "\n=== Testing %s tool ===\n", sample.Tool)
	r.Log.Debug().Str("tool", sample.Tool).Interface("arguments", sample.Arguments).Msg("calling tool")

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      sample.Tool,
		Arguments: NormalizeArgs(sample.Arguments),
	})
	if err != nil {
		return fmt.Errorf("call tool %s: %w", sample.Tool, err)
	}
	if res.IsError {
		return fmt.Errorf("tool %s failed: %s", sample.Tool, ResultText(res))
	}

	if res.StructuredContent != nil {
		var structured map[string]any
		if err := DecodeResult(res, &structured); err == nil {
			r.Log.Debug().Str("tool", sample.Tool).Interface("structured", structured).Msg("structured tool result")
		}
	}

	fmt.Fprintf(out, "%s(%v) = %s\n", sample.Tool, sample.Arguments, ResultText(res))
	return nil
}

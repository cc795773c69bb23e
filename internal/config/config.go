// Package config resolves harness settings from flags, environment variables,
// and defaults through Viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults mirror the placeholders in the original diagnostic script; they are
// meant to be overridden by flags or environment before a real run.
const (
	DefaultAgentARN = "arn:aws:bedrock-agentcore:us-west-2:123456789012:runtime/my_iam_mcp_server-abc123"
	DefaultRegion   = "us-west-2"
	DefaultService  = "bedrock-agentcore"
	DefaultTimeout  = 120 * time.Second
)

// Config holds everything one diagnostic run needs.
type Config struct {
	// AgentARN names the AgentCore runtime to invoke.
	AgentARN string

	// Region is the AWS region of the runtime endpoint and the SigV4 scope.
	Region string

	// Profile selects a shared-config AWS profile. Empty uses the default
	// credential chain.
	Profile string

	// Timeout bounds the whole run, connection included.
	Timeout time.Duration

	// Verbose enables debug logging and tool schema output.
	Verbose bool
}

// Load reads the configuration from Viper. Flag bindings are expected to be
// registered by the CLI before calling; environment variables fill in the
// rest.
func Load() (*Config, error) {
	viper.SetDefault("agent-arn", DefaultAgentARN)
	viper.SetDefault("region", DefaultRegion)
	viper.SetDefault("timeout", DefaultTimeout)

	// AWS-conventional environment variables take effect without flags.
	_ = viper.BindEnv("agent-arn", "AGENT_ARN")
	_ = viper.BindEnv("region", "AWS_REGION", "AWS_DEFAULT_REGION")
	_ = viper.BindEnv("profile", "AWS_PROFILE")
	_ = viper.BindEnv("timeout", "MCP_CHECK_TIMEOUT")

	cfg := &Config{
		AgentARN: viper.GetString("agent-arn"),
		Region:   viper.GetString("region"),
		Profile:  viper.GetString("profile"),
		Timeout:  viper.GetDuration("timeout"),
		Verbose:  viper.GetBool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields the harness cannot run without. Everything else
// (ARN shape, region existence) is left to the endpoint to reject.
func (c *Config) Validate() error {
	if c.AgentARN == "" {
		return fmt.Errorf("agent ARN is required")
	}
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

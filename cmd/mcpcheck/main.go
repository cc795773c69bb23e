// Command mcpcheck runs a connectivity check against an MCP server hosted on
// a Bedrock AgentCore runtime: it opens a SigV4-signed streamable HTTP
// session, lists the server's tools, and invokes a fixed set of sample tools.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/des1-gner/bedrock-agentcore-iam-runtime-mcp-server/internal/check"
	"github.com/des1-gner/bedrock-agentcore-iam-runtime-mcp-server/internal/config"
)

var version = "dev"

func main() {
	// Optional .env for local runs; absence is not an error.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		log := logger(false)
		log.Error().Err(err).Msg("Error connecting to MCP server")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mcpcheck",
		Short:         "Check connectivity to an AgentCore-hosted MCP server",
		Long:          "mcpcheck connects to a Bedrock AgentCore runtime over SigV4-signed streamable HTTP,\nlists the MCP tools it exposes, and invokes a fixed set of sample tools.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}

	flags := cmd.Flags()
	flags.String("agent-arn", config.DefaultAgentARN, "ARN of the AgentCore runtime to invoke")
	flags.String("region", config.DefaultRegion, "AWS region of the runtime endpoint")
	flags.String("profile", "", "AWS shared-config profile for credentials")
	flags.Duration("timeout", config.DefaultTimeout, "overall timeout for the run")
	flags.BoolP("verbose", "v", false, "debug logging and tool schema output")

	for _, name := range []string{"agent-arn", "region", "profile", "timeout", "verbose"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}

	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger(cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	runner := &check.Runner{
		AgentARN: cfg.AgentARN,
		Region:   cfg.Region,
		Profile:  cfg.Profile,
		Timeout:  cfg.Timeout,
		Verbose:  cfg.Verbose,
		Log:      log,
	}
	return runner.Run(ctx)
}

func logger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

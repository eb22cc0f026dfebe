// Package cmd provides CLI commands for the crucible binary.
package cmd

import "github.com/urfave/cli/v2"

// Shared flags for client-backed commands.
var (
	// ConfigFlag points at a crucible.yaml config file.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to crucible.yaml config file",
	}

	// ModelFlag selects the model requests are issued against.
	ModelFlag = &cli.StringFlag{
		Name:  "model",
		Usage: "Model name (overrides config)",
	}

	// TokenFlag supplies the API token.
	TokenFlag = &cli.StringFlag{
		Name:    "token",
		Usage:   "API token (overrides config and CRUCIBLE_TOKEN)",
		EnvVars: []string{"CRUCIBLE_TOKEN"},
	}

	// BaseURLFlag overrides the gateway endpoint.
	BaseURLFlag = &cli.StringFlag{
		Name:  "base-url",
		Usage: "Gateway base URL (overrides config)",
	}

	// TimeoutFlag bounds each request.
	TimeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Per-request timeout (e.g. 30s)",
	}

	// InputFlag is the protein JSON file to operate on.
	InputFlag = &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "Path to protein JSON file",
		Required: true,
	}
)

// ClientFlags returns the shared flags for all client-backed commands.
func ClientFlags() []cli.Flag {
	return []cli.Flag{
		ConfigFlag,
		ModelFlag,
		TokenFlag,
		BaseURLFlag,
		TimeoutFlag,
	}
}

/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/servicekit/servicer/pkg/config"
	"github.com/servicekit/servicer/pkg/identity"
	"github.com/servicekit/servicer/pkg/lifecycle"
	"github.com/servicekit/servicer/pkg/logging"
	"github.com/servicekit/servicer/pkg/systemd"
	"github.com/servicekit/servicer/pkg/unit"
)

const name = "servicer"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Run executes the CLI. The root context is canceled on SIGINT/SIGTERM
// so an in-flight control-plane wait unblocks; no rollback is attempted
// for whatever already ran.
func Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd().Run(ctx, args)
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Turn programs and scripts into supervised systemd services",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file (default is $HOME/.servicer.yaml)",
				Sources: cli.EnvVars("SERVICER_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Info("starting",
				"run_id", uuid.NewString(),
				"version", version,
				"commit", commit)
			return ctx, nil
		},
		Commands: []*cli.Command{
			createCmd(),
			startCmd(),
			stopCmd(),
			restartCmd(),
			enableCmd(),
			disableCmd(),
			deleteCmd(),
			statusCmd(),
		},
	}
}

// newOrchestrator loads config, connects to the control plane and wires
// the orchestrator. The returned cleanup closes the connection.
func newOrchestrator(ctx context.Context, cmd *cli.Command) (*lifecycle.Orchestrator, *config.Config, func(), error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}
	client, err := systemd.Connect(ctx, systemd.WithJobTimeout(cfg.JobTimeout()))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot reach systemd (try again with sudo): %w", err)
	}
	o := lifecycle.New(client, unit.NewStore(cfg.UnitDir), identity.FromEnvironment(), os.Stdout)
	return o, cfg, func() { _ = client.Close() }, nil
}

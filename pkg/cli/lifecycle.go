/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/servicekit/servicer/pkg/lifecycle"
)

// transition is a single-service lifecycle action on the orchestrator.
type transition func(context.Context, *lifecycle.Orchestrator, string, bool) error

// transitionCmd builds the shared shape of start/stop/restart/enable/
// disable: one service argument, an optional status print afterwards.
func transitionCmd(cmdName, usage string, run transition) *cli.Command {
	return &cli.Command{
		Name:      cmdName,
		Usage:     usage,
		ArgsUsage: "<service>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "status",
				Usage: "show the service status afterwards",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc := cmd.Args().First()
			if svc == "" {
				return fmt.Errorf("%s requires a service name", cmdName)
			}
			o, _, done, err := newOrchestrator(ctx, cmd)
			if err != nil {
				return err
			}
			defer done()
			return run(ctx, o, svc, cmd.Bool("status"))
		},
	}
}

func startCmd() *cli.Command {
	return transitionCmd("start", "Start a service",
		func(ctx context.Context, o *lifecycle.Orchestrator, svc string, show bool) error {
			return o.Start(ctx, svc, show)
		})
}

func stopCmd() *cli.Command {
	return transitionCmd("stop", "Stop a service",
		func(ctx context.Context, o *lifecycle.Orchestrator, svc string, show bool) error {
			return o.Stop(ctx, svc, show)
		})
}

func restartCmd() *cli.Command {
	return transitionCmd("restart", "Restart a service (stop, then start)",
		func(ctx context.Context, o *lifecycle.Orchestrator, svc string, show bool) error {
			return o.Restart(ctx, svc, show)
		})
}

func enableCmd() *cli.Command {
	return transitionCmd("enable", "Enable a service to start on boot",
		func(ctx context.Context, o *lifecycle.Orchestrator, svc string, show bool) error {
			return o.Enable(ctx, svc, show)
		})
}

func disableCmd() *cli.Command {
	return transitionCmd("disable", "Disable a service from starting on boot",
		func(ctx context.Context, o *lifecycle.Orchestrator, svc string, show bool) error {
			return o.Disable(ctx, svc, show)
		})
}

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Stop, disable and remove a service",
		ArgsUsage: "<service>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc := cmd.Args().First()
			if svc == "" {
				return fmt.Errorf("delete requires a service name")
			}
			o, _, done, err := newOrchestrator(ctx, cmd)
			if err != nil {
				return err
			}
			defer done()
			return o.Delete(ctx, svc)
		},
	}
}

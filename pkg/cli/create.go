/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/servicekit/servicer/pkg/config"
	"github.com/servicekit/servicer/pkg/identity"
	"github.com/servicekit/servicer/pkg/lifecycle"
	"github.com/servicekit/servicer/pkg/unit"
)

func createCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a systemd service for a file or command",
		ArgsUsage: "<command> [args...]",
		Description: `Create a supervised systemd service from an executable, a script,
or a bare command. The service name defaults to the target's base name.

Scripts are run under an interpreter inferred from their extension
(.js under node, .py under python3) unless --interpreter overrides it.
The working directory defaults to the script's parent directory, or to
the current directory for plain executables.

# Examples

Create and immediately start a node service:

  servicer create index.js --start

Create an enabled, auto-restarting service under another user:

  sudo servicer create server.py --user deploy --enable --auto-restart

Pass arguments to the command after a double dash:

  servicer create --name worker --env FOO=BAR -- node index.js --port 8080

Preview the unit definition without creating anything:

  servicer create index.js --dry-run`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "custom name for the service (default: target base name)",
			},
			&cli.StringFlag{
				Name:    "directory",
				Aliases: []string{"d"},
				Usage:   "working directory for the service",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"D"},
				Usage:   "print the unit definition that would be created, then exit",
			},
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "run the service as this user (default: the invoking user)",
			},
			&cli.BoolFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "start the service after creating it",
			},
			&cli.BoolFlag{
				Name:    "enable",
				Aliases: []string{"e"},
				Usage:   "enable the service to start on boot (does not start it now)",
			},
			&cli.BoolFlag{
				Name:    "auto-restart",
				Aliases: []string{"r"},
				Usage:   "restart the service automatically when it exits",
			},
			&cli.StringFlag{
				Name:    "interpreter",
				Aliases: []string{"i"},
				Usage:   "interpreter binary name or path (default: inferred from extension)",
			},
			&cli.StringSliceFlag{
				Name:    "env",
				Aliases: []string{"v"},
				Usage:   "environment variable in KEY=VALUE form (can be repeated)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			req := lifecycle.CreateRequest{
				Name:        cmd.String("name"),
				Directory:   cmd.String("directory"),
				User:        cmd.String("user"),
				Interpreter: cmd.String("interpreter"),
				EnvVars:     cmd.StringSlice("env"),
				AutoRestart: cmd.Bool("auto-restart"),
				Command:     cmd.Args().Slice(),
				DryRun:      cmd.Bool("dry-run"),
				Start:       cmd.Bool("start"),
				Enable:      cmd.Bool("enable"),
			}
			if len(req.Command) == 0 {
				return fmt.Errorf("no command provided; usage: %s create <command> [args...]", name)
			}

			// A dry run must not touch the control plane, so the
			// orchestrator is built without a connection.
			if req.DryRun {
				cfg, err := config.Load(cmd.String("config"))
				if err != nil {
					return err
				}
				o := lifecycle.New(nil, unit.NewStore(cfg.UnitDir), identity.FromEnvironment(), os.Stdout)
				return o.Create(ctx, req)
			}

			o, _, done, err := newOrchestrator(ctx, cmd)
			if err != nil {
				return err
			}
			defer done()
			return o.Create(ctx, req)
		},
	}
}

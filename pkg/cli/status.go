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

	"github.com/servicekit/servicer/pkg/lifecycle"
	"github.com/servicekit/servicer/pkg/serializer"
)

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show the status of one service, or of all managed services",
		ArgsUsage: "[service]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Usage:   fmt.Sprintf("output format: %v", serializer.SupportedFormats()),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			o, cfg, done, err := newOrchestrator(ctx, cmd)
			if err != nil {
				return err
			}
			defer done()

			format := cmd.String("format")
			if format == "" {
				format = cfg.Format
			}
			outFormat := serializer.Format(format)
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", format)
			}

			var rows []lifecycle.Row
			if svc := cmd.Args().First(); svc != "" {
				row, err := o.StatusRow(ctx, svc)
				if err != nil {
					return err
				}
				rows = []lifecycle.Row{row}
			} else {
				if rows, err = o.StatusRows(ctx); err != nil {
					return err
				}
			}

			if outFormat == serializer.FormatTable {
				return lifecycle.RenderRows(os.Stdout, rows)
			}
			return serializer.NewStdoutWriter(outFormat).Serialize(ctx, rows)
		},
	}
}

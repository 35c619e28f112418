/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the servicer command-line interface.
//
// # Commands
//
// create - Turn a file or command into a systemd service:
//
//	servicer create index.js --start --enable
//	servicer create --name worker --user deploy --env FOO=BAR -- node index.js --port 8080
//
// start / stop / restart / enable / disable - Drive one service's
// lifecycle; each accepts --status to print the service state after
// the transition:
//
//	servicer restart worker --status
//
// delete - Stop, disable and remove a service definition.
//
// status - Show one service, or every service managed by this tool:
//
//	servicer status
//	servicer status worker --format json
//
// # Global Flags
//
//	--config      config file (default: $HOME/.servicer.yaml)
//	--log-level   log level: debug, info, warn, error (default: warn)
//
// # Exit Codes
//
//	0  Success
//	1  Any failure (resolution, persistence, or control-plane error)
//
// The CLI establishes one systemd D-Bus connection per invocation and
// delegates to pkg/lifecycle for all orchestration. Version information
// is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/servicekit/servicer/pkg/cli.version=1.0.0'"
package cli

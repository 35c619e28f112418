/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer renders command output in the supported formats.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable structured data
//   - Table: flattened key/value view for terminal reading
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	if err := writer.Serialize(ctx, rows); err != nil {
//	    log.Fatal(err)
//	}
package serializer

import "context"

// Serializer is implemented by every output writer. The context is
// accepted for interface symmetry; stdout and file writes do not block
// on it.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface for serializers holding resources.
type Closer interface {
	Close() error
}

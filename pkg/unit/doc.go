/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package unit turns a fully resolved service description into a
// systemd unit definition and manages the on-disk unit files this tool
// owns.
//
// The package has three parts:
//
//   - Name resolution: a logical service name maps to a namespaced
//     unit identifier (`<name>.servicer.service`) and its path under
//     the unit directory. The namespace suffix keeps lifecycle
//     commands and status listings away from units the operator did
//     not create with this tool.
//
//   - Synthesis: Synthesize is a pure function from Spec to the
//     complete unit definition text. Equal specs produce byte
//     identical output, so a dry run prints exactly what a real run
//     would persist.
//
//   - Persistence: Store writes definitions atomically and refuses to
//     overwrite an existing file, so a hand-authored unit is never
//     silently destroyed.
//
// Validation is separate from synthesis: Spec.Validate rejects input
// the line-oriented template cannot represent (no command, malformed
// environment entries, values containing newlines), and callers must
// validate before synthesizing.
package unit

/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package lifecycle sequences compound service actions against the unit
// store and the systemd control plane.
//
// Resolution failures (missing command, unresolvable binary, existing
// unit) abort before anything is mutated. Once the unit file has been
// persisted, control-plane failures in chained steps are reported and
// folded into the returned error, but the file is never rolled back:
// the service exists on disk in a not-yet-started state and the
// operator can retry the failed transition.
//
// Restart is deliberately stop-then-start rather than systemd's native
// restart job, so both transitions are individually observable and an
// already-stopped unit does not abort the start phase.
package lifecycle

/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package systemd is a narrow client over the systemd D-Bus control
// plane, scoped to the operations the lifecycle orchestrator needs.
//
// Start and Stop are two-phase: the request is submitted (systemd
// returns a job), then the call blocks until systemd signals the job's
// removal. Success is reported only when the job finished with result
// "done" (or "skipped"); any other result surfaces as a JobError, and a
// bounded wait guards against a control plane that never answers.
//
// One connection is established per CLI invocation and closed when the
// invocation ends; connections are never pooled or shared.
package systemd

package systemd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrJobTimeout indicates systemd did not report job completion within
// the configured wait.
var ErrJobTimeout = errors.New("timed out waiting for systemd job")

// JobError reports a systemd job that completed with a result other
// than success. Result carries systemd's verdict: "failed", "canceled",
// "timeout" or "dependency".
type JobError struct {
	Op     string
	Unit   string
	Result string
}

func (e *JobError) Error() string {
	return fmt.Sprintf("%s %s: job finished with result %q", e.Op, e.Unit, e.Result)
}

// IsNotLoaded reports whether err means the unit is unknown to systemd,
// which is how stopping a unit that was never started fails. Callers
// treat this as "already stopped" rather than a real failure.
func IsNotLoaded(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "org.freedesktop.systemd1.NoSuchUnit") ||
		strings.Contains(msg, "not loaded")
}

package systemd

import "context"

// Client is the control-plane surface the orchestrator drives. Start
// and Stop return only after the underlying systemd job has completed;
// they never report success merely because the request was accepted.
type Client interface {
	// Start activates the unit and waits for the start job to finish.
	Start(ctx context.Context, unitName string) error
	// Stop deactivates the unit and waits for the stop job to finish.
	Stop(ctx context.Context, unitName string) error
	// Enable persists boot-time activation for the unit file at the
	// given path. It does not start the unit.
	Enable(ctx context.Context, unitPath string) error
	// Disable removes boot-time activation.
	Disable(ctx context.Context, unitName string) error
	// Reload makes systemd re-read unit files from disk.
	Reload(ctx context.Context) error
	// Status reports the unit's current activation and enablement
	// state.
	Status(ctx context.Context, unitName string) (*Status, error)
	// List reports the status of every unit file matching the glob
	// pattern.
	List(ctx context.Context, pattern string) ([]Status, error)
	// ResetFailed clears a unit's failed state.
	ResetFailed(ctx context.Context, unitName string) error
	// Close releases the control-plane connection.
	Close() error
}

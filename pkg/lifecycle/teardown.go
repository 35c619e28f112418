package lifecycle

import (
	"context"
	"errors"

	"github.com/servicekit/servicer/pkg/systemd"
)

// Delete tears a service down best-effort: stop if running, disable if
// enabled, remove the unit file, reload systemd. Every step is
// attempted and reported on its own, so a service that was never
// started or enabled does not block removal of its definition.
func (o *Orchestrator) Delete(ctx context.Context, logical string) error {
	name, err := o.store.Resolve(logical)
	if err != nil {
		return err
	}

	var errs []error

	st, err := o.client.Status(ctx, name.Unit)
	if err != nil && !systemd.IsNotLoaded(err) {
		o.printf("Failed to query %s: %v", logical, err)
		errs = append(errs, err)
	}

	if st != nil && st.Active() {
		if err := o.client.Stop(ctx, name.Unit); err != nil {
			o.printf("Failed to stop %s: %v", logical, err)
			errs = append(errs, err)
		} else {
			o.printf("Stopped %s", logical)
		}
	} else {
		o.printf("%s was not running", logical)
	}

	if st != nil && st.Enabled() {
		if err := o.client.Disable(ctx, name.Unit); err != nil {
			o.printf("Failed to disable %s: %v", logical, err)
			errs = append(errs, err)
		} else {
			o.printf("Disabled %s", logical)
		}
	}

	// Clear any failed state so the name is clean for reuse.
	_ = o.client.ResetFailed(ctx, name.Unit)

	if err := o.store.Remove(name); err != nil {
		o.printf("Failed to remove unit file: %v", err)
		errs = append(errs, err)
	} else {
		o.printf("Removed %s", name.Path)
	}

	if err := o.client.Reload(ctx); err != nil {
		o.printf("Failed to reload systemd: %v", err)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

package lifecycle

import (
	"context"
	"fmt"

	"github.com/servicekit/servicer/pkg/systemd"
)

// Start activates the service and waits for the job to finish.
func (o *Orchestrator) Start(ctx context.Context, logical string, showStatus bool) error {
	name, err := o.store.Resolve(logical)
	if err != nil {
		return err
	}
	if err := o.client.Start(ctx, name.Unit); err != nil {
		return fmt.Errorf("starting %s: %w", logical, err)
	}
	o.printf("Started %s", logical)
	return o.maybeStatus(ctx, logical, showStatus)
}

// Stop deactivates the service and waits for the job to finish.
func (o *Orchestrator) Stop(ctx context.Context, logical string, showStatus bool) error {
	name, err := o.store.Resolve(logical)
	if err != nil {
		return err
	}
	if err := o.client.Stop(ctx, name.Unit); err != nil {
		if systemd.IsNotLoaded(err) {
			o.printf("%s was not running", logical)
			return o.maybeStatus(ctx, logical, showStatus)
		}
		return fmt.Errorf("stopping %s: %w", logical, err)
	}
	o.printf("Stopped %s", logical)
	return o.maybeStatus(ctx, logical, showStatus)
}

// Restart stops the service, then starts it. The two transitions are
// sequenced, awaited and reported individually; a unit that was not
// running is no reason to skip the start phase.
func (o *Orchestrator) Restart(ctx context.Context, logical string, showStatus bool) error {
	name, err := o.store.Resolve(logical)
	if err != nil {
		return err
	}

	if err := o.client.Stop(ctx, name.Unit); err != nil {
		if !systemd.IsNotLoaded(err) {
			return fmt.Errorf("stopping %s: %w", logical, err)
		}
		o.printf("%s was not running", logical)
	} else {
		o.printf("Stopped %s", logical)
	}

	if err := o.client.Start(ctx, name.Unit); err != nil {
		return fmt.Errorf("starting %s: %w", logical, err)
	}
	o.printf("Started %s", logical)
	return o.maybeStatus(ctx, logical, showStatus)
}

// Enable persists boot-time activation. It does not start the service.
func (o *Orchestrator) Enable(ctx context.Context, logical string, showStatus bool) error {
	name, err := o.store.Resolve(logical)
	if err != nil {
		return err
	}
	if err := o.client.Enable(ctx, name.Path); err != nil {
		return fmt.Errorf("enabling %s: %w", logical, err)
	}
	o.printf("Enabled %s", logical)
	return o.maybeStatus(ctx, logical, showStatus)
}

// Disable removes boot-time activation.
func (o *Orchestrator) Disable(ctx context.Context, logical string, showStatus bool) error {
	name, err := o.store.Resolve(logical)
	if err != nil {
		return err
	}
	if err := o.client.Disable(ctx, name.Unit); err != nil {
		return fmt.Errorf("disabling %s: %w", logical, err)
	}
	o.printf("Disabled %s", logical)
	return o.maybeStatus(ctx, logical, showStatus)
}

func (o *Orchestrator) maybeStatus(ctx context.Context, logical string, show bool) error {
	if !show {
		return nil
	}
	return o.ShowStatus(ctx, logical)
}

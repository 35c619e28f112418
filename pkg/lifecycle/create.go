package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/servicekit/servicer/pkg/resolver"
	"github.com/servicekit/servicer/pkg/unit"
)

// CreateRequest carries the operator's intent for a new service. The
// literal command is the only mandatory part; empty fields are resolved
// during Create.
type CreateRequest struct {
	Name        string
	Directory   string
	User        string
	Interpreter string
	EnvVars     []string
	AutoRestart bool
	Command     []string

	DryRun bool
	Start  bool
	Enable bool
}

// Create resolves the request into a unit definition and persists it,
// optionally chaining into start and enable. With DryRun set the
// definition is printed instead and nothing is touched.
func (o *Orchestrator) Create(ctx context.Context, req CreateRequest) error {
	if len(req.Command) == 0 {
		return resolver.ErrNoCommand
	}
	target := req.Command[0]

	logical := req.Name
	if logical == "" {
		logical = unit.FromTarget(target)
	}
	name, err := o.store.Resolve(logical)
	if err != nil {
		return err
	}
	if o.store.Exists(name) {
		return fmt.Errorf("%w: service %q already has a definition at %s; pick another name with --name or remove it with `servicer delete %s`",
			unit.ErrAlreadyExists, logical, name.Path, logical)
	}

	runAs := req.User
	if runAs == "" {
		if runAs, err = o.id.RunAsDefault(); err != nil {
			return err
		}
	}

	cmd, err := resolver.ResolveCommand(ctx, req.Command, req.Interpreter, runAs)
	if err != nil {
		return err
	}
	dir, err := resolver.WorkingDir(req.Directory, target, cmd.InterpreterResolved)
	if err != nil {
		return err
	}

	spec := unit.Spec{
		Command:     cmd.Tokens,
		WorkingDir:  dir,
		User:        runAs,
		EnvVars:     req.EnvVars,
		AutoRestart: req.AutoRestart,
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	text := unit.Synthesize(spec)

	if req.DryRun {
		fmt.Fprint(o.out, text)
		return nil
	}

	if err := o.store.Write(name, text); err != nil {
		return err
	}
	slog.Info("unit definition written", "unit", name.Unit, "path", name.Path)
	o.printf("Service %s created at %s. To start run `servicer start %s`.", logical, name.Path, logical)

	// The definition is on disk from here on; failures below are
	// reported but never roll it back.
	var errs []error
	if err := o.client.Reload(ctx); err != nil {
		o.printf("Failed to reload systemd: %v", err)
		errs = append(errs, err)
	}
	if req.Start {
		if err := o.client.Start(ctx, name.Unit); err != nil {
			o.printf("Failed to start %s: %v", logical, err)
			errs = append(errs, err)
		} else {
			o.printf("Started %s", logical)
		}
	}
	if req.Enable {
		if err := o.client.Enable(ctx, name.Path); err != nil {
			o.printf("Failed to enable %s: %v", logical, err)
			errs = append(errs, err)
		} else {
			o.printf("Enabled %s", logical)
		}
	}

	if err := o.ShowStatus(ctx, logical); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

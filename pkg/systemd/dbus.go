package systemd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"
	"golang.org/x/sync/errgroup"
)

// DefaultJobTimeout bounds the wait for a submitted job to complete.
// systemd's own per-job timeout is 90s; a CLI should give up earlier
// and let the operator re-check with `status`.
const DefaultJobTimeout = 30 * time.Second

// listConcurrency caps parallel property queries when listing units.
const listConcurrency = 4

// Conn is the D-Bus backed Client. One Conn serves exactly one CLI
// invocation.
type Conn struct {
	bus        *dbus.Conn
	jobTimeout time.Duration
}

// Conn fulfills Client.
var _ Client = (*Conn)(nil)

// Option configures a Conn.
type Option func(*Conn)

// WithJobTimeout overrides the job completion timeout.
func WithJobTimeout(d time.Duration) Option {
	return func(c *Conn) {
		if d > 0 {
			c.jobTimeout = d
		}
	}
}

// Connect establishes the connection to the systemd manager.
func Connect(ctx context.Context, opts ...Option) (*Conn, error) {
	bus, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("connecting to systemd: %w", err)
	}
	c := &Conn{bus: bus, jobTimeout: DefaultJobTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases the connection.
func (c *Conn) Close() error {
	c.bus.Close()
	return nil
}

// Start activates the unit and waits for the job to finish.
func (c *Conn) Start(ctx context.Context, unitName string) error {
	return c.awaitJob(ctx, "start", unitName, func(done chan<- string) error {
		_, err := c.bus.StartUnitContext(ctx, unitName, "replace", done)
		return err
	})
}

// Stop deactivates the unit and waits for the job to finish.
func (c *Conn) Stop(ctx context.Context, unitName string) error {
	return c.awaitJob(ctx, "stop", unitName, func(done chan<- string) error {
		_, err := c.bus.StopUnitContext(ctx, unitName, "replace", done)
		return err
	})
}

// awaitJob submits a unit job and blocks until systemd reports its
// removal. Submission alone only means the request was queued; the
// result channel carries the actual outcome.
func (c *Conn) awaitJob(ctx context.Context, op, unitName string, submit func(chan<- string) error) error {
	done := make(chan string, 1)
	if err := submit(done); err != nil {
		return fmt.Errorf("%s %s: %w", op, unitName, err)
	}
	slog.Debug("job submitted, awaiting completion", "op", op, "unit", unitName)
	return awaitJobResult(ctx, c.jobTimeout, op, unitName, done)
}

func awaitJobResult(ctx context.Context, timeout time.Duration, op, unitName string, done <-chan string) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-done:
		slog.Debug("job finished", "op", op, "unit", unitName, "result", result)
		switch result {
		case "done", "skipped":
			return nil
		}
		return &JobError{Op: op, Unit: unitName, Result: result}
	case <-ctx.Done():
		return fmt.Errorf("%s %s: %w", op, unitName, ctx.Err())
	case <-timer.C:
		return fmt.Errorf("%s %s after %s: %w", op, unitName, timeout, ErrJobTimeout)
	}
}

// Enable persists boot-time activation for the unit file at unitPath.
func (c *Conn) Enable(ctx context.Context, unitPath string) error {
	_, _, err := c.bus.EnableUnitFilesContext(ctx, []string{unitPath}, false, true)
	if err != nil {
		return fmt.Errorf("enable %s: %w", unitPath, err)
	}
	return nil
}

// Disable removes boot-time activation for the unit.
func (c *Conn) Disable(ctx context.Context, unitName string) error {
	_, err := c.bus.DisableUnitFilesContext(ctx, []string{unitName}, false)
	if err != nil {
		return fmt.Errorf("disable %s: %w", unitName, err)
	}
	return nil
}

// Reload makes systemd re-read unit files from disk.
func (c *Conn) Reload(ctx context.Context) error {
	if err := c.bus.ReloadContext(ctx); err != nil {
		return fmt.Errorf("reloading systemd: %w", err)
	}
	return nil
}

// Status reports the unit's current state.
func (c *Conn) Status(ctx context.Context, unitName string) (*Status, error) {
	props, err := c.bus.GetAllPropertiesContext(ctx, unitName)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", unitName, err)
	}
	return statusFromProperties(unitName, props), nil
}

// List reports the status of every unit file matching pattern. Unit
// files are used rather than loaded units so that services that were
// created but never started still appear.
func (c *Conn) List(ctx context.Context, pattern string) ([]Status, error) {
	files, err := c.bus.ListUnitFilesByPatternsContext(ctx, nil, []string{pattern})
	if err != nil {
		return nil, fmt.Errorf("listing unit files %q: %w", pattern, err)
	}

	statuses := make([]Status, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, f := range files {
		g.Go(func() error {
			name := filepath.Base(f.Path)
			st, err := c.Status(gctx, name)
			if err != nil {
				return err
			}
			if st.UnitFileState == "" {
				st.UnitFileState = f.Type
			}
			statuses[i] = *st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses, nil
}

// ResetFailed clears the unit's failed state.
func (c *Conn) ResetFailed(ctx context.Context, unitName string) error {
	if err := c.bus.ResetFailedUnitContext(ctx, unitName); err != nil {
		return fmt.Errorf("reset-failed %s: %w", unitName, err)
	}
	return nil
}

package lifecycle

import (
	"fmt"
	"io"
	"os"

	"github.com/servicekit/servicer/pkg/identity"
	"github.com/servicekit/servicer/pkg/systemd"
	"github.com/servicekit/servicer/pkg/unit"
)

// Orchestrator drives one CLI invocation's worth of lifecycle work. It
// owns no state beyond its collaborators; every operation reconstructs
// names and specs from scratch.
type Orchestrator struct {
	client systemd.Client
	store  *unit.Store
	id     identity.Identity
	out    io.Writer
}

// New returns an Orchestrator. client may be nil for operations that
// never touch the control plane (dry-run create).
func New(client systemd.Client, store *unit.Store, id identity.Identity, out io.Writer) *Orchestrator {
	if store == nil {
		store = unit.NewStore("")
	}
	if out == nil {
		out = os.Stdout
	}
	return &Orchestrator{client: client, store: store, id: id, out: out}
}

// printf reports one step's outcome to the operator.
func (o *Orchestrator) printf(format string, args ...any) {
	fmt.Fprintf(o.out, format+"\n", args...)
}

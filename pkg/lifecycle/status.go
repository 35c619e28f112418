package lifecycle

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/servicekit/servicer/pkg/systemd"
	"github.com/servicekit/servicer/pkg/unit"
)

// Row is one service in a status listing.
type Row struct {
	Name    string `json:"name" yaml:"name"`
	Active  string `json:"active" yaml:"active"`
	Sub     string `json:"sub" yaml:"sub"`
	Enabled string `json:"enabled" yaml:"enabled"`
	PID     uint32 `json:"pid,omitempty" yaml:"pid,omitempty"`
	Memory  string `json:"memory,omitempty" yaml:"memory,omitempty"`
}

func rowFromStatus(st *systemd.Status) Row {
	logical := unit.Logical(st.Name)
	if logical == "" {
		logical = st.Name
	}
	return Row{
		Name:    logical,
		Active:  st.ActiveState,
		Sub:     st.SubState,
		Enabled: st.UnitFileState,
		PID:     st.MainPID,
		Memory:  formatBytes(st.MemoryCurrent),
	}
}

// StatusRow reports one service's state.
func (o *Orchestrator) StatusRow(ctx context.Context, logical string) (Row, error) {
	name, err := o.store.Resolve(logical)
	if err != nil {
		return Row{}, err
	}
	st, err := o.client.Status(ctx, name.Unit)
	if err != nil {
		return Row{}, fmt.Errorf("querying status of %s: %w", logical, err)
	}
	return rowFromStatus(st), nil
}

// StatusRows reports the state of every service this tool manages.
func (o *Orchestrator) StatusRows(ctx context.Context) ([]Row, error) {
	statuses, err := o.client.List(ctx, "*"+unit.UnitSuffix)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(statuses))
	for i := range statuses {
		rows = append(rows, rowFromStatus(&statuses[i]))
	}
	return rows, nil
}

// ShowStatus prints one service's state as a table.
func (o *Orchestrator) ShowStatus(ctx context.Context, logical string) error {
	row, err := o.StatusRow(ctx, logical)
	if err != nil {
		return err
	}
	return RenderRows(o.out, []Row{row})
}

// RenderRows writes rows as an aligned text table.
func RenderRows(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tACTIVE\tSUB\tENABLED\tPID\tMEMORY")
	for _, r := range rows {
		pid := "-"
		if r.PID != 0 {
			pid = fmt.Sprintf("%d", r.PID)
		}
		mem := r.Memory
		if mem == "" {
			mem = "-"
		}
		enabled := r.Enabled
		if enabled == "" {
			enabled = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Name, r.Active, r.Sub, enabled, pid, mem)
	}
	return tw.Flush()
}

// formatBytes renders a byte count for terminal display.
func formatBytes(n uint64) string {
	if n == 0 {
		return ""
	}
	const unitSize = 1024
	if n < unitSize {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unitSize), 0
	for v := n / unitSize; v >= unitSize; v /= unitSize {
		div *= unitSize
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

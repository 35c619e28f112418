package systemd

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitJobResult(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		wantErr bool
	}{
		{name: "done", result: "done"},
		{name: "skipped", result: "skipped"},
		{name: "failed", result: "failed", wantErr: true},
		{name: "canceled", result: "canceled", wantErr: true},
		{name: "dependency", result: "dependency", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan string, 1)
			done <- tt.result

			err := awaitJobResult(context.Background(), time.Second, "start", "myapp.servicer.service", done)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var je *JobError
			require.ErrorAs(t, err, &je)
			assert.Equal(t, "start", je.Op)
			assert.Equal(t, "myapp.servicer.service", je.Unit)
			assert.Equal(t, tt.result, je.Result)
		})
	}
}

func TestAwaitJobResult_Timeout(t *testing.T) {
	done := make(chan string)

	err := awaitJobResult(context.Background(), 10*time.Millisecond, "stop", "myapp.servicer.service", done)
	assert.ErrorIs(t, err, ErrJobTimeout)
	assert.Contains(t, err.Error(), "stop myapp.servicer.service")
}

func TestAwaitJobResult_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := awaitJobResult(ctx, time.Minute, "start", "myapp.servicer.service", make(chan string))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJobError_Message(t *testing.T) {
	err := &JobError{Op: "start", Unit: "myapp.servicer.service", Result: "failed"}
	assert.Equal(t, `start myapp.servicer.service: job finished with result "failed"`, err.Error())
}

func TestIsNotLoaded(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "dbus no such unit",
			err:  errors.New("org.freedesktop.systemd1.NoSuchUnit: Unit myapp.servicer.service not found"),
			want: true,
		},
		{
			name: "not loaded message",
			err:  errors.New("Unit myapp.servicer.service not loaded."),
			want: true,
		},
		{
			name: "wrapped",
			err:  errors.Join(errors.New("stop myapp"), errors.New("org.freedesktop.systemd1.NoSuchUnit")),
			want: true,
		},
		{name: "nil", err: nil, want: false},
		{name: "other failure", err: errors.New("permission denied"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotLoaded(tt.err))
		})
	}
}

func TestStatusFromProperties(t *testing.T) {
	props := map[string]interface{}{
		"Description":   "my service",
		"LoadState":     "loaded",
		"ActiveState":   "active",
		"SubState":      "running",
		"UnitFileState": "enabled",
		"MainPID":       uint32(1234),
		"MemoryCurrent": uint64(4096),
	}

	s := statusFromProperties("myapp.servicer.service", props)
	assert.Equal(t, "myapp.servicer.service", s.Name)
	assert.Equal(t, "my service", s.Description)
	assert.Equal(t, "loaded", s.LoadState)
	assert.Equal(t, "active", s.ActiveState)
	assert.Equal(t, "running", s.SubState)
	assert.Equal(t, "enabled", s.UnitFileState)
	assert.Equal(t, uint32(1234), s.MainPID)
	assert.Equal(t, uint64(4096), s.MemoryCurrent)
	assert.True(t, s.Active())
	assert.True(t, s.Enabled())
}

func TestStatusFromProperties_Sparse(t *testing.T) {
	s := statusFromProperties("ghost.servicer.service", map[string]interface{}{
		"ActiveState": "inactive",
		// Memory accounting off.
		"MemoryCurrent": uint64(math.MaxUint64),
		// Wrong type must not panic.
		"MainPID": "not-a-pid",
	})

	assert.Equal(t, "inactive", s.ActiveState)
	assert.Zero(t, s.MemoryCurrent)
	assert.Zero(t, s.MainPID)
	assert.Empty(t, s.Description)
	assert.False(t, s.Active())
	assert.False(t, s.Enabled())
}

func TestWithJobTimeout(t *testing.T) {
	c := &Conn{jobTimeout: DefaultJobTimeout}
	WithJobTimeout(5 * time.Second)(c)
	assert.Equal(t, 5*time.Second, c.jobTimeout)

	WithJobTimeout(0)(c)
	assert.Equal(t, 5*time.Second, c.jobTimeout, "non-positive timeout is ignored")
}

package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironment(t *testing.T) {
	t.Setenv("USER", "deploy")
	t.Setenv("SUDO_USER", "")

	id := FromEnvironment()
	assert.Equal(t, "deploy", id.Invoking)
	assert.Empty(t, id.SudoOrigin)
}

func TestFromEnvironment_Sudo(t *testing.T) {
	t.Setenv("USER", "root")
	t.Setenv("SUDO_USER", "deploy")

	id := FromEnvironment()
	assert.Equal(t, "root", id.Invoking)
	assert.Equal(t, "deploy", id.SudoOrigin)
}

func TestRunAsDefault(t *testing.T) {
	tests := []struct {
		name    string
		id      Identity
		want    string
		wantErr bool
	}{
		{
			name: "invoking user",
			id:   Identity{Invoking: "deploy"},
			want: "deploy",
		},
		{
			name: "sudo origin wins over root",
			id:   Identity{Invoking: "root", SudoOrigin: "deploy"},
			want: "deploy",
		},
		{
			name:    "no user at all",
			id:      Identity{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.id.RunAsDefault()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoUser)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

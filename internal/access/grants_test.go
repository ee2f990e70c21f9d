package access

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGlobalGrant(t *testing.T) {
	tests := []struct {
		name    string
		typ     GlobalGrantType
		level   GrantLevel
		wantErr error
	}{
		{name: "account access with level", typ: GrantAccountAccess, level: GrantLevelReadOnly},
		{name: "account access without level", typ: GrantAccountAccess, wantErr: ErrGrantLevelRequired},
		{name: "other grant without level", typ: GrantAddLinodes},
		{name: "other grant with level", typ: GrantCancelAccount, level: GrantLevelReadWrite},
		{name: "unknown type", typ: "add_spaceships", wantErr: ErrUnknownGrantType},
		{name: "unknown level", typ: GrantAddVolumes, level: "admin", wantErr: ErrUnknownGrantLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGlobalGrant(tt.typ, tt.level)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.typ, g.Type)
			require.Equal(t, tt.level, g.Level)
		})
	}
}

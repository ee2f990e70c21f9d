package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-console/internal/access"
	"github.com/spec-kit/account-console/internal/timezone"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("1.0.0", "2026-01-01")
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "consolectl 1.0.0 (2026-01-01)\n", out)
}

func TestMessageRestricted(t *testing.T) {
	out, err := run(t, "message", "restricted", "Linodes")
	require.NoError(t, err)
	require.Equal(t, "You don't have permissions to edit this Linode. Please contact your account administrator to request the necessary permissions.\n", out)

	out, err = run(t, "message", "restricted", "Volumes", "--action", "resize", "--plural", "--no-contact")
	require.NoError(t, err)
	require.Equal(t, "You don't have permissions to resize Volumes.\n", out)

	_, err = run(t, "message", "restricted", "Linodes", "--action", "explode")
	require.ErrorContains(t, err, "unknown action")

	_, err = run(t, "message", "restricted")
	require.Error(t, err)
}

func TestMessageAccess(t *testing.T) {
	out, err := run(t, "message", "access", "--user-type", "child", "--parent-child")
	require.NoError(t, err)
	require.Contains(t, out, "business partner")

	out, err = run(t, "message", "access", "--user-type", "child")
	require.NoError(t, err)
	require.Contains(t, out, "account administrator")
}

func TestTimezones(t *testing.T) {
	out, err := run(t, "timezones", "--at", "2024-01-15T12:00:00Z")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(timezone.Zones()))
	require.Contains(t, out, "(GMT+09:00) Tokyo")

	out, err = run(t, "timezones", "--json", "--at", "2024-01-15T12:00:00Z")
	require.NoError(t, err)
	var opts []timezone.Option
	require.NoError(t, json.Unmarshal([]byte(out), &opts))
	require.Len(t, opts, len(timezone.Zones()))

	_, err = run(t, "timezones", "--at", "yesterday")
	require.Error(t, err)
}

func TestGrant(t *testing.T) {
	out, err := run(t, "grant", "add_linodes")
	require.NoError(t, err)
	require.Equal(t, "add_linodes ok\n", out)

	out, err = run(t, "grant", "account_access", "--level", "read_only")
	require.NoError(t, err)
	require.Equal(t, "account_access ok (read_only)\n", out)

	_, err = run(t, "grant", "account_access")
	require.ErrorIs(t, err, access.ErrGrantLevelRequired)
}

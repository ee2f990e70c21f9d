package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	require.Empty(t, Fingerprint(""))

	a := Fingerprint("abc")
	require.Len(t, a, 16)
	require.Equal(t, a, Fingerprint("abc"))
	require.NotEqual(t, a, Fingerprint("abd"))
}

func TestToken(t *testing.T) {
	require.Equal(t, "****", Token(""))
	require.Equal(t, "****", Token("abcd"))
	require.Equal(t, "****wxyz", Token("0123456789wxyz"))
}

package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptions_AllZonesLoad(t *testing.T) {
	opts, err := Options(time.Now())
	require.NoError(t, err)
	require.Len(t, opts, len(zones))

	seen := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		_, dup := seen[o.Value]
		require.False(t, dup, "duplicate zone %s", o.Value)
		seen[o.Value] = struct{}{}
	}
}

func TestLabel_UsesOffsetInEffect(t *testing.T) {
	winter := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	ny, ok := Lookup("America/New_York")
	require.True(t, ok)

	label, err := Label(ny, winter)
	require.NoError(t, err)
	require.Equal(t, "(GMT-05:00) Eastern Time", label)

	label, err = Label(ny, summer)
	require.NoError(t, err)
	require.Equal(t, "(GMT-04:00) Eastern Time", label)
}

func TestLabel_FractionalAndZeroOffsets(t *testing.T) {
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	kolkata, _ := Lookup("Asia/Kolkata")
	label, err := Label(kolkata, at)
	require.NoError(t, err)
	require.Equal(t, "(GMT+05:30) India Standard Time", label)

	utc, _ := Lookup("UTC")
	label, err = Label(utc, at)
	require.NoError(t, err)
	require.Equal(t, "(GMT+00:00) Coordinated Universal Time", label)
}

func TestLabel_UnknownLocation(t *testing.T) {
	_, err := Label(Zone{Label: "Nowhere", Name: "Mars/Olympus_Mons"}, time.Now())
	require.Error(t, err)
}

func TestZones_ReturnsCopy(t *testing.T) {
	z := Zones()
	z[0].Label = "changed"
	require.NotEqual(t, "changed", zones[0].Label)
}

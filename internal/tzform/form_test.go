package tzform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-console/internal/profile"
)

func TestReduce_SelectIgnoresEmpty(t *testing.T) {
	s := NewState("UTC")

	s, eff := Reduce(s, Selected{Timezone: ""})
	require.Nil(t, eff)
	require.Equal(t, "UTC", s.Selected)

	s, _ = Reduce(s, Selected{Timezone: "Asia/Tokyo"})
	require.Equal(t, "Asia/Tokyo", s.Selected)
	require.Equal(t, "UTC", s.Original)
}

func TestReduce_SubmitClearsFeedbackAndRequestsUpdate(t *testing.T) {
	s := NewState("UTC")
	s.Phase = PhaseFailed
	s.Errors = []profile.FieldError{{Reason: "old"}}
	s.Success = "stale"
	s.Selected = "Europe/Berlin"

	s, eff := Reduce(s, Submitted{})
	require.Equal(t, PhaseSubmitting, s.Phase)
	require.True(t, s.Submitting())
	require.Nil(t, s.Errors)
	require.Empty(t, s.Success)
	require.Equal(t, []Effect{UpdateProfile{Timezone: "Europe/Berlin"}}, eff)
}

func TestReduce_SubmitWhileSubmittingIsIgnored(t *testing.T) {
	s, _ := Reduce(NewState("UTC"), Submitted{})

	again, eff := Reduce(s, Submitted{})
	require.Nil(t, eff)
	require.Equal(t, s, again)
}

func TestReduce_Success(t *testing.T) {
	s, _ := Reduce(NewState("UTC"), Selected{Timezone: "Asia/Tokyo"})
	s, _ = Reduce(s, Submitted{})

	p := profile.Profile{Username: "jdoe", Timezone: "Asia/Tokyo"}
	s, eff := Reduce(s, UpdateSucceeded{Profile: p})

	require.False(t, s.Submitting())
	require.Equal(t, PhaseSucceeded, s.Phase)
	require.Equal(t, "Account timezone updated.", s.Success)
	require.Nil(t, s.Errors)
	require.Equal(t, []Effect{NotifyProfileUpdated{Profile: p}}, eff)
}

func TestReduce_FailureWithReasons(t *testing.T) {
	s, _ := Reduce(NewState("UTC"), Submitted{})

	reasons := []profile.FieldError{{Field: "timezone", Reason: "invalid"}}
	s, eff := Reduce(s, UpdateFailed{Errors: reasons})

	require.False(t, s.Submitting())
	require.Equal(t, PhaseFailed, s.Phase)
	require.Equal(t, reasons, s.Errors)
	require.Empty(t, s.Success)
	require.Equal(t, []Effect{ScrollErrorIntoView{}}, eff)

	reasons[0].Reason = "mutated"
	require.Equal(t, "invalid", s.Errors[0].Reason)
}

func TestReduce_FailureWithoutReasonsUsesFallback(t *testing.T) {
	s, _ := Reduce(NewState("UTC"), Submitted{})

	s, _ = Reduce(s, UpdateFailed{})
	require.Equal(t, []profile.FieldError{{Reason: "An unexpected error has occured."}}, s.Errors)
}

func TestReduce_OutcomeWithoutSubmitIsIgnored(t *testing.T) {
	s := NewState("UTC")

	got, eff := Reduce(s, UpdateSucceeded{})
	require.Nil(t, eff)
	require.Equal(t, s, got)

	got, eff = Reduce(s, UpdateFailed{})
	require.Nil(t, eff)
	require.Equal(t, s, got)
}

func TestReduce_CancelRestoresOriginal(t *testing.T) {
	s, _ := Reduce(NewState("America/Chicago"), Selected{Timezone: "Asia/Tokyo"})
	s, _ = Reduce(s, Submitted{})
	s, _ = Reduce(s, UpdateFailed{})

	s, eff := Reduce(s, Cancelled{})
	require.Nil(t, eff)
	require.Equal(t, State{Phase: PhaseIdle, Original: "America/Chicago", Selected: "America/Chicago"}, s)
}

func TestReduce_SuccessAfterCancelStillNotifies(t *testing.T) {
	s, _ := Reduce(NewState("UTC"), Selected{Timezone: "Asia/Tokyo"})
	s, _ = Reduce(s, Submitted{})
	s, eff := Reduce(s, Cancelled{})
	require.Nil(t, eff)
	require.Equal(t, PhaseIdle, s.Phase)
	require.Equal(t, "UTC", s.Selected)

	p := profile.Profile{Username: "jdoe", Timezone: "Asia/Tokyo"}
	s, eff = Reduce(s, UpdateSucceeded{Profile: p})
	require.Equal(t, []Effect{NotifyProfileUpdated{Profile: p}}, eff)
	require.Equal(t, State{Phase: PhaseIdle, Original: "Asia/Tokyo", Selected: "Asia/Tokyo"}, s)

	again, eff := Reduce(s, UpdateSucceeded{Profile: p})
	require.Nil(t, eff)
	require.Equal(t, s, again)
}

func TestReduce_FailureAfterCancelIsQuiet(t *testing.T) {
	s, _ := Reduce(NewState("UTC"), Selected{Timezone: "Asia/Tokyo"})
	s, _ = Reduce(s, Submitted{})
	s, _ = Reduce(s, Cancelled{})

	s, eff := Reduce(s, UpdateFailed{})
	require.Nil(t, eff)
	require.Equal(t, State{Phase: PhaseIdle, Original: "UTC", Selected: "UTC"}, s)
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "idle", PhaseIdle.String())
	require.Equal(t, "submitting", PhaseSubmitting.String())
	require.Equal(t, "succeeded", PhaseSucceeded.String())
	require.Equal(t, "failed", PhaseFailed.String())
}

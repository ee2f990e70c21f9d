// Package tzform models the timezone display-settings form as a pure state
// machine plus a controller that carries out its effects.
package tzform

import "github.com/spec-kit/account-console/internal/profile"

// SuccessMessage is shown after the timezone was saved.
const SuccessMessage = "Account timezone updated."

// Phase is the form's lifecycle position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is everything the form renders.
type State struct {
	Phase    Phase                `json:"-"`
	Original string               `json:"original"`
	Selected string               `json:"selected"`
	Errors   []profile.FieldError `json:"errors,omitempty"`
	Success  string               `json:"success,omitempty"`
	// InFlight is set while an update has been sent and its outcome has not
	// arrived. It survives Cancelled so a late success still reaches the owner.
	InFlight bool                 `json:"-"`
}

// Submitting reports whether an update is in flight.
func (s State) Submitting() bool { return s.Phase == PhaseSubmitting }

// NewState starts the form on the user's current timezone.
func NewState(current string) State {
	return State{Phase: PhaseIdle, Original: current, Selected: current}
}

// Event is an input to Reduce.
type Event interface{ isEvent() }

type (
	// Selected changes the chosen timezone.
	Selected struct{ Timezone string }
	// Submitted asks to save the selection.
	Submitted struct{}
	// UpdateSucceeded reports the saved profile.
	UpdateSucceeded struct{ Profile profile.Profile }
	// UpdateFailed reports a failed save.
	UpdateFailed struct{ Errors []profile.FieldError }
	// Cancelled discards unsaved changes.
	Cancelled struct{}
)

func (Selected) isEvent()        {}
func (Submitted) isEvent()       {}
func (UpdateSucceeded) isEvent() {}
func (UpdateFailed) isEvent()    {}
func (Cancelled) isEvent()       {}

// Effect is work Reduce asks the caller to perform.
type Effect interface{ isEffect() }

type (
	// UpdateProfile sends the timezone to the profile API.
	UpdateProfile struct{ Timezone string }
	// NotifyProfileUpdated hands the saved profile to the owner of the form.
	NotifyProfileUpdated struct{ Profile profile.Profile }
	// ScrollErrorIntoView brings the error notice on screen.
	ScrollErrorIntoView struct{}
)

func (UpdateProfile) isEffect()        {}
func (NotifyProfileUpdated) isEffect() {}
func (ScrollErrorIntoView) isEffect()  {}

// Reduce applies e to s. It never mutates s's slices.
func Reduce(s State, e Event) (State, []Effect) {
	switch ev := e.(type) {
	case Selected:
		if ev.Timezone == "" {
			return s, nil
		}
		s.Selected = ev.Timezone
		return s, nil

	case Submitted:
		if s.Phase == PhaseSubmitting {
			return s, nil
		}
		s.Phase = PhaseSubmitting
		s.InFlight = true
		s.Errors = nil
		s.Success = ""
		return s, []Effect{UpdateProfile{Timezone: s.Selected}}

	case UpdateSucceeded:
		if !s.InFlight {
			return s, nil
		}
		s.InFlight = false
		if s.Phase != PhaseSubmitting {
			// Cancelled before the save finished. The server kept the new
			// timezone, so it becomes the form's baseline without a banner.
			if tz := ev.Profile.Timezone; tz != "" {
				if s.Selected == s.Original {
					s.Selected = tz
				}
				s.Original = tz
			}
			return s, []Effect{NotifyProfileUpdated{Profile: ev.Profile}}
		}
		s.Phase = PhaseSucceeded
		s.Errors = nil
		s.Success = SuccessMessage
		return s, []Effect{NotifyProfileUpdated{Profile: ev.Profile}}

	case UpdateFailed:
		if !s.InFlight {
			return s, nil
		}
		s.InFlight = false
		if s.Phase != PhaseSubmitting {
			return s, nil
		}
		s.Phase = PhaseFailed
		s.Success = ""
		if len(ev.Errors) == 0 {
			s.Errors = profile.Fallback()
		} else {
			s.Errors = append([]profile.FieldError(nil), ev.Errors...)
		}
		return s, []Effect{ScrollErrorIntoView{}}

	case Cancelled:
		return State{Phase: PhaseIdle, Original: s.Original, Selected: s.Original, InFlight: s.InFlight}, nil
	}
	return s, nil
}

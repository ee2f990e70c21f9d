package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/account-console/internal/events"
	"github.com/spec-kit/account-console/internal/profile"
	"github.com/spec-kit/account-console/internal/timezone"
	"github.com/spec-kit/account-console/internal/tzform"
)

var ErrUnknownTimezone = errors.New("unknown timezone")

// UpdaterFactory returns a profile updater authenticated with token.
type UpdaterFactory func(token string) tzform.Updater

// ProfileService drives the timezone form for a session's active account.
type ProfileService struct {
	sessions   *SessionService
	updaterFor UpdaterFactory
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewProfileService builds the service.
func NewProfileService(sessions *SessionService, updaterFor UpdaterFactory, dispatcher events.Dispatcher, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{sessions: sessions, updaterFor: updaterFor, dispatcher: dispatcher, logger: logger}
}

// ClientUpdaterFactory adapts a profile.Client to an UpdaterFactory.
func ClientUpdaterFactory(client *profile.Client) UpdaterFactory {
	return func(token string) tzform.Updater {
		return client.WithToken(token)
	}
}

// TimezoneResult is the outcome of one form submission.
type TimezoneResult struct {
	State   tzform.State
	Profile *profile.Profile
}

// UpdateTimezone runs the form from current to selected using the session's
// active token. Remote failures are reported in the returned state, not as an error.
func (s *ProfileService) UpdateTimezone(ctx context.Context, sessionID, current, selected string) (TimezoneResult, error) {
	if _, ok := timezone.Lookup(selected); !ok {
		return TimezoneResult{}, ErrUnknownTimezone
	}
	active, err := s.sessions.ActiveToken(ctx, sessionID)
	if err != nil {
		return TimezoneResult{}, err
	}

	var saved *profile.Profile
	form := tzform.NewController(current, tzform.ControllerDeps{
		Updater:         s.updaterFor(active.Token),
		OnProfileUpdate: func(p profile.Profile) { saved = &p },
		Logger:          s.logger.With(zap.String("session_id", sessionID)),
	})
	form.Select(selected)
	state := form.Submit(ctx)

	if saved != nil && s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTimezoneUpdated,
			SessionID: sessionID,
			Timestamp: s.sessions.now(),
			Payload:   events.TimezoneUpdatedPayload{From: current, To: saved.Timezone},
		}
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handler failed", zap.Error(err))
		}
	}
	return TimezoneResult{State: state, Profile: saved}, nil
}

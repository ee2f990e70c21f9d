package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	boom := errors.New("boom")

	d.Subscribe(EventRoleSwitched, func(context.Context, Event) error { calls++; return boom })
	d.Subscribe(EventRoleSwitched, func(context.Context, Event) error { calls++; return nil })
	d.Subscribe(EventTokenStored, func(context.Context, Event) error { t.Fatal("wrong type"); return nil })

	err := d.Publish(context.Background(), Event{Type: EventRoleSwitched, SessionID: "s-1"})
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "for session s-1")
	require.Equal(t, 2, calls)
}

func TestDispatcher_RequiresSession(t *testing.T) {
	d := NewInMemoryDispatcher()
	d.Subscribe(EventTokenStored, func(context.Context, Event) error { t.Fatal("handler ran"); return nil })

	err := d.Publish(context.Background(), Event{Type: EventTokenStored})
	require.ErrorIs(t, err, ErrMissingSession)
}

func TestDispatcher_NoListeners(t *testing.T) {
	require.NoError(t, NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventTimezoneUpdated, SessionID: "s-1"}))
}

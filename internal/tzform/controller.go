package tzform

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/account-console/internal/profile"
)

//go:generate mockgen -destination=mocks/mock_updater.go -package=mocks github.com/spec-kit/account-console/internal/tzform Updater

// Updater is the remote profile collaborator.
type Updater interface {
	UpdateProfile(ctx context.Context, upd profile.Update) (*profile.Profile, error)
}

// Controller owns one form's state and runs the effects Reduce emits.
type Controller struct {
	mu       sync.Mutex
	state    State
	updater  Updater
	onUpdate func(profile.Profile)
	onScroll func()
	logger   *zap.Logger
}

// ControllerDeps are the collaborators a Controller calls out to. Callbacks may be nil.
type ControllerDeps struct {
	Updater         Updater
	OnProfileUpdate func(profile.Profile)
	OnScrollToError func()
	Logger          *zap.Logger
}

// NewController starts a form on the user's current timezone.
func NewController(current string, deps ControllerDeps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		state:    NewState(current),
		updater:  deps.Updater,
		onUpdate: deps.OnProfileUpdate,
		onScroll: deps.OnScrollToError,
		logger:   logger,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Select changes the chosen timezone.
func (c *Controller) Select(timezone string) State {
	return c.Dispatch(context.Background(), Selected{Timezone: timezone})
}

// Cancel discards unsaved changes.
func (c *Controller) Cancel() State {
	return c.Dispatch(context.Background(), Cancelled{})
}

// Submit saves the selection and blocks until the update finishes.
func (c *Controller) Submit(ctx context.Context) State {
	return c.Dispatch(ctx, Submitted{})
}

// Dispatch reduces ev and runs the resulting effects, feeding their outcomes
// back as further events. The lock is not held while the API is called.
func (c *Controller) Dispatch(ctx context.Context, ev Event) State {
	queue := []Event{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		c.mu.Lock()
		var effects []Effect
		c.state, effects = Reduce(c.state, next)
		c.mu.Unlock()

		for _, eff := range effects {
			if out := c.run(ctx, eff); out != nil {
				queue = append(queue, out)
			}
		}
	}
	return c.State()
}

func (c *Controller) run(ctx context.Context, eff Effect) Event {
	switch e := eff.(type) {
	case UpdateProfile:
		p, err := c.updater.UpdateProfile(ctx, profile.Update{Timezone: e.Timezone})
		if err != nil {
			c.logger.Info("timezone update failed", zap.String("timezone", e.Timezone), zap.Error(err))
			return UpdateFailed{Errors: profile.Reasons(err)}
		}
		if p == nil {
			p = &profile.Profile{Timezone: e.Timezone}
		}
		return UpdateSucceeded{Profile: *p}
	case NotifyProfileUpdated:
		if c.onUpdate != nil {
			c.onUpdate(e.Profile)
		}
	case ScrollErrorIntoView:
		if c.onScroll != nil {
			c.onScroll()
		}
	}
	return nil
}

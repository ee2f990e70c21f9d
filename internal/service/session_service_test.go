package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/account-console/internal/auth"
	"github.com/spec-kit/account-console/internal/domain"
	"github.com/spec-kit/account-console/internal/events"
	"github.com/spec-kit/account-console/internal/observability"
	"github.com/spec-kit/account-console/internal/profile"
	"github.com/spec-kit/account-console/internal/redact"
	"github.com/spec-kit/account-console/internal/session"
)

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (f *fakeAuditRepo) Create(_ context.Context, e *domain.AuditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.CreatedAt = time.Now()
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeAuditRepo) ListBySession(_ context.Context, sessionID string, _ int) ([]domain.AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.AuditEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].SessionID == sessionID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

type fixture struct {
	svc      *SessionService
	accounts map[string]domain.UserType
	kv       *session.MemoryKV
	repo     *fakeAuditRepo
	metrics  *observability.Metrics
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		kv:      session.NewMemoryKV(),
		repo:    &fakeAuditRepo{},
		metrics: observability.NewMetrics(),
		now:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		accounts: map[string]domain.UserType{
			"parent-login": domain.UserTypeParent,
			"child-login":  domain.UserTypeChild,
		},
	}
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(dispatcher, f.repo, f.metrics, zap.NewNop()).RegisterHandlers()
	f.svc = NewSessionService(SessionDependencies{
		KV:         f.kv,
		KeyPrefix:  "console",
		Tokens:     auth.NewTokenManager("test", 10),
		Dispatcher: dispatcher,
		AuditRepo:  f.repo,
		Profiles: func(_ context.Context, token string) (*profile.Profile, error) {
			userType, ok := f.accounts[token]
			if !ok {
				return nil, &profile.APIError{StatusCode: 401, Errors: []profile.FieldError{{Reason: "Invalid Token"}}}
			}
			return &profile.Profile{Username: token, UserType: userType}, nil
		},
		Clock: func() time.Time { return f.now },
	})
	return f
}

const sid = "6f1c1b0c-2a11-4a52-9f39-3f1c1b0c2a11"

func TestSessionService_StoreAndSwitch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.StoreRoleToken(ctx, sid, domain.RoleParent, session.Token{Token: "parent-tok", Scopes: "*", Expiry: "2024-03-02T00:00:00"}))
	require.NoError(t, f.svc.StoreRoleToken(ctx, sid, domain.RoleProxy, session.Token{Token: "proxy-tok", Scopes: "*", Expiry: "2024-03-02T00:00:00"}))

	active, err := f.svc.SwitchRole(ctx, sid, domain.RoleProxy)
	require.NoError(t, err)
	require.Equal(t, "proxy-tok", active.Token)
	require.Equal(t, "proxy-tok", f.kv.Snapshot()["console:"+sid+":authentication/token"])

	active, err = f.svc.SwitchRole(ctx, sid, domain.RoleParent)
	require.NoError(t, err)
	require.Equal(t, "parent-tok", active.Token)

	trail, err := f.svc.AuditTrail(ctx, sid, 10)
	require.NoError(t, err)
	require.Len(t, trail, 4)
	require.Equal(t, domain.AuditRoleSwitched, trail[0].Kind)
	require.Equal(t, redact.Fingerprint("parent-tok"), trail[0].TokenFingerprint)
	for _, e := range trail {
		require.NotContains(t, e.TokenFingerprint, "tok")
	}
	require.Equal(t, int64(2), f.metrics.Snapshot().SessionEvents["ROLE_SWITCHED"])
}

func TestSessionService_SwitchToExpiredParent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.StoreRoleToken(ctx, sid, domain.RoleParent, session.Token{Token: "parent-tok", Expiry: "2024-03-01T11:00:00Z"}))

	_, err := f.svc.SwitchRole(ctx, sid, domain.RoleParent)
	require.ErrorIs(t, err, ErrParentTokenExpired)

	active, err := f.svc.ActiveToken(ctx, sid)
	require.NoError(t, err)
	require.True(t, active.Empty())
}

func TestSessionService_SwitchWithoutStoredToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SwitchRole(context.Background(), sid, domain.RoleProxy)
	require.ErrorIs(t, err, ErrNoStoredToken)

	_, err = f.svc.SwitchRole(context.Background(), sid, domain.RoleParent)
	require.ErrorIs(t, err, ErrParentTokenExpired)
}

func TestSessionService_RejectsIncompleteToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.svc.StoreRoleToken(ctx, sid, domain.RoleParent, session.Token{Expiry: "2099-01-01"})
	require.ErrorIs(t, err, ErrTokenIncomplete)

	err = f.svc.StoreRoleToken(ctx, sid, domain.RoleParent, session.Token{Token: "x", Expiry: "soon"})
	require.ErrorIs(t, err, session.ErrMalformedExpiry)

	require.Empty(t, f.kv.Snapshot())
	require.Empty(t, f.repo.entries)
}

func TestSessionService_ParentTokenValid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	valid, err := f.svc.ParentTokenValid(ctx, sid)
	require.NoError(t, err)
	require.False(t, valid)

	require.NoError(t, f.svc.StoreRoleToken(ctx, sid, domain.RoleParent, session.Token{Token: "p", Expiry: "2099-01-01"}))
	valid, err = f.svc.ParentTokenValid(ctx, sid)
	require.NoError(t, err)
	require.True(t, valid)
}

func TestSessionService_SessionsAreIsolated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := "0c2a1111-4a52-4a7e-9f39-3f1c1b0c2a11"

	require.NoError(t, f.svc.StoreRoleToken(ctx, sid, domain.RoleProxy, session.Token{Token: "mine", Expiry: "2099-01-01"}))

	_, err := f.svc.SwitchRole(ctx, other, domain.RoleProxy)
	require.ErrorIs(t, err, ErrNoStoredToken)
}

func TestSessionService_AuditDisabled(t *testing.T) {
	svc := NewSessionService(SessionDependencies{KV: session.NewMemoryKV()})
	_, err := svc.AuditTrail(context.Background(), sid, 10)
	require.ErrorIs(t, err, ErrAuditDisabled)
}

func TestSessionService_Open(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	login := session.Token{Token: "parent-login", Scopes: "*", Expiry: "2024-03-02T00:00:00"}

	sess, token, err := f.svc.Open(ctx, login, "")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, domain.UserTypeParent, sess.UserType)

	active, err := f.svc.ActiveToken(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, login, active)
}

func TestSessionService_OpenTakesUserTypeFromAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	login := session.Token{Token: "child-login", Expiry: "2024-03-02"}

	sess, _, err := f.svc.Open(ctx, login, "")
	require.NoError(t, err)
	require.Equal(t, domain.UserTypeChild, sess.UserType)

	_, _, err = f.svc.Open(ctx, login, domain.UserTypeParent)
	require.ErrorIs(t, err, ErrUserTypeMismatch)

	_, _, err = f.svc.Open(ctx, login, domain.UserType("wizard"))
	require.ErrorIs(t, err, ErrUnknownUserType)
}

func TestSessionService_OpenRejectsUnknownToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.Open(ctx, session.Token{Token: "forged", Expiry: "2024-03-02"}, "")
	require.ErrorIs(t, err, ErrIdentityRejected)

	_, _, err = f.svc.Open(ctx, session.Token{Token: "parent-login"}, "")
	require.ErrorIs(t, err, ErrTokenIncomplete)

	_, _, err = f.svc.Open(ctx, session.Token{Token: "parent-login", Expiry: "soon"}, "")
	require.ErrorIs(t, err, session.ErrMalformedExpiry)
}

func TestAuditService_NilLogger(t *testing.T) {
	a := NewAuditService(nil, nil, nil, nil)
	err := a.handleTokenStored(context.Background(), events.Event{
		SessionID: sid,
		Payload:   events.TokenStoredPayload{Role: domain.RoleParent, Expiry: "2024-03-02"},
	})
	require.NoError(t, err)
}

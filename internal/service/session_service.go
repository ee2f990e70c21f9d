package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/account-console/internal/auth"
	"github.com/spec-kit/account-console/internal/domain"
	"github.com/spec-kit/account-console/internal/events"
	"github.com/spec-kit/account-console/internal/profile"
	"github.com/spec-kit/account-console/internal/redact"
	"github.com/spec-kit/account-console/internal/repository"
	"github.com/spec-kit/account-console/internal/session"
)

var (
	ErrParentTokenExpired = errors.New("parent token expired")
	ErrNoStoredToken      = errors.New("no token stored for role")
	ErrTokenIncomplete    = errors.New("token and expiry are required")
	ErrAuditDisabled      = errors.New("audit log not configured")
	ErrUnknownUserType    = errors.New("unknown user type")
	ErrUserTypeMismatch   = errors.New("declared user type does not match the account")
	ErrIdentityRejected   = errors.New("profile api rejected the token")
	ErrProfileUnavailable = errors.New("profile api unavailable")
)

// ProfileLookup resolves the account a token belongs to.
type ProfileLookup func(ctx context.Context, token string) (*profile.Profile, error)

// ClientProfileLookup adapts a profile.Client to a ProfileLookup.
func ClientProfileLookup(client *profile.Client) ProfileLookup {
	return func(ctx context.Context, token string) (*profile.Profile, error) {
		return client.WithToken(token).GetProfile(ctx)
	}
}

// SessionService coordinates the per-browser token sets.
type SessionService struct {
	kv         session.KV
	keyPrefix  string
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	audit      repository.AuditRepository
	profiles   ProfileLookup
	logger     *zap.Logger
	now        func() time.Time
}

// SessionDependencies encapsulates collaborators for the session service.
type SessionDependencies struct {
	KV         session.KV
	KeyPrefix  string
	Tokens     *auth.TokenManager
	Dispatcher events.Dispatcher
	AuditRepo  repository.AuditRepository
	Profiles   ProfileLookup
	Logger     *zap.Logger
	Clock      func() time.Time
}

// NewSessionService builds the service.
func NewSessionService(deps SessionDependencies) *SessionService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	return &SessionService{
		kv:         deps.KV,
		keyPrefix:  deps.KeyPrefix,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
		audit:      deps.AuditRepo,
		profiles:   deps.Profiles,
		logger:     logger,
		now:        now,
	}
}

// Store returns the token store scoped to one session.
func (s *SessionService) Store(sessionID string) *session.Store {
	ns := sessionID
	if s.keyPrefix != "" {
		ns = s.keyPrefix + ":" + sessionID
	}
	return session.NewStore(session.Namespace(s.kv, ns),
		session.WithClock(s.now),
		session.WithLogger(s.logger.With(zap.String("session_id", sessionID))),
	)
}

// Open starts a new browser session for the holder of tok and returns its
// signed token. The user type in the session comes from the profile API, so
// a caller cannot promote itself to an account switcher. A non-empty
// declared type must be known and must match the account.
func (s *SessionService) Open(ctx context.Context, tok session.Token, declared domain.UserType) (domain.Session, string, error) {
	if declared != "" && !declared.Valid() {
		return domain.Session{}, "", fmt.Errorf("%w: %q", ErrUnknownUserType, declared)
	}
	if tok.Token == "" || tok.Expiry == "" {
		return domain.Session{}, "", ErrTokenIncomplete
	}
	if _, err := session.ParseExpiry(tok.Expiry); err != nil {
		return domain.Session{}, "", err
	}
	if s.profiles == nil {
		return domain.Session{}, "", ErrProfileUnavailable
	}

	p, err := s.profiles(ctx, tok.Token)
	if err != nil {
		var apiErr *profile.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
			return domain.Session{}, "", fmt.Errorf("%w: %v", ErrIdentityRejected, err)
		}
		return domain.Session{}, "", fmt.Errorf("%w: %w", ErrProfileUnavailable, err)
	}
	userType := p.UserType
	if !userType.Valid() {
		userType = domain.UserTypeDefault
	}
	if declared != "" && declared != userType {
		return domain.Session{}, "", ErrUserTypeMismatch
	}

	sess, signed, err := s.tokens.NewSession(userType)
	if err != nil {
		return domain.Session{}, "", err
	}
	if _, err := s.Store(sess.ID).StoreToken(ctx, session.ActivePrefix, tok); err != nil {
		return domain.Session{}, "", err
	}
	s.logger.Info("session opened",
		zap.String("session_id", sess.ID),
		zap.String("user_type", string(userType)),
		zap.String("fingerprint", redact.Fingerprint(tok.Token)))
	return sess, signed, nil
}

// StoreRoleToken saves the token set for role. Incomplete tokens are rejected
// rather than silently dropped so API callers learn about it.
func (s *SessionService) StoreRoleToken(ctx context.Context, sessionID string, role domain.Role, tok session.Token) error {
	if tok.Token == "" || tok.Expiry == "" {
		return ErrTokenIncomplete
	}
	if _, err := session.ParseExpiry(tok.Expiry); err != nil {
		return err
	}
	if _, err := s.Store(sessionID).StoreRoleToken(ctx, role, tok); err != nil {
		return err
	}
	s.publish(ctx, sessionID, events.EventTokenStored, events.TokenStoredPayload{
		Role:        role,
		Fingerprint: redact.Fingerprint(tok.Token),
		Expiry:      tok.Expiry,
	})
	return nil
}

// SwitchRole makes role's token set the active one. Switching back to the
// parent account requires the parent token to still be valid.
func (s *SessionService) SwitchRole(ctx context.Context, sessionID string, role domain.Role) (session.Token, error) {
	if !role.Valid() {
		return session.Token{}, session.ErrUnknownRole
	}
	store := s.Store(sessionID)

	if role == domain.RoleParent {
		valid, err := store.IsParentTokenValid(ctx)
		if err != nil && !errors.Is(err, session.ErrMalformedExpiry) {
			return session.Token{}, err
		}
		if !valid {
			return session.Token{}, ErrParentTokenExpired
		}
	}

	promoted, err := store.PromoteRoleToActive(ctx, role)
	if err != nil {
		return session.Token{}, err
	}
	if !promoted {
		return session.Token{}, ErrNoStoredToken
	}

	active, err := store.ActiveToken(ctx)
	if err != nil {
		return session.Token{}, err
	}
	s.publish(ctx, sessionID, events.EventRoleSwitched, events.RoleSwitchedPayload{
		Role:        role,
		Fingerprint: redact.Fingerprint(active.Token),
	})
	return active, nil
}

// ActiveToken returns the token set used for outgoing requests.
func (s *SessionService) ActiveToken(ctx context.Context, sessionID string) (session.Token, error) {
	return s.Store(sessionID).ActiveToken(ctx)
}

// ParentTokenValid reports whether the parent account can be switched back to.
func (s *SessionService) ParentTokenValid(ctx context.Context, sessionID string) (bool, error) {
	valid, err := s.Store(sessionID).IsParentTokenValid(ctx)
	if errors.Is(err, session.ErrMalformedExpiry) {
		return false, nil
	}
	return valid, err
}

// AuditTrail lists the recorded changes to a session, newest first.
func (s *SessionService) AuditTrail(ctx context.Context, sessionID string, limit int) ([]domain.AuditEntry, error) {
	if s.audit == nil {
		return nil, ErrAuditDisabled
	}
	return s.audit.ListBySession(ctx, sessionID, limit)
}

func (s *SessionService) publish(ctx context.Context, sessionID string, typ events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      typ,
		SessionID: sessionID,
		Timestamp: s.now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(typ)), zap.Error(err))
	}
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/account-console/internal/domain"
	"github.com/spec-kit/account-console/internal/events"
	"github.com/spec-kit/account-console/internal/observability"
	"github.com/spec-kit/account-console/internal/repository"
)

// AuditService records session events in the audit log.
type AuditService struct {
	dispatcher events.Dispatcher
	repo       repository.AuditRepository
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewAuditService creates the service. A nil repo logs events without persisting them.
func NewAuditService(dispatcher events.Dispatcher, repo repository.AuditRepository, metrics *observability.Metrics, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{
		dispatcher: dispatcher,
		repo:       repo,
		metrics:    metrics,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventTokenStored, a.handleTokenStored)
	a.dispatcher.Subscribe(events.EventRoleSwitched, a.handleRoleSwitched)
	a.dispatcher.Subscribe(events.EventTimezoneUpdated, a.handleTimezoneUpdated)
}

func (a *AuditService) handleTokenStored(ctx context.Context, event events.Event) error {
	p, _ := event.Payload.(events.TokenStoredPayload)
	a.logger.Info("TokenStored",
		zap.String("session_id", event.SessionID),
		zap.String("role", string(p.Role)),
		zap.String("fingerprint", p.Fingerprint),
		zap.String("expiry", p.Expiry))
	role := p.Role
	return a.record(ctx, &domain.AuditEntry{
		SessionID:        event.SessionID,
		Kind:             domain.AuditTokenStored,
		Role:             &role,
		TokenFingerprint: p.Fingerprint,
		Detail:           "expires " + p.Expiry,
	})
}

func (a *AuditService) handleRoleSwitched(ctx context.Context, event events.Event) error {
	p, _ := event.Payload.(events.RoleSwitchedPayload)
	a.logger.Info("RoleSwitched",
		zap.String("session_id", event.SessionID),
		zap.String("role", string(p.Role)),
		zap.String("fingerprint", p.Fingerprint))
	role := p.Role
	return a.record(ctx, &domain.AuditEntry{
		SessionID:        event.SessionID,
		Kind:             domain.AuditRoleSwitched,
		Role:             &role,
		TokenFingerprint: p.Fingerprint,
	})
}

func (a *AuditService) handleTimezoneUpdated(ctx context.Context, event events.Event) error {
	p, _ := event.Payload.(events.TimezoneUpdatedPayload)
	a.logger.Info("TimezoneUpdated",
		zap.String("session_id", event.SessionID),
		zap.String("from", p.From),
		zap.String("to", p.To))
	return a.record(ctx, &domain.AuditEntry{
		SessionID: event.SessionID,
		Kind:      domain.AuditTimezoneSet,
		Detail:    p.From + " -> " + p.To,
	})
}

func (a *AuditService) record(ctx context.Context, entry *domain.AuditEntry) error {
	a.metrics.RecordSessionEvent(string(entry.Kind))
	if a.repo == nil {
		return nil
	}
	if err := a.repo.Create(ctx, entry); err != nil {
		a.logger.Error("audit write failed", zap.String("kind", string(entry.Kind)), zap.Error(err))
		return err
	}
	return nil
}

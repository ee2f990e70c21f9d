package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-console/internal/api/dto"
	"github.com/spec-kit/account-console/internal/auth"
	"github.com/spec-kit/account-console/internal/domain"
	"github.com/spec-kit/account-console/internal/redact"
	"github.com/spec-kit/account-console/internal/service"
	"github.com/spec-kit/account-console/internal/session"
	apperrors "github.com/spec-kit/account-console/pkg/util"
)

// SessionHandler exposes the token-switch endpoints.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Open handles POST /sessions.
func (h *SessionHandler) Open(c *fiber.Ctx) error {
	var req dto.SessionOpenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	sess, token, err := h.sessions.Open(c.UserContext(), session.Token{
		Token:  req.Token,
		Scopes: req.Scopes,
		Expiry: req.Expiry,
	}, req.UserType)
	if err != nil {
		return mapSessionError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.SessionResponse{SessionID: sess.ID, Token: token, UserType: sess.UserType, ExpiresAt: sess.ExpiresAt},
	})
}

// StoreToken handles PUT /session/tokens/:role.
func (h *SessionHandler) StoreToken(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	role := domain.Role(c.Params("role"))

	var req dto.StoreTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	err := h.sessions.StoreRoleToken(c.UserContext(), principal.SessionID, role, session.Token{
		Token:  req.Token,
		Scopes: req.Scopes,
		Expiry: req.Expiry,
	})
	if err != nil {
		return mapSessionError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Switch handles POST /session/switch/:role.
func (h *SessionHandler) Switch(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	role := domain.Role(c.Params("role"))

	active, err := h.sessions.SwitchRole(c.UserContext(), principal.SessionID, role)
	if err != nil {
		return mapSessionError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"role":   role,
		"active": activeResponse(active, false),
	}})
}

// Active handles GET /session/active. The token itself is only returned
// when reveal=true, for the browser that owns the session.
func (h *SessionHandler) Active(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	active, err := h.sessions.ActiveToken(c.UserContext(), principal.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": activeResponse(active, c.QueryBool("reveal", false))})
}

// ParentValid handles GET /session/parent/valid.
func (h *SessionHandler) ParentValid(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	valid, err := h.sessions.ParentTokenValid(c.UserContext(), principal.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"valid": valid}})
}

// Audit handles GET /session/audit?limit=.
func (h *SessionHandler) Audit(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	entries, err := h.sessions.AuditTrail(c.UserContext(), principal.SessionID, limit)
	if err != nil {
		return mapSessionError(err)
	}

	out := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		row := dto.AuditEntryResponse{
			ID:          e.ID,
			Kind:        string(e.Kind),
			Fingerprint: e.TokenFingerprint,
			Detail:      e.Detail,
			CreatedAt:   e.CreatedAt,
		}
		if e.Role != nil {
			row.Role = string(*e.Role)
		}
		out = append(out, row)
	}
	return c.JSON(fiber.Map{"data": out})
}

func activeResponse(t session.Token, reveal bool) dto.ActiveTokenResponse {
	if t.Empty() {
		return dto.ActiveTokenResponse{}
	}
	resp := dto.ActiveTokenResponse{
		Present:     true,
		Token:       redact.Token(t.Token),
		Fingerprint: redact.Fingerprint(t.Token),
		Scopes:      t.Scopes,
		Expiry:      t.Expiry,
	}
	if reveal {
		resp.Token = t.Token
	}
	return resp
}

func mapSessionError(err error) error {
	switch {
	case errors.Is(err, session.ErrUnknownRole):
		return apperrors.NewNotFound("role", nil)
	case errors.Is(err, service.ErrTokenIncomplete), errors.Is(err, session.ErrMalformedExpiry),
		errors.Is(err, service.ErrUnknownUserType):
		return apperrors.NewValidationError(err.Error(), nil)
	case errors.Is(err, service.ErrIdentityRejected):
		return apperrors.NewUnauthorized("sign-in token rejected by the profile api")
	case errors.Is(err, service.ErrProfileUnavailable):
		return apperrors.NewUpstreamError("profile api unavailable", err)
	case errors.Is(err, service.ErrUserTypeMismatch):
		return apperrors.NewForbidden(err.Error())
	case errors.Is(err, service.ErrParentTokenExpired):
		return apperrors.NewDomainError("PARENT_TOKEN_EXPIRED", "parent session expired; sign in again", http.StatusUnauthorized, nil)
	case errors.Is(err, service.ErrNoStoredToken):
		return apperrors.NewConflict("no token stored for role", nil)
	case errors.Is(err, service.ErrAuditDisabled):
		return apperrors.NewDomainError("AUDIT_DISABLED", err.Error(), http.StatusNotImplemented, nil)
	default:
		return err
	}
}

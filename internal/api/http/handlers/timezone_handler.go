package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-console/internal/api/dto"
	"github.com/spec-kit/account-console/internal/auth"
	"github.com/spec-kit/account-console/internal/profile"
	"github.com/spec-kit/account-console/internal/service"
	"github.com/spec-kit/account-console/internal/timezone"
	apperrors "github.com/spec-kit/account-console/pkg/util"
)

// TimezoneHandler serves the timezone list and the display-settings form.
type TimezoneHandler struct {
	profiles *service.ProfileService
}

// NewTimezoneHandler constructs handler.
func NewTimezoneHandler(profiles *service.ProfileService) *TimezoneHandler {
	return &TimezoneHandler{profiles: profiles}
}

// List handles GET /timezones.
func (h *TimezoneHandler) List(c *fiber.Ctx) error {
	opts, err := timezone.Options(time.Now())
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": opts})
}

// Update handles PUT /profile/timezone. Remote validation failures are
// returned as form state with status 422 rather than as an error envelope.
func (h *TimezoneHandler) Update(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.TimezoneUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Timezone == "" {
		return fiber.NewError(http.StatusBadRequest, "timezone required")
	}

	res, err := h.profiles.UpdateTimezone(c.UserContext(), principal.SessionID, req.Current, req.Timezone)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTimezone) {
			return apperrors.NewValidationError("unknown timezone", map[string]any{"timezone": req.Timezone})
		}
		return err
	}

	resp := dto.TimezoneFormResponse{
		Phase:        res.State.Phase.String(),
		Submitting:   res.State.Submitting(),
		Selected:     res.State.Selected,
		Success:      res.State.Success,
		Errors:       res.State.Errors,
		GeneralError: profile.GeneralError(res.State.Errors),
		Profile:      res.Profile,
	}
	status := http.StatusOK
	if len(res.State.Errors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{"data": resp})
}

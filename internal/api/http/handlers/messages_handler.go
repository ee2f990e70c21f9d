package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-console/internal/access"
	"github.com/spec-kit/account-console/internal/domain"
)

// MessagesHandler serves permission-denial copy.
type MessagesHandler struct {
	parentChildEnabled bool
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(parentChildEnabled bool) *MessagesHandler {
	return &MessagesHandler{parentChildEnabled: parentChildEnabled}
}

// RestrictedResource handles GET /messages/restricted-resource.
// Query: resource (required), action, plural, contact.
func (h *MessagesHandler) RestrictedResource(c *fiber.Ctx) error {
	resource := c.Query("resource")
	if resource == "" {
		return fiber.NewError(http.StatusBadRequest, "resource required")
	}
	action, ok := access.ParseAction(c.Query("action"))
	if !ok {
		return fiber.NewError(http.StatusBadRequest, "unknown action")
	}

	msg := access.RestrictedResourceMessage(access.RestrictedResourceParams{
		Action:             action,
		ResourceType:       resource,
		Plural:             c.QueryBool("plural", false),
		OmitContactMessage: !c.QueryBool("contact", true),
	})
	return c.JSON(fiber.Map{"data": fiber.Map{"message": msg}})
}

// AccessRestricted handles GET /messages/access-restricted?user_type=.
func (h *MessagesHandler) AccessRestricted(c *fiber.Ctx) error {
	userType := domain.UserType(c.Query("user_type"))
	msg := access.AccessRestrictedMessage(userType, h.parentChildEnabled)
	return c.JSON(fiber.Map{"data": fiber.Map{"message": msg}})
}

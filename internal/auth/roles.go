package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-console/internal/access"
	apperrors "github.com/spec-kit/account-console/pkg/util"
)

// RequireAccountSwitcher admits only parent and proxy users. Everyone else
// receives the access-restricted notice for their user type.
func RequireAccountSwitcher(parentChildEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("session required")
		}
		if !principal.UserType.CanSwitchAccounts() {
			return apperrors.NewForbidden(access.AccessRestrictedMessage(principal.UserType, parentChildEnabled))
		}
		return c.Next()
	}
}

// RequireSession ensures a session principal is present.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("session required")
		}
		return c.Next()
	}
}

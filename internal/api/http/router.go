package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-console/internal/api/http/handlers"
	"github.com/spec-kit/account-console/internal/auth"
	"github.com/spec-kit/account-console/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health             *handlers.HealthHandler
	Messages           *handlers.MessagesHandler
	Sessions           *handlers.SessionHandler
	Timezones          *handlers.TimezoneHandler
	AuthMiddleware     *auth.AuthMiddleware
	Metrics            *observability.Metrics
	ParentChildEnabled bool
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", func(c *fiber.Ctx) error {
			return c.JSON(cfg.Metrics.Snapshot())
		})
	}

	app.Get("/messages/restricted-resource", cfg.Messages.RestrictedResource)
	app.Get("/messages/access-restricted", cfg.Messages.AccessRestricted)
	app.Get("/timezones", cfg.Timezones.List)

	app.Post("/sessions", cfg.Sessions.Open)

	sess := app.Group("/session", cfg.AuthMiddleware.Handle, auth.RequireSession())
	sess.Put("/tokens/:role", cfg.Sessions.StoreToken)
	sess.Get("/active", cfg.Sessions.Active)
	sess.Get("/parent/valid", cfg.Sessions.ParentValid)
	sess.Get("/audit", cfg.Sessions.Audit)
	sess.Post("/switch/:role", auth.RequireAccountSwitcher(cfg.ParentChildEnabled), cfg.Sessions.Switch)

	prof := app.Group("/profile", cfg.AuthMiddleware.Handle, auth.RequireSession())
	prof.Put("/timezone", cfg.Timezones.Update)
}

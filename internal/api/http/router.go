package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NoeTobes/FullStackWebApp/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Pages    *handlers.PagesHandler
	Accounts *handlers.AccountsHandler
}

// RegisterRoutes wires HTTP routes. Every GET funnels into the pages
// handler, including unrecognized paths, which the routing core resolves to
// the home view.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Accounts.Register)
	app.Post("/verify-email", cfg.Accounts.Verify)
	app.Post("/login", cfg.Accounts.Login)
	app.Post("/logout", cfg.Accounts.Logout)

	app.Get("/*", cfg.Pages.Show)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/helpdesk-priority/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-priority/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Priority *handlers.PriorityHandler
	Triage   *handlers.TriageHandler
	Metrics  *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	v1 := app.Group("/v1")
	v1.Post("/priority/classify", cfg.Priority.Classify)
	v1.Get("/priority/rules", cfg.Priority.Rules)
	v1.Post("/tickets/triage", cfg.Triage.Triage)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr/screening/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. trainGuard runs before
// the train handler (JWT admin check when auth is enabled).
func Register(app *fiber.App, health *handlers.HealthHandler, resume *handlers.ResumeHandler, analysis *handlers.AnalysisHandler, trainGuard ...fiber.Handler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Post("/screen-resume", resume.Screen)

	api.Get("/model", analysis.Model)
	train := append(append([]fiber.Handler{}, trainGuard...), analysis.Train)
	api.Post("/train", train...)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hiremind/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	prof *handlers.ProfileHandler,
	compat *handlers.CompatibilityHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Get("/verify", auth.Verify)

	// Everything below requires a valid session token.
	p := v1.Group("/profile", authMW)
	p.Post("/import", prof.Import)
	p.Get("/", prof.Get)
	p.Put("/", prof.Save)
	p.Post("/update", prof.Update)
	p.Get("/view", prof.View)
	p.Get("/jobs", prof.Jobs)
	p.Get("/watch", prof.Watch)

	o := v1.Group("/offers", authMW)
	o.Post("/verify", compat.Verify)

	hist := v1.Group("/history", authMW)
	hist.Get("/", compat.History)
	hist.Get("/:id", compat.Replay)
	hist.Get("/:id/cv", compat.CV)
	hist.Get("/:id/cv.doc", compat.CVDoc)
}

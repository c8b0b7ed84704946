package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/portfolio-dev/portfolio-api/internal/middleware"
	"github.com/portfolio-dev/portfolio-api/internal/middleware/metrics"
	"github.com/portfolio-dev/portfolio-api/internal/setup"
)

// New wires all routes. The public surface is the published catalog, the
// contact form and login; everything else sits behind the admin cookie.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders(deps.Config.Public.SecureCookies))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	h := deps.Handler

	// Ops endpoints
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Public surface
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/projects", h.ListPublishedProjects)
	r.Post("/messages", h.CreateMessage)

	// Admin surface
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.AdminOnly())

		r.Post("/projects", h.CreateProject)
		r.Get("/projects/admin", h.AdminProjects)
		r.Put("/projects/{id}", h.UpdateProject)
		r.Put("/projects/{id}/publish", h.PublishProject)
		r.Delete("/projects/{id}", h.DeleteProject)

		r.Get("/messages", h.ListMessages)
		r.Delete("/messages/{id}", h.DeleteMessage)
	})

	return r
}

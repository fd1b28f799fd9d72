// Package router sets up all HTTP routes and middleware chains for the
// SealCheck API. Every endpoint is mounted under the /api prefix.
package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"sealcheck/internal/handlers"
	"sealcheck/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. reportLimiter guards only report submission;
// read endpoints are unthrottled.
func New(
	searchHandlers *handlers.Search,
	categoryHandlers *handlers.Categories,
	sealTypeHandlers *handlers.SealTypes,
	reportHandlers *handlers.Reports,
	articleHandlers *handlers.Articles,
	reportLimiter *middleware.RateLimiter,
	corsOrigins []string,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/search", searchHandlers.Query)

		r.Get("/categories", categoryHandlers.List)
		r.Get("/categories/{slug}", categoryHandlers.Detail)

		r.Get("/seal-types", sealTypeHandlers.List)

		r.Group(func(r chi.Router) {
			r.Use(reportLimiter.Middleware)
			r.Post("/reports", reportHandlers.Create)
			r.Post("/reports/photo", reportHandlers.UploadPhoto)
		})

		r.Get("/articles", articleHandlers.List)
		r.Get("/articles/{slug}", articleHandlers.Detail)
	})

	return r
}

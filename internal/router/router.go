// Package router sets up all HTTP routes and middleware chains for the
// AwarePress admin API. It organizes routes into public and API groups
// with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"awarepress/internal/handlers"
	"awarepress/internal/middleware"
	"awarepress/internal/session"
)

// Options configures router construction.
type Options struct {
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, auth *handlers.Auth, templates *handlers.Templates, pages *handlers.Pages, assets *handlers.Assets, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Admin API — CSRF-protected JSON endpoints.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NewCSRF(opts.SecureCookies))

		// Login is rate-limited and open to anonymous clients.
		loginLimiter := middleware.NewRateLimiter(10, time.Minute)
		r.With(loginLimiter.Middleware).Post("/auth/login", auth.Login)
		r.Post("/auth/logout", auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/auth/me", auth.Me)
			r.Post("/auth/2fa/setup", auth.TwoFASetup)
			r.With(loginLimiter.Middleware).Post("/auth/2fa/verify", auth.TwoFAVerify)
		})

		// Authenticated + 2FA-verified designer API.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			// Certificate templates. Deleting a template or changing
			// the org-wide default is admin-only.
			r.Route("/templates", func(r chi.Router) {
				r.Get("/", templates.List)
				r.Post("/", templates.Create)
				r.Get("/{id}", templates.Get)
				r.Put("/{id}", templates.Update)
				r.With(middleware.RequireAdmin).Delete("/{id}", templates.Delete)
				r.With(middleware.RequireAdmin).Post("/{id}/default", templates.SetDefault)
				r.Get("/{id}/preview", templates.Preview)
			})

			// Landing pages
			r.Route("/pages", func(r chi.Router) {
				r.Get("/", pages.List)
				r.Post("/", pages.Create)
				r.Get("/block-types", pages.BlockTypes)
				r.Get("/{id}", pages.Get)
				r.Put("/{id}", pages.Update)
				r.Delete("/{id}", pages.Delete)
				r.Get("/{id}/preview", pages.Preview)
			})

			// Signature and certifying body image library. Deleting a
			// shared library asset is admin-only.
			r.Route("/assets", func(r chi.Router) {
				r.Get("/", assets.List)
				r.Post("/", assets.Create)
				r.Get("/{id}", assets.Get)
				r.With(middleware.RequireAdmin).Delete("/{id}", assets.Delete)
			})
		})
	})

	// Public pages — published landing pages by slug.
	r.Get("/p/{slug}", pages.PublicBySlug)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

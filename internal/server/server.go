package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sunflix/backend/internal/auth"
	"github.com/sunflix/backend/internal/config"
	"github.com/sunflix/backend/internal/http/handlers"
	"github.com/sunflix/backend/internal/middleware"
	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Router(cfg, store, tokens),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Router builds the full route tree. Exposed separately so tests can run
// requests against it without binding a port.
func Router(cfg config.Config, store storage.Store, tokens *auth.TokenManager) http.Handler {
	authHandler := handlers.NewAuthHandler(store, tokens)
	videoHandler := handlers.NewVideoHandler(store)
	adHandler := handlers.NewAdHandler(store)
	messageHandler := handlers.NewMessageHandler(store)
	commentHandler := handlers.NewCommentHandler(store, store, store)
	healthHandler := handlers.NewHealthHandler(store, time.Now())

	requireAuth := middleware.RequireAuth(tokens)
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit)

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Limit)
			r.Post("/auth/signup", authHandler.Signup)
			r.Post("/auth/login", authHandler.Login)
			r.Post("/auth/admin-login", authHandler.AdminLogin)
		})
		r.With(requireAuth).Get("/auth/me", authHandler.Me)

		r.Get("/videos", videoHandler.List)
		r.Get("/videos/trending/list", videoHandler.Trending)
		r.Get("/videos/featured/list", videoHandler.Featured)
		r.Get("/videos/search", videoHandler.Search)
		r.Get("/videos/{id}", videoHandler.Get)
		r.Get("/videos/{id}/comments", commentHandler.List)
		r.With(requireAuth).Post("/videos/{id}/comments", commentHandler.Create)

		r.Get("/ads", adHandler.List)
		r.Group(func(r chi.Router) {
			// Every systemic ad mutation passes the same role gate.
			r.Use(requireAuth, middleware.RequireRole(store, models.RoleAdmin))
			r.Post("/ads", adHandler.Create)
			r.Put("/ads/{id}", adHandler.Update)
			r.Delete("/ads/{id}", adHandler.Delete)
		})

		r.Get("/messages", messageHandler.List)
		r.Post("/messages", messageHandler.Create)
	})

	return r
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}

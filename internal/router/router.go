// Package router wires handlers and middleware into the chi router.
package router

import (
	"io/fs"
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/portfolio/portfolio/internal/handler"
	"github.com/portfolio/portfolio/internal/metrics"
	"github.com/portfolio/portfolio/internal/middleware"
	"github.com/portfolio/portfolio/internal/service"
	"github.com/portfolio/portfolio/internal/store"
)

// Config carries the dependencies the router needs.
type Config struct {
	Store          store.Store
	Assets         fs.FS
	Metrics        metrics.Recorder
	Logger         *slog.Logger
	AllowedOrigins []string
	IsDevelopment  bool
	MaxBodySize    int64
}

// New builds the HTTP router: the five API routes plus the static client fallback.
func New(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	contactHandler := handler.NewContactHandler(service.NewContactService(cfg.Store, cfg.Metrics), logger)
	projectHandler := handler.NewProjectHandler(service.NewProjectService(cfg.Store, cfg.Metrics), logger)
	skillHandler := handler.NewSkillHandler(service.NewSkillService())
	h := handler.New(handler.NewStaticHandler(cfg.Assets, logger))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.AllowedOrigins

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment}))
	r.Use(middleware.CORS(corsCfg))
	if cfg.MaxBodySize > 0 {
		r.Use(middleware.MaxBodySize(cfg.MaxBodySize))
	}

	// Everything else belongs to the static client.
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/contacts", contactHandler.List)
		r.Post("/contacts", contactHandler.Create)

		r.Get("/projects", projectHandler.List)
		r.Post("/projects", projectHandler.Create)

		r.Get("/skills", skillHandler.List)
	})

	return r
}

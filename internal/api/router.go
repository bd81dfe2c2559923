package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/jobsearch-api/internal/api/middleware"
	"github.com/phrazzld/jobsearch-api/internal/api/shared"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/redact"
)

// RouterConfig holds what NewRouter needs to build the HTTP surface.
type RouterConfig struct {
	Companies       *CompanyHandler
	JobListings     *JobListingHandler
	JobApplications *JobApplicationHandler
	Logger          *slog.Logger

	// Ping reports storage health for GET /health. Optional.
	Ping func(ctx context.Context) error
}

// NewRouter creates the application router with middleware and all routes.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewTraceMiddleware(cfg.Logger))
	r.Use(chimw.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", cfg.Companies.List)
			r.Post("/", cfg.Companies.Create)
			r.Get("/{id}", cfg.Companies.Get)
			r.Put("/{id}", cfg.Companies.Update)
			r.Delete("/{id}", cfg.Companies.Delete)
		})

		r.Route("/job-listings", func(r chi.Router) {
			r.Get("/", cfg.JobListings.List)
			r.Post("/", cfg.JobListings.Create)
			r.Get("/{id}", cfg.JobListings.Get)
			r.Put("/{id}", cfg.JobListings.Update)
			r.Delete("/{id}", cfg.JobListings.Delete)
			r.Get("/{id}/applications", cfg.JobApplications.ListForJobListing)
		})

		r.Route("/job-applications", func(r chi.Router) {
			r.Get("/", cfg.JobApplications.List)
			r.Post("/", cfg.JobApplications.Create)
			r.Get("/{id}", cfg.JobApplications.Get)
			r.Put("/{id}", cfg.JobApplications.Update)
			r.Delete("/{id}", cfg.JobApplications.Delete)
		})
	})

	r.Get("/health", healthHandler(cfg.Ping))

	return r
}

type healthResponse struct {
	Status string `json:"status"`
}

func healthHandler(ping func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				logger.FromContext(r.Context()).Error("health check failed",
					slog.String("error", redact.Error(err)))
				shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
				return
			}
		}
		shared.RespondWithJSON(w, r, http.StatusOK, healthResponse{Status: "ok"})
	}
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/jobsearch-api/internal/api"
	"github.com/phrazzld/jobsearch-api/internal/config"
	"github.com/phrazzld/jobsearch-api/internal/mapper"
	"github.com/phrazzld/jobsearch-api/internal/platform/database"
	"github.com/phrazzld/jobsearch-api/internal/platform/sqlstore"
	"github.com/phrazzld/jobsearch-api/internal/service"
	"github.com/phrazzld/jobsearch-api/internal/store"
)

// application holds the shared dependencies and owns their cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	companyStore        store.CompanyStore
	jobListingStore     store.JobListingStore
	jobApplicationStore store.JobApplicationStore

	companyService        service.CompanyService
	jobListingService     service.JobListingService
	jobApplicationService service.JobApplicationService
}

// newApplication opens the database, applies migrations when configured and
// wires stores, mapper and services.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	app := &application{config: cfg, logger: log, db: db}
	if err := app.init(ctx); err != nil {
		app.cleanup()
		return nil, err
	}
	return app, nil
}

func (app *application) init(ctx context.Context) error {
	cfg := app.config

	if cfg.Database.AutoMigrate {
		m, err := database.NewMigrator(app.db, cfg.Database.Driver, app.logger)
		if err != nil {
			return err
		}
		if err := m.Up(ctx); err != nil {
			return err
		}
	}

	dialect, err := sqlstore.DialectFor(cfg.Database.Driver)
	if err != nil {
		return err
	}

	app.companyStore = sqlstore.NewCompanyStore(app.db, dialect, app.logger)
	app.jobListingStore = sqlstore.NewJobListingStore(app.db, dialect, app.logger)
	app.jobApplicationStore = sqlstore.NewJobApplicationStore(app.db, dialect, app.logger)

	m := mapper.New()

	if app.companyService, err = service.NewCompanyService(app.companyStore, m, app.logger); err != nil {
		return fmt.Errorf("failed to create company service: %w", err)
	}
	if app.jobListingService, err = service.NewJobListingService(app.jobListingStore, m, app.logger); err != nil {
		return fmt.Errorf("failed to create job listing service: %w", err)
	}
	if app.jobApplicationService, err = service.NewJobApplicationService(
		app.jobApplicationStore, app.jobListingStore, m, app.logger,
	); err != nil {
		return fmt.Errorf("failed to create job application service: %w", err)
	}

	return nil
}

// router builds the HTTP handler tree over the wired services.
func (app *application) router() http.Handler {
	return api.NewRouter(api.RouterConfig{
		Companies:       api.NewCompanyHandler(app.companyService, app.logger),
		JobListings:     api.NewJobListingHandler(app.jobListingService, app.logger),
		JobApplications: api.NewJobApplicationHandler(app.jobApplicationService, app.logger),
		Logger:          app.logger,
		Ping:            app.db.PingContext,
	})
}

// cleanup releases resources. It is safe to call more than once.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", slog.String("error", err.Error()))
	}
	app.db = nil
}

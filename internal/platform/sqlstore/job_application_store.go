package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/store"
)

const jobApplicationsTable = "job_applications"

var jobApplicationColumns = []string{
	"id", "job_listing_id", "applicant_name", "applicant_email", "resume_url",
	"cover_letter", "status", "created_at", "updated_at",
}

// JobApplicationStore implements store.JobApplicationStore.
// It accepts either a *sql.DB or a *sql.Tx.
type JobApplicationStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

var _ store.JobApplicationStore = (*JobApplicationStore)(nil)

// NewJobApplicationStore creates a job application store. If logger is nil,
// the default logger is used.
func NewJobApplicationStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *JobApplicationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JobApplicationStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "job_application_store")),
	}
}

// ListAll implements store.JobApplicationStore.ListAll.
func (s *JobApplicationStore) ListAll(ctx context.Context) ([]*domain.JobApplication, error) {
	return s.list(ctx, nil)
}

// ListByJobListingID implements store.JobApplicationStore.ListByJobListingID.
func (s *JobApplicationStore) ListByJobListingID(
	ctx context.Context,
	jobListingID int64,
) ([]*domain.JobApplication, error) {
	return s.list(ctx, sq.Eq{"job_listing_id": jobListingID})
}

func (s *JobApplicationStore) list(ctx context.Context, where sq.Sqlizer) ([]*domain.JobApplication, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	builder := s.dialect.builder.
		Select(jobApplicationColumns...).
		From(jobApplicationsTable).
		OrderBy("id")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job application query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	apps := make([]*domain.JobApplication, 0)
	for rows.Next() {
		app, err := scanJobApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("listed job applications", slog.Int("count", len(apps)))
	return apps, nil
}

// GetByID implements store.JobApplicationStore.GetByID.
func (s *JobApplicationStore) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving job application by ID", slog.Int64("job_application_id", id))

	query, args, err := s.dialect.builder.
		Select(jobApplicationColumns...).
		From(jobApplicationsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job application query: %w", err)
	}

	app, err := scanJobApplication(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobApplicationNotFound(id)
		}
		return nil, MapError(err)
	}
	return app, nil
}

// Create implements store.JobApplicationStore.Create.
func (s *JobApplicationStore) Create(ctx context.Context, app *domain.JobApplication) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if app == nil {
		return 0, fmt.Errorf("%w: job application cannot be nil", store.ErrInvalidEntity)
	}
	if app.Status == "" {
		app.Status = domain.ApplicationSubmitted
	}
	if err := app.Validate(); err != nil {
		log.Debug("job application validation failed", slog.String("error", err.Error()))
		return 0, invalidEntity(err)
	}

	ts := now()
	app.CreatedAt = ts
	app.UpdatedAt = ts

	query, args, err := s.dialect.builder.
		Insert(jobApplicationsTable).
		Columns("job_listing_id", "applicant_name", "applicant_email", "resume_url",
			"cover_letter", "status", "created_at", "updated_at").
		Values(app.JobListingID, app.ApplicantName, app.ApplicantEmail, app.ResumeURL,
			app.CoverLetter, string(app.Status), ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build job application insert: %w", err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, MapError(err)
	}
	app.ID = id

	log.Debug("job application created",
		slog.Int64("job_application_id", id),
		slog.Int64("job_listing_id", app.JobListingID))
	return id, nil
}

// Update implements store.JobApplicationStore.Update.
func (s *JobApplicationStore) Update(ctx context.Context, app *domain.JobApplication) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if app == nil {
		return fmt.Errorf("%w: job application cannot be nil", store.ErrInvalidEntity)
	}
	if err := app.Validate(); err != nil {
		log.Debug("job application validation failed",
			slog.Int64("job_application_id", app.ID),
			slog.String("error", err.Error()))
		return invalidEntity(err)
	}

	app.UpdatedAt = now()

	query, args, err := s.dialect.builder.
		Update(jobApplicationsTable).
		SetMap(map[string]any{
			"job_listing_id":  app.JobListingID,
			"applicant_name":  app.ApplicantName,
			"applicant_email": app.ApplicantEmail,
			"resume_url":      app.ResumeURL,
			"cover_letter":    app.CoverLetter,
			"status":          string(app.Status),
			"updated_at":      app.UpdatedAt,
		}).
		Where(sq.Eq{"id": app.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build job application update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, jobApplicationNotFound(app.ID)); err != nil {
		return err
	}

	log.Debug("job application updated", slog.Int64("job_application_id", app.ID))
	return nil
}

// Delete implements store.JobApplicationStore.Delete.
func (s *JobApplicationStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.dialect.builder.
		Delete(jobApplicationsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build job application delete: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, jobApplicationNotFound(id)); err != nil {
		return err
	}

	log.Debug("job application deleted", slog.Int64("job_application_id", id))
	return nil
}

func jobApplicationNotFound(id int64) error {
	return fmt.Errorf("%w: id %d", store.ErrJobApplicationNotFound, id)
}

func scanJobApplication(row rowScanner) (*domain.JobApplication, error) {
	var (
		app    domain.JobApplication
		status string
	)
	if err := row.Scan(
		&app.ID,
		&app.JobListingID,
		&app.ApplicantName,
		&app.ApplicantEmail,
		&app.ResumeURL,
		&app.CoverLetter,
		&status,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationStatus(status)
	app.CreatedAt = app.CreatedAt.UTC()
	app.UpdatedAt = app.UpdatedAt.UTC()
	return &app, nil
}

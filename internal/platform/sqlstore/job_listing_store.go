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

const jobListingsTable = "job_listings"

var jobListingColumns = []string{
	"id", "company_id", "title", "description", "location",
	"employment_type", "created_at", "updated_at",
}

// JobListingStore implements store.JobListingStore on a *sql.DB.
type JobListingStore struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

var _ store.JobListingStore = (*JobListingStore)(nil)

// NewJobListingStore creates a job listing store. If logger is nil, the
// default logger is used.
func NewJobListingStore(db *sql.DB, dialect Dialect, logger *slog.Logger) *JobListingStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JobListingStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "job_listing_store")),
	}
}

// ListAll implements store.JobListingStore.ListAll.
func (s *JobListingStore) ListAll(ctx context.Context) ([]*domain.JobListing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.dialect.builder.
		Select(jobListingColumns...).
		From(jobListingsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job listing query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	listings := make([]*domain.JobListing, 0)
	for rows.Next() {
		listing, err := scanJobListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job listing: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("listed job listings", slog.Int("count", len(listings)))
	return listings, nil
}

// GetByID implements store.JobListingStore.GetByID.
func (s *JobListingStore) GetByID(ctx context.Context, id int64) (*domain.JobListing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving job listing by ID", slog.Int64("job_listing_id", id))

	query, args, err := s.dialect.builder.
		Select(jobListingColumns...).
		From(jobListingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job listing query: %w", err)
	}

	listing, err := scanJobListing(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", store.ErrJobListingNotFound, id)
		}
		return nil, MapError(err)
	}
	return listing, nil
}

// Create implements store.JobListingStore.Create.
func (s *JobListingStore) Create(ctx context.Context, listing *domain.JobListing) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if listing == nil {
		return 0, fmt.Errorf("%w: job listing cannot be nil", store.ErrInvalidEntity)
	}
	if listing.EmploymentType == "" {
		listing.EmploymentType = domain.EmploymentFullTime
	}
	if err := listing.Validate(); err != nil {
		log.Debug("job listing validation failed", slog.String("error", err.Error()))
		return 0, invalidEntity(err)
	}

	ts := now()
	listing.CreatedAt = ts
	listing.UpdatedAt = ts

	query, args, err := s.dialect.builder.
		Insert(jobListingsTable).
		Columns("company_id", "title", "description", "location",
			"employment_type", "created_at", "updated_at").
		Values(nullInt64(listing.CompanyID), listing.Title, listing.Description,
			listing.Location, string(listing.EmploymentType), ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build job listing insert: %w", err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, MapError(err)
	}
	listing.ID = id

	log.Debug("job listing created", slog.Int64("job_listing_id", id))
	return id, nil
}

// Update implements store.JobListingStore.Update.
func (s *JobListingStore) Update(ctx context.Context, listing *domain.JobListing) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if listing == nil {
		return fmt.Errorf("%w: job listing cannot be nil", store.ErrInvalidEntity)
	}
	if err := listing.Validate(); err != nil {
		log.Debug("job listing validation failed",
			slog.Int64("job_listing_id", listing.ID),
			slog.String("error", err.Error()))
		return invalidEntity(err)
	}

	listing.UpdatedAt = now()

	query, args, err := s.dialect.builder.
		Update(jobListingsTable).
		SetMap(map[string]any{
			"company_id":      nullInt64(listing.CompanyID),
			"title":           listing.Title,
			"description":     listing.Description,
			"location":        listing.Location,
			"employment_type": string(listing.EmploymentType),
			"updated_at":      listing.UpdatedAt,
		}).
		Where(sq.Eq{"id": listing.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build job listing update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, jobListingNotFound(listing.ID)); err != nil {
		return err
	}

	log.Debug("job listing updated", slog.Int64("job_listing_id", listing.ID))
	return nil
}

// Delete implements store.JobListingStore.Delete.
// The listing's applications are removed in the same transaction.
func (s *JobListingStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deleteApps, appArgs, err := s.dialect.builder.
		Delete(jobApplicationsTable).
		Where(sq.Eq{"job_listing_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build job application delete: %w", err)
	}
	deleteListing, listingArgs, err := s.dialect.builder.
		Delete(jobListingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build job listing delete: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteApps, appArgs...); err != nil {
			return MapError(err)
		}
		result, err := tx.ExecContext(ctx, deleteListing, listingArgs...)
		if err != nil {
			return MapError(err)
		}
		return CheckRowsAffected(result, jobListingNotFound(id))
	})
	if err != nil {
		return err
	}

	log.Debug("job listing deleted", slog.Int64("job_listing_id", id))
	return nil
}

func jobListingNotFound(id int64) error {
	return fmt.Errorf("%w: id %d", store.ErrJobListingNotFound, id)
}

func scanJobListing(row rowScanner) (*domain.JobListing, error) {
	var (
		listing        domain.JobListing
		companyID      sql.NullInt64
		employmentType string
	)
	if err := row.Scan(
		&listing.ID,
		&companyID,
		&listing.Title,
		&listing.Description,
		&listing.Location,
		&employmentType,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	); err != nil {
		return nil, err
	}
	listing.CompanyID = int64Ptr(companyID)
	listing.EmploymentType = domain.EmploymentType(employmentType)
	listing.CreatedAt = listing.CreatedAt.UTC()
	listing.UpdatedAt = listing.UpdatedAt.UTC()
	return &listing, nil
}

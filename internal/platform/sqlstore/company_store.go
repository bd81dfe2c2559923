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

const companiesTable = "companies"

var companyColumns = []string{
	"id", "name", "description", "website", "industry", "location",
	"created_at", "updated_at",
}

// CompanyStore implements store.CompanyStore on a *sql.DB.
type CompanyStore struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

var _ store.CompanyStore = (*CompanyStore)(nil)

// NewCompanyStore creates a company store. If logger is nil, the default
// logger is used.
func NewCompanyStore(db *sql.DB, dialect Dialect, logger *slog.Logger) *CompanyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "company_store")),
	}
}

// ListAll implements store.CompanyStore.ListAll.
func (s *CompanyStore) ListAll(ctx context.Context) ([]*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.dialect.builder.
		Select(companyColumns...).
		From(companiesTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build company query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("listed companies", slog.Int("count", len(companies)))
	return companies, nil
}

// GetByID implements store.CompanyStore.GetByID.
func (s *CompanyStore) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving company by ID", slog.Int64("company_id", id))

	query, args, err := s.dialect.builder.
		Select(companyColumns...).
		From(companiesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build company query: %w", err)
	}

	company, err := scanCompany(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, companyNotFound(id)
		}
		return nil, MapError(err)
	}
	return company, nil
}

// Create implements store.CompanyStore.Create.
func (s *CompanyStore) Create(ctx context.Context, company *domain.Company) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if company == nil {
		return 0, fmt.Errorf("%w: company cannot be nil", store.ErrInvalidEntity)
	}
	if err := company.Validate(); err != nil {
		log.Debug("company validation failed", slog.String("error", err.Error()))
		return 0, invalidEntity(err)
	}

	ts := now()
	company.CreatedAt = ts
	company.UpdatedAt = ts

	query, args, err := s.dialect.builder.
		Insert(companiesTable).
		Columns("name", "description", "website", "industry", "location",
			"created_at", "updated_at").
		Values(company.Name, company.Description, company.Website, company.Industry,
			company.Location, ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build company insert: %w", err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapCompanyError(err, company.Name)
	}
	company.ID = id

	log.Debug("company created", slog.Int64("company_id", id))
	return id, nil
}

// Update implements store.CompanyStore.Update.
func (s *CompanyStore) Update(ctx context.Context, company *domain.Company) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if company == nil {
		return fmt.Errorf("%w: company cannot be nil", store.ErrInvalidEntity)
	}
	if err := company.Validate(); err != nil {
		log.Debug("company validation failed",
			slog.Int64("company_id", company.ID),
			slog.String("error", err.Error()))
		return invalidEntity(err)
	}

	company.UpdatedAt = now()

	query, args, err := s.dialect.builder.
		Update(companiesTable).
		SetMap(map[string]any{
			"name":        company.Name,
			"description": company.Description,
			"website":     company.Website,
			"industry":    company.Industry,
			"location":    company.Location,
			"updated_at":  company.UpdatedAt,
		}).
		Where(sq.Eq{"id": company.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build company update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapCompanyError(err, company.Name)
	}
	if err := CheckRowsAffected(result, companyNotFound(company.ID)); err != nil {
		return err
	}

	log.Debug("company updated", slog.Int64("company_id", company.ID))
	return nil
}

// Delete implements store.CompanyStore.Delete.
// Job listings of the company are kept with their company cleared.
func (s *CompanyStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	detach, detachArgs, err := s.dialect.builder.
		Update(jobListingsTable).
		Set("company_id", nil).
		Where(sq.Eq{"company_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build job listing detach: %w", err)
	}
	deleteCompany, deleteArgs, err := s.dialect.builder.
		Delete(companiesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build company delete: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, detach, detachArgs...); err != nil {
			return MapError(err)
		}
		result, err := tx.ExecContext(ctx, deleteCompany, deleteArgs...)
		if err != nil {
			return MapError(err)
		}
		return CheckRowsAffected(result, companyNotFound(id))
	})
	if err != nil {
		return err
	}

	log.Debug("company deleted", slog.Int64("company_id", id))
	return nil
}

func companyNotFound(id int64) error {
	return fmt.Errorf("%w: id %d", store.ErrCompanyNotFound, id)
}

// mapCompanyError narrows a unique violation to ErrCompanyNameExists.
func mapCompanyError(err error, name string) error {
	mapped := MapError(err)
	if errors.Is(mapped, store.ErrDuplicate) {
		return fmt.Errorf("%w: %q: %v", store.ErrCompanyNameExists, name, err)
	}
	return mapped
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var company domain.Company
	if err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Description,
		&company.Website,
		&company.Industry,
		&company.Location,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		return nil, err
	}
	company.CreatedAt = company.CreatedAt.UTC()
	company.UpdatedAt = company.UpdatedAt.UTC()
	return &company, nil
}

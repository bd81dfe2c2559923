package store

import (
	"context"

	"github.com/phrazzld/jobsearch-api/internal/domain"
)

// CompanyStore defines the interface for company persistence.
type CompanyStore interface {
	// ListAll returns every company ordered by id.
	ListAll(ctx context.Context) ([]*domain.Company, error)

	// GetByID retrieves a company by its id.
	// Returns ErrCompanyNotFound if the company does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Company, error)

	// Create validates and inserts a new company and returns its id.
	// Returns ErrCompanyNameExists if the name is already taken.
	Create(ctx context.Context, company *domain.Company) (int64, error)

	// Update persists every field of an existing company.
	// Returns ErrCompanyNotFound if the company does not exist.
	Update(ctx context.Context, company *domain.Company) error

	// Delete removes a company. Its job listings are kept and detached.
	// Returns ErrCompanyNotFound if the company does not exist.
	Delete(ctx context.Context, id int64) error
}
